package dom

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/phanxgames/bramble"
)

// unstyledRule makes shapes without a fill or stroke attribute transparent,
// the default bramble primitives rely on. Presentation attributes lose to
// any CSS rule, hence the :not() selectors.
const unstyledRule = `rect:not([fill]),circle:not([fill]){fill:transparent}` +
	`rect:not([stroke]),circle:not([stroke]){stroke:transparent}`

// WriteSVG writes the children of host as a standalone SVG image of the
// given size.
func (d *Document) WriteSVG(w io.Writer, host bramble.Visual, size bramble.Size) error {
	e, err := d.element(host)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	width, height := bramble.FormatAttr(size.Width), bramble.FormatAttr(size.Height)
	fmt.Fprintf(bw, `<svg xmlns="%s" width="%s" height="%s" viewBox="0 0 %s %s">`,
		bramble.SVGNamespace, width, height, width, height)
	bw.WriteString("<style>" + unstyledRule + "</style>")
	for _, c := range e.children {
		if err := writeElement(bw, c, bramble.SVGNamespace); err != nil {
			return err
		}
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}

// WriteXML writes e and its descendants as markup.
func WriteXML(w io.Writer, e *Element) error {
	bw := bufio.NewWriter(w)
	if err := writeElement(bw, e, ""); err != nil {
		return err
	}
	return bw.Flush()
}

func writeElement(w *bufio.Writer, e *Element, parentNS string) error {
	if e.fragment {
		for _, c := range e.children {
			if err := writeElement(w, c, parentNS); err != nil {
				return err
			}
		}
		return nil
	}
	w.WriteString("<" + e.Tag)
	if e.Namespace != "" && e.Namespace != parentNS {
		w.WriteString(` xmlns="`)
		if err := xml.EscapeText(w, []byte(e.Namespace)); err != nil {
			return err
		}
		w.WriteString(`"`)
	}
	for _, a := range e.attrs {
		w.WriteString(" " + a.Name + `="`)
		if err := xml.EscapeText(w, []byte(a.Value)); err != nil {
			return err
		}
		w.WriteString(`"`)
	}
	if e.text == "" && len(e.children) == 0 {
		w.WriteString("/>")
		return nil
	}
	w.WriteString(">")
	if err := xml.EscapeText(w, []byte(e.text)); err != nil {
		return err
	}
	ns := e.Namespace
	if ns == "" {
		ns = parentNS
	}
	for _, c := range e.children {
		if err := writeElement(w, c, ns); err != nil {
			return err
		}
	}
	w.WriteString("</" + e.Tag + ">")
	return nil
}
