package dom

import (
	"errors"
	"fmt"

	"github.com/phanxgames/bramble"
)

var (
	// ErrNotElement is returned for a visual that is not an *Element of
	// this document.
	ErrNotElement = errors.New("dom: not an element of this document")
	// ErrHierarchy is returned when an append would create a cycle.
	ErrHierarchy = errors.New("dom: hierarchy request error")
	// ErrNotChild is returned when removing an element from a node that is
	// not its parent.
	ErrNotChild = errors.New("dom: element is not a child of this node")
	// ErrNotText is returned when measuring an element that is not text.
	ErrNotText = errors.New("dom: computed text length requires a text element")
)

var (
	_ bramble.Surface     = (*Document)(nil)
	_ bramble.EventSource = (*Document)(nil)
)

// Document is an in-memory SVG document. It implements bramble.Surface and
// bramble.EventSource, and is the host used by the raster backend, the SVG
// writer and the tests.
//
// Document is single-threaded, like the browser document it stands in for.
type Document struct {
	body      *Element
	measurer  Measurer
	listeners listenerRegistry
	nextID    uint32
	queries   int
}

// Option configures a Document.
type Option func(*Document)

// WithMeasurer sets the text measurer used by ComputedTextLength. Without
// it the document measures with the Go fonts (see FaceMeasurer).
func WithMeasurer(m Measurer) Option {
	return func(d *Document) { d.measurer = m }
}

// New creates a document with an empty body.
func New(opts ...Option) *Document {
	d := &Document{}
	for _, o := range opts {
		o(d)
	}
	d.body = d.newElement("body", "")
	return d
}

func (d *Document) newElement(tag, ns string) *Element {
	d.nextID++
	return &Element{Tag: tag, Namespace: ns, id: d.nextID, doc: d}
}

// element resolves a visual handed back by bramble.
func (d *Document) element(v bramble.Visual) (*Element, error) {
	e, ok := v.(*Element)
	if !ok || e == nil {
		return nil, fmt.Errorf("%w: %T", ErrNotElement, v)
	}
	if e.doc != d {
		return nil, ErrNotElement
	}
	return e, nil
}

// BodyElement returns the body element.
func (d *Document) BodyElement() *Element {
	return d.body
}

// QueryCount returns how many times ComputedTextLength reached the measurer.
func (d *Document) QueryCount() int {
	return d.queries
}

// --- bramble.Surface ---

// CreateElement creates a detached element.
func (d *Document) CreateElement(tag, namespace string) (bramble.Visual, error) {
	if tag == "" {
		return nil, errors.New("dom: empty tag")
	}
	return d.newElement(tag, namespace), nil
}

// SetAttribute sets or replaces an attribute.
func (d *Document) SetAttribute(v bramble.Visual, name, value string) error {
	e, err := d.element(v)
	if err != nil {
		return err
	}
	if name == "" {
		return errors.New("dom: empty attribute name")
	}
	e.setAttr(name, value)
	return nil
}

// SetTextContent replaces the element's children with text.
func (d *Document) SetTextContent(v bramble.Visual, text string) error {
	e, err := d.element(v)
	if err != nil {
		return err
	}
	e.removeChildren()
	e.text = text
	return nil
}

// AppendChild appends child to parent, moving it from any previous parent.
// Appending a fragment moves the fragment's children and leaves it empty.
func (d *Document) AppendChild(parent, child bramble.Visual) error {
	p, err := d.element(parent)
	if err != nil {
		return err
	}
	c, err := d.element(child)
	if err != nil {
		return err
	}
	if c.fragment {
		if c == p {
			return ErrHierarchy
		}
		moved := append([]*Element(nil), c.children...)
		for _, gc := range moved {
			if gc.Contains(p) {
				return ErrHierarchy
			}
		}
		for _, gc := range moved {
			p.appendChild(gc)
		}
		return nil
	}
	if c.Contains(p) {
		return ErrHierarchy
	}
	p.appendChild(c)
	return nil
}

// RemoveChild detaches child from parent.
func (d *Document) RemoveChild(parent, child bramble.Visual) error {
	p, err := d.element(parent)
	if err != nil {
		return err
	}
	c, err := d.element(child)
	if err != nil {
		return err
	}
	if c.parent != p || !p.removeChildByPtr(c) {
		return ErrNotChild
	}
	c.parent = nil
	return nil
}

// ComputedTextLength measures the text content of a text element in the
// font its nearest styled ancestor (or itself) declares.
func (d *Document) ComputedTextLength(v bramble.Visual) (float64, error) {
	e, err := d.element(v)
	if err != nil {
		return 0, err
	}
	if e.Tag != "text" {
		return 0, fmt.Errorf("%w: <%s>", ErrNotText, e.Tag)
	}
	font, err := d.fontFor(e)
	if err != nil {
		return 0, err
	}
	m := d.measurer
	if m == nil {
		fm, err := DefaultFaceMeasurer()
		if err != nil {
			return 0, err
		}
		m = fm
		d.measurer = fm
	}
	d.queries++
	return m.MeasureText(e.Text(), font)
}

// CreateFragment creates an empty document fragment.
func (d *Document) CreateFragment() (bramble.Visual, error) {
	f := d.newElement("#document-fragment", "")
	f.fragment = true
	return f, nil
}

// ClearChildren detaches every child of host.
func (d *Document) ClearChildren(host bramble.Visual) error {
	e, err := d.element(host)
	if err != nil {
		return err
	}
	e.removeChildren()
	return nil
}

// Body returns the body element.
func (d *Document) Body() (bramble.Visual, error) {
	return d.body, nil
}

// fontFor returns the font declared by the closest element with a font in
// its style attribute.
func (d *Document) fontFor(e *Element) (FontSpec, error) {
	for p := e; p != nil; p = p.parent {
		style, ok := p.Attr("style")
		if !ok {
			continue
		}
		font, found, err := FontFromStyle(style)
		if err != nil {
			return FontSpec{}, err
		}
		if found {
			return font, nil
		}
	}
	return DefaultFont, nil
}
