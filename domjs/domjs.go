//go:build js

// Package domjs implements bramble's Surface and EventSource on the browser
// DOM through syscall/js. Visuals are js.Value handles to DOM nodes.
package domjs

import (
	"errors"
	"fmt"
	"syscall/js"

	"github.com/phanxgames/bramble"
)

var (
	_ bramble.Surface     = (*Document)(nil)
	_ bramble.EventSource = (*Document)(nil)
)

// unstyledRule gives fill- and stroke-less shapes the transparent default
// bramble primitives rely on.
const unstyledRule = `rect:not([fill]),circle:not([fill]){fill:transparent}` +
	`rect:not([stroke]),circle:not([stroke]){stroke:transparent}`

// Document wraps the page's document object.
type Document struct {
	doc js.Value
}

// New wraps the global document and installs the unstyled-shape rule.
func New() (*Document, error) {
	d := &Document{doc: js.Global().Get("document")}
	if d.doc.IsUndefined() || d.doc.IsNull() {
		return nil, errors.New("domjs: no document")
	}
	err := guard(func() {
		style := d.doc.Call("createElement", "style")
		style.Set("textContent", unstyledRule)
		d.doc.Get("head").Call("appendChild", style)
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

// ElementByID returns the element with the given id.
func (d *Document) ElementByID(id string) (bramble.Visual, error) {
	var el js.Value
	if err := guard(func() { el = d.doc.Call("getElementById", id) }); err != nil {
		return nil, err
	}
	if el.IsNull() {
		return nil, fmt.Errorf("domjs: no element with id %q", id)
	}
	return el, nil
}

// guard turns a panic from syscall/js (a thrown JS exception or a type
// mismatch) into an error.
func guard(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("domjs: %v", r)
		}
	}()
	fn()
	return nil
}

func node(v bramble.Visual) (js.Value, error) {
	n, ok := v.(js.Value)
	if !ok {
		return js.Value{}, fmt.Errorf("domjs: not a DOM node: %T", v)
	}
	if n.IsUndefined() || n.IsNull() {
		return js.Value{}, errors.New("domjs: null DOM node")
	}
	return n, nil
}

// CreateElement creates an element, in namespace when one is given.
func (d *Document) CreateElement(tag, namespace string) (bramble.Visual, error) {
	var el js.Value
	err := guard(func() {
		if namespace == "" {
			el = d.doc.Call("createElement", tag)
		} else {
			el = d.doc.Call("createElementNS", namespace, tag)
		}
	})
	if err != nil {
		return nil, err
	}
	return el, nil
}

// SetAttribute calls setAttribute.
func (d *Document) SetAttribute(v bramble.Visual, name, value string) error {
	n, err := node(v)
	if err != nil {
		return err
	}
	return guard(func() { n.Call("setAttribute", name, value) })
}

// SetTextContent sets textContent.
func (d *Document) SetTextContent(v bramble.Visual, text string) error {
	n, err := node(v)
	if err != nil {
		return err
	}
	return guard(func() { n.Set("textContent", text) })
}

// AppendChild calls appendChild.
func (d *Document) AppendChild(parent, child bramble.Visual) error {
	p, err := node(parent)
	if err != nil {
		return err
	}
	c, err := node(child)
	if err != nil {
		return err
	}
	return guard(func() { p.Call("appendChild", c) })
}

// RemoveChild calls removeChild.
func (d *Document) RemoveChild(parent, child bramble.Visual) error {
	p, err := node(parent)
	if err != nil {
		return err
	}
	c, err := node(child)
	if err != nil {
		return err
	}
	return guard(func() { p.Call("removeChild", c) })
}

// ComputedTextLength calls getComputedTextLength on an SVG text element.
func (d *Document) ComputedTextLength(v bramble.Visual) (float64, error) {
	n, err := node(v)
	if err != nil {
		return 0, err
	}
	var res js.Value
	if err := guard(func() { res = n.Call("getComputedTextLength") }); err != nil {
		return 0, err
	}
	if res.Type() != js.TypeNumber {
		return 0, fmt.Errorf("domjs: getComputedTextLength returned %s", res.Type())
	}
	return res.Float(), nil
}

// CreateFragment calls createDocumentFragment.
func (d *Document) CreateFragment() (bramble.Visual, error) {
	var f js.Value
	if err := guard(func() { f = d.doc.Call("createDocumentFragment") }); err != nil {
		return nil, err
	}
	return f, nil
}

// ClearChildren empties host.
func (d *Document) ClearChildren(host bramble.Visual) error {
	n, err := node(host)
	if err != nil {
		return err
	}
	return guard(func() { n.Set("innerHTML", "") })
}

// Body returns document.body.
func (d *Document) Body() (bramble.Visual, error) {
	b := d.doc.Get("body")
	if b.IsNull() || b.IsUndefined() {
		return nil, errors.New("domjs: document has no body")
	}
	return b, nil
}
