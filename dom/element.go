package dom

import "strings"

// Attr is one attribute of an element.
type Attr struct {
	Name, Value string
}

// Element is a node of an in-memory document. Elements are created through
// Document.CreateElement and mutated through the Document's Surface methods.
type Element struct {
	Tag       string
	Namespace string

	id       uint32
	doc      *Document
	fragment bool

	attrs    []Attr // insertion order
	text     string
	parent   *Element
	children []*Element
}

// ID returns the element's document-unique id. Ids start at 1.
func (e *Element) ID() uint32 {
	return e.id
}

// IsFragment reports whether e is a document fragment.
func (e *Element) IsFragment() bool {
	return e.fragment
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Attrs returns the attributes in the order they were first set. The
// returned slice MUST NOT be mutated by the caller.
func (e *Element) Attrs() []Attr {
	return e.attrs
}

// Text returns the text content of e and its descendants, concatenated in
// document order.
func (e *Element) Text() string {
	if len(e.children) == 0 {
		return e.text
	}
	var sb strings.Builder
	sb.WriteString(e.text)
	for _, c := range e.children {
		sb.WriteString(c.Text())
	}
	return sb.String()
}

// Parent returns the parent element, or nil when detached.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns the child list. The returned slice MUST NOT be mutated
// by the caller.
func (e *Element) Children() []*Element {
	return e.children
}

// NumChildren returns the number of children.
func (e *Element) NumChildren() int {
	return len(e.children)
}

// ChildAt returns the child at the given index.
func (e *Element) ChildAt(index int) *Element {
	return e.children[index]
}

// Contains reports whether other is e or one of e's descendants.
func (e *Element) Contains(other *Element) bool {
	for p := other; p != nil; p = p.parent {
		if p == e {
			return true
		}
	}
	return false
}

// Walk calls fn for e and every descendant in document order. Returning
// false from fn skips that element's children.
func (e *Element) Walk(fn func(*Element) bool) {
	if !fn(e) {
		return
	}
	for _, c := range e.children {
		c.Walk(fn)
	}
}

// --- Tree manipulation (called by Document) ---

func (e *Element) setAttr(name, value string) {
	for i := range e.attrs {
		if e.attrs[i].Name == name {
			e.attrs[i].Value = value
			return
		}
	}
	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
}

// appendChild detaches child from its parent and appends it to e. The
// caller has already checked for cycles.
func (e *Element) appendChild(child *Element) {
	if child.parent != nil {
		child.parent.removeChildByPtr(child)
	}
	child.parent = e
	e.children = append(e.children, child)
}

// removeChildByPtr removes child from e.children without clearing
// child.parent. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (e *Element) removeChildByPtr(child *Element) bool {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			return true
		}
	}
	return false
}

// removeChildren detaches every child.
func (e *Element) removeChildren() {
	for i, c := range e.children {
		c.parent = nil
		e.children[i] = nil
	}
	e.children = e.children[:0]
}
