package bramble_test

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/phanxgames/bramble"
	"github.com/phanxgames/bramble/dom"
)

// charWidth is the width fixedWidth gives every rune.
const charWidth = 8

// fixedWidth measures every rune as charWidth pixels wide, whatever the
// font.
func fixedWidth(s string, _ dom.FontSpec) float64 {
	return float64(charWidth * utf8.RuneCountInString(s))
}

func newDoc() *dom.Document {
	return dom.New(dom.WithMeasurer(dom.MeasurerFunc(fixedWidth)))
}

func newState(t *testing.T, s bramble.Surface, cfg bramble.Config) *bramble.RenderingState {
	t.Helper()
	st, err := bramble.NewRenderingState(s, cfg)
	if err != nil {
		t.Fatalf("NewRenderingState: %v", err)
	}
	return st
}

// newHost creates a g element attached to the body.
func newHost(t *testing.T, doc *dom.Document) *dom.Element {
	t.Helper()
	v, err := doc.CreateElement("g", bramble.SVGNamespace)
	if err != nil {
		t.Fatal(err)
	}
	if err := doc.AppendChild(doc.BodyElement(), v); err != nil {
		t.Fatal(err)
	}
	return v.(*dom.Element)
}

func el(t *testing.T, v bramble.Visual) *dom.Element {
	t.Helper()
	e, ok := v.(*dom.Element)
	if !ok {
		t.Fatalf("visual is %T, want *dom.Element", v)
	}
	return e
}

func assertAttr(t *testing.T, e *dom.Element, name, want string) {
	t.Helper()
	got, ok := e.Attr(name)
	if !ok {
		t.Errorf("<%s> has no %s attribute, want %q", e.Tag, name, want)
		return
	}
	if got != want {
		t.Errorf("<%s> %s = %q, want %q", e.Tag, name, got, want)
	}
}

func assertNoAttr(t *testing.T, e *dom.Element, name string) {
	t.Helper()
	if got, ok := e.Attr(name); ok {
		t.Errorf("<%s> %s = %q, want unset", e.Tag, name, got)
	}
}

func assertHostError(t *testing.T, err error, op string) {
	t.Helper()
	if !errors.Is(err, bramble.ErrHostAPI) {
		t.Fatalf("err = %v, want a host error", err)
	}
	var he *bramble.HostError
	if !errors.As(err, &he) {
		t.Fatalf("err = %T, want *HostError", err)
	}
	if he.Op != op {
		t.Errorf("Op = %q, want %q", he.Op, op)
	}
	if !errors.Is(err, errBoom) {
		t.Errorf("err = %v, want it to wrap the host's error", err)
	}
}

// failingSurface fails to create elements with the given tag.
type failingSurface struct {
	*dom.Document
	failTag string
}

func (s failingSurface) CreateElement(tag, namespace string) (bramble.Visual, error) {
	if tag == s.failTag {
		return nil, errBoom
	}
	return s.Document.CreateElement(tag, namespace)
}

// failingEvents accepts ok registrations and then fails.
type failingEvents struct {
	*dom.Document
	ok int
}

func (s *failingEvents) AddListener(v bramble.Visual, kind bramble.EventKind, fn bramble.Listener) (bramble.ListenerHandle, error) {
	if s.ok == 0 {
		return nil, errBoom
	}
	s.ok--
	return s.Document.AddListener(v, kind, fn)
}

// flakySurface lets appends succeed while appends is non-zero (negative
// means unlimited) and fails ClearChildren when failClear is set.
type flakySurface struct {
	*dom.Document
	appends   int
	failClear bool
}

func (s *flakySurface) AppendChild(parent, child bramble.Visual) error {
	if s.appends == 0 {
		return errBoom
	}
	if s.appends > 0 {
		s.appends--
	}
	return s.Document.AppendChild(parent, child)
}

func (s *flakySurface) ClearChildren(host bramble.Visual) error {
	if s.failClear {
		return errBoom
	}
	return s.Document.ClearChildren(host)
}

var errBoom = errors.New("boom")
