package demo

import (
	"testing"
	"unicode/utf8"

	"github.com/phanxgames/bramble"
	"github.com/phanxgames/bramble/dom"
)

const charWidth = 8

type fixture struct {
	doc      *dom.Document
	host     *dom.Element
	view     *View
	selected []int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	doc := dom.New(dom.WithMeasurer(dom.MeasurerFunc(func(s string, _ dom.FontSpec) float64 {
		return float64(charWidth * utf8.RuneCountInString(s))
	})))
	st, err := bramble.NewRenderingState(doc, bramble.Config{})
	if err != nil {
		t.Fatal(err)
	}
	hv, _ := doc.CreateElement("g", bramble.SVGNamespace)
	if err := doc.AppendChild(doc.BodyElement(), hv); err != nil {
		t.Fatal(err)
	}
	f := &fixture{doc: doc, host: hv.(*dom.Element)}
	f.view = &View{
		State:    st,
		Events:   doc,
		Theme:    DefaultTheme(),
		OnSelect: func(id int) { f.selected = append(f.selected, id) },
	}
	return f
}

func (f *fixture) render(t *testing.T, src string) *bramble.Scene {
	t.Helper()
	e, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	sc, err := f.view.Render(e)
	if err != nil {
		t.Fatal(err)
	}
	if err := sc.Mount(f.host); err != nil {
		t.Fatal(err)
	}
	return sc
}

// find returns the first mounted element matching fn.
func (f *fixture) find(fn func(*dom.Element) bool) *dom.Element {
	var found *dom.Element
	f.host.Walk(func(e *dom.Element) bool {
		if found == nil && fn(e) {
			found = e
		}
		return found == nil
	})
	return found
}

func (f *fixture) text(content string) *dom.Element {
	return f.find(func(e *dom.Element) bool { return e.Tag == "text" && e.Text() == content })
}

func TestRenderToken(t *testing.T) {
	f := newFixture(t)
	sc := f.render(t, "x")
	m := f.view.Theme.Margin
	want := bramble.Size{Width: charWidth + 2*m, Height: bramble.DefaultTextHeight + 2*m}
	if sc.Size() != want {
		t.Errorf("Size = %v, want %v", sc.Size(), want)
	}
	tx := f.text("x")
	if tx == nil {
		t.Fatal("token text not mounted")
	}
	if fill, _ := tx.Attr("fill"); fill != string(f.view.Theme.Variable) {
		t.Errorf("fill = %q, want variable colour", fill)
	}
}

func TestRenderQuotedLiteral(t *testing.T) {
	f := newFixture(t)
	f.render(t, `"hi"`)
	if f.text(`"hi"`) == nil {
		t.Error("quoted literal should be shown with quotes")
	}
}

func TestRenderInlineCall(t *testing.T) {
	f := newFixture(t)
	sc := f.render(t, "(f a b)")
	m := f.view.Theme.Margin
	gap := f.view.Theme.SpaceWidth
	want := bramble.Size{Width: 3*charWidth + 2*gap + 2*m, Height: bramble.DefaultTextHeight + 2*m}
	if sc.Size() != want {
		t.Errorf("Size = %v, want %v", sc.Size(), want)
	}
}

func TestRenderStackedCall(t *testing.T) {
	f := newFixture(t)
	f.view.Theme.LineBreakPoint = 10
	sc := f.render(t, "(f a b)")
	m := f.view.Theme.Margin
	h := 2*bramble.DefaultTextHeight + f.view.Theme.LineSpacing + 2*m
	if sc.Size().Height != h {
		t.Errorf("Height = %v, want %v", sc.Size().Height, h)
	}
}

func TestRenderComment(t *testing.T) {
	f := newFixture(t)
	sc := f.render(t, "; note\nx")
	m := f.view.Theme.Margin
	h := 2*bramble.DefaultTextHeight + f.view.Theme.LineSpacing + 2*m
	if sc.Size().Height != h {
		t.Errorf("Height = %v, want %v", sc.Size().Height, h)
	}
	c := f.text("note")
	if c == nil {
		t.Fatal("comment not mounted")
	}
	if style, _ := c.Attr("style"); style != "font: "+bramble.DefaultCommentFont+"; user-select: none;" {
		t.Errorf("comment style = %q", style)
	}
}

func TestRenderBlankPill(t *testing.T) {
	f := newFixture(t)
	sc := f.render(t, "?")
	m := f.view.Theme.Margin
	side := bramble.DefaultTextHeight + 2*f.view.Theme.BlankPadding
	if sc.Size() != (bramble.Size{Width: side + 2*m, Height: side + 2*m}) {
		t.Errorf("Size = %v, want a %v square pill with margin", sc.Size(), side)
	}
	pill := f.find(func(e *dom.Element) bool {
		s, _ := e.Attr("stroke")
		return e.Tag == "rect" && s == string(f.view.Theme.BlankStroke)
	})
	if pill == nil {
		t.Fatal("pill not mounted")
	}
	f.doc.Dispatch(f.text("?"), bramble.EventClick, 0, 0)
	if len(f.selected) != 1 || f.selected[0] != 1 {
		t.Errorf("selected = %v, want [1]", f.selected)
	}
}

func TestClickSelectsToken(t *testing.T) {
	f := newFixture(t)
	f.render(t, "(f a b)")
	f.doc.Dispatch(f.text("b"), bramble.EventClick, 0, 0)
	f.doc.Dispatch(f.text("f"), bramble.EventClick, 0, 0)
	want := []int{3, 1}
	if len(f.selected) != len(want) || f.selected[0] != want[0] || f.selected[1] != want[1] {
		t.Errorf("selected = %v, want %v", f.selected, want)
	}
}

func TestHighlightBeneathSelection(t *testing.T) {
	f := newFixture(t)
	f.view.Selected = 2
	f.render(t, "(f a b)")
	hl := f.find(func(e *dom.Element) bool {
		fill, _ := e.Attr("fill")
		return e.Tag == "rect" && fill == string(f.view.Theme.Highlight)
	})
	if hl == nil {
		t.Fatal("highlight not mounted")
	}
	if w, _ := hl.Attr("width"); w != "8" {
		t.Errorf("highlight width = %s, want 8", w)
	}
	// The highlight's group comes before the token in the same scene.
	tok := f.text("a")
	grp := hl.Parent()
	if grp.Parent() != tok.Parent() {
		t.Fatal("highlight and token should share a scene")
	}
	siblings := grp.Parent().Children()
	if siblings[0] != grp {
		t.Error("highlight should be drawn first")
	}
}

func TestRenderList(t *testing.T) {
	f := newFixture(t)
	sc := f.render(t, "[a b c]")
	m := f.view.Theme.Margin
	h := 3*bramble.DefaultTextHeight + 2*f.view.Theme.LineSpacing + 2*m
	if sc.Size().Height != h {
		t.Errorf("Height = %v, want %v", sc.Size().Height, h)
	}
	ruler := f.find(func(e *dom.Element) bool {
		fill, _ := e.Attr("fill")
		return e.Tag == "rect" && fill == string(f.view.Theme.ListRuler)
	})
	if ruler == nil {
		t.Fatal("list ruler not mounted")
	}
	f.doc.Dispatch(ruler, bramble.EventClick, 0, 0)
	if len(f.selected) != 1 || f.selected[0] != 1 {
		t.Errorf("selected = %v, want [1]", f.selected)
	}
}

func TestRenderWithoutEvents(t *testing.T) {
	f := newFixture(t)
	f.view.Events = nil
	sc := f.render(t, "(f a)")
	if sc.NumListeners() != 0 || f.doc.NumListeners(nil) != 0 {
		t.Error("a view without an event source should register nothing")
	}
}
