package demo

import (
	"github.com/phanxgames/bramble"
)

// Theme holds the demo's colours and spacing.
type Theme struct {
	Literal, Variable, Call, Comment bramble.Colour
	BlankFill, BlankStroke, BlankText bramble.Colour
	ListRuler, Highlight, Background  bramble.Colour

	SpaceWidth     float64 // gap between a call name and its arguments
	LineSpacing    float64
	LineBreakPoint float64 // widest inline call before its args stack
	BlankPadding   float64
	Margin         float64
}

// DefaultTheme returns the light theme.
func DefaultTheme() Theme {
	return Theme{
		Literal:        "#2e7d32",
		Variable:       "#1565c0",
		Call:           "#000",
		Comment:        "#757575",
		BlankFill:      "#f5f5f5",
		BlankStroke:    "#bdbdbd",
		BlankText:      "#9e9e9e",
		ListRuler:      "#bdbdbd",
		Highlight:      "#fff59d",
		Background:     "#fff",
		SpaceWidth:     8,
		LineSpacing:    6,
		LineBreakPoint: 300,
		BlankPadding:   4,
		Margin:         10,
	}
}

// View turns expressions into scenes. Clicking an expression's main token
// (or a blank's pill) calls OnSelect with its id.
type View struct {
	State    *bramble.RenderingState
	Events   bramble.EventSource
	Theme    Theme
	Selected int // id of the highlighted expression, 0 for none
	OnSelect func(id int)
}

// layout is an expression's scene plus whether it may sit on one line.
type layout struct {
	scene  *bramble.Scene
	inline bool
}

// Render lays out e on a background with a margin.
func (v *View) Render(e *Expr) (*bramble.Scene, error) {
	l, err := v.layout(e, false)
	if err != nil {
		return nil, err
	}
	m := v.Theme.Margin
	inner := l.scene.Size()
	bg, err := bramble.NewRectangle(bramble.Rect{Width: inner.Width + 2*m, Height: inner.Height + 2*m}).
		Fill(v.Theme.Background).Render(v.State)
	if err != nil {
		return nil, err
	}
	if err := bg.Place(bramble.Vec2{X: m, Y: m}, l.scene); err != nil {
		return nil, err
	}
	return bg, nil
}

func (v *View) layout(e *Expr, listParent bool) (layout, error) {
	var (
		l   layout
		err error
	)
	switch e.Kind {
	case KindLiteral:
		text := e.Text
		if e.Quoted {
			text = `"` + text + `"`
		}
		l, err = v.token(e, text, v.Theme.Literal)
	case KindVariable:
		l, err = v.token(e, e.Text, v.Theme.Variable)
	case KindBlank:
		l, err = v.blank(e)
	case KindCall:
		l, err = v.call(e, listParent)
	case KindList:
		l, err = v.list(e)
	}
	if err != nil {
		return layout{}, err
	}
	if e.Comment != "" {
		if l, err = v.withComment(e, l); err != nil {
			return layout{}, err
		}
	}
	if e.ID == v.Selected && v.Selected != 0 {
		if err := v.highlight(l.scene); err != nil {
			return layout{}, err
		}
	}
	return l, nil
}

// token renders one clickable word.
func (v *View) token(e *Expr, text string, c bramble.Colour) (layout, error) {
	sc, err := bramble.NewText(text, bramble.TextMono).Colour(c).Render(v.State)
	if err != nil {
		return layout{}, err
	}
	if err := v.selectable(sc, e); err != nil {
		return layout{}, err
	}
	return layout{scene: sc, inline: true}, nil
}

func (v *View) blank(e *Expr) (layout, error) {
	hint := e.Text
	if hint == "" {
		hint = "?"
	}
	label, err := bramble.NewText(hint, bramble.TextComment).Colour(v.Theme.BlankText).Render(v.State)
	if err != nil {
		return layout{}, err
	}
	pad := v.Theme.BlankPadding
	size := label.Size().Add(bramble.Vec2{X: 2 * pad, Y: 2 * pad})
	if size.Width < size.Height {
		size.Width = size.Height
	}
	pill, err := bramble.NewRectangle(bramble.Rect{Width: size.Width, Height: size.Height}).
		Fill(v.Theme.BlankFill).Stroke(v.Theme.BlankStroke).Render(v.State)
	if err != nil {
		return layout{}, err
	}
	if err := pill.Place(bramble.Vec2{X: pad, Y: pad}, label); err != nil {
		return layout{}, err
	}
	// One listener on the group catches clicks on the pill and its label.
	if _, err := pill.Translate(bramble.Vec2{}); err != nil {
		return layout{}, err
	}
	if err := v.selectable(pill, e); err != nil {
		return layout{}, err
	}
	return layout{scene: pill, inline: true}, nil
}

func (v *View) call(e *Expr, listParent bool) (layout, error) {
	name, err := v.token(e, e.Text, v.Theme.Call)
	if err != nil {
		return layout{}, err
	}
	args := make([]layout, 0, len(e.Args))
	for _, a := range e.Args {
		l, err := v.layout(a, false)
		if err != nil {
			return layout{}, err
		}
		args = append(args, l)
	}
	commentInline := e.Comment == "" || listParent
	if v.inlineCall(args) && commentInline {
		items := append([]*bramble.Scene{name.scene}, scenes(args)...)
		row, err := v.hstack(v.Theme.SpaceWidth, items...)
		if err != nil {
			return layout{}, err
		}
		return layout{scene: row, inline: true}, nil
	}
	col, err := v.vstack(v.Theme.LineSpacing, scenes(args)...)
	if err != nil {
		return layout{}, err
	}
	row, err := v.hstack(v.Theme.SpaceWidth, name.scene, col)
	if err != nil {
		return layout{}, err
	}
	return layout{scene: row}, nil
}

func (v *View) inlineCall(args []layout) bool {
	if len(args) <= 1 {
		return len(args) == 0 || args[0].inline
	}
	width := 0.0
	for _, a := range args {
		if !a.inline {
			return false
		}
		width += a.scene.Size().Width
	}
	return width <= v.Theme.LineBreakPoint
}

func (v *View) list(e *Expr) (layout, error) {
	items := make([]*bramble.Scene, 0, len(e.Args))
	for _, a := range e.Args {
		l, err := v.layout(a, true)
		if err != nil {
			return layout{}, err
		}
		items = append(items, l.scene)
	}
	body, err := v.vstack(v.Theme.LineSpacing, items...)
	if err != nil {
		return layout{}, err
	}
	h := body.Size().Height - 8
	if h < 0 {
		h = 0
	}
	ruler, err := bramble.NewRectangle(bramble.Rect{X: 3, Y: 5, Width: 1, Height: h}).
		Fill(v.Theme.ListRuler).Render(v.State)
	if err != nil {
		return layout{}, err
	}
	if err := v.selectable(ruler, e); err != nil {
		return layout{}, err
	}
	sc := v.State.NewScene()
	if err := sc.Place(bramble.Vec2{}, ruler); err != nil {
		return layout{}, err
	}
	if err := sc.Place(bramble.Vec2{X: 10}, body); err != nil {
		return layout{}, err
	}
	return layout{scene: sc}, nil
}

func (v *View) withComment(e *Expr, l layout) (layout, error) {
	c, err := bramble.NewText(e.Comment, bramble.TextComment).Colour(v.Theme.Comment).Render(v.State)
	if err != nil {
		return layout{}, err
	}
	sc, err := v.vstack(v.Theme.LineSpacing, c, l.scene)
	if err != nil {
		return layout{}, err
	}
	return layout{scene: sc, inline: false}, nil
}

// highlight places a selection rectangle beneath everything in sc.
func (v *View) highlight(sc *bramble.Scene) error {
	size := sc.Size()
	hl, err := bramble.NewRectangle(bramble.Rect{Width: size.Width, Height: size.Height}).
		Fill(v.Theme.Highlight).Render(v.State)
	if err != nil {
		return err
	}
	return sc.PlaceAt(0, bramble.Vec2{}, hl)
}

func (v *View) selectable(sc *bramble.Scene, e *Expr) error {
	if v.Events == nil || v.OnSelect == nil {
		return nil
	}
	id := e.ID
	_, err := sc.Event(v.Events, bramble.EventClick, func(bramble.Event) { v.OnSelect(id) })
	return err
}

// hstack places scenes left to right with gap between them.
func (v *View) hstack(gap float64, items ...*bramble.Scene) (*bramble.Scene, error) {
	sc := v.State.NewScene()
	x := 0.0
	for i, it := range items {
		if i > 0 {
			x += gap
		}
		w := it.Size().Width
		if err := sc.Place(bramble.Vec2{X: x}, it); err != nil {
			return nil, err
		}
		x += w
	}
	return sc, nil
}

// vstack places scenes top to bottom with gap between them.
func (v *View) vstack(gap float64, items ...*bramble.Scene) (*bramble.Scene, error) {
	sc := v.State.NewScene()
	y := 0.0
	for i, it := range items {
		if i > 0 {
			y += gap
		}
		h := it.Size().Height
		if err := sc.Place(bramble.Vec2{Y: y}, it); err != nil {
			return nil, err
		}
		y += h
	}
	return sc, nil
}

func scenes(ls []layout) []*bramble.Scene {
	out := make([]*bramble.Scene, len(ls))
	for i, l := range ls {
		out[i] = l.scene
	}
	return out
}
