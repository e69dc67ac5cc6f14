package bramble

import "fmt"

// Renderable is implemented by every primitive that can become a Scene.
type Renderable interface {
	// Materialize creates exactly one new visual reflecting the primitive's
	// fields.
	Materialize(st *RenderingState) (Visual, error)
	// Measure reports the primitive's size. Only Text touches st, through
	// its measurement cache.
	Measure(st *RenderingState) (Size, error)
}

// Render composes Materialize and Measure into a single-visual Scene with
// no listeners.
func Render(st *RenderingState, r Renderable) (*Scene, error) {
	size, err := r.Measure(st)
	if err != nil {
		return nil, err
	}
	v, err := r.Materialize(st)
	if err != nil {
		return nil, err
	}
	sc := NewScene(st.surface)
	sc.visuals = append(sc.visuals, v)
	sc.size = size
	return sc, nil
}

// --- Rectangle ---

// Rectangle is a filled and/or stroked axis-aligned rectangle. Unset fill
// and stroke are left to the host default, which is transparent.
type Rectangle struct {
	rect   Rect
	fill   Opt[Colour]
	stroke Opt[Colour]
}

// NewRectangle returns an unstyled rectangle.
func NewRectangle(r Rect) Rectangle {
	return Rectangle{rect: r}
}

// Fill returns a copy with the fill colour set.
func (r Rectangle) Fill(c Colour) Rectangle {
	r.fill = Some(c)
	return r
}

// Stroke returns a copy with the stroke colour set.
func (r Rectangle) Stroke(c Colour) Rectangle {
	r.stroke = Some(c)
	return r
}

// Materialize creates a rect element.
func (r Rectangle) Materialize(st *RenderingState) (Visual, error) {
	s := st.surface
	v, err := createSVG(s, "rect",
		a("x", r.rect.X),
		a("y", r.rect.Y),
		a("width", r.rect.Width),
		a("height", r.rect.Height),
	)
	if err != nil {
		return nil, err
	}
	if err := AssignIfPresent(s, v, "fill", r.fill); err != nil {
		return nil, err
	}
	if err := AssignIfPresent(s, v, "stroke", r.stroke); err != nil {
		return nil, err
	}
	return v, nil
}

// Measure returns the rectangle's own size.
func (r Rectangle) Measure(*RenderingState) (Size, error) {
	if !validLength(r.rect.Width) || !validLength(r.rect.Height) {
		return Size{}, fmt.Errorf("%w: rect %vx%v", ErrInvalidShape, r.rect.Width, r.rect.Height)
	}
	return r.rect.Size(), nil
}

// Render returns a single-visual Scene of the rectangle.
func (r Rectangle) Render(st *RenderingState) (*Scene, error) {
	return Render(st, r)
}

// --- Circle ---

// Circle is a circle centred on its origin.
type Circle struct {
	origin Vec2
	radius float64
	fill   Opt[Colour]
	stroke Opt[Colour]
}

// NewCircle returns an unstyled circle.
func NewCircle(origin Vec2, radius float64) Circle {
	return Circle{origin: origin, radius: radius}
}

// Fill returns a copy with the fill colour set.
func (c Circle) Fill(col Colour) Circle {
	c.fill = Some(col)
	return c
}

// Stroke returns a copy with the stroke colour set.
func (c Circle) Stroke(col Colour) Circle {
	c.stroke = Some(col)
	return c
}

// Materialize creates a circle element.
func (c Circle) Materialize(st *RenderingState) (Visual, error) {
	s := st.surface
	v, err := createSVG(s, "circle",
		a("cx", c.origin.X),
		a("cy", c.origin.Y),
		a("r", c.radius),
	)
	if err != nil {
		return nil, err
	}
	if err := AssignIfPresent(s, v, "fill", c.fill); err != nil {
		return nil, err
	}
	if err := AssignIfPresent(s, v, "stroke", c.stroke); err != nil {
		return nil, err
	}
	return v, nil
}

// Measure returns the circle's diameter in both dimensions.
func (c Circle) Measure(*RenderingState) (Size, error) {
	if !validLength(c.radius) {
		return Size{}, fmt.Errorf("%w: radius %v", ErrInvalidShape, c.radius)
	}
	d := c.radius * 2
	return Size{d, d}, nil
}

// Render returns a single-visual Scene of the circle.
func (c Circle) Render(st *RenderingState) (*Scene, error) {
	return Render(st, c)
}

// --- Text ---

// DefaultTextColour is the colour of a Text unless Colour is called.
const DefaultTextColour Colour = "#000"

// Text is a single line of styled text. Its origin is the top-left corner;
// the element uses a hanging baseline.
type Text struct {
	origin  Vec2
	content string
	style   TextStyle
	colour  Colour
}

// NewText returns text at the origin in the default colour.
func NewText(content string, style TextStyle) Text {
	return Text{content: content, style: style, colour: DefaultTextColour}
}

// Origin returns a copy placed at p.
func (t Text) Origin(p Vec2) Text {
	t.origin = p
	return t
}

// Colour returns a copy drawn in c.
func (t Text) Colour(c Colour) Text {
	t.colour = c
	return t
}

// Content returns the text.
func (t Text) Content() string {
	return t.content
}

// Materialize creates a text element.
func (t Text) Materialize(st *RenderingState) (Visual, error) {
	s := st.surface
	v, err := createSVG(s, "text",
		a("style", "font: "+st.font(t.style)+"; user-select: none;"),
		a("x", t.origin.X),
		a("y", t.origin.Y),
		a("fill", t.colour),
		a("alignment-baseline", "hanging"),
	)
	if err != nil {
		return nil, err
	}
	if err := s.SetTextContent(v, t.content); err != nil {
		return nil, hostErr("set text content", err)
	}
	return v, nil
}

// Measure returns the cached width of the content and the configured text
// height.
func (t Text) Measure(st *RenderingState) (Size, error) {
	return st.MeasureText(t.content)
}

// Render returns a single-visual Scene of the text.
func (t Text) Render(st *RenderingState) (*Scene, error) {
	return Render(st, t)
}
