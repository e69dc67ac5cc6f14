package bramble

import "math"

// SVGNamespace is the namespace every visual created by bramble lives in.
const SVGNamespace = "http://www.w3.org/2000/svg"

// Vec2 is a 2D point or offset. The coordinate system has its origin at the
// top-left, with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Add returns v translated by o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Size is a non-negative 2D extent.
type Size struct {
	Width, Height float64
}

// Add returns the size grown by the offset, i.e. the extent a child of this
// size covers once it is placed at off.
func (s Size) Add(off Vec2) Size {
	return Size{s.Width + off.X, s.Height + off.Y}
}

// Max returns the component-wise maximum of s and o.
func (s Size) Max(o Size) Size {
	return Size{math.Max(s.Width, o.Width), math.Max(s.Height, o.Height)}
}

// Extend returns the smallest size covering both s and a child of size
// child placed at off.
func (s Size) Extend(off Vec2, child Size) Size {
	return s.Max(child.Add(off))
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Origin returns the top-left corner.
func (r Rect) Origin() Vec2 {
	return Vec2{r.X, r.Y}
}

// Size returns the rectangle's extent.
func (r Rect) Size() Size {
	return Size{r.Width, r.Height}
}

// Contains reports whether (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Colour is a CSS colour value such as "#000", "steelblue" or "rgb(1,2,3)".
type Colour string

// Opt is an optional style value. The zero Opt is absent.
type Opt[T any] struct {
	val T
	ok  bool
}

// Some returns a present Opt holding v.
func Some[T any](v T) Opt[T] {
	return Opt[T]{val: v, ok: true}
}

// None returns an absent Opt.
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) {
	return o.val, o.ok
}

// Present reports whether the Opt holds a value.
func (o Opt[T]) Present() bool {
	return o.ok
}

// TextStyle selects the font a Text primitive is drawn with.
type TextStyle uint8

const (
	TextMono    TextStyle = iota // code text
	TextComment                  // italic comment text
)

// String returns the style name.
func (s TextStyle) String() string {
	switch s {
	case TextMono:
		return "mono"
	case TextComment:
		return "comment"
	default:
		return "unknown"
	}
}

// EventKind names a host event, e.g. "click".
type EventKind string

const (
	EventClick      EventKind = "click"
	EventMouseDown  EventKind = "mousedown"
	EventMouseUp    EventKind = "mouseup"
	EventMouseMove  EventKind = "mousemove"
	EventMouseEnter EventKind = "mouseenter"
	EventMouseLeave EventKind = "mouseleave"
	EventKeyDown    EventKind = "keydown"
)
