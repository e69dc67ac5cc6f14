package bramble

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TranslateTween animates the translate transform of a placed group, such as
// one of the visuals a Scene gained from Place. Call Update each frame.
//
// There is no global animation manager; callers drive Update themselves.
type TranslateTween struct {
	x, y    *gween.Tween
	surface Surface
	target  Visual
	pos     Vec2
	Done    bool
}

// NewTranslateTween creates a tween that moves target from one offset to
// another over duration seconds using the easing function.
func NewTranslateTween(s Surface, target Visual, from, to Vec2, duration float32, fn ease.TweenFunc) *TranslateTween {
	if fn == nil {
		fn = ease.Linear
	}
	return &TranslateTween{
		x:       gween.New(float32(from.X), float32(to.X), duration, fn),
		y:       gween.New(float32(from.Y), float32(to.Y), duration, fn),
		surface: s,
		target:  target,
		pos:     from,
	}
}

// Update advances the tween by dt seconds and writes the new transform.
// Once Done is set further calls do nothing.
func (tw *TranslateTween) Update(dt float32) error {
	if tw.Done {
		return nil
	}
	x, doneX := tw.x.Update(dt)
	y, doneY := tw.y.Update(dt)
	tw.pos = Vec2{float64(x), float64(y)}
	tw.Done = doneX && doneY
	return Assign(tw.surface, tw.target, "transform", translateAttr(tw.pos))
}

// Position returns the most recently written offset.
func (tw *TranslateTween) Position() Vec2 {
	return tw.pos
}
