// Package bramble is a small retained-mode scene layer for composing SVG
// visuals (rectangles, circles, styled text) into a nested, positioned tree
// and mounting it into a host document.
//
// bramble never talks to a document directly. It consumes a [Surface],
// which creates and styles elements and measures text, and an
// [EventSource], which attaches listeners. Package dom provides an
// in-memory implementation; package domjs provides the browser one.
//
// # Rendering
//
// A render pass starts with one [RenderingState], which owns the text
// measurement cache and a hidden probe element:
//
//	st, err := bramble.NewRenderingState(doc, bramble.DefaultConfig())
//
// Primitives are plain values until rendered:
//
//	label, err := bramble.NewText("hello", bramble.TextMono).Render(st)
//	dot, err := bramble.NewCircle(bramble.Vec2{}, 5).Fill("tomato").Render(st)
//
// # Placement
//
// Scenes are composed by placing children at explicit offsets. Placement
// wraps the child in a translated group, splices it into the parent's
// visual list at a z-index, and grows the parent's size to cover it:
//
//	row := st.NewScene()
//	_ = row.Place(bramble.Vec2{X: 0, Y: 0}, dot)
//	_ = row.Place(bramble.Vec2{X: 14, Y: 0}, label)
//
// Later visuals are drawn on top; [Scene.PlaceAt] inserts below existing
// visuals. Sizes only grow. A placed scene is consumed and cannot be placed
// again.
//
// # Mounting
//
// [Scene.Mount] replaces every child of a host element with the scene's
// visuals in one fragment append. [Stage] additionally releases the
// listeners of the scene it replaces.
//
// bramble is single-threaded: a RenderingState and its scenes belong to
// one goroutine.
package bramble
