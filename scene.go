package bramble

import (
	"errors"
	"fmt"
	"slices"
)

// Scene is an ordered list of visuals with an aggregate size and the
// listener handles attached to them. Visual order is z-order: later visuals
// are drawn on top.
//
// Scenes are mutable builders. Translate, Event and the placement methods
// mutate the receiver; placing a Scene into another consumes the child, and
// every later use of the child fails with ErrSceneConsumed.
//
// A Scene is not safe for concurrent use.
type Scene struct {
	surface   Surface
	visuals   []Visual
	size      Size
	listeners []ListenerHandle
	consumed  bool
}

// NewScene creates an empty scene whose groups are created on s.
func NewScene(s Surface) *Scene {
	return &Scene{surface: s}
}

// Visuals returns the top-level visuals in z-order. The returned slice MUST
// NOT be mutated by the caller.
func (sc *Scene) Visuals() []Visual {
	return sc.visuals
}

// Size returns the aggregate bounding size.
func (sc *Scene) Size() Size {
	return sc.size
}

// NumListeners returns the number of listener handles the scene holds,
// including those of every placed child.
func (sc *Scene) NumListeners() int {
	return len(sc.listeners)
}

// Consumed reports whether the scene has been placed into another scene.
func (sc *Scene) Consumed() bool {
	return sc.consumed
}

// Group wraps the current visuals, in order, into one new g element and
// returns it. The scene's visual list is left unchanged; callers that keep
// the group replace it themselves. If an append fails, the visuals already
// moved are taken out of the group again so none is left under an orphan g.
func (sc *Scene) Group() (Visual, error) {
	if sc.consumed {
		return nil, ErrSceneConsumed
	}
	g, err := createSVG(sc.surface, "g")
	if err != nil {
		return nil, err
	}
	for i, v := range sc.visuals {
		if err := sc.surface.AppendChild(g, v); err != nil {
			for _, moved := range sc.visuals[:i] {
				_ = sc.surface.RemoveChild(g, moved)
			}
			return nil, hostErr("append to group", err)
		}
	}
	return g, nil
}

// Translate groups the current visuals and assigns the group a
// "translate(x y)" transform. The scene is left with the single group as its
// only visual; size and listeners are unchanged. A zero offset still
// produces a group.
func (sc *Scene) Translate(p Vec2) (*Scene, error) {
	g, err := sc.Group()
	if err != nil {
		return nil, err
	}
	if err := Assign(sc.surface, g, "transform", translateAttr(p)); err != nil {
		return nil, err
	}
	sc.visuals = []Visual{g}
	return sc, nil
}

// Event registers fn for kind on every current top-level visual. Descendants
// are reached through event bubbling, so registering on a translated group
// catches events from all of its children. If any registration fails, those
// made by this call are removed again.
func (sc *Scene) Event(src EventSource, kind EventKind, fn Listener) (*Scene, error) {
	if sc.consumed {
		return nil, ErrSceneConsumed
	}
	added := make([]ListenerHandle, 0, len(sc.visuals))
	for _, v := range sc.visuals {
		h, err := src.AddListener(v, kind, fn)
		if err != nil {
			for _, prev := range added {
				_ = prev.Remove()
			}
			return nil, hostErr("add "+string(kind)+" listener", err)
		}
		added = append(added, h)
	}
	sc.listeners = append(sc.listeners, added...)
	return sc, nil
}

// PlaceAt translates child by off and inserts its group at z-index index,
// shifting the visuals at index and above up by one. The child's listener
// handles move to sc and sc's size grows to cover the child. index must be
// within [0, len(Visuals())].
func (sc *Scene) PlaceAt(index int, off Vec2, child *Scene) error {
	if sc.consumed || child == nil || child.consumed || child == sc {
		return ErrSceneConsumed
	}
	if index < 0 || index > len(sc.visuals) {
		return fmt.Errorf("%w: index %d outside [0, %d]", ErrInvalidPlacement, index, len(sc.visuals))
	}
	if _, err := child.Translate(off); err != nil {
		return err
	}
	sc.visuals = slices.Insert(sc.visuals, index, child.visuals...)
	sc.listeners = append(sc.listeners, child.listeners...)
	sc.size = sc.size.Extend(off, child.size)

	child.visuals = nil
	child.listeners = nil
	child.consumed = true
	return nil
}

// Place places child on top of every current visual.
func (sc *Scene) Place(off Vec2, child *Scene) error {
	return sc.PlaceAt(len(sc.visuals), off, child)
}

// Mount replaces every child of host with the scene's visuals, in order,
// through a single fragment append. The host is cleared before the visuals
// are moved, so a failing clear leaves both the host and the scene as they
// were.
func (sc *Scene) Mount(host Visual) error {
	if sc.consumed {
		return ErrSceneConsumed
	}
	s := sc.surface
	frag, err := s.CreateFragment()
	if err != nil {
		return hostErr("create fragment", err)
	}
	if err := s.ClearChildren(host); err != nil {
		return hostErr("clear host", err)
	}
	for _, v := range sc.visuals {
		if err := s.AppendChild(frag, v); err != nil {
			return hostErr("append to fragment", err)
		}
	}
	if err := s.AppendChild(host, frag); err != nil {
		return hostErr("append fragment", err)
	}
	Logger().Debug("bramble: mounted scene",
		"visuals", len(sc.visuals),
		"width", sc.size.Width,
		"height", sc.size.Height)
	return nil
}

// Release removes every listener the scene holds. The scene stays usable.
func (sc *Scene) Release() error {
	var errs []error
	for _, h := range sc.listeners {
		if err := h.Remove(); err != nil {
			errs = append(errs, hostErr("remove listener", err))
		}
	}
	sc.listeners = nil
	return errors.Join(errs...)
}
