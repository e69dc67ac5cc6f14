//go:build js

package domjs

import (
	"fmt"
	"syscall/js"

	"github.com/phanxgames/bramble"
)

// ListenerHandle is a registered DOM event listener.
type ListenerHandle struct {
	target js.Value
	kind   string
	fn     js.Func
	done   bool
}

// Remove calls removeEventListener and releases the Go callback.
func (h *ListenerHandle) Remove() error {
	if h == nil || h.done {
		return nil
	}
	h.done = true
	err := guard(func() { h.target.Call("removeEventListener", h.kind, h.fn) })
	h.fn.Release()
	return err
}

// AddListener calls addEventListener with a Go callback translating the DOM
// event.
func (d *Document) AddListener(v bramble.Visual, kind bramble.EventKind, fn bramble.Listener) (bramble.ListenerHandle, error) {
	n, err := node(v)
	if err != nil {
		return nil, err
	}
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		e := args[0]
		fn(bramble.Event{
			Kind:          kind,
			Target:        e.Get("target"),
			CurrentTarget: e.Get("currentTarget"),
			X:             floatOr(e, "clientX"),
			Y:             floatOr(e, "clientY"),
		})
		return nil
	})
	h := &ListenerHandle{target: n, kind: string(kind), fn: cb}
	if err := guard(func() { n.Call("addEventListener", string(kind), cb) }); err != nil {
		cb.Release()
		return nil, err
	}
	return h, nil
}

// RemoveListener removes a handle returned by AddListener.
func (d *Document) RemoveListener(h bramble.ListenerHandle) error {
	lh, ok := h.(*ListenerHandle)
	if !ok {
		return fmt.Errorf("domjs: foreign listener handle %T", h)
	}
	return lh.Remove()
}

// floatOr reads a numeric property, or 0 when the event has none (keyboard
// events have no client coordinates).
func floatOr(v js.Value, name string) float64 {
	p := v.Get(name)
	if p.Type() != js.TypeNumber {
		return 0
	}
	return p.Float()
}
