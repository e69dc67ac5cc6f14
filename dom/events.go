package dom

import (
	"errors"
	"fmt"

	"github.com/phanxgames/bramble"
)

type listener struct {
	id   uint32
	kind bramble.EventKind
	fn   bramble.Listener
}

type listenerRegistry struct {
	byElement map[*Element][]listener
	nextID    uint32
	count     int
}

// ListenerHandle removes a listener registered with AddListener.
type ListenerHandle struct {
	id  uint32
	el  *Element
	reg *listenerRegistry
}

// Remove unregisters the listener so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h *ListenerHandle) Remove() error {
	if h == nil || h.reg == nil {
		return nil
	}
	h.reg.remove(h.el, h.id)
	h.reg = nil
	return nil
}

func (r *listenerRegistry) add(el *Element, kind bramble.EventKind, fn bramble.Listener) *ListenerHandle {
	if r.byElement == nil {
		r.byElement = make(map[*Element][]listener)
	}
	r.nextID++
	r.byElement[el] = append(r.byElement[el], listener{id: r.nextID, kind: kind, fn: fn})
	r.count++
	return &ListenerHandle{id: r.nextID, el: el, reg: r}
}

func (r *listenerRegistry) remove(el *Element, id uint32) {
	s := r.byElement[el]
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = listener{}
			s = s[:len(s)-1]
			r.count--
			break
		}
	}
	if len(s) == 0 {
		delete(r.byElement, el)
		return
	}
	r.byElement[el] = s
}

// AddListener registers fn for events of kind that target v or bubble up
// through it.
func (d *Document) AddListener(v bramble.Visual, kind bramble.EventKind, fn bramble.Listener) (bramble.ListenerHandle, error) {
	e, err := d.element(v)
	if err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, errors.New("dom: nil listener")
	}
	if kind == "" {
		return nil, errors.New("dom: empty event kind")
	}
	return d.listeners.add(e, kind, fn), nil
}

// RemoveListener unregisters a handle returned by AddListener.
func (d *Document) RemoveListener(h bramble.ListenerHandle) error {
	lh, ok := h.(*ListenerHandle)
	if !ok {
		return fmt.Errorf("dom: foreign listener handle %T", h)
	}
	if lh.reg != nil && lh.reg != &d.listeners {
		return errors.New("dom: listener handle belongs to another document")
	}
	return lh.Remove()
}

// NumListeners returns the number of listeners registered on v, or on the
// whole document when v is nil.
func (d *Document) NumListeners(v bramble.Visual) int {
	if v == nil {
		return d.listeners.count
	}
	e, err := d.element(v)
	if err != nil {
		return 0
	}
	return len(d.listeners.byElement[e])
}

// Dispatch delivers an event to target and then to each ancestor in turn,
// invoking the listeners registered for kind in registration order. It
// returns the number of listeners invoked. Listeners added or removed while
// an event is being dispatched take effect from the next element on.
func (d *Document) Dispatch(target *Element, kind bramble.EventKind, x, y float64) int {
	if target == nil || target.doc != d {
		return 0
	}
	called := 0
	for el := target; el != nil; el = el.parent {
		ls := d.listeners.byElement[el]
		if len(ls) == 0 {
			continue
		}
		snapshot := append([]listener(nil), ls...)
		for _, l := range snapshot {
			if l.kind != kind {
				continue
			}
			l.fn(bramble.Event{
				Kind:          kind,
				Target:        target,
				CurrentTarget: el,
				X:             x,
				Y:             y,
			})
			called++
		}
	}
	return called
}
