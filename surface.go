package bramble

import (
	"errors"
	"fmt"
)

// Visual is an opaque handle to one drawable node owned by a Surface.
// bramble never inspects it; it only hands it back to the Surface that
// created it.
type Visual any

// Surface is the host drawing capability bramble builds scenes on.
// All calls are synchronous and must run on the goroutine that owns the
// surface.
type Surface interface {
	// CreateElement creates a detached element with the given tag in the
	// given namespace.
	CreateElement(tag, namespace string) (Visual, error)
	SetAttribute(v Visual, name, value string) error
	SetTextContent(v Visual, text string) error
	// AppendChild appends child to parent, detaching it from any previous
	// parent. Appending a fragment moves the fragment's children instead.
	AppendChild(parent, child Visual) error
	RemoveChild(parent, child Visual) error
	// ComputedTextLength measures the rendered width of a text element.
	ComputedTextLength(v Visual) (float64, error)
	CreateFragment() (Visual, error)
	ClearChildren(host Visual) error
	// Body returns the document node that off-screen helpers attach to.
	Body() (Visual, error)
}

// Event is delivered to listeners.
type Event struct {
	Kind EventKind
	// Target is the visual the event originated on; CurrentTarget is the
	// visual whose listener is running.
	Target        Visual
	CurrentTarget Visual
	X, Y          float64
}

// Listener receives host events.
type Listener func(Event)

// ListenerHandle is a registered listener.
type ListenerHandle interface {
	// Remove unregisters the listener so it no longer fires. Removing twice
	// is a no-op.
	Remove() error
}

// EventSource is the host event capability.
type EventSource interface {
	AddListener(v Visual, kind EventKind, fn Listener) (ListenerHandle, error)
	RemoveListener(h ListenerHandle) error
}

var (
	// ErrHostAPI is matched by every *HostError.
	ErrHostAPI = errors.New("bramble: host api failure")
	// ErrInvalidPlacement is returned when a z-index is outside [0, len(visuals)].
	ErrInvalidPlacement = errors.New("bramble: invalid placement")
	// ErrSceneConsumed is returned when a scene that was already placed is
	// used again, or when a scene is placed into itself.
	ErrSceneConsumed = errors.New("bramble: scene already consumed")
	// ErrInvalidShape is returned when a rectangle or circle has a negative
	// or non-finite dimension.
	ErrInvalidShape = errors.New("bramble: invalid shape")
)

// HostError reports a failing Surface or EventSource call.
type HostError struct {
	Op  string
	Err error
}

func (e *HostError) Error() string {
	return fmt.Sprintf("bramble: %s: %v", e.Op, e.Err)
}

func (e *HostError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrHostAPI) true for any host failure.
func (e *HostError) Is(target error) bool { return target == ErrHostAPI }

func hostErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &HostError{Op: op, Err: err}
}
