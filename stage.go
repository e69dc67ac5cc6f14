package bramble

import "errors"

// Stage owns a host element and the scene currently mounted into it.
// Showing a new scene mounts it in place of the old one and releases the
// old scene's listeners.
type Stage struct {
	host    Visual
	current *Scene
}

// NewStage returns a stage that mounts into host.
func NewStage(host Visual) *Stage {
	return &Stage{host: host}
}

// Host returns the host element.
func (st *Stage) Host() Visual {
	return st.host
}

// Current returns the mounted scene, or nil.
func (st *Stage) Current() *Scene {
	return st.current
}

// Show mounts sc into the host. The previous scene's listeners are released
// only after the new scene is mounted; on failure they are kept.
func (st *Stage) Show(sc *Scene) error {
	if sc == nil {
		return errors.New("bramble: nil scene")
	}
	if err := sc.Mount(st.host); err != nil {
		return err
	}
	prev := st.current
	st.current = sc
	if prev != nil && prev != sc {
		return prev.Release()
	}
	return nil
}

// Clear releases the mounted scene and empties the host.
func (st *Stage) Clear(s Surface) error {
	var errs []error
	if st.current != nil {
		errs = append(errs, st.current.Release())
		st.current = nil
	}
	errs = append(errs, hostErr("clear host", s.ClearChildren(st.host)))
	return errors.Join(errs...)
}
