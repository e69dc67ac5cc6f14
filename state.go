package bramble

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var errStateClosed = errors.New("rendering state closed")

// RenderingState is the context threaded through one render pass. It owns
// the text measurement cache and a hidden probe text element used to ask
// the host for text widths.
//
// A RenderingState must only be used from one goroutine at a time; bramble
// does no locking around MeasureText.
type RenderingState struct {
	surface Surface
	cfg     Config

	cache     widthCache
	probeHost Visual // hidden svg attached to the body
	probe     Visual // text element inside probeHost

	stats  debugStats
	warned bool
	closed bool
}

// NewRenderingState creates the probe and attaches it to the surface's body.
// The probe stays measurable: it is hidden with visibility and taken out of
// flow with absolute positioning rather than display:none, which some hosts
// report as zero width.
func NewRenderingState(s Surface, cfg Config) (*RenderingState, error) {
	cfg = cfg.withDefaults()
	cache, err := newWidthCache(cfg.CacheLimit)
	if err != nil {
		return nil, fmt.Errorf("bramble: measurement cache: %w", err)
	}
	st := &RenderingState{surface: s, cfg: cfg, cache: cache}

	host, err := createSVG(s, "svg",
		a("style", "visibility: hidden; position: absolute;"),
		a("width", 1),
		a("height", 1),
		a("viewBox", "0 0 1 1"),
	)
	if err != nil {
		return nil, err
	}
	probe, err := NewText("", TextMono).Materialize(st)
	if err != nil {
		return nil, err
	}
	if err := s.AppendChild(host, probe); err != nil {
		return nil, hostErr("attach probe", err)
	}
	body, err := s.Body()
	if err != nil {
		return nil, hostErr("body", err)
	}
	if err := s.AppendChild(body, host); err != nil {
		return nil, hostErr("attach probe host", err)
	}
	st.probeHost = host
	st.probe = probe
	Logger().Debug("bramble: rendering state ready", "cache_limit", cfg.CacheLimit)
	return st, nil
}

// Surface returns the surface the state renders on.
func (st *RenderingState) Surface() Surface {
	return st.surface
}

// Config returns the effective configuration.
func (st *RenderingState) Config() Config {
	return st.cfg
}

// NewScene returns an empty scene on the state's surface.
func (st *RenderingState) NewScene() *Scene {
	return NewScene(st.surface)
}

// MeasureText returns the width of content and the configured text height.
// Widths are cached by exact content; a cache hit makes no host call.
// Different strings are cached separately even if they render identically.
func (st *RenderingState) MeasureText(content string) (Size, error) {
	if w, ok := st.cache.get(content); ok {
		st.stats.hits++
		return Size{w, st.cfg.TextHeight}, nil
	}
	if st.closed {
		return Size{}, hostErr("measure text", errStateClosed)
	}
	var t0 time.Time
	if st.cfg.Debug {
		t0 = time.Now()
	}
	if err := st.surface.SetTextContent(st.probe, content); err != nil {
		return Size{}, hostErr("set probe text", err)
	}
	w, err := st.surface.ComputedTextLength(st.probe)
	if err != nil {
		return Size{}, hostErr("computed text length", err)
	}
	if !validLength(w) {
		return Size{}, hostErr("computed text length", fmt.Errorf("malformed width %v", w))
	}
	st.cache.put(content, w)
	st.stats.misses++
	if st.cfg.Debug {
		st.stats.queryTime += time.Since(t0)
	}
	st.debugCheckCacheSize()
	return Size{w, st.cfg.TextHeight}, nil
}

// Stats reports cache activity since the state was created.
func (st *RenderingState) Stats() Stats {
	return Stats{
		Hits:    st.stats.hits,
		Misses:  st.stats.misses,
		Entries: st.cache.len(),
	}
}

// Close detaches the probe from the document. Cached widths remain
// readable; measuring new text after Close fails.
func (st *RenderingState) Close() error {
	if st.closed {
		return nil
	}
	st.closed = true
	if st.cfg.Debug {
		st.debugLog()
	}
	body, err := st.surface.Body()
	if err != nil {
		return hostErr("body", err)
	}
	return hostErr("detach probe host", st.surface.RemoveChild(body, st.probeHost))
}

func (st *RenderingState) font(style TextStyle) string {
	if style == TextComment {
		return st.cfg.CommentFont
	}
	return st.cfg.MonoFont
}

// validLength reports whether f is a finite, non-negative length.
func validLength(f float64) bool {
	return f >= 0 && !math.IsInf(f, 1)
}
