package dom

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Measurer measures the rendered width of a single line of text.
type Measurer interface {
	MeasureText(s string, font FontSpec) (float64, error)
}

// MeasurerFunc adapts a function to Measurer.
type MeasurerFunc func(s string, font FontSpec) float64

// MeasureText calls f.
func (f MeasurerFunc) MeasureText(s string, font FontSpec) (float64, error) {
	return f(s, font), nil
}

// faceKind selects one of the bundled Go font files.
type faceKind uint8

const (
	faceRegular faceKind = iota
	faceItalic
	faceBold
	faceBoldItalic
	faceMono
	faceMonoItalic
	numFaceKinds
)

type faceKey struct {
	kind faceKind
	size float64
}

// FaceMeasurer measures text with Ebitengine's text/v2 using the Go fonts.
// Families whose name mentions a monospace font use Go Mono; all others
// use Go Regular with its italic and bold variants.
type FaceMeasurer struct {
	sources [numFaceKinds]*text.GoTextFaceSource
	faces   map[faceKey]*text.GoTextFace
}

// NewFaceMeasurer parses the bundled Go fonts.
func NewFaceMeasurer() (*FaceMeasurer, error) {
	data := [numFaceKinds][]byte{
		faceRegular:    goregular.TTF,
		faceItalic:     goitalic.TTF,
		faceBold:       gobold.TTF,
		faceBoldItalic: gobolditalic.TTF,
		faceMono:       gomono.TTF,
		faceMonoItalic: gomonoitalic.TTF,
	}
	m := &FaceMeasurer{faces: make(map[faceKey]*text.GoTextFace)}
	for k, ttf := range data {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
		if err != nil {
			return nil, fmt.Errorf("dom: failed to parse Go font %d: %w", k, err)
		}
		m.sources[k] = src
	}
	return m, nil
}

var (
	defaultMeasurerOnce sync.Once
	defaultMeasurer     *FaceMeasurer
	defaultMeasurerErr  error
)

// DefaultFaceMeasurer returns a shared FaceMeasurer, parsing the fonts on
// first use. The shared measurer is not safe for concurrent use; documents
// on different goroutines should each create their own.
func DefaultFaceMeasurer() (*FaceMeasurer, error) {
	defaultMeasurerOnce.Do(func() {
		defaultMeasurer, defaultMeasurerErr = NewFaceMeasurer()
	})
	return defaultMeasurer, defaultMeasurerErr
}

// Face returns the text/v2 face for font, creating it on first use.
func (m *FaceMeasurer) Face(font FontSpec) *text.GoTextFace {
	size := font.Size
	if size <= 0 {
		size = DefaultFont.Size
	}
	key := faceKey{kind: kindFor(font), size: size}
	if f, ok := m.faces[key]; ok {
		return f
	}
	f := &text.GoTextFace{Source: m.sources[key.kind], Size: size}
	m.faces[key] = f
	return f
}

// LineHeight returns the distance between baselines for font.
func (m *FaceMeasurer) LineHeight(font FontSpec) float64 {
	met := m.Face(font).Metrics()
	return met.HAscent + met.HDescent + met.HLineGap
}

// MeasureText returns the advance width of s.
func (m *FaceMeasurer) MeasureText(s string, font FontSpec) (float64, error) {
	face := m.Face(font)
	w, _ := text.Measure(s, face, m.LineHeight(font))
	return w, nil
}

func kindFor(font FontSpec) faceKind {
	fam := strings.ToLower(font.Family)
	if strings.Contains(fam, "mono") || strings.Contains(fam, "courier") || strings.Contains(fam, "consol") {
		if font.Italic {
			return faceMonoItalic
		}
		return faceMono
	}
	switch {
	case font.Italic && font.Bold:
		return faceBoldItalic
	case font.Italic:
		return faceItalic
	case font.Bold:
		return faceBold
	default:
		return faceRegular
	}
}
