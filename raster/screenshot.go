package raster

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/bramble"
)

// Screenshots captures drawn frames to PNG files in Dir. Queue a label from
// Update or Draw and call Flush at the end of Draw.
type Screenshots struct {
	Dir   string
	queue []string
}

// Queue requests a capture of the current frame.
func (s *Screenshots) Queue(label string) {
	s.queue = append(s.queue, label)
}

// Pending returns the number of queued captures.
func (s *Screenshots) Pending() int {
	return len(s.queue)
}

// Flush writes screen once for every queued label and returns the written
// paths. The queue is emptied even when writing fails.
func (s *Screenshots) Flush(screen *ebiten.Image) ([]string, error) {
	if len(s.queue) == 0 {
		return nil, nil
	}
	defer func() { s.queue = s.queue[:0] }()

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("raster: screenshot: %w", err)
	}

	b := screen.Bounds()
	w, h := b.Dx(), b.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)
	img := unpremultiply(pixels, w, h)

	stamp := time.Now().Format("20060102_150405")
	paths := make([]string, 0, len(s.queue))
	for _, label := range s.queue {
		path := filepath.Join(s.Dir, stamp+"_"+sanitizeLabel(label)+".png")
		if err := writePNG(path, img); err != nil {
			return paths, fmt.Errorf("raster: screenshot: %w", err)
		}
		bramble.Logger().Debug("raster: wrote screenshot", "path", path)
		paths = append(paths, path)
	}
	return paths, nil
}

// unpremultiply converts ebiten's premultiplied RGBA pixels to straight
// alpha.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps [A-Za-z0-9.-] and replaces everything else with
// underscores. Empty labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
