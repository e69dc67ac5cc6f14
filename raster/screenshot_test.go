package raster

import "testing"

func TestSanitizeLabel(t *testing.T) {
	tests := []struct{ in, want string }{
		{"selection", "selection"},
		{"  ", "unlabeled"},
		{"a b/c", "a_b_c"},
		{"v1.2-final", "v1.2-final"},
		{"ünï", "_n_"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		0x80, 0x40, 0x00, 0x80, // half-transparent
		0x10, 0x20, 0x30, 0xff, // opaque
		0x00, 0x00, 0x00, 0x00, // transparent
	}
	img := unpremultiply(pixels, 3, 1)
	want := []byte{
		0xff, 0x7f, 0x00, 0x80,
		0x10, 0x20, 0x30, 0xff,
		0x00, 0x00, 0x00, 0x00,
	}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Fatalf("Pix = %v, want %v", img.Pix, want)
		}
	}
}

func TestScreenshotsQueue(t *testing.T) {
	var s Screenshots
	s.Queue("a")
	s.Queue("b")
	if s.Pending() != 2 {
		t.Errorf("Pending = %d, want 2", s.Pending())
	}
}
