package dom

import "testing"

func TestFaceMeasurer(t *testing.T) {
	m, err := DefaultFaceMeasurer()
	if err != nil {
		t.Fatal(err)
	}
	short, err := m.MeasureText("ab", DefaultFont)
	if err != nil {
		t.Fatal(err)
	}
	long, _ := m.MeasureText("abcdef", DefaultFont)
	if short <= 0 || long <= short {
		t.Errorf("widths = %v, %v, want 0 < short < long", short, long)
	}
	empty, _ := m.MeasureText("", DefaultFont)
	if empty != 0 {
		t.Errorf("empty width = %v, want 0", empty)
	}
	big, _ := m.MeasureText("ab", FontSpec{Family: "sans-serif", Size: 32})
	if big <= short {
		t.Errorf("32px width %v should exceed 16px width %v", big, short)
	}
}

func TestFaceMeasurerMonospace(t *testing.T) {
	m, err := DefaultFaceMeasurer()
	if err != nil {
		t.Fatal(err)
	}
	mono := FontSpec{Family: "Go Mono", Size: 16}
	i, _ := m.MeasureText("iiii", mono)
	w, _ := m.MeasureText("WWWW", mono)
	if i != w {
		t.Errorf("monospace widths differ: %v vs %v", i, w)
	}
	if m.LineHeight(mono) <= 0 {
		t.Error("LineHeight should be positive")
	}
}

func TestFaceCache(t *testing.T) {
	m, err := NewFaceMeasurer()
	if err != nil {
		t.Fatal(err)
	}
	a := m.Face(FontSpec{Family: "serif", Size: 12, Bold: true})
	b := m.Face(FontSpec{Family: "other", Size: 12, Bold: true})
	if a != b {
		t.Error("fonts mapping to the same face should share it")
	}
	if m.Face(FontSpec{Size: 0}).Size != DefaultFont.Size {
		t.Error("zero size should fall back to the default")
	}
}

func TestKindFor(t *testing.T) {
	tests := []struct {
		font FontSpec
		want faceKind
	}{
		{FontSpec{Family: "Input Sans"}, faceRegular},
		{FontSpec{Family: "Helvetica Neue", Italic: true}, faceItalic},
		{FontSpec{Family: "Arial", Bold: true}, faceBold},
		{FontSpec{Family: "Arial", Bold: true, Italic: true}, faceBoldItalic},
		{FontSpec{Family: "Fira Mono"}, faceMono},
		{FontSpec{Family: "Courier New", Italic: true}, faceMonoItalic},
	}
	for _, tt := range tests {
		if got := kindFor(tt.font); got != tt.want {
			t.Errorf("kindFor(%+v) = %d, want %d", tt.font, got, tt.want)
		}
	}
}
