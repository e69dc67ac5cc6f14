package bramble

import "testing"

func TestSizeExtend(t *testing.T) {
	tests := []struct {
		name  string
		s     Size
		off   Vec2
		child Size
		want  Size
	}{
		{"empty parent", Size{}, Vec2{3, 4}, Size{10, 10}, Size{13, 14}},
		{"contained child", Size{50, 50}, Vec2{1, 1}, Size{4, 4}, Size{50, 50}},
		{"wider child", Size{50, 50}, Vec2{45, 10}, Size{10, 10}, Size{55, 50}},
		{"negative offset", Size{5, 5}, Vec2{-10, -10}, Size{4, 4}, Size{5, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Extend(tt.off, tt.child); got != tt.want {
				t.Errorf("Extend = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec2Add(t *testing.T) {
	if got := (Vec2{1, 2}).Add(Vec2{3, -4}); got != (Vec2{4, -2}) {
		t.Errorf("Add = %v, want {4 -2}", got)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 5, Height: 5}
	if !r.Contains(10, 10) || !r.Contains(15, 15) || !r.Contains(12, 13) {
		t.Error("points inside or on the edge should be contained")
	}
	if r.Contains(9.9, 12) || r.Contains(12, 15.1) {
		t.Error("points outside should not be contained")
	}
	if r.Origin() != (Vec2{10, 10}) || r.Size() != (Size{5, 5}) {
		t.Errorf("Origin/Size = %v/%v", r.Origin(), r.Size())
	}
}

func TestTextStyleString(t *testing.T) {
	if TextMono.String() != "mono" || TextComment.String() != "comment" || TextStyle(9).String() != "unknown" {
		t.Error("unexpected TextStyle names")
	}
}
