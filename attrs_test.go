package bramble

import (
	"errors"
	"fmt"
	"testing"
)

type pixels float64

func TestFormatAttr(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{FormatAttr(3.0), "3"},
		{FormatAttr(2.5), "2.5"},
		{FormatAttr(-0.125), "-0.125"},
		{FormatAttr(1e21), "1000000000000000000000"},
		{FormatAttr(float32(0.1)), "0.1"},
		{FormatAttr(42), "42"},
		{FormatAttr(uint8(7)), "7"},
		{FormatAttr("red"), "red"},
		{FormatAttr(Colour("#fff")), "#fff"},
		{FormatAttr(pixels(12)), "12"},
	}
	for i, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("case %d: got %q, want %q", i, tt.got, tt.want)
		}
	}
}

func TestTranslateAttr(t *testing.T) {
	if got := translateAttr(Vec2{X: 3, Y: 4}); got != "translate(3 4)" {
		t.Errorf("got %q, want translate(3 4)", got)
	}
	if got := translateAttr(Vec2{X: -1.5}); got != "translate(-1.5 0)" {
		t.Errorf("got %q, want translate(-1.5 0)", got)
	}
}

// recordingSurface records SetAttribute calls; every other method is unused.
type recordingSurface struct {
	Surface
	set map[string]string
	err error
}

func (s *recordingSurface) SetAttribute(_ Visual, name, value string) error {
	if s.err != nil {
		return s.err
	}
	if s.set == nil {
		s.set = make(map[string]string)
	}
	s.set[name] = value
	return nil
}

func TestAssignIfPresent(t *testing.T) {
	s := &recordingSurface{}
	if err := AssignIfPresent(s, nil, "fill", None[Colour]()); err != nil {
		t.Fatal(err)
	}
	if len(s.set) != 0 {
		t.Errorf("absent value set %v", s.set)
	}
	if err := AssignIfPresent(s, nil, "fill", Some[Colour]("blue")); err != nil {
		t.Fatal(err)
	}
	if s.set["fill"] != "blue" {
		t.Errorf("fill = %q, want blue", s.set["fill"])
	}
}

func TestAssignWrapsHostError(t *testing.T) {
	boom := errors.New("boom")
	s := &recordingSurface{err: boom}
	err := Assign(s, nil, "x", 1.0)
	var he *HostError
	if !errors.As(err, &he) || he.Op != "set attribute x" {
		t.Fatalf("err = %v, want HostError for set attribute x", err)
	}
	if !errors.Is(err, ErrHostAPI) || !errors.Is(err, boom) {
		t.Errorf("err = %v should match ErrHostAPI and the cause", err)
	}
}

func TestHostErrorMessage(t *testing.T) {
	err := hostErr("create g", fmt.Errorf("detached"))
	if got := err.Error(); got != "bramble: create g: detached" {
		t.Errorf("Error() = %q", got)
	}
	if hostErr("noop", nil) != nil {
		t.Error("hostErr(nil) should be nil")
	}
}

func TestOpt(t *testing.T) {
	var zero Opt[int]
	if zero.Present() {
		t.Error("zero Opt should be absent")
	}
	v, ok := Some(5).Get()
	if !ok || v != 5 {
		t.Errorf("Get() = %v, %v, want 5, true", v, ok)
	}
	if None[string]().Present() {
		t.Error("None should be absent")
	}
}
