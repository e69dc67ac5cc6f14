package bramble_test

import (
	"testing"

	"github.com/phanxgames/bramble"
)

func TestStageShowReplaces(t *testing.T) {
	doc := newDoc()
	st := newState(t, doc, bramble.Config{})
	host := newHost(t, doc)
	stage := bramble.NewStage(host)
	noop := func(bramble.Event) {}

	first := renderRect(t, st, bramble.Rect{Width: 1, Height: 1})
	if _, err := first.Event(doc, bramble.EventClick, noop); err != nil {
		t.Fatal(err)
	}
	if err := stage.Show(first); err != nil {
		t.Fatal(err)
	}
	if stage.Current() != first || host.NumChildren() != 1 {
		t.Fatal("first scene should be mounted")
	}

	second := renderCircle(t, st, 2)
	if _, err := second.Event(doc, bramble.EventClick, noop); err != nil {
		t.Fatal(err)
	}
	if err := stage.Show(second); err != nil {
		t.Fatal(err)
	}
	if stage.Current() != second {
		t.Error("Current should be the second scene")
	}
	if host.NumChildren() != 1 || host.ChildAt(0) != second.Visuals()[0] {
		t.Error("host should hold only the second scene")
	}
	if n := doc.NumListeners(nil); n != 1 {
		t.Errorf("document holds %d listeners, want 1", n)
	}
	if first.NumListeners() != 0 {
		t.Error("first scene's listeners should be released")
	}
}

func TestStageShowSameScene(t *testing.T) {
	doc := newDoc()
	st := newState(t, doc, bramble.Config{})
	stage := bramble.NewStage(newHost(t, doc))
	sc := renderRect(t, st, bramble.Rect{Width: 1, Height: 1})
	if _, err := sc.Event(doc, bramble.EventClick, func(bramble.Event) {}); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		if err := stage.Show(sc); err != nil {
			t.Fatal(err)
		}
	}
	if sc.NumListeners() != 1 {
		t.Errorf("NumListeners = %d, want 1", sc.NumListeners())
	}
}

func TestStageShowNil(t *testing.T) {
	stage := bramble.NewStage(newHost(t, newDoc()))
	if err := stage.Show(nil); err == nil {
		t.Error("Show(nil) should fail")
	}
}

func TestStageClear(t *testing.T) {
	doc := newDoc()
	st := newState(t, doc, bramble.Config{})
	host := newHost(t, doc)
	stage := bramble.NewStage(host)
	sc := renderRect(t, st, bramble.Rect{Width: 1, Height: 1})
	if _, err := sc.Event(doc, bramble.EventClick, func(bramble.Event) {}); err != nil {
		t.Fatal(err)
	}
	if err := stage.Show(sc); err != nil {
		t.Fatal(err)
	}
	if err := stage.Clear(doc); err != nil {
		t.Fatal(err)
	}
	if stage.Current() != nil || host.NumChildren() != 0 || doc.NumListeners(nil) != 0 {
		t.Error("Clear should empty the host and release listeners")
	}
	if stage.Host() != bramble.Visual(host) {
		t.Error("Host should be unchanged")
	}
}
