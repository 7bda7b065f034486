package core

import (
	"testing"
	"time"
)

func TestInputFrameClick(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.SetClick(3, 4)
	f.SetClick(7, 8)

	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Error("action set is wrong")
	}
	if f.Click == nil || f.Click.X != 7 || f.Click.Y != 8 {
		t.Errorf("last click should win, got %+v", f.Click)
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionLeft) || f.Click != nil {
		t.Error("Clear should drop actions and the click")
	}
	if !clone.Has(ActionLeft) || clone.Click == nil || clone.Click.X != 7 {
		t.Error("clone should be independent of the original")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("Set on a zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionRight.String() != "Right" || Action(99).String() != "Unknown" {
		t.Error("unexpected action names")
	}
}

func TestEventsDrainOnce(t *testing.T) {
	var q Events[int]
	q.Send(1)
	q.Send(2)

	if q.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", q.Len())
	}
	got := q.Drain()
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("Drain() = %v, expected [1 2]", got)
	}
	if q.Drain() != nil {
		t.Error("second Drain should be empty")
	}

	q.Send(3)
	q.Clear()
	if q.Len() != 0 {
		t.Error("Clear should drop pending messages")
	}
}

func TestTickDuration(t *testing.T) {
	if d := (RuntimeConfig{TickRate: 50}).TickDuration(); d != 20*time.Millisecond {
		t.Errorf("TickDuration() = %v, expected 20ms", d)
	}
	if d := (RuntimeConfig{}).TickDuration(); d != time.Second/60 {
		t.Errorf("zero tick rate should fall back to 60fps, got %v", d)
	}
}

func TestParseColor(t *testing.T) {
	if c, ok := ParseColor(" Bright_Red "); !ok || c != ColorBrightRed {
		t.Errorf("ParseColor(bright_red) = %v, %v", c, ok)
	}
	if c, ok := ParseColor("grey"); !ok || c != ColorGray {
		t.Errorf("ParseColor(grey) = %v, %v", c, ok)
	}
	if _, ok := ParseColor("chartreuse"); ok {
		t.Error("unknown colors should not parse")
	}
}
