package config

import (
	"testing"
	"time"
)

func TestSpeedRampFloorAndReset(t *testing.T) {
	cfg := DefaultRollcubeConfig()
	r := NewSpeedRamp(cfg.Animation, cfg.Shuffle.Ramp)

	if r.Current() != 300*time.Millisecond {
		t.Fatalf("initial duration = %v, expected 300ms", r.Current())
	}

	prev := r.Current()
	for i := 0; i < 100; i++ {
		d := r.Step()
		if d > prev {
			t.Fatalf("step %d: duration grew from %v to %v", i, prev, d)
		}
		if d < 75*time.Millisecond {
			t.Fatalf("step %d: duration %v fell below the floor", i, d)
		}
		prev = d
	}
	if r.Current() != 75*time.Millisecond {
		t.Errorf("after 100 steps duration = %v, expected floor 75ms", r.Current())
	}

	r.Reset()
	if r.Current() != 300*time.Millisecond {
		t.Errorf("after Reset duration = %v, expected 300ms", r.Current())
	}
}

func TestSpeedRampFirstStep(t *testing.T) {
	cfg := DefaultRollcubeConfig()
	r := NewSpeedRamp(cfg.Animation, cfg.Shuffle.Ramp)

	if got := r.Step(); got != 276*time.Millisecond {
		t.Errorf("first step = %v, expected 276ms", got)
	}
}

func TestSpeedRampDisabled(t *testing.T) {
	cfg := DefaultRollcubeConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	r := NewSpeedRamp(cfg.Animation, cfg.Shuffle.Ramp)

	if got := r.Step(); got != 300*time.Millisecond {
		t.Errorf("disabled ramp changed duration to %v", got)
	}
}
