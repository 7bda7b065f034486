package config

import "time"

// SpeedRamp tracks the roll duration while scrambling. Each accepted
// scramble move shortens it by a constant factor down to a floor; entering
// play restores the base duration.
type SpeedRamp struct {
	base    time.Duration
	floor   time.Duration
	factor  float64
	enabled bool
	current time.Duration
}

// NewSpeedRamp creates a ramp starting at the configured animation duration.
func NewSpeedRamp(anim AnimationConfig, ramp RampConfig) *SpeedRamp {
	return &SpeedRamp{
		base:    anim.Duration,
		floor:   ramp.MinDuration,
		factor:  ramp.Factor,
		enabled: ramp.Enabled,
		current: anim.Duration,
	}
}

// Current returns the duration to use for the next roll.
func (r *SpeedRamp) Current() time.Duration {
	return r.current
}

// Step records one accepted scramble move and returns the new duration.
func (r *SpeedRamp) Step() time.Duration {
	if !r.enabled {
		return r.current
	}
	next := time.Duration(float64(r.current) * r.factor)
	r.current = max(next, min(r.floor, r.current))
	return r.current
}

// Reset restores the base duration.
func (r *SpeedRamp) Reset() {
	r.current = r.base
}
