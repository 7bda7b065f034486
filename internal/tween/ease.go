// Package tween drives timed transform animations on scene nodes and
// reports their completion.
package tween

import (
	"fmt"
	"strings"

	"github.com/tanema/gween/ease"
)

// Ease maps linear progress in [0, 1] onto an eased progress.
type Ease int

const (
	Linear Ease = iota
	QuadraticIn
	QuadraticOut
	QuadraticInOut
	CubicIn
	CubicOut
)

var easeFuncs = map[Ease]ease.TweenFunc{
	Linear:         ease.Linear,
	QuadraticIn:    ease.InQuad,
	QuadraticOut:   ease.OutQuad,
	QuadraticInOut: ease.InOutQuad,
	CubicIn:        ease.InCubic,
	CubicOut:       ease.OutCubic,
}

var easeNames = map[string]Ease{
	"linear":           Linear,
	"quadratic_in":     QuadraticIn,
	"quadratic_out":    QuadraticOut,
	"quadratic_in_out": QuadraticInOut,
	"cubic_in":         CubicIn,
	"cubic_out":        CubicOut,
}

// ParseEase resolves a curve name as written in config files.
func ParseEase(name string) (Ease, error) {
	e, ok := easeNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Linear, fmt.Errorf("tween: unknown ease %q", name)
	}
	return e, nil
}

func (e Ease) String() string {
	for name, v := range easeNames {
		if v == e {
			return name
		}
	}
	return "unknown"
}

// Func returns the gween curve behind e. Unknown values fall back to linear.
func (e Ease) Func() ease.TweenFunc {
	if fn, ok := easeFuncs[e]; ok {
		return fn
	}
	return ease.Linear
}

// Apply returns the eased value of t. Input is clamped to [0, 1].
func (e Ease) Apply(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return float64(e.Func()(float32(t), 0, 1, 1))
}
