// Package config provides YAML-based puzzle configuration loading,
// validation and difficulty presets.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/rollcube/internal/core"
	"github.com/vovakirdan/rollcube/internal/tween"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// RollcubeConfig contains all configuration for the rolling cube puzzle.
type RollcubeConfig struct {
	Board     BoardConfig     `yaml:"board"`
	Shuffle   ShuffleConfig   `yaml:"shuffle"`
	Animation AnimationConfig `yaml:"animation"`
	Skin      SkinConfig      `yaml:"skin"`
}

// BoardConfig defines how large a board cell is drawn.
type BoardConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// ShuffleConfig defines the scramble phase.
type ShuffleConfig struct {
	Moves int        `yaml:"moves"`
	Ramp  RampConfig `yaml:"ramp"`
}

// RampConfig defines how roll animations speed up while scrambling.
type RampConfig struct {
	Enabled     bool          `yaml:"enabled"`
	Factor      float64       `yaml:"factor"`
	MinDuration time.Duration `yaml:"min_duration"`
}

// AnimationConfig defines the roll tween.
type AnimationConfig struct {
	Duration   time.Duration `yaml:"duration"`
	Ease       string        `yaml:"ease"`
	ModelScale float64       `yaml:"model_scale"`
}

// SkinConfig names the colour of each cube face.
type SkinConfig struct {
	Name  string     `yaml:"name"`
	Faces FaceColors `yaml:"faces"`
}

// FaceColors maps each face of a cube in its home orientation to a colour
// name. Top faces the camera; north points up the board.
type FaceColors struct {
	Top    string `yaml:"top"`
	Bottom string `yaml:"bottom"`
	North  string `yaml:"north"`
	South  string `yaml:"south"`
	East   string `yaml:"east"`
	West   string `yaml:"west"`
}

// Palette resolves face colour names. Order: top, bottom, north, south,
// east, west.
func (f FaceColors) Palette() ([6]core.Color, error) {
	var out [6]core.Color
	names := [6]string{f.Top, f.Bottom, f.North, f.South, f.East, f.West}
	for i, name := range names {
		c, ok := core.ParseColor(name)
		if !ok {
			return out, fmt.Errorf("skin face %q: unknown colour: %w", name, ErrInvalid)
		}
		out[i] = c
	}
	return out, nil
}

// EaseFunc resolves the configured ease curve.
func (a AnimationConfig) EaseFunc() (tween.Ease, error) {
	e, err := tween.ParseEase(a.Ease)
	if err != nil {
		return e, fmt.Errorf("animation.ease: %w: %w", err, ErrInvalid)
	}
	return e, nil
}

// Validate checks every value is in a usable range.
func (c RollcubeConfig) Validate() error {
	switch {
	case c.Board.CellWidth < 3:
		return fmt.Errorf("board.cell_width must be at least 3, got %d: %w", c.Board.CellWidth, ErrInvalid)
	case c.Board.CellHeight < 1:
		return fmt.Errorf("board.cell_height must be at least 1, got %d: %w", c.Board.CellHeight, ErrInvalid)
	case c.Shuffle.Moves < 0:
		return fmt.Errorf("shuffle.moves must not be negative, got %d: %w", c.Shuffle.Moves, ErrInvalid)
	case c.Animation.Duration < 0:
		return fmt.Errorf("animation.duration must not be negative, got %v: %w", c.Animation.Duration, ErrInvalid)
	case c.Animation.ModelScale <= 0:
		return fmt.Errorf("animation.model_scale must be positive, got %v: %w", c.Animation.ModelScale, ErrInvalid)
	}

	if c.Shuffle.Ramp.Enabled {
		if c.Shuffle.Ramp.Factor <= 0 || c.Shuffle.Ramp.Factor > 1 {
			return fmt.Errorf("shuffle.ramp.factor must be in (0, 1], got %v: %w", c.Shuffle.Ramp.Factor, ErrInvalid)
		}
		if c.Shuffle.Ramp.MinDuration < 0 {
			return fmt.Errorf("shuffle.ramp.min_duration must not be negative, got %v: %w", c.Shuffle.Ramp.MinDuration, ErrInvalid)
		}
	}

	if _, err := c.Animation.EaseFunc(); err != nil {
		return err
	}
	if _, err := c.Skin.Faces.Palette(); err != nil {
		return err
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset validates a preset name from the command line.
func ParsePreset(name string) (DifficultyPreset, error) {
	for _, p := range Presets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed): %w", name, ErrInvalid)
}

// ShuffleMovesForPreset returns the scramble length of a preset.
func ShuffleMovesForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 20
	case DifficultyHard:
		return 100
	default:
		return 50
	}
}

// IsFixedPreset returns true if the preset disables the speed ramp.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *RollcubeConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Shuffle.Moves = ShuffleMovesForPreset(preset)
	cfg.Shuffle.Ramp.Enabled = !IsFixedPreset(preset)
}
