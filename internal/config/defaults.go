package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/rollcube.yaml
var defaultRollcubeYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRollcubeYAML
}

// DefaultRollcubeConfig returns the default puzzle configuration.
func DefaultRollcubeConfig() RollcubeConfig {
	return RollcubeConfig{
		Board: BoardConfig{
			CellWidth:  7,
			CellHeight: 3,
		},
		Shuffle: ShuffleConfig{
			Moves: 50,
			Ramp: RampConfig{
				Enabled:     true,
				Factor:      0.92,
				MinDuration: 75 * time.Millisecond,
			},
		},
		Animation: AnimationConfig{
			Duration:   300 * time.Millisecond,
			Ease:       "quadratic_in",
			ModelScale: 1.0 / 6.0,
		},
		Skin: SkinConfig{
			Name: "classic",
			Faces: FaceColors{
				Top:    "white",
				Bottom: "yellow",
				North:  "blue",
				South:  "green",
				East:   "red",
				West:   "orange",
			},
		},
	}
}
