package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rollcube/internal/config"
	"github.com/vovakirdan/rollcube/internal/games/rollcube"
	"github.com/vovakirdan/rollcube/internal/platform/tui"
	"github.com/vovakirdan/rollcube/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Play a board",
	Long: `Start playing the specified board (default: rollcube, the 3x3 board).

The board is shuffled first; the cubes speed up while shuffling. Once the
shuffle ends, roll the cubes back so that they read 1, 2, 3... from the
top left.

Controls:
  Arrows/WASD/HJKL  - Roll the cube next to the gap into it
  Mouse click       - Roll the clicked cube into the gap
  P/Space           - Pause
  Esc               - Pause, press again to leave
  R                 - Reshuffle
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - 20 shuffle moves
  normal - 50 shuffle moves
  hard   - 100 shuffle moves
  fixed  - 50 shuffle moves at constant speed

Examples:
  rollcube play
  rollcube play rollcube_4x4 --difficulty hard
  rollcube play rollcube --config ./my-rollcube.yaml
  rollcube play rollcube --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
}

// applyGameFlags hands --config and --difficulty to the puzzle package.
func applyGameFlags() error {
	rollcube.SetConfigPath(flagConfig)
	if flagDifficulty == "" {
		rollcube.SetDifficultyPreset("")
		return nil
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	rollcube.SetDifficultyPreset(preset)
	return nil
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := rollcube.Classic.ID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown board %q, run 'rollcube list' to see available boards", gameID)
	}
	if err := applyGameFlags(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	logger.Info("starting", "game", gameID, "difficulty", flagDifficulty, "seed", cfg.Seed)

	if _, err := tui.Run(game, store, cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		return err
	}
	return nil
}
