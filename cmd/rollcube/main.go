// rollcube is a rolling-cube sliding puzzle for the terminal.
//
// Usage:
//
//	rollcube list              - List available boards
//	rollcube play <board>      - Play a board
//	rollcube menu              - Pick boards interactively
//	rollcube serve             - Start SSH server for remote play
//	rollcube scores [board]    - Show best solves
//	rollcube config init       - Write the default config file
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible shuffles
//	--db <path>          - Set database path (default: XDG data dir)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import puzzle variants to register them
	_ "github.com/vovakirdan/rollcube/internal/games/rollcube"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rollcube",
	Short: "Rolling Cubes - a sliding puzzle where every tile rolls",
	Long: `Rolling Cubes is a sliding puzzle played in the terminal. Each tile
is a cube that tips over its edge into the empty cell, so its colour
changes as it travels. Shuffle, then roll the cubes back into order.

Available commands:
  list     - Show all boards
  play     - Play a board directly
  menu     - Interactive board picker
  serve    - Start SSH server for remote play
  scores   - View best solves
  config   - Manage the config file

Examples:
  rollcube list
  rollcube play rollcube
  rollcube play rollcube_4x4 --difficulty hard
  rollcube menu
  rollcube serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to solves database (default: XDG data dir)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
