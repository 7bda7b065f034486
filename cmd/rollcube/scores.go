package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rollcube/internal/registry"
	"github.com/vovakirdan/rollcube/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show best solves",
	Long: `Display the best solves for a board: fewest moves first, then fastest.
Without a board, every board is listed.

Examples:
  rollcube scores
  rollcube scores rollcube_4x4 --limit 20
  rollcube scores stats
  rollcube scores clear rollcube`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

var scoresStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated statistics per board",
	Args:  cobra.NoArgs,
	RunE:  runScoresStats,
}

var scoresClearCmd = &cobra.Command{
	Use:   "clear <board>",
	Short: "Delete all solves of a board",
	Args:  cobra.ExactArgs(1),
	RunE:  runScoresClear,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of solves to show per board")
	scoresCmd.AddCommand(scoresStatsCmd)
	scoresCmd.AddCommand(scoresClearCmd)
}

func openStoreStrict() (*storage.Store, error) {
	path, err := dbPath()
	if err != nil {
		return nil, err
	}
	store, err := storage.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening solves database: %w", err)
	}
	return store, nil
}

func checkBoard(id string) error {
	if !registry.Exists(id) {
		return fmt.Errorf("unknown board %q, run 'rollcube list' to see available boards", id)
	}
	return nil
}

func runScores(_ *cobra.Command, args []string) error {
	boards := registry.List()
	if len(args) > 0 {
		if err := checkBoard(args[0]); err != nil {
			return err
		}
		boards = []registry.GameInfo{{ID: args[0]}}
		for _, g := range registry.List() {
			if g.ID == args[0] {
				boards[0].Title = g.Title
			}
		}
	}

	store, err := openStoreStrict()
	if err != nil {
		return err
	}
	defer store.Close()

	for i, b := range boards {
		if i > 0 {
			fmt.Println()
		}
		solves, err := store.BestSolves(b.ID, flagScoresLimit)
		if err != nil {
			return err
		}
		printSolves(b, solves)
	}
	return nil
}

func printSolves(b registry.GameInfo, solves []storage.Solve) {
	fmt.Printf("Best Solves - %s\n", b.Title)
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Printf("Play 'rollcube play %s' to set the first record!\n", b.ID)
		return
	}

	fmt.Printf("  %-4s  %-5s  %-8s  %-7s  %s\n", "Rank", "Moves", "Time", "Preset", "Date")
	fmt.Printf("  %-4s  %-5s  %-8s  %-7s  %s\n", "----", "-----", "----", "------", "----")

	for i, s := range solves {
		preset := s.Preset
		if preset == "" {
			preset = "-"
		}
		fmt.Printf("  %-4d  %-5d  %-8s  %-7s  %s\n",
			i+1, s.Moves, formatDuration(s.Duration), preset, s.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func runScoresStats(_ *cobra.Command, _ []string) error {
	store, err := openStoreStrict()
	if err != nil {
		return err
	}
	defer store.Close()

	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No solves recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-14s  %6s  %5s  %6s  %-8s  %-9s  %s\n", "Board", "Solves", "Best", "Avg", "Fastest", "Total", "Last played")
	for _, id := range ids {
		s := all[id]
		fmt.Printf("  %-14s  %6d  %5d  %6.1f  %-8s  %-9s  %s\n",
			id, s.SolvesCount, s.BestMoves, s.AvgMoves,
			formatDuration(s.Fastest), s.TotalTime.Round(time.Second), s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func runScoresClear(_ *cobra.Command, args []string) error {
	if err := checkBoard(args[0]); err != nil {
		return err
	}

	store, err := openStoreStrict()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.ClearSolves(args[0]); err != nil {
		return err
	}
	fmt.Printf("Cleared solves for %s.\n", args[0])
	return nil
}

// formatDuration renders a solve time as m:ss.t.
func formatDuration(d time.Duration) string {
	d = d.Truncate(100 * time.Millisecond)
	return fmt.Sprintf("%d:%04.1f", int(d/time.Minute), (d % time.Minute).Seconds())
}
