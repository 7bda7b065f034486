package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreBestSolvesOrder(t *testing.T) {
	store := openTestStore(t)

	solves := []struct {
		moves int
		d     time.Duration
	}{
		{30, 40 * time.Second},
		{12, 90 * time.Second},
		{12, 25 * time.Second},
		{55, 10 * time.Second},
	}
	for _, s := range solves {
		if _, err := store.SaveSolve("rollcube", s.moves, s.d, "normal"); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}
	if _, err := store.SaveSolve("rollcube_4x4", 3, time.Second, "easy"); err != nil {
		t.Fatalf("SaveSolve() failed: %v", err)
	}

	best, err := store.BestSolves("rollcube", 10)
	if err != nil {
		t.Fatalf("BestSolves() failed: %v", err)
	}
	if len(best) != 4 {
		t.Fatalf("expected 4 solves, got %d", len(best))
	}

	// Fewest moves first, ties broken by time
	expected := []struct {
		moves int
		d     time.Duration
	}{
		{12, 25 * time.Second},
		{12, 90 * time.Second},
		{30, 40 * time.Second},
		{55, 10 * time.Second},
	}
	for i, e := range expected {
		if best[i].Moves != e.moves || best[i].Duration != e.d {
			t.Errorf("solve %d = %d moves %v, expected %d moves %v", i, best[i].Moves, best[i].Duration, e.moves, e.d)
		}
		if best[i].Preset != "normal" || best[i].GameID != "rollcube" {
			t.Errorf("solve %d has wrong metadata: %+v", i, best[i])
		}
	}
}

func TestStoreBestSolvesLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 15; i++ {
		if _, err := store.SaveSolve("rollcube", 10+i, time.Second, ""); err != nil {
			t.Fatal(err)
		}
	}

	best, err := store.BestSolves("rollcube", 5)
	if err != nil {
		t.Fatalf("BestSolves() failed: %v", err)
	}
	if len(best) != 5 {
		t.Errorf("expected 5 solves, got %d", len(best))
	}

	best, _ = store.BestSolves("rollcube", 0)
	if len(best) != 10 {
		t.Errorf("default limit should be 10, got %d", len(best))
	}
}

func TestStoreBestSolve(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestSolve("rollcube")
	if err != nil || best != nil {
		t.Fatalf("BestSolve() on empty table = %v, %v; expected nil, nil", best, err)
	}

	store.SaveSolve("rollcube", 20, 5*time.Second, "")
	store.SaveSolve("rollcube", 8, 9*time.Second, "")

	best, err = store.BestSolve("rollcube")
	if err != nil || best == nil || best.Moves != 8 {
		t.Errorf("BestSolve() = %+v, %v; expected 8 moves", best, err)
	}
}

func TestStoreClearSolves(t *testing.T) {
	store := openTestStore(t)
	store.SaveSolve("rollcube", 10, time.Second, "")
	store.SaveSolve("rollcube_3x4", 10, time.Second, "")

	if err := store.ClearSolves("rollcube"); err != nil {
		t.Fatalf("ClearSolves() failed: %v", err)
	}

	if best, _ := store.BestSolves("rollcube", 10); len(best) != 0 {
		t.Errorf("expected no solves after clear, got %d", len(best))
	}
	if best, _ := store.BestSolves("rollcube_3x4", 10); len(best) != 1 {
		t.Error("other games should be untouched")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)
	store.SaveSolve("rollcube", 10, 20*time.Second, "")
	store.SaveSolve("rollcube", 20, 10*time.Second, "")
	store.SaveSolve("rollcube_4x4", 90, time.Minute, "")

	stats, err := store.GetGameStats("rollcube")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.SolvesCount != 2 || stats.BestMoves != 10 || stats.AvgMoves != 15 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.Fastest != 10*time.Second || stats.TotalTime != 30*time.Second {
		t.Errorf("times = %v fastest, %v total", stats.Fastest, stats.TotalTime)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.GetGameStats("never")
	if err != nil || empty.SolvesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("stats for unplayed game = %+v, %v", empty, err)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["rollcube_4x4"].BestMoves != 90 {
		t.Errorf("all stats = %+v", all)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/rollcube/solves.db")
	if err != nil {
		t.Fatalf("Open() with ~ failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, "rollcube", "solves.db")); err != nil {
		t.Errorf("database not created under HOME: %v", err)
	}
}
