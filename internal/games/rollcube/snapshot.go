package rollcube

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Variant   string
	Phase     Phase
	Labels    [][]int // row 0 first, 0 for the empty cell
	InFlight  int
	Moves     int
	Shuffled  int
	ShuffleTo int
	LastMove  Direction
	Paused    bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:    g.tick,
		Variant: g.variant.ID,
		Phase:   g.phase,
		Moves:   g.moves,
		Paused:  g.paused || g.tooSmall,
	}
	if g.world != nil {
		s.Labels = g.world.Board.Labels()
		s.InFlight = g.world.InFlight
	}
	if g.shuffler != nil {
		s.Shuffled = g.shuffler.Accepted()
		s.ShuffleTo = g.shuffler.Threshold()
		s.LastMove = g.shuffler.Last()
	}
	return s
}
