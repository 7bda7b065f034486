package rollcube

import "math/rand"

// Shuffler produces the scramble: uniformly random moves, never the exact
// reverse of the previous accepted one, until a fixed number of moves has
// been accepted by the board.
type Shuffler struct {
	rng       *rand.Rand
	last      Direction
	accepted  int
	threshold int
}

// NewShuffler creates a shuffler that finishes after threshold moves.
func NewShuffler(rng *rand.Rand, threshold int) *Shuffler {
	return &Shuffler{rng: rng, threshold: max(threshold, 0)}
}

// Next draws a move. Draws equal to the reverse of the last accepted move
// are rejected and redrawn.
func (s *Shuffler) Next() Direction {
	forbidden := s.last.Opposite()
	for {
		d := Directions[s.rng.Intn(len(Directions))]
		if s.last == 0 || d != forbidden {
			return d
		}
	}
}

// Accept records a move the board admitted. It returns true exactly once:
// on the move that reaches the threshold.
func (s *Shuffler) Accept(d Direction) bool {
	if s.Done() {
		return false
	}
	s.last = d
	s.accepted++
	return s.accepted == s.threshold
}

// Done reports whether the scramble is complete.
func (s *Shuffler) Done() bool {
	return s.accepted >= s.threshold
}

// Last returns the last accepted move, 0 if none.
func (s *Shuffler) Last() Direction {
	return s.last
}

// Accepted returns how many moves have been accepted.
func (s *Shuffler) Accepted() int {
	return s.accepted
}

// Threshold returns the scramble length.
func (s *Shuffler) Threshold() int {
	return s.threshold
}
