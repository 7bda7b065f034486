package rollcube

import (
	"time"

	"github.com/vovakirdan/rollcube/internal/scene"
)

// Event is a message passed between the per-tick systems.
type Event interface {
	rollEvent()
}

// Source tells which system produced a move intent.
type Source int

const (
	SourceKeyboard Source = iota
	SourcePointer
	SourceShuffle
)

func (s Source) String() string {
	switch s {
	case SourceKeyboard:
		return "keyboard"
	case SourcePointer:
		return "pointer"
	case SourceShuffle:
		return "shuffle"
	default:
		return "unknown"
	}
}

// Cell is a board position. Row 0 is the bottom row.
type Cell struct {
	X, Y int
}

// RollInput is a move intent waiting for the board.
type RollInput struct {
	Dir    Direction
	Source Source
}

func (RollInput) rollEvent() {}

// ResolvedMove binds a move intent to the cube that slides.
type ResolvedMove struct {
	Entity scene.EntityID
	From   Cell
	To     Cell
	Dir    Direction
}

// RollEvent is a move admitted by the board, ready to animate.
type RollEvent struct {
	Move     ResolvedMove
	Source   Source
	Duration time.Duration
}

func (RollEvent) rollEvent() {}

// RollFinished is sent after a cube has come to rest on its new cell.
type RollFinished struct {
	Entity scene.EntityID
	Dir    Direction
}

func (RollFinished) rollEvent() {}

// PhaseChanged is sent when the game moves to another phase.
type PhaseChanged struct {
	From, To Phase
}

func (PhaseChanged) rollEvent() {}
