package rollcube

import (
	"github.com/vovakirdan/rollcube/internal/core"
	"github.com/vovakirdan/rollcube/internal/scene"
	"github.com/vovakirdan/rollcube/internal/tween"
)

// World is the state shared by the per-tick systems. Each field has a
// single writer per tick; the systems run in a fixed order inside Step.
type World struct {
	Arena    *scene.Arena
	Animator *tween.Animator
	Board    *Board

	// InFlight counts roll animations that have started and not finished.
	InFlight int

	Inputs    core.Events[RollInput]
	Rolls     core.Events[RollEvent]
	Completed core.Events[tween.Completed]
	Finished  core.Events[RollFinished]
}

// NewWorld builds a w×h board with a cube on every cell except empty.
func NewWorld(w, h int, empty Cell, bodyScale float64) *World {
	world := &World{
		Arena:    scene.NewArena(),
		Animator: tween.NewAnimator(),
		Board:    NewBoard(w, h),
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := Cell{X: x, Y: y}
			if c == empty {
				continue
			}
			world.Board.Place(c, world.spawnCube(c, bodyScale))
		}
	}
	return world
}
