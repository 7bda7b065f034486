// Package rollcube implements the rolling cube puzzle: a sliding puzzle
// whose pieces are cubes that roll over their edges into the empty cell.
package rollcube

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/rollcube/internal/core"
)

// Direction is a move intent. It names the way a cube rolls into the empty
// cell, so Right moves the cube on the empty cell's left.
type Direction int

const (
	Right Direction = iota + 1
	Left
	Up
	Down
)

// Directions lists all moves in click priority order.
var Directions = [4]Direction{Right, Left, Up, Down}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Opposite returns the move that undoes d.
func (d Direction) Opposite() Direction {
	switch d {
	case Right:
		return Left
	case Left:
		return Right
	case Up:
		return Down
	case Down:
		return Up
	default:
		return d
	}
}

// ID is the completion tag carried by a roll animation.
func (d Direction) ID() uint64 {
	return uint64(d)
}

// DirectionFromID decodes a completion tag. Any value not produced by ID is
// a broken invariant and panics.
func DirectionFromID(id uint64) Direction {
	switch id {
	case 1:
		return Right
	case 2:
		return Left
	case 3:
		return Up
	case 4:
		return Down
	default:
		panic(fmt.Sprintf("rollcube: undefined roll event %d", id))
	}
}

// Delta returns the cell offset a cube travels. Row y grows upward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Right:
		return 1, 0
	case Left:
		return -1, 0
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	default:
		return 0, 0
	}
}

// Translation is the world offset of one full roll.
func (d Direction) Translation() mgl64.Vec3 {
	dx, dy := d.Delta()
	return mgl64.Vec3{float64(dx), float64(dy), 0}
}

// Axis is the world axis a cube turns about while rolling in direction d.
func (d Direction) Axis() mgl64.Vec3 {
	switch d {
	case Right:
		return mgl64.Vec3{0, 1, 0}
	case Left:
		return mgl64.Vec3{0, -1, 0}
	case Up:
		return mgl64.Vec3{-1, 0, 0}
	case Down:
		return mgl64.Vec3{1, 0, 0}
	default:
		return mgl64.Vec3{}
	}
}

// keyOrder is the order key actions are checked in; only the first
// pressed one counts per tick.
var keyOrder = [4]Direction{Right, Left, Down, Up}

// actionFor maps a move to its keyboard action.
func actionFor(d Direction) core.Action {
	switch d {
	case Right:
		return core.ActionRight
	case Left:
		return core.ActionLeft
	case Up:
		return core.ActionUp
	default:
		return core.ActionDown
	}
}
