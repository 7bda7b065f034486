package rollcube

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/rollcube/internal/scene"
)

// Board size limits.
const (
	MinBoardSize = 2
	MaxBoardSize = 6
)

// ErrBoardInvariant is wrapped by every Validate failure.
var ErrBoardInvariant = errors.New("board invariant violated")

// Board is the logical grid. Each cell holds a cube entity or the zero
// EntityID for empty. The grid is updated as soon as a move is admitted,
// ahead of the animation.
type Board struct {
	w, h  int
	cells []scene.EntityID
	home  map[scene.EntityID]Cell
}

// NewBoard creates an empty w×h board.
func NewBoard(w, h int) *Board {
	return &Board{
		w:     w,
		h:     h,
		cells: make([]scene.EntityID, w*h),
		home:  make(map[scene.EntityID]Cell),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.w }

// Height returns the number of rows.
func (b *Board) Height() int { return b.h }

// InBounds reports whether c is on the board.
func (b *Board) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < b.w && c.Y >= 0 && c.Y < b.h
}

// At returns the cube on c, or the zero id if c is empty or off the board.
func (b *Board) At(c Cell) scene.EntityID {
	if !b.InBounds(c) {
		return scene.EntityID{}
	}
	return b.cells[c.Y*b.w+c.X]
}

func (b *Board) set(c Cell, id scene.EntityID) {
	b.cells[c.Y*b.w+c.X] = id
}

// Place puts a cube on c and records c as its home cell.
func (b *Board) Place(c Cell, id scene.EntityID) {
	b.set(c, id)
	b.home[id] = c
}

// Home returns the cell a cube started on.
func (b *Board) Home(id scene.EntityID) (Cell, bool) {
	c, ok := b.home[id]
	return c, ok
}

// Label is the number printed on a cube: its home position counted in
// reading order from the top-left.
func (b *Board) Label(id scene.EntityID) int {
	c, ok := b.Home(id)
	if !ok {
		return 0
	}
	return (b.h-1-c.Y)*b.w + c.X + 1
}

// Find returns the cell holding id.
func (b *Board) Find(id scene.EntityID) (Cell, bool) {
	if !id.Valid() {
		return Cell{}, false
	}
	for i, e := range b.cells {
		if e == id {
			return Cell{X: i % b.w, Y: i / b.w}, true
		}
	}
	return Cell{}, false
}

// EmptyCell returns the first empty cell in row-major order.
func (b *Board) EmptyCell() (Cell, bool) {
	for i, e := range b.cells {
		if !e.Valid() {
			return Cell{X: i % b.w, Y: i / b.w}, true
		}
	}
	return Cell{}, false
}

// Cubes returns every cube in row-major order.
func (b *Board) Cubes() []scene.EntityID {
	out := make([]scene.EntityID, 0, len(b.cells))
	for _, e := range b.cells {
		if e.Valid() {
			out = append(out, e)
		}
	}
	return out
}

// TryMove admits a move while no roll is in flight. It scans the grid row
// by row for an empty cell whose neighbour against d holds a cube, moves
// that cube into the empty cell and reports the move. The first match in
// scan order wins. Anything else is a silent no-op.
func (b *Board) TryMove(d Direction, inFlight int) (ResolvedMove, bool) {
	if inFlight != 0 {
		return ResolvedMove{}, false
	}

	dx, dy := d.Delta()
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			to := Cell{X: x, Y: y}
			if b.At(to).Valid() {
				continue
			}
			from := Cell{X: x - dx, Y: y - dy}
			cube := b.At(from)
			if !cube.Valid() {
				continue
			}

			b.set(from, scene.EntityID{})
			b.set(to, cube)
			return ResolvedMove{Entity: cube, From: from, To: to, Dir: d}, true
		}
	}
	return ResolvedMove{}, false
}

// ClickDirection picks the move that slides the clicked cube into a
// neighbouring empty cell, checking Right, Left, Up, Down in that order.
func (b *Board) ClickDirection(id scene.EntityID) (Direction, bool) {
	c, ok := b.Find(id)
	if !ok {
		return 0, false
	}
	for _, d := range Directions {
		dx, dy := d.Delta()
		next := Cell{X: c.X + dx, Y: c.Y + dy}
		if b.InBounds(next) && !b.At(next).Valid() {
			return d, true
		}
	}
	return 0, false
}

// Solved reports whether every cube is back on its home cell.
func (b *Board) Solved() bool {
	for i, e := range b.cells {
		if !e.Valid() {
			continue
		}
		if h, ok := b.Home(e); !ok || h != (Cell{X: i % b.w, Y: i / b.w}) {
			return false
		}
	}
	return true
}

// Validate checks that exactly one cell is empty and that no cube appears
// twice or without a home.
func (b *Board) Validate() error {
	empty := 0
	seen := make(map[scene.EntityID]bool, len(b.cells))
	for i, e := range b.cells {
		if !e.Valid() {
			empty++
			continue
		}
		if seen[e] {
			return fmt.Errorf("%v appears twice (cell %d): %w", e, i, ErrBoardInvariant)
		}
		seen[e] = true
		if _, ok := b.Home(e); !ok {
			return fmt.Errorf("%v has no home cell: %w", e, ErrBoardInvariant)
		}
	}
	if empty != 1 {
		return fmt.Errorf("%d empty cells: %w", empty, ErrBoardInvariant)
	}
	return nil
}

// Labels returns the label grid with row 0 first; empty cells are 0.
func (b *Board) Labels() [][]int {
	out := make([][]int, b.h)
	for y := range out {
		out[y] = make([]int, b.w)
		for x := range out[y] {
			if id := b.At(Cell{X: x, Y: y}); id.Valid() {
				out[y][x] = b.Label(id)
			}
		}
	}
	return out
}
