package rollcube

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/rollcube/internal/scene"
	"github.com/vovakirdan/rollcube/internal/tween"
)

// Scene tags.
const (
	cubeTag = "cube"
	bodyTag = "cube_body"
)

// bodyRest is where a cube body sits relative to its pivot in world space
// when the cube is at rest: centred over the cell, half a cell up.
var bodyRest = mgl64.Vec3{0, 0, 0.5}

// CellCenter returns the world position of a cell centre on the floor.
// The board is centred on the origin.
func CellCenter(w, h int, c Cell) mgl64.Vec3 {
	return mgl64.Vec3{
		float64(c.X) - float64(w)/2 + 0.5,
		float64(c.Y) - float64(h)/2 + 0.5,
		0,
	}
}

// spawnCube creates a pivot on the floor under c with the visible body as
// its only child.
func (w *World) spawnCube(c Cell, bodyScale float64) scene.EntityID {
	pivot := w.Arena.Spawn(scene.FromTranslation(CellCenter(w.Board.Width(), w.Board.Height(), c)), cubeTag)
	body := scene.FromTranslation(bodyRest).WithScale(bodyScale)
	if _, err := w.Arena.SpawnChild(pivot, body, bodyTag); err != nil {
		panic(err)
	}
	return pivot
}

// body returns the visible child of a cube pivot.
func (w *World) body(pivot scene.EntityID) scene.EntityID {
	n := w.Arena.Get(pivot)
	if n == nil {
		return scene.EntityID{}
	}
	for _, c := range n.Children {
		if child := w.Arena.Get(c); child != nil && child.Tag == bodyTag {
			return c
		}
	}
	return scene.EntityID{}
}

// shiftPivot moves a pivot by delta in world space and moves its children
// back by the same amount in the pivot's local space, so nothing visible
// moves.
func (w *World) shiftPivot(pivot scene.EntityID, delta mgl64.Vec3) {
	n := w.Arena.Get(pivot)
	if n == nil {
		return
	}
	global, _ := w.Arena.GlobalTransform(pivot)
	n.Transform.Translation = n.Transform.Translation.Add(delta)

	local := global.InverseTransformVector(delta)
	for _, c := range n.Children {
		if child := w.Arena.Get(c); child != nil {
			child.Transform.Translation = child.Transform.Translation.Sub(local)
		}
	}
}

// startRoll begins the animation for an admitted move. The pivot jumps to
// the leading bottom edge and a quarter turn about the roll axis carries
// the body over it. Returns false if a roll is already in flight or the
// cube is gone.
func (w *World) startRoll(ev RollEvent, ease tween.Ease) bool {
	if w.InFlight != 0 {
		return false
	}
	pivot := ev.Move.Entity
	n := w.Arena.Get(pivot)
	if n == nil {
		return false
	}

	half := ev.Move.Dir.Translation().Mul(0.5)
	w.shiftPivot(pivot, half)

	global, _ := w.Arena.GlobalTransform(pivot)
	axis := global.Rotation.Inverse().Rotate(ev.Move.Dir.Axis())
	start := n.Transform.Rotation
	end := start.Mul(mgl64.QuatRotate(mgl64.DegToRad(90), axis)).Normalize()

	w.Animator.Insert(pivot, tween.Rotation{
		Ease:     ease,
		Duration: ev.Duration,
		Start:    start,
		End:      end,
		UserData: ev.Move.Dir.ID(),
	})
	w.InFlight++
	return true
}

// finishRoll commits a completed roll: the pivot travels the second half
// cell, snaps onto the cube's board cell and the in-flight counter drops.
func (w *World) finishRoll(done tween.Completed) (RollFinished, bool) {
	dir := DirectionFromID(done.UserData)

	n := w.Arena.Get(done.Entity)
	if n == nil || n.Tag != cubeTag {
		return RollFinished{}, false
	}
	if w.InFlight <= 0 {
		panic(fmt.Sprintf("rollcube: roll of %v completed with nothing in flight", done.Entity))
	}

	w.shiftPivot(done.Entity, dir.Translation().Mul(0.5))
	w.settle(done.Entity)
	w.InFlight--

	return RollFinished{Entity: done.Entity, Dir: dir}, true
}

// settle removes float drift: the pivot lands exactly on its cell centre
// and the body exactly half a cell above it.
func (w *World) settle(pivot scene.EntityID) {
	n := w.Arena.Get(pivot)
	cell, ok := w.Board.Find(pivot)
	if n == nil || !ok {
		return
	}

	n.Transform.Translation = CellCenter(w.Board.Width(), w.Board.Height(), cell)
	n.Transform.Rotation = n.Transform.Rotation.Normalize()

	global, _ := w.Arena.GlobalTransform(pivot)
	if b := w.Arena.Get(w.body(pivot)); b != nil {
		b.Transform.Translation = global.InverseTransformVector(bodyRest)
	}
}
