package rollcube

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/rollcube/internal/tween"
)

const eps = 1e-9

func admit(t *testing.T, w *World, d Direction, dur time.Duration) RollEvent {
	t.Helper()
	move, ok := w.Board.TryMove(d, w.InFlight)
	if !ok {
		t.Fatalf("%v not admitted", d)
	}
	return RollEvent{Move: move, Source: SourceKeyboard, Duration: dur}
}

func TestRollKeepsBodyInPlaceAtStart(t *testing.T) {
	w := newClassicWorld()
	ev := admit(t, w, Right, 300*time.Millisecond)
	body := w.body(ev.Move.Entity)

	before, _ := w.Arena.GlobalTransform(body)
	if !w.startRoll(ev, tween.Linear) {
		t.Fatal("roll should start")
	}
	after, _ := w.Arena.GlobalTransform(body)

	if !vecNear(after.Translation, before.Translation, eps) {
		t.Errorf("body jumped from %v to %v at roll start", before.Translation, after.Translation)
	}
	if w.InFlight != 1 {
		t.Errorf("InFlight = %d, expected 1", w.InFlight)
	}

	pivot := w.Arena.Get(ev.Move.Entity)
	edge := CellCenter(3, 3, ev.Move.From).Add(mgl64.Vec3{0.5, 0, 0})
	if !vecNear(pivot.Transform.Translation, edge, eps) {
		t.Errorf("pivot at %v, expected leading edge %v", pivot.Transform.Translation, edge)
	}
}

func TestRollLiftsBodyOverEdge(t *testing.T) {
	w := newClassicWorld()
	ev := admit(t, w, Right, 300*time.Millisecond)
	w.startRoll(ev, tween.Linear)

	w.Animator.Tick(w.Arena, 150*time.Millisecond, &w.Completed)
	g, _ := w.Arena.GlobalTransform(w.body(ev.Move.Entity))

	// Halfway the body centre is straight above the edge, sqrt(2)/2 high.
	edge := CellCenter(3, 3, ev.Move.From).Add(mgl64.Vec3{0.5, 0, 0})
	expected := edge.Add(mgl64.Vec3{0, 0, 0.70710678118654752})
	if !vecNear(g.Translation, expected, 1e-6) {
		t.Errorf("halfway body at %v, expected %v", g.Translation, expected)
	}
}

func TestRollCompletionCommits(t *testing.T) {
	w := newClassicWorld()
	ev := admit(t, w, Right, 300*time.Millisecond)
	w.startRoll(ev, tween.QuadraticIn)

	w.Animator.Tick(w.Arena, 300*time.Millisecond, &w.Completed)
	done := w.Completed.Drain()
	if len(done) != 1 {
		t.Fatalf("expected one completion, got %d", len(done))
	}

	fin, ok := w.finishRoll(done[0])
	if !ok || fin.Dir != Right || fin.Entity != ev.Move.Entity {
		t.Fatalf("finishRoll = %+v, %v", fin, ok)
	}
	if w.InFlight != 0 {
		t.Errorf("InFlight = %d after completion, expected 0", w.InFlight)
	}

	pivot := w.Arena.Get(ev.Move.Entity)
	centre := CellCenter(3, 3, ev.Move.To)
	if !vecNear(pivot.Transform.Translation, centre, eps) {
		t.Errorf("pivot at %v, expected cell centre %v", pivot.Transform.Translation, centre)
	}
	g, _ := w.Arena.GlobalTransform(w.body(ev.Move.Entity))
	if !vecNear(g.Translation, centre.Add(bodyRest), 1e-9) {
		t.Errorf("body at %v, expected %v", g.Translation, centre.Add(bodyRest))
	}

	// The west face comes up after rolling right.
	if f := TopFace(g.Rotation); f != FaceWest {
		t.Errorf("top face = %v, expected west", f)
	}

	// A new move can be admitted now
	if _, ok := w.Board.TryMove(Left, w.InFlight); !ok {
		t.Error("move should be admitted once the counter is back to zero")
	}
}

func TestStartRollGuardedByCounter(t *testing.T) {
	w := newClassicWorld()
	ev := admit(t, w, Right, time.Second)
	w.startRoll(ev, tween.Linear)

	if w.startRoll(ev, tween.Linear) {
		t.Error("second roll started while one is in flight")
	}
	if w.InFlight != 1 {
		t.Errorf("InFlight = %d, expected 1", w.InFlight)
	}
}

func TestRollRoundTripRestoresOrientation(t *testing.T) {
	w := newClassicWorld()
	pivot := w.Board.At(Cell{X: 0, Y: 1})

	for _, d := range []Direction{Right, Left} {
		ev := admit(t, w, d, 100*time.Millisecond)
		w.startRoll(ev, tween.Linear)
		w.Animator.Tick(w.Arena, 100*time.Millisecond, &w.Completed)
		for _, c := range w.Completed.Drain() {
			w.finishRoll(c)
		}
	}

	g, _ := w.Arena.GlobalTransform(w.body(pivot))
	if !quatNear(g.Rotation, mgl64.QuatIdent(), 1e-9) &&
		!quatNear(g.Rotation.Scale(-1), mgl64.QuatIdent(), 1e-9) {
		t.Errorf("rotation after rolling back = %v, expected identity", g.Rotation)
	}
	if f := TopFace(g.Rotation); f != FaceTop {
		t.Errorf("top face = %v, expected top", f)
	}
}

func TestUnknownCompletionTagPanics(t *testing.T) {
	w := newClassicWorld()
	pivot := w.Board.At(Cell{X: 0, Y: 0})

	defer func() {
		if recover() == nil {
			t.Error("unknown completion tag should panic")
		}
	}()
	w.finishRoll(tween.Completed{Entity: pivot, UserData: 42})
}
