package tween

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/rollcube/internal/core"
	"github.com/vovakirdan/rollcube/internal/scene"
)

func TestEaseEndpoints(t *testing.T) {
	for name, e := range easeNames {
		if e.Apply(0) != 0 || e.Apply(1) != 1 {
			t.Errorf("%s: endpoints should be 0 and 1", name)
		}
		if e.Apply(-1) != 0 || e.Apply(2) != 1 {
			t.Errorf("%s: input should be clamped", name)
		}
	}

	if got := QuadraticIn.Apply(0.5); got != 0.25 {
		t.Errorf("QuadraticIn(0.5) = %v, expected 0.25", got)
	}
	if got := QuadraticOut.Apply(0.5); got != 0.75 {
		t.Errorf("QuadraticOut(0.5) = %v, expected 0.75", got)
	}
}

func TestParseEase(t *testing.T) {
	e, err := ParseEase(" Quadratic_In ")
	if err != nil || e != QuadraticIn {
		t.Errorf("ParseEase = %v, %v", e, err)
	}
	if QuadraticIn.String() != "quadratic_in" {
		t.Errorf("String() = %q", QuadraticIn.String())
	}
	if _, err := ParseEase("bounce"); err == nil {
		t.Error("unknown ease should fail")
	}
}

func quatNear(a, b mgl64.Quat, eps float64) bool {
	return math.Abs(a.W-b.W) <= eps && a.V.Sub(b.V).Len() <= eps
}

func TestEaseMatchesGweenCurves(t *testing.T) {
	for name, e := range easeNames {
		fn := e.Func()
		for _, x := range []float64{0.1, 0.25, 0.5, 0.9} {
			want := float64(fn(float32(x), 0, 1, 1))
			if got := e.Apply(x); got != want {
				t.Errorf("%s.Apply(%v) = %v, expected %v", name, x, got, want)
			}
		}
	}
	if Ease(99).Func() == nil {
		t.Error("unknown ease should fall back to a curve")
	}
}

func TestTickFollowsEaseCurve(t *testing.T) {
	arena := scene.NewArena()
	id := arena.Spawn(scene.Identity(), "")
	anim := NewAnimator()
	var done core.Events[Completed]

	tw := quarterTurn()
	tw.Ease = QuadraticIn
	anim.Insert(id, tw)
	anim.Tick(arena, 50*time.Millisecond, &done)

	// A quarter of the way along the quadratic curve at half time.
	want := mgl64.QuatSlerp(tw.Start, tw.End, 0.25)
	if got := arena.Get(id).Transform.Rotation; !quatNear(got, want, 1e-6) {
		t.Errorf("rotation at half time = %v, expected %v", got, want)
	}
	if done.Len() != 0 {
		t.Error("tween completed early")
	}
}

func quarterTurn() Rotation {
	return Rotation{
		Ease:     Linear,
		Duration: 100 * time.Millisecond,
		Start:    mgl64.QuatIdent(),
		End:      mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0}),
		UserData: 7,
	}
}

func TestTickCompletesExactlyOnce(t *testing.T) {
	arena := scene.NewArena()
	id := arena.Spawn(scene.Identity(), "")
	anim := NewAnimator()
	var done core.Events[Completed]

	anim.Insert(id, quarterTurn())

	anim.Tick(arena, 50*time.Millisecond, &done)
	if done.Len() != 0 {
		t.Fatal("tween completed early")
	}
	half := mgl64.QuatRotate(math.Pi/4, mgl64.Vec3{0, 1, 0})
	if !quatNear(arena.Get(id).Transform.Rotation, half, 1e-6) {
		t.Errorf("halfway rotation = %v, expected %v", arena.Get(id).Transform.Rotation, half)
	}

	anim.Tick(arena, 50*time.Millisecond, &done)
	events := done.Drain()
	if len(events) != 1 || events[0].Entity != id || events[0].UserData != 7 {
		t.Fatalf("completion events = %+v", events)
	}
	if anim.Running(id) || anim.Len() != 0 {
		t.Error("finished tween should be removed")
	}

	anim.Tick(arena, time.Second, &done)
	if done.Len() != 0 {
		t.Error("a tween must not complete twice")
	}
}

func TestZeroDurationCompletesOnFirstTick(t *testing.T) {
	arena := scene.NewArena()
	id := arena.Spawn(scene.Identity(), "")
	anim := NewAnimator()
	var done core.Events[Completed]

	tw := quarterTurn()
	tw.Duration = 0
	anim.Insert(id, tw)
	anim.Tick(arena, 0, &done)

	if done.Len() != 1 {
		t.Fatalf("expected one completion, got %d", done.Len())
	}
	if !quatNear(arena.Get(id).Transform.Rotation, tw.End, 1e-9) {
		t.Error("rotation should land on the end value")
	}
}

func TestInsertReplaces(t *testing.T) {
	arena := scene.NewArena()
	id := arena.Spawn(scene.Identity(), "")
	anim := NewAnimator()
	var done core.Events[Completed]

	anim.Insert(id, quarterTurn())
	second := quarterTurn()
	second.UserData = 9
	anim.Insert(id, second)

	if anim.Len() != 1 {
		t.Fatalf("Len() = %d, expected 1", anim.Len())
	}
	anim.Tick(arena, time.Second, &done)
	events := done.Drain()
	if len(events) != 1 || events[0].UserData != 9 {
		t.Errorf("only the replacement should complete, got %+v", events)
	}
}

func TestDespawnedEntityDropsTween(t *testing.T) {
	arena := scene.NewArena()
	id := arena.Spawn(scene.Identity(), "")
	anim := NewAnimator()
	var done core.Events[Completed]

	anim.Insert(id, quarterTurn())
	_ = arena.Despawn(id)
	anim.Tick(arena, time.Second, &done)

	if done.Len() != 0 || anim.Len() != 0 {
		t.Error("tween on a despawned entity should be dropped without completing")
	}
}
