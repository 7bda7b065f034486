package tween

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"

	"github.com/vovakirdan/rollcube/internal/core"
	"github.com/vovakirdan/rollcube/internal/scene"
)

// Rotation animates a node's local rotation from Start to End.
type Rotation struct {
	Ease     Ease
	Duration time.Duration
	Start    mgl64.Quat
	End      mgl64.Quat

	// UserData is returned untouched in the Completed event.
	UserData uint64
}

// Completed is sent once when a tween reaches its end value.
type Completed struct {
	Entity   scene.EntityID
	UserData uint64
}

type active struct {
	entity   scene.EntityID
	tween    Rotation
	progress *gween.Tween
	elapsed  time.Duration
}

func newActive(entity scene.EntityID, tw Rotation) active {
	return active{
		entity:   entity,
		tween:    tw,
		progress: gween.New(0, 1, float32(tw.Duration.Seconds()), tw.Ease.Func()),
	}
}

// Animator advances rotation tweens, at most one per entity.
type Animator struct {
	running []active
}

// NewAnimator creates an animator with no running tweens.
func NewAnimator() *Animator {
	return &Animator{}
}

// Insert starts tw on entity, replacing any tween already running there.
// A replaced tween never completes.
func (a *Animator) Insert(entity scene.EntityID, tw Rotation) {
	for i := range a.running {
		if a.running[i].entity == entity {
			a.running[i] = newActive(entity, tw)
			return
		}
	}
	a.running = append(a.running, newActive(entity, tw))
}

// Running reports whether entity has a tween in progress.
func (a *Animator) Running(entity scene.EntityID) bool {
	for _, r := range a.running {
		if r.entity == entity {
			return true
		}
	}
	return false
}

// Len returns the number of running tweens.
func (a *Animator) Len() int {
	return len(a.running)
}

// Clear drops every running tween without completing it.
func (a *Animator) Clear() {
	a.running = nil
}

// Tick advances all tweens by dt, writes the interpolated rotations into the
// arena and sends a Completed event for each tween that finished. Tweens on
// despawned entities are dropped silently.
func (a *Animator) Tick(arena *scene.Arena, dt time.Duration, done *core.Events[Completed]) {
	kept := a.running[:0]
	for _, r := range a.running {
		n := arena.Get(r.entity)
		if n == nil {
			continue
		}

		r.elapsed += dt
		if r.tween.Duration <= 0 || r.elapsed >= r.tween.Duration {
			n.Transform.Rotation = r.tween.End.Normalize()
			done.Send(Completed{Entity: r.entity, UserData: r.tween.UserData})
			continue
		}

		// Completion uses the exact elapsed time, gween only the eased progress.
		eased, _ := r.progress.Set(float32(r.elapsed.Seconds()))
		n.Transform.Rotation = mgl64.QuatSlerp(r.tween.Start, r.tween.End, float64(eased))
		kept = append(kept, r)
	}
	a.running = kept
}
