package rollcube

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite() == d || d.Opposite().Opposite() != d {
			t.Errorf("%v: bad opposite %v", d, d.Opposite())
		}
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx != -ox || dy != -oy {
			t.Errorf("%v and its opposite should travel in reverse", d)
		}
	}
}

func TestDirectionIDRoundTrip(t *testing.T) {
	expected := map[Direction]uint64{Right: 1, Left: 2, Up: 3, Down: 4}
	for d, id := range expected {
		if d.ID() != id {
			t.Errorf("%v.ID() = %d, expected %d", d, d.ID(), id)
		}
		if DirectionFromID(id) != d {
			t.Errorf("DirectionFromID(%d) = %v, expected %v", id, DirectionFromID(id), d)
		}
	}
}

func TestDirectionFromUnknownIDPanics(t *testing.T) {
	for _, id := range []uint64{0, 5, 1 << 40} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("DirectionFromID(%d) should panic", id)
				}
			}()
			DirectionFromID(id)
		}()
	}
}

// vecNear compares by distance. mgl64's ApproxEqualThreshold squares the
// threshold for zero components, which rounding noise from a rotation fails.
func vecNear(a, b mgl64.Vec3, tol float64) bool {
	return a.Sub(b).Len() <= tol
}

func quatNear(a, b mgl64.Quat, tol float64) bool {
	return math.Abs(a.W-b.W) <= tol && vecNear(a.V, b.V, tol)
}

func TestRollAxisTipsTopForward(t *testing.T) {
	// Rolling forward turns the top face towards the direction of travel.
	up := mgl64.Vec3{0, 0, 1}
	for _, d := range Directions {
		rot := mgl64.QuatRotate(mgl64.DegToRad(90), d.Axis())
		if got := rot.Rotate(up); !vecNear(got, d.Translation(), 1e-9) {
			t.Errorf("%v: top face ends at %v, expected %v", d, got, d.Translation())
		}
	}
}

func TestRollAxisQuarterTurnsCompose(t *testing.T) {
	// Four quarter turns about the same axis bring every face back.
	for _, d := range Directions {
		quarter := mgl64.QuatRotate(mgl64.DegToRad(90), d.Axis())
		rot := mgl64.QuatIdent()
		for range 4 {
			rot = quarter.Mul(rot)
		}
		if !quatNear(rot, mgl64.QuatIdent(), 1e-9) && !quatNear(rot.Scale(-1), mgl64.QuatIdent(), 1e-9) {
			t.Errorf("%v: four quarter turns = %v, expected identity", d, rot)
		}
		for _, v := range []mgl64.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} {
			if got := rot.Rotate(v); !vecNear(got, v, 1e-9) {
				t.Errorf("%v: %v ends at %v", d, v, got)
			}
		}
	}
}
