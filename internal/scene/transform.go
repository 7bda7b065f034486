package scene

import "github.com/go-gl/mathgl/mgl64"

// Transform is a node's translation, rotation and uniform scale relative
// to its parent (or to the world for root nodes).
type Transform struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
	Scale       float64
}

// Identity returns the transform that leaves points unchanged.
func Identity() Transform {
	return Transform{Rotation: mgl64.QuatIdent(), Scale: 1}
}

// FromTranslation returns an unrotated, unscaled transform at v.
func FromTranslation(v mgl64.Vec3) Transform {
	t := Identity()
	t.Translation = v
	return t
}

// WithScale returns a copy of t with the given uniform scale.
func (t Transform) WithScale(s float64) Transform {
	t.Scale = s
	return t
}

// Mul composes t with a child transform expressed in t's space.
func (t Transform) Mul(child Transform) Transform {
	return Transform{
		Translation: t.TransformPoint(child.Translation),
		Rotation:    t.Rotation.Mul(child.Rotation).Normalize(),
		Scale:       t.Scale * child.Scale,
	}
}

// TransformPoint maps a point from t's local space into its parent space.
func (t Transform) TransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	return t.Translation.Add(t.Rotation.Rotate(p.Mul(t.Scale)))
}

// InverseTransformVector maps a direction from parent space into t's local
// space, undoing rotation and scale but not translation.
func (t Transform) InverseTransformVector(v mgl64.Vec3) mgl64.Vec3 {
	local := t.Rotation.Inverse().Rotate(v)
	if t.Scale == 0 {
		return local
	}
	return local.Mul(1 / t.Scale)
}
