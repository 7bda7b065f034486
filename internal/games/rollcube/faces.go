package rollcube

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/rollcube/internal/core"
)

// Face indexes a cube face in its home orientation.
type Face int

const (
	FaceTop Face = iota
	FaceBottom
	FaceNorth
	FaceSouth
	FaceEast
	FaceWest
)

var faceNormals = [6]mgl64.Vec3{
	FaceTop:    {0, 0, 1},
	FaceBottom: {0, 0, -1},
	FaceNorth:  {0, 1, 0},
	FaceSouth:  {0, -1, 0},
	FaceEast:   {1, 0, 0},
	FaceWest:   {-1, 0, 0},
}

var toCamera = mgl64.Vec3{0, 0, 1}

// TopFace returns the face of a body that points most towards the camera.
func TopFace(rot mgl64.Quat) Face {
	best, bestDot := FaceTop, -2.0
	for f, n := range faceNormals {
		if d := rot.Rotate(n).Dot(toCamera); d > bestDot {
			best, bestDot = Face(f), d
		}
	}
	return best
}

// Skin is the colour of each face, indexed by Face.
type Skin [6]core.Color

// Color returns the colour shown by a body with the given world rotation.
func (s Skin) Color(rot mgl64.Quat) core.Color {
	return s[TopFace(rot)]
}
