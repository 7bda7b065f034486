package rollcube

import "github.com/vovakirdan/rollcube/internal/registry"

// Variant describes a board shape.
type Variant struct {
	ID     string
	Title  string
	Width  int
	Height int
	Empty  Cell // cell left without a cube at the start
}

// Registered variants.
var (
	Classic = Variant{ID: "rollcube", Title: "Rolling Cubes", Width: 3, Height: 3, Empty: Cell{X: 1, Y: 1}}
	Large   = Variant{ID: "rollcube_4x4", Title: "Rolling Cubes 4x4", Width: 4, Height: 4, Empty: Cell{X: 3, Y: 0}}
	Tall    = Variant{ID: "rollcube_3x4", Title: "Rolling Cubes 3x4", Width: 3, Height: 4, Empty: Cell{X: 2, Y: 0}}
)

// Variants lists the registered variants in menu order.
var Variants = []Variant{Classic, Large, Tall}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}
