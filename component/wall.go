package component

import (
	"github.com/lixenwraith/minigold/physics"
)

// WallComponent is static level geometry, an axis-aligned box in world space
type WallComponent struct {
	Bounds physics.Box
}
