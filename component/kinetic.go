package component

import (
	"github.com/lixenwraith/minigold/vmath"
)

// KineticComponent carries linear velocity in units/sec
type KineticComponent struct {
	Velocity vmath.Vec3F
}
