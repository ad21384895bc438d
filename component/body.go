package component

import (
	"github.com/lixenwraith/minigold/vmath"
)

// BodyComponent marks an entity that reacts to impulses
type BodyComponent struct {
	// Simulating enables impulse response and drift integration
	Simulating bool

	// Mass divides applied impulses, non-positive is treated as 1
	Mass float64

	// Velocity is the body's drift velocity in units/sec
	Velocity vmath.Vec3F

	// Damping is linear velocity decay per second
	Damping float64
}
