package physics

import (
	"github.com/lixenwraith/minigold/vmath"
)

// Integrate performs semi-implicit Euler integration: v = v + a*dt; p = p + v*dt
// Returns the new velocity and the displacement for this step
func Integrate(vel, accel vmath.Vec3F, dt float64) (newVel, displacement vmath.Vec3F) {
	newVel = vmath.V3FAdd(vel, vmath.V3FScale(accel, dt))
	displacement = vmath.V3FScale(newVel, dt)
	return newVel, displacement
}

// ApplyImpulse adds velocity delta from an impulse on a body of given mass
// Non-positive mass is treated as unit mass
func ApplyImpulse(vel, impulse vmath.Vec3F, mass float64) vmath.Vec3F {
	if mass <= 0 {
		mass = 1
	}
	return vmath.V3FAdd(vel, vmath.V3FScale(impulse, 1/mass))
}

// Damp applies frame-rate independent linear damping: v * (1 - damping*dt), floored at 0
func Damp(vel vmath.Vec3F, damping, dt float64) vmath.Vec3F {
	decay := 1 - damping*dt
	if decay < 0 {
		decay = 0
	}
	if decay > 1 {
		decay = 1
	}
	return vmath.V3FScale(vel, decay)
}
