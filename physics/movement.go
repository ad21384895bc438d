package physics

import (
	"github.com/lixenwraith/minigold/vmath"
)

// CapSpeed limits the velocity magnitude to maxSpeed
// Non-positive maxSpeed means unlimited
// Returns the capped velocity and true if it was clamped
func CapSpeed(vel vmath.Vec3F, maxSpeed float64) (vmath.Vec3F, bool) {
	if maxSpeed <= 0 {
		return vel, false
	}
	if vmath.V3FMagSq(vel) <= maxSpeed*maxSpeed {
		return vel, false
	}
	return vmath.V3FClampMagnitude(vel, maxSpeed), true
}

// LaunchVelocity returns the initial velocity along the rotator's facing
// Speed is initialSpeed limited by maxSpeed (non-positive maxSpeed means unlimited)
func LaunchVelocity(rot vmath.Rotator, initialSpeed, maxSpeed float64) vmath.Vec3F {
	speed := initialSpeed
	if maxSpeed > 0 && speed > maxSpeed {
		speed = maxSpeed
	}
	return vmath.V3FScale(rot.Forward(), speed)
}

// BallisticStep advances a projectile velocity by one tick of scaled gravity and caps it
// gravity is the full world acceleration, gravityScale its fraction applied to this body
func BallisticStep(vel, gravity vmath.Vec3F, gravityScale, maxSpeed, dt float64) (newVel, displacement vmath.Vec3F) {
	newVel, _ = Integrate(vel, vmath.V3FScale(gravity, gravityScale), dt)
	newVel, _ = CapSpeed(newVel, maxSpeed)
	return newVel, vmath.V3FScale(newVel, dt)
}

// Approach moves current toward target by at most maxDelta, per component-free vector distance
func Approach(current, target vmath.Vec3F, maxDelta float64) vmath.Vec3F {
	diff := vmath.V3FSub(target, current)
	dist := vmath.V3FMag(diff)
	if dist <= maxDelta || dist < vmath.Epsilon {
		return target
	}
	return vmath.V3FAdd(current, vmath.V3FScale(diff, maxDelta/dist))
}
