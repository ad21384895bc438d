package component

import (
	"github.com/lixenwraith/minigold/vmath"
)

// TransformComponent places an entity in world space
type TransformComponent struct {
	Position vmath.Vec3F
	Rotation vmath.Rotator
}

// Forward returns the horizontal facing derived from yaw, Z is always 0
func (t TransformComponent) Forward() vmath.Vec3F {
	return vmath.YawForward(t.Rotation.Yaw)
}
