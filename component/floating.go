package component

import (
	"github.com/lixenwraith/minigold/vmath"
)

// FloatingMovementComponent drives the simple pawn variant
// The hull thrusts along its facing every tick and never turns from input
type FloatingMovementComponent struct {
	Speed        float64 // Thrust input scale per tick
	MaxSpeed     float64 // Top speed in units/sec
	Acceleration float64 // units/sec^2 toward the desired velocity
	Deceleration float64 // units/sec^2 when no thrust is requested
	Velocity     vmath.Vec3F
}
