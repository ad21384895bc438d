package parameter

import (
	"time"
)

// Simulation timing
const (
	// TickInterval is the fixed simulation step of the clock scheduler
	TickInterval = 16 * time.Millisecond

	// FrameInterval is the render refresh interval of the terminal front end
	FrameInterval = 33 * time.Millisecond

	// MaxTickDelta caps the step fed to systems after a stall
	MaxTickDelta = 100 * time.Millisecond
)

// ECS & Resources Limits
const (
	// EventQueueSize is the number of pending events kept before the oldest is evicted
	EventQueueSize = 2048
)

// Input binding names, kept identical to the axis/action mapping of the front end
const (
	BindingMoveForward = "MoveForward"
	BindingMoveTurn    = "MoveTurn"
	BindingFire        = "FireCannons"
)
