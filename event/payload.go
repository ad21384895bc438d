package event

import (
	"github.com/lixenwraith/minigold/core"
	"github.com/lixenwraith/minigold/vmath"
)

// ShipInputPayload carries sampled axis values for one ship
type ShipInputPayload struct {
	Ship    core.Entity
	Forward float64
	Turn    float64
}

// ShipFireRequestPayload identifies the ship whose FireCannons action was pressed
type ShipFireRequestPayload struct {
	Ship core.Entity
}

// ShipFiredPayload describes a successful shot
type ShipFiredPayload struct {
	Ship       core.Entity
	Projectile core.Entity
	Muzzle     vmath.Vec3F
	Yaw        float64
}

// ShipHealthChangedPayload describes an accepted damage call
// Previous == Health when the amount truncated to zero
type ShipHealthChangedPayload struct {
	Ship       core.Entity
	Instigator core.Entity
	Amount     float64
	Previous   uint32
	Health     uint32
}

// ShipDestroyedPayload describes a ship removed at zero health
type ShipDestroyedPayload struct {
	Ship     core.Entity
	Position vmath.Vec3F
}

// ProjectileHitPayload describes a resolved projectile collision
type ProjectileHitPayload struct {
	Projectile core.Entity
	Owner      core.Entity
	Other      core.Entity
	Location   vmath.Vec3F
	Impulse    bool // An impulse was delivered to Other
	Damaged    bool // Other was a ship and took damage
}

// ProjectileExpiredPayload describes a projectile removed by its lifespan
type ProjectileExpiredPayload struct {
	Projectile core.Entity
	Owner      core.Entity
	Position   vmath.Vec3F
}

// ImpulseAppliedPayload describes an impulse delivered to an entity
// Moved is false when the target has no simulating body to absorb it
type ImpulseAppliedPayload struct {
	Target   core.Entity
	Source   core.Entity
	Impulse  vmath.Vec3F
	Location vmath.Vec3F
	Moved    bool
}

// MetaSystemCommandPayload toggles a system at runtime
type MetaSystemCommandPayload struct {
	SystemName string
	Enabled    bool
}
