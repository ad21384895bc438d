package component

import (
	"time"

	"github.com/lixenwraith/minigold/core"
)

// ProjectileComponent marks a ballistic shot fired by a ship
type ProjectileComponent struct {
	Owner core.Entity // Firing ship, attribution only

	MaxSpeed     float64       // Velocity magnitude cap
	GravityScale float64       // Fraction of world gravity applied
	Lifespan     time.Duration // Expiry delay from spawn
	Damage       float64       // Applied to ships on hit
	ImpulseScale float64       // Impulse = velocity * ImpulseScale

	ExpireTask core.TaskID // Pending lifespan expiry

	// Hit is set while the hit handler runs so re-entrant collisions are ignored
	Hit bool
}
