package system

import (
	"github.com/lixenwraith/minigold/core"
	"github.com/lixenwraith/minigold/engine"
	"github.com/lixenwraith/minigold/physics"
	"github.com/lixenwraith/minigold/vmath"
)

// CollisionSweeper resolves sphere sweeps against walls and blocking colliders
// It is the default engine.Sweeper for a world
type CollisionSweeper struct {
	world *engine.World
}

// NewCollisionSweeper creates a sweeper reading the world's wall and collider stores
func NewCollisionSweeper(world *engine.World) *CollisionSweeper {
	return &CollisionSweeper{world: world}
}

var _ engine.Sweeper = (*CollisionSweeper)(nil)

// Sweep returns the earliest blocking contact along delta, ties resolved by store order
func (c *CollisionSweeper) Sweep(mover core.Entity, start, delta vmath.Vec3F, radius float64) physics.SweepHit {
	best := physics.NoHit(start, delta)
	if vmath.V3FMagSq(delta) < vmath.Epsilon {
		return best
	}

	consider := func(other core.Entity, t float64, normal vmath.Vec3F) {
		if best.Blocked && t >= best.Time {
			return
		}
		best = physics.SweepHit{
			Blocked:  true,
			Time:     t,
			Normal:   normal,
			Location: vmath.V3FAdd(start, vmath.V3FScale(delta, t)),
			Other:    other,
		}
	}

	walls := c.world.Components.Wall
	for _, e := range walls.GetAllEntities() {
		if e == mover {
			continue
		}
		wall, ok := walls.GetComponent(e)
		if !ok {
			continue
		}
		if t, n, hit := physics.SweepSphereBox(start, delta, radius, wall.Bounds); hit {
			consider(e, t, n)
		}
	}

	colliders := c.world.Components.Collider
	for _, e := range colliders.GetAllEntities() {
		if e == mover {
			continue
		}
		col, ok := colliders.GetComponent(e)
		if !ok || !col.Blocking {
			continue
		}
		tr, ok := c.world.Components.Transform.GetComponent(e)
		if !ok {
			continue
		}
		if t, n, hit := physics.SweepSphereSphere(start, delta, radius, tr.Position, col.Radius); hit {
			consider(e, t, n)
		}
	}

	return best
}

// sweep routes through the world's Sweeper, treating a missing collaborator as open space
func sweep(world *engine.World, mover core.Entity, start, delta vmath.Vec3F, radius float64) physics.SweepHit {
	if world.Resources.Sweeper == nil {
		return physics.NoHit(start, delta)
	}
	return world.Resources.Sweeper.Sweep(mover, start, delta, radius)
}

// colliderRadius returns the entity's collision radius, 0 for point movers
func colliderRadius(world *engine.World, e core.Entity) float64 {
	if col, ok := world.Components.Collider.GetComponent(e); ok {
		return col.Radius
	}
	return 0
}
