package system

import (
	"github.com/lixenwraith/minigold/engine"
)

// Set is the full gameplay system graph of one world
type Set struct {
	Ship       *ShipSystem
	Floating   *FloatingSystem
	Projectile *ProjectileSystem
	Combat     *CombatSystem
	Body       *BodySystem
	Sweeper    *CollisionSweeper
}

// Install builds every gameplay system, wires their collaborators and registers them with the world
// The collision sweeper becomes the world's Sweeper unless one is already installed
func Install(w *engine.World) *Set {
	set := &Set{
		Combat:   NewCombatSystem(w),
		Body:     NewBodySystem(w),
		Floating: NewFloatingSystem(w),
		Sweeper:  NewCollisionSweeper(w),
	}
	if w.Resources.Sweeper == nil {
		w.Resources.Sweeper = set.Sweeper
	}
	set.Projectile = NewProjectileSystem(w, set.Combat, set.Body)
	set.Ship = NewShipSystem(w, set.Projectile)

	w.AddSystem(set.Ship)
	w.AddSystem(set.Floating)
	w.AddSystem(set.Projectile)
	w.AddSystem(set.Combat)
	w.AddSystem(set.Body)
	return set
}
