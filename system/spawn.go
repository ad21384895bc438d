package system

import (
	"github.com/lixenwraith/minigold/component"
	"github.com/lixenwraith/minigold/core"
	"github.com/lixenwraith/minigold/engine"
	"github.com/lixenwraith/minigold/physics"
	"github.com/lixenwraith/minigold/vmath"
)

// SpawnShip creates a default pawn from the world tuning: hull, gun, health, input and collider
func SpawnShip(w *engine.World, position vmath.Vec3F, yaw float64) core.Entity {
	t := w.Resources.Tuning.Ship
	eb := w.NewEntity()

	engine.With(eb, w.Components.Transform, component.TransformComponent{
		Position: position,
		Rotation: vmath.Rotator{Yaw: vmath.NormalizeAxis(yaw)},
	})
	engine.With(eb, w.Components.Ship, component.ShipComponent{
		MoveSpeed: t.MoveSpeed,
		TurnRate:  t.TurnRate,
	})
	engine.With(eb, w.Components.Input, component.ShipInputComponent{})
	engine.With(eb, w.Components.Weapon, component.WeaponComponent{
		CanFire:   true,
		FireRate:  t.FireRate,
		GunOffset: t.GunOffset,
		Sound:     core.SoundCannon,
	})
	engine.With(eb, w.Components.Health, component.HealthComponent{
		Health: t.Health,
		Max:    t.Health,
	})
	return engine.With(eb, w.Components.Collider, component.ColliderComponent{
		Radius:   t.Radius,
		Blocking: true,
	}).Build()
}

// SpawnFloating creates the simple pawn variant: thrusting hull without gun or health
func SpawnFloating(w *engine.World, position vmath.Vec3F, yaw float64) core.Entity {
	t := w.Resources.Tuning
	eb := w.NewEntity()

	engine.With(eb, w.Components.Transform, component.TransformComponent{
		Position: position,
		Rotation: vmath.Rotator{Yaw: vmath.NormalizeAxis(yaw)},
	})
	engine.With(eb, w.Components.Input, component.ShipInputComponent{})
	engine.With(eb, w.Components.Floating, component.FloatingMovementComponent{
		Speed:        t.Floating.Speed,
		MaxSpeed:     t.Floating.MaxSpeed,
		Acceleration: t.Floating.Acceleration,
		Deceleration: t.Floating.Deceleration,
	})
	return engine.With(eb, w.Components.Collider, component.ColliderComponent{
		Radius:   t.Ship.Radius,
		Blocking: true,
	}).Build()
}

// SpawnWall creates static box geometry
func SpawnWall(w *engine.World, bounds physics.Box) core.Entity {
	eb := w.NewEntity()
	engine.With(eb, w.Components.Transform, component.TransformComponent{Position: bounds.Center()})
	return engine.With(eb, w.Components.Wall, component.WallComponent{Bounds: bounds}).Build()
}

// SpawnBody creates a drifting prop that reacts to cannon impulses
func SpawnBody(w *engine.World, position vmath.Vec3F, radius, mass float64) core.Entity {
	eb := w.NewEntity()
	engine.With(eb, w.Components.Transform, component.TransformComponent{Position: position})
	engine.With(eb, w.Components.Body, component.BodyComponent{
		Simulating: true,
		Mass:       mass,
		Damping:    w.Resources.Tuning.World.BodyDamping,
	})
	return engine.With(eb, w.Components.Collider, component.ColliderComponent{
		Radius:   radius,
		Blocking: true,
	}).Build()
}
