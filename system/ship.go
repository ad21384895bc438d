package system

import (
	"math"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/minigold/core"
	"github.com/lixenwraith/minigold/engine"
	"github.com/lixenwraith/minigold/event"
	"github.com/lixenwraith/minigold/parameter"
	"github.com/lixenwraith/minigold/physics"
	"github.com/lixenwraith/minigold/status"
	"github.com/lixenwraith/minigold/vmath"
)

// ShipSystem runs the default pawn: death check, rotate-and-sweep motion, and the main gun
// It is also the single writer of ShipInputComponent for every pawn variant
type ShipSystem struct {
	world   *engine.World
	spawner engine.ProjectileSpawner
	log     zerolog.Logger

	// Telemetry
	statActive *atomic.Int64

	enabled bool
}

// NewShipSystem creates the ship system; spawner receives fire requests
func NewShipSystem(world *engine.World, spawner engine.ProjectileSpawner) *ShipSystem {
	s := &ShipSystem{
		world:   world,
		spawner: spawner,
		log:     world.Resources.Log.With().Str("system", "ship").Logger(),
	}
	s.statActive = world.Resources.Status.Ints.Get(status.KeyShipActive)
	s.Init()
	return s
}

func (s *ShipSystem) Init() {
	s.statActive.Store(0)
	s.enabled = true
}

func (s *ShipSystem) Name() string { return "ship" }

func (s *ShipSystem) Priority() int { return parameter.PriorityShip }

func (s *ShipSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventShipInput,
		event.EventShipFireRequest,
		event.EventMetaSystemCommandRequest,
	}
}

func (s *ShipSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventMetaSystemCommandRequest:
		if payload, ok := ev.Payload.(*event.MetaSystemCommandPayload); ok {
			if payload.SystemName == s.Name() {
				s.enabled = payload.Enabled
			}
		}

	case event.EventShipInput:
		if payload, ok := ev.Payload.(*event.ShipInputPayload); ok {
			s.SetInput(payload.Ship, payload.Forward, payload.Turn)
		}

	case event.EventShipFireRequest:
		if payload, ok := ev.Payload.(*event.ShipFireRequestPayload); ok {
			s.RequestFire(payload.Ship)
		}
	}
}

// SetInput stores axis values for a pawn, clamped to [-1, 1]
// Values persist until replaced
func (s *ShipSystem) SetInput(e core.Entity, forward, turn float64) {
	in, ok := s.world.Components.Input.GetComponent(e)
	if !ok {
		return
	}
	in.Forward = clampAxis(forward)
	in.Turn = clampAxis(turn)
	s.world.Components.Input.SetComponent(e, in)
}

// RequestFire latches a fire press, consumed by the pawn's next update
func (s *ShipSystem) RequestFire(e core.Entity) {
	in, ok := s.world.Components.Input.GetComponent(e)
	if !ok {
		return
	}
	in.FirePressed = true
	s.world.Components.Input.SetComponent(e, in)
}

// Update runs the death check even while disabled; only motion and fire are switched off
func (s *ShipSystem) Update() {
	dt := s.world.Resources.Time.DeltaSeconds()
	entities := s.world.Components.Ship.GetAllEntities()

	var alive int64
	for _, e := range entities {
		if s.destroyIfDead(e) {
			continue
		}
		alive++
		if !s.enabled {
			continue
		}

		s.move(e, dt)

		in, ok := s.world.Components.Input.GetComponent(e)
		if ok && in.FirePressed {
			in.FirePressed = false
			s.world.Components.Input.SetComponent(e, in)
			s.Fire(e)
		}
	}
	s.statActive.Store(alive)
}

// destroyIfDead removes a ship at zero health, returns true if destroyed
// Ships without a health component are never destroyed here
func (s *ShipSystem) destroyIfDead(e core.Entity) bool {
	health, ok := s.world.Components.Health.GetComponent(e)
	if !ok || health.Health > 0 {
		return false
	}

	tr, _ := s.world.Components.Transform.GetComponent(e)
	s.world.DestroyEntity(e)

	s.log.Info().Uint64("ship", uint64(e)).Msg("destroyed")
	s.world.PushEvent(event.EventShipDestroyed, &event.ShipDestroyedPayload{
		Ship:     e,
		Position: tr.Position,
	})
	return true
}

// move applies rotation then a swept translation with wall deflection
func (s *ShipSystem) move(e core.Entity, dt float64) {
	ship, ok := s.world.Components.Ship.GetComponent(e)
	if !ok {
		return
	}
	tr, ok := s.world.Components.Transform.GetComponent(e)
	if !ok {
		return
	}
	in, _ := s.world.Components.Input.GetComponent(e)

	tr.Rotation.Yaw = vmath.NormalizeAxis(tr.Rotation.Yaw + in.Turn*ship.TurnRate*dt)

	delta := vmath.V3FScale(tr.Forward(), in.Forward*ship.MoveSpeed*dt)
	if vmath.V3FMagSq(delta) > 0 {
		hit := sweep(s.world, e, tr.Position, delta, colliderRadius(s.world, e))
		tr.Position, _ = physics.ResolveSweptMove(tr.Position, delta, hit)
	}

	s.world.Components.Transform.SetComponent(e, tr)
}

// Fire shoots the main gun if the cooldown gate is open
// The gate closes and exactly one reset is scheduled per accepted shot
// Returns the spawned projectile and true when a projectile was created
func (s *ShipSystem) Fire(e core.Entity) (core.Entity, bool) {
	weapon, ok := s.world.Components.Weapon.GetComponent(e)
	if !ok || !weapon.CanFire {
		return core.NoEntity, false
	}
	if health, ok := s.world.Components.Health.GetComponent(e); ok && health.Health == 0 {
		return core.NoEntity, false
	}
	tr, ok := s.world.Components.Transform.GetComponent(e)
	if !ok {
		return core.NoEntity, false
	}

	yaw := tr.Rotation.Yaw
	muzzle := vmath.V3FAdd(tr.Position, vmath.RotateYaw(weapon.GunOffset, yaw))
	rotation := vmath.Rotator{Yaw: yaw}

	projectile := core.NoEntity
	if s.spawner != nil {
		projectile = s.spawner.Spawn(muzzle, rotation, e)
	}

	weapon.CanFire = false
	weapon.ResetTask = s.world.Scheduler.ScheduleOnce(e, weapon.FireRate, func() { s.resetCooldown(e) })
	s.world.Components.Weapon.SetComponent(e, weapon)

	if weapon.Sound != core.SoundNone && s.world.Resources.Audio != nil {
		_ = s.world.Resources.Audio.Play(weapon.Sound, tr.Position)
	}

	if !projectile.Valid() {
		s.log.Warn().Uint64("ship", uint64(e)).Msg("projectile spawn failed")
		return core.NoEntity, false
	}

	s.world.PushEvent(event.EventShipFired, &event.ShipFiredPayload{
		Ship:       e,
		Projectile: projectile,
		Muzzle:     muzzle,
		Yaw:        yaw,
	})
	return projectile, true
}

// resetCooldown reopens the gate; stale callbacks for removed ships are no-ops
func (s *ShipSystem) resetCooldown(e core.Entity) {
	weapon, ok := s.world.Components.Weapon.GetComponent(e)
	if !ok {
		return
	}
	weapon.CanFire = true
	weapon.ResetTask = 0
	s.world.Components.Weapon.SetComponent(e, weapon)
}

func clampAxis(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
