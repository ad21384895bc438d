package system

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/minigold/component"
	"github.com/lixenwraith/minigold/core"
	"github.com/lixenwraith/minigold/engine"
	"github.com/lixenwraith/minigold/event"
	"github.com/lixenwraith/minigold/parameter"
	"github.com/lixenwraith/minigold/physics"
	"github.com/lixenwraith/minigold/status"
	"github.com/lixenwraith/minigold/vmath"
)

// ProjectileSystem manages cannonball lifecycle
// Shots follow a ballistic arc, resolve their first blocking contact and expire after a fixed lifespan
// Implements engine.ProjectileSpawner for ShipSystem
type ProjectileSystem struct {
	world  *engine.World
	combat *CombatSystem
	bodies *BodySystem
	log    zerolog.Logger

	// Telemetry
	statActive *atomic.Int64

	enabled bool
}

// NewProjectileSystem creates the projectile system
// combat and bodies receive damage and impulses from hits
func NewProjectileSystem(world *engine.World, combat *CombatSystem, bodies *BodySystem) *ProjectileSystem {
	s := &ProjectileSystem{
		world:  world,
		combat: combat,
		bodies: bodies,
		log:    world.Resources.Log.With().Str("system", "projectile").Logger(),
	}
	s.statActive = world.Resources.Status.Ints.Get(status.KeyProjectileActive)
	s.Init()
	return s
}

var _ engine.ProjectileSpawner = (*ProjectileSystem)(nil)

func (s *ProjectileSystem) Init() {
	s.statActive.Store(0)
	s.enabled = true
}

func (s *ProjectileSystem) Name() string { return "projectile" }

func (s *ProjectileSystem) Priority() int { return parameter.PriorityProjectile }

func (s *ProjectileSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
	}
}

func (s *ProjectileSystem) HandleEvent(ev event.GameEvent) {
	if payload, ok := ev.Payload.(*event.MetaSystemCommandPayload); ok {
		if payload.SystemName == s.Name() {
			s.enabled = payload.Enabled
		}
	}
}

// Spawn creates a cannonball at position facing rotation, attributed to owner
// Velocity is the rotation's forward times initial speed, capped by max speed
func (s *ProjectileSystem) Spawn(position vmath.Vec3F, rotation vmath.Rotator, owner core.Entity) core.Entity {
	t := s.world.Resources.Tuning.Projectile

	w := s.world
	eb := w.NewEntity()
	e := eb.Entity()

	proj := component.ProjectileComponent{
		Owner:        owner,
		MaxSpeed:     t.MaxSpeed,
		GravityScale: t.GravityScale,
		Lifespan:     t.Lifespan,
		Damage:       t.Damage,
		ImpulseScale: t.ImpulseScale,
	}
	proj.ExpireTask = w.Scheduler.ScheduleOnce(e, t.Lifespan, func() { s.expire(e) })

	engine.With(eb, w.Components.Transform, component.TransformComponent{
		Position: position,
		Rotation: rotation,
	})
	engine.With(eb, w.Components.Kinetic, component.KineticComponent{
		Velocity: physics.LaunchVelocity(rotation, t.InitialSpeed, t.MaxSpeed),
	})
	engine.With(eb, w.Components.Collider, component.ColliderComponent{Radius: t.Radius})
	engine.With(eb, w.Components.Projectile, proj).Build()

	s.log.Debug().
		Uint64("projectile", uint64(e)).
		Uint64("owner", uint64(owner)).
		Float64("yaw", rotation.Yaw).
		Msg("spawned")
	return e
}

func (s *ProjectileSystem) Update() {
	if !s.enabled {
		return
	}

	dt := s.world.Resources.Time.DeltaSeconds()
	gravity := s.world.Resources.Tuning.GravityVector()

	entities := s.world.Components.Projectile.GetAllEntities()
	s.statActive.Store(int64(len(entities)))
	if len(entities) == 0 || dt <= 0 {
		return
	}

	for _, e := range entities {
		proj, ok := s.world.Components.Projectile.GetComponent(e)
		if !ok {
			continue
		}
		kinetic, ok := s.world.Components.Kinetic.GetComponent(e)
		if !ok {
			continue
		}
		tr, ok := s.world.Components.Transform.GetComponent(e)
		if !ok {
			continue
		}

		vel, delta := physics.BallisticStep(kinetic.Velocity, gravity, proj.GravityScale, proj.MaxSpeed, dt)
		kinetic.Velocity = vel

		hit := sweep(s.world, e, tr.Position, delta, colliderRadius(s.world, e))
		tr.Position = physics.ContactPoint(tr.Position, delta, hit)
		if vmath.V3FMagSq(vel) > vmath.Epsilon {
			tr.Rotation = vmath.RotatorFromDirection(vel)
		}
		s.world.Components.Kinetic.SetComponent(e, kinetic)
		s.world.Components.Transform.SetComponent(e, tr)

		if hit.Blocked {
			s.OnHit(e, hit.Other, tr.Position)
		}
	}
}

// OnHit resolves a collision of projectile with other at location
// Null and self targets are ignored; any other target consumes the projectile
// Ships and simulating bodies receive one impulse of velocity * ImpulseScale; ships also take Damage
// Returns true if the projectile was consumed
func (s *ProjectileSystem) OnHit(projectile, other core.Entity, at vmath.Vec3F) bool {
	if !other.Valid() || other == projectile {
		return false
	}
	proj, ok := s.world.Components.Projectile.GetComponent(projectile)
	if !ok || proj.Hit {
		return false
	}
	proj.Hit = true
	s.world.Components.Projectile.SetComponent(projectile, proj)

	kinetic, _ := s.world.Components.Kinetic.GetComponent(projectile)

	isShip := s.world.Components.Ship.HasEntity(other)
	body, hasBody := s.world.Components.Body.GetComponent(other)
	isBody := hasBody && body.Simulating

	impulse := false
	if isShip || isBody {
		if s.bodies != nil {
			s.bodies.ApplyImpulse(other, vmath.V3FScale(kinetic.Velocity, proj.ImpulseScale), at, projectile)
		}
		impulse = true
	}

	damaged := false
	if isShip && s.combat != nil {
		_, damaged = s.combat.TakeDamage(other, proj.Damage, projectile)
	}

	s.world.PushEvent(event.EventProjectileHit, &event.ProjectileHitPayload{
		Projectile: projectile,
		Owner:      proj.Owner,
		Other:      other,
		Location:   at,
		Impulse:    impulse,
		Damaged:    damaged,
	})

	s.log.Debug().
		Uint64("projectile", uint64(projectile)).
		Uint64("other", uint64(other)).
		Bool("ship", isShip).
		Bool("body", isBody).
		Msg("hit")

	s.world.DestroyEntity(projectile)
	return true
}

// expire removes a projectile whose lifespan elapsed without a hit
func (s *ProjectileSystem) expire(e core.Entity) {
	proj, ok := s.world.Components.Projectile.GetComponent(e)
	if !ok || proj.Hit {
		return
	}
	tr, _ := s.world.Components.Transform.GetComponent(e)

	s.world.PushEvent(event.EventProjectileExpired, &event.ProjectileExpiredPayload{
		Projectile: e,
		Owner:      proj.Owner,
		Position:   tr.Position,
	})
	s.world.DestroyEntity(e)
}
