package system

import (
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

// BodySystem owns impulse delivery and drift of simulating bodies
type BodySystem struct {
	world *engine.World
	log   zerolog.Logger

	// Telemetry
	statActive *atomic.Int64

	enabled bool
}

// NewBodySystem creates the physics body system
func NewBodySystem(world *engine.World) *BodySystem {
	s := &BodySystem{
		world: world,
		log:   world.Resources.Log.With().Str("system", "body").Logger(),
	}
	s.statActive = world.Resources.Status.Ints.Get(status.KeyBodyActive)
	s.Init()
	return s
}

func (s *BodySystem) Init() {
	s.statActive.Store(0)
	s.enabled = true
}

func (s *BodySystem) Name() string { return "body" }

func (s *BodySystem) Priority() int { return parameter.PriorityBody }

func (s *BodySystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
	}
}

func (s *BodySystem) HandleEvent(ev event.GameEvent) {
	if payload, ok := ev.Payload.(*event.MetaSystemCommandPayload); ok {
		if payload.SystemName == s.Name() {
			s.enabled = payload.Enabled
		}
	}
}

// ApplyImpulse delivers an impulse to target at a world location
// Only a simulating body changes velocity; the notification is emitted either way
// Returns true if the target's velocity changed
func (s *BodySystem) ApplyImpulse(target core.Entity, impulse, at vmath.Vec3F, source core.Entity) bool {
	body, ok := s.world.Components.Body.GetComponent(target)
	moved := ok && body.Simulating
	if moved {
		body.Velocity = physics.ApplyImpulse(body.Velocity, impulse, body.Mass)
		s.world.Components.Body.SetComponent(target, body)
	}

	s.world.PushEvent(event.EventImpulseApplied, &event.ImpulseAppliedPayload{
		Target:   target,
		Source:   source,
		Impulse:  impulse,
		Location: at,
		Moved:    moved,
	})
	return moved
}

func (s *BodySystem) Update() {
	if !s.enabled {
		return
	}

	dt := s.world.Resources.Time.DeltaSeconds()
	bodies := s.world.Components.Body
	entities := bodies.GetAllEntities()

	var active int64
	for _, e := range entities {
		body, ok := bodies.GetComponent(e)
		if !ok || !body.Simulating {
			continue
		}
		active++

		body.Velocity = physics.Damp(body.Velocity, body.Damping, dt)
		if vmath.V3FMagSq(body.Velocity) < vmath.Epsilon {
			body.Velocity = vmath.Vec3F{}
			bodies.SetComponent(e, body)
			continue
		}

		tr, ok := s.world.Components.Transform.GetComponent(e)
		if !ok {
			bodies.SetComponent(e, body)
			continue
		}

		delta := vmath.V3FScale(body.Velocity, dt)
		hit := sweep(s.world, e, tr.Position, delta, colliderRadius(s.world, e))
		if hit.Blocked {
			// Stop at contact and drop the velocity component into the surface
			tr.Position = physics.ContactPoint(tr.Position, delta, hit)
			body.Velocity = vmath.V3FPlaneProject(body.Velocity, hit.Normal)
		} else {
			tr.Position = vmath.V3FAdd(tr.Position, delta)
		}

		s.world.Components.Transform.SetComponent(e, tr)
		bodies.SetComponent(e, body)
	}
	s.statActive.Store(active)
}
