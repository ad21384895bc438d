package system

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/minigold/core"
	"github.com/lixenwraith/minigold/engine"
	"github.com/lixenwraith/minigold/event"
	"github.com/lixenwraith/minigold/parameter"
	"github.com/lixenwraith/minigold/physics"
	"github.com/lixenwraith/minigold/vmath"
)

// FloatingSystem drives the simple pawn variant
// The hull thrusts along its facing every tick, turn input is ignored and it carries no gun
type FloatingSystem struct {
	world *engine.World
	log   zerolog.Logger

	enabled bool
}

// NewFloatingSystem creates the floating pawn system
func NewFloatingSystem(world *engine.World) *FloatingSystem {
	s := &FloatingSystem{
		world: world,
		log:   world.Resources.Log.With().Str("system", "floating").Logger(),
	}
	s.Init()
	return s
}

func (s *FloatingSystem) Init() {
	s.enabled = true
}

func (s *FloatingSystem) Name() string { return "floating" }

func (s *FloatingSystem) Priority() int { return parameter.PriorityFloating }

func (s *FloatingSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
	}
}

func (s *FloatingSystem) HandleEvent(ev event.GameEvent) {
	if payload, ok := ev.Payload.(*event.MetaSystemCommandPayload); ok {
		if payload.SystemName == s.Name() {
			s.enabled = payload.Enabled
		}
	}
}

func (s *FloatingSystem) Update() {
	if !s.enabled {
		return
	}

	dt := s.world.Resources.Time.DeltaSeconds()
	for _, e := range s.world.Components.Floating.GetAllEntities() {
		s.step(e, dt)
	}
}

// ThrustInput returns the movement input scale for a forward axis value
// The hull always adds Speed; the forward axis adds another Speed-weighted share
func ThrustInput(speed, forward float64) float64 {
	return clampAxis(speed + forward*speed)
}

func (s *FloatingSystem) step(e core.Entity, dt float64) {
	fm, ok := s.world.Components.Floating.GetComponent(e)
	if !ok {
		return
	}
	tr, ok := s.world.Components.Transform.GetComponent(e)
	if !ok {
		return
	}
	in, _ := s.world.Components.Input.GetComponent(e)

	thrust := ThrustInput(fm.Speed, in.Forward)
	desired := vmath.V3FScale(tr.Forward(), thrust*fm.MaxSpeed)
	rate := fm.Acceleration
	if thrust == 0 {
		rate = fm.Deceleration
	}
	fm.Velocity = physics.Approach(fm.Velocity, desired, rate*dt)

	delta := vmath.V3FScale(fm.Velocity, dt)
	if vmath.V3FMagSq(delta) > 0 {
		hit := sweep(s.world, e, tr.Position, delta, colliderRadius(s.world, e))
		tr.Position = physics.ContactPoint(tr.Position, delta, hit)
		if hit.Blocked {
			fm.Velocity = vmath.V3FPlaneProject(fm.Velocity, hit.Normal)
		}
	}

	if in.FirePressed {
		in.FirePressed = false
		s.world.Components.Input.SetComponent(e, in)
		s.log.Debug().Uint64("pawn", uint64(e)).Msg("fire ignored, no gun mounted")
		s.world.PushEvent(event.EventFloatingFireIgnored, &event.ShipFireRequestPayload{Ship: e})
	}

	s.world.Components.Transform.SetComponent(e, tr)
	s.world.Components.Floating.SetComponent(e, fm)
}
