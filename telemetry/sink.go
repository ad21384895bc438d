package telemetry

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/minigold/engine"
	"github.com/lixenwraith/minigold/event"
	"github.com/lixenwraith/minigold/parameter"
	"github.com/lixenwraith/minigold/status"
)

const instrumentationName = "github.com/lixenwraith/minigold/telemetry"

// Sink is the observability endpoint for gameplay notifications
// It logs each notification, counts it in the status registry and mirrors the count to OpenTelemetry
type Sink struct {
	world *engine.World
	log   zerolog.Logger

	// Telemetry
	statFired     *atomic.Int64
	statDestroyed *atomic.Int64
	statDamage    *atomic.Int64
	statHits      *atomic.Int64
	statExpired   *atomic.Int64
	statImpulses  *atomic.Int64

	fired     metric.Int64Counter
	destroyed metric.Int64Counter
	damage    metric.Int64Counter
	hits      metric.Int64Counter
	expired   metric.Int64Counter
	impulses  metric.Int64Counter

	enabled bool
}

// NewSink creates the sink; a nil meter uses the global OTel provider (no-op if not configured)
func NewSink(world *engine.World, meter metric.Meter) (*Sink, error) {
	if meter == nil {
		meter = otel.Meter(instrumentationName)
	}

	reg := world.Resources.Status
	s := &Sink{
		world:         world,
		log:           world.Resources.Log.With().Str("system", "telemetry").Logger(),
		statFired:     reg.Ints.Get(status.KeyShipFired),
		statDestroyed: reg.Ints.Get(status.KeyShipDestroyed),
		statDamage:    reg.Ints.Get(status.KeyCombatDamage),
		statHits:      reg.Ints.Get(status.KeyProjectileHits),
		statExpired:   reg.Ints.Get(status.KeyProjectileExpired),
		statImpulses:  reg.Ints.Get(status.KeyBodyImpulses),
	}

	counters := []struct {
		dst  *metric.Int64Counter
		name string
		desc string
	}{
		{&s.fired, status.KeyShipFired, "Shots fired"},
		{&s.destroyed, status.KeyShipDestroyed, "Ships destroyed"},
		{&s.damage, status.KeyCombatDamage, "Hull points removed"},
		{&s.hits, status.KeyProjectileHits, "Projectile collisions resolved"},
		{&s.expired, status.KeyProjectileExpired, "Projectiles removed by lifespan"},
		{&s.impulses, status.KeyBodyImpulses, "Impulses delivered"},
	}
	for _, c := range counters {
		counter, err := meter.Int64Counter(c.name, metric.WithDescription(c.desc))
		if err != nil {
			return nil, fmt.Errorf("creating %s counter: %w", c.name, err)
		}
		*c.dst = counter
	}

	s.Init()
	return s, nil
}

func (s *Sink) Init() {
	s.statFired.Store(0)
	s.statDestroyed.Store(0)
	s.statDamage.Store(0)
	s.statHits.Store(0)
	s.statExpired.Store(0)
	s.statImpulses.Store(0)
	s.enabled = true
}

func (s *Sink) Name() string { return "telemetry" }

func (s *Sink) Priority() int { return parameter.PriorityTelemetry }

func (s *Sink) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventShipFired,
		event.EventShipHealthChanged,
		event.EventShipDestroyed,
		event.EventProjectileHit,
		event.EventProjectileExpired,
		event.EventImpulseApplied,
		event.EventFloatingFireIgnored,
		event.EventMetaSystemCommandRequest,
	}
}

func (s *Sink) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventMetaSystemCommandRequest {
		if payload, ok := ev.Payload.(*event.MetaSystemCommandPayload); ok {
			if payload.SystemName == s.Name() {
				s.enabled = payload.Enabled
			}
		}
		return
	}
	if !s.enabled {
		return
	}

	ctx := context.Background()

	switch payload := ev.Payload.(type) {
	case *event.ShipFiredPayload:
		s.statFired.Add(1)
		s.fired.Add(ctx, 1)
		s.log.Debug().
			Int64("frame", ev.Frame).
			Uint64("ship", uint64(payload.Ship)).
			Uint64("projectile", uint64(payload.Projectile)).
			Float64("yaw", payload.Yaw).
			Msg("fired")

	case *event.ShipHealthChangedPayload:
		lost := int64(payload.Previous) - int64(payload.Health)
		s.statDamage.Add(lost)
		s.damage.Add(ctx, lost, metric.WithAttributes(attribute.Bool("truncated", lost == 0)))
		s.log.Debug().
			Int64("frame", ev.Frame).
			Uint64("ship", uint64(payload.Ship)).
			Uint64("instigator", uint64(payload.Instigator)).
			Uint32("health", payload.Health).
			Int64("lost", lost).
			Msg("health changed")

	case *event.ShipDestroyedPayload:
		s.statDestroyed.Add(1)
		s.destroyed.Add(ctx, 1)
		s.log.Info().
			Int64("frame", ev.Frame).
			Uint64("ship", uint64(payload.Ship)).
			Float64("x", payload.Position.X).
			Float64("y", payload.Position.Y).
			Msg("ship destroyed")

	case *event.ProjectileHitPayload:
		s.statHits.Add(1)
		s.hits.Add(ctx, 1, metric.WithAttributes(attribute.Bool("damaged", payload.Damaged)))
		s.log.Debug().
			Int64("frame", ev.Frame).
			Uint64("projectile", uint64(payload.Projectile)).
			Uint64("owner", uint64(payload.Owner)).
			Uint64("other", uint64(payload.Other)).
			Bool("impulse", payload.Impulse).
			Bool("damaged", payload.Damaged).
			Msg("projectile hit")

	case *event.ProjectileExpiredPayload:
		s.statExpired.Add(1)
		s.expired.Add(ctx, 1)
		s.log.Trace().
			Int64("frame", ev.Frame).
			Uint64("projectile", uint64(payload.Projectile)).
			Msg("projectile expired")

	case *event.ImpulseAppliedPayload:
		s.statImpulses.Add(1)
		s.impulses.Add(ctx, 1, metric.WithAttributes(attribute.Bool("moved", payload.Moved)))
		s.log.Debug().
			Int64("frame", ev.Frame).
			Uint64("target", uint64(payload.Target)).
			Bool("moved", payload.Moved).
			Msg("impulse")

	case *event.ShipFireRequestPayload:
		s.log.Debug().
			Int64("frame", ev.Frame).
			Uint64("ship", uint64(payload.Ship)).
			Msg("fire ignored by floating pawn")

	case nil:
		if ev.Type == event.EventGameReset {
			s.log.Info().Int64("frame", ev.Frame).Msg("game reset")
		}
	}
}

func (s *Sink) Update() {}
