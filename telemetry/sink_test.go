package telemetry

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/lixenwraith/minigold/core"
	"github.com/lixenwraith/minigold/engine"
	"github.com/lixenwraith/minigold/event"
	"github.com/lixenwraith/minigold/status"
	"github.com/lixenwraith/minigold/vmath"
)

func newSinkWorld(t *testing.T) (*engine.World, *Sink, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	w := engine.NewWorld(engine.WithLogger(zerolog.New(&buf).Level(zerolog.TraceLevel)))
	sink, err := NewSink(w, noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)
	w.AddSystem(sink)
	return w, sink, &buf
}

func intStat(w *engine.World, key string) int64 {
	return w.Resources.Status.Ints.Get(key).Load()
}

func TestSink_CountsNotifications(t *testing.T) {
	w, _, buf := newSinkWorld(t)

	w.PushEvent(event.EventShipFired, &event.ShipFiredPayload{Ship: 1, Projectile: 2})
	w.PushEvent(event.EventShipFired, &event.ShipFiredPayload{Ship: 1, Projectile: 3})
	w.PushEvent(event.EventShipHealthChanged, &event.ShipHealthChangedPayload{Ship: 4, Amount: 1, Previous: 3, Health: 2})
	w.PushEvent(event.EventShipHealthChanged, &event.ShipHealthChangedPayload{Ship: 4, Amount: 0.5, Previous: 2, Health: 2})
	w.PushEvent(event.EventProjectileHit, &event.ProjectileHitPayload{Projectile: 2, Other: 4, Damaged: true})
	w.PushEvent(event.EventImpulseApplied, &event.ImpulseAppliedPayload{Target: 4})
	w.PushEvent(event.EventProjectileExpired, &event.ProjectileExpiredPayload{Projectile: 3})
	w.PushEvent(event.EventShipDestroyed, &event.ShipDestroyedPayload{Ship: 4, Position: vmath.Vec3F{X: 5}})
	w.Step(16 * time.Millisecond)

	assert.Equal(t, int64(2), intStat(w, status.KeyShipFired))
	assert.Equal(t, int64(1), intStat(w, status.KeyCombatDamage))
	assert.Equal(t, int64(1), intStat(w, status.KeyProjectileHits))
	assert.Equal(t, int64(1), intStat(w, status.KeyBodyImpulses))
	assert.Equal(t, int64(1), intStat(w, status.KeyProjectileExpired))
	assert.Equal(t, int64(1), intStat(w, status.KeyShipDestroyed))

	out := buf.String()
	assert.Contains(t, out, `"system":"telemetry"`)
	assert.Contains(t, out, "ship destroyed")
	assert.Contains(t, out, "projectile hit")
}

func TestSink_LogsFloatingFireAndReset(t *testing.T) {
	w, _, buf := newSinkWorld(t)

	w.PushEvent(event.EventFloatingFireIgnored, &event.ShipFireRequestPayload{Ship: core.Entity(7)})
	w.Step(16 * time.Millisecond)
	assert.Contains(t, buf.String(), "fire ignored by floating pawn")

	w.Reset()
	w.Step(16 * time.Millisecond)
	assert.Contains(t, buf.String(), "game reset")
}

func TestSink_ResetClearsCounters(t *testing.T) {
	w, _, _ := newSinkWorld(t)

	w.PushEvent(event.EventShipFired, &event.ShipFiredPayload{Ship: 1})
	w.Step(16 * time.Millisecond)
	require.Equal(t, int64(1), intStat(w, status.KeyShipFired))

	w.Reset()
	assert.Equal(t, int64(0), intStat(w, status.KeyShipFired))
}

func TestSink_MetaDisable(t *testing.T) {
	w, _, _ := newSinkWorld(t)

	w.PushEvent(event.EventMetaSystemCommandRequest, &event.MetaSystemCommandPayload{SystemName: "telemetry", Enabled: false})
	w.PushEvent(event.EventShipFired, &event.ShipFiredPayload{Ship: 1})
	w.Step(16 * time.Millisecond)

	assert.Equal(t, int64(0), intStat(w, status.KeyShipFired))
}

func TestNewSink_NilMeterUsesGlobal(t *testing.T) {
	w := engine.NewWorld()
	sink, err := NewSink(w, nil)
	require.NoError(t, err)
	assert.Equal(t, "telemetry", sink.Name())
}
