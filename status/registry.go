package status

import "sync/atomic"

// Metric keys shared by the telemetry sink and exporters
const (
	KeyShipFired         = "ship.fired"
	KeyShipDestroyed     = "ship.destroyed"
	KeyCombatDamage      = "combat.damage"
	KeyProjectileHits    = "projectile.hits"
	KeyProjectileExpired = "projectile.expired"
	KeyBodyImpulses      = "body.impulses"
	KeyProjectileActive  = "projectile.active"
	KeyShipActive        = "ship.active"
	KeyBodyActive        = "body.active"
	KeyRecorderWritten   = "recorder.written"
	KeyRecorderErrors    = "recorder.errors"
	KeyEngineTicks       = "engine.ticks"
	KeyTickDuration      = "engine.tick_ms"
	KeyAudioEnabled      = "audio.enabled"
)

// Registry is the central metrics facade
// Systems cache pointers during init; Update loops write directly to atomics
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[Gauge]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[Gauge](),
	}
}

// Snapshot copies current int and float values into a flat map
// Float keys shadow int keys of the same name
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.Ints.Count()+r.Floats.Count())
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		out[key] = ptr.Load()
	})
	r.Floats.Range(func(key string, ptr *Gauge) {
		out[key] = ptr.Get()
	})
	return out
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}
