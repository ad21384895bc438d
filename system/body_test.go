package system_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/minigold/component"
	"github.com/lixenwraith/minigold/core"
	"github.com/lixenwraith/minigold/event"
	"github.com/lixenwraith/minigold/physics"
	"github.com/lixenwraith/minigold/system"
	"github.com/lixenwraith/minigold/vmath"
)

func TestApplyImpulse_NonSimulatingBodyUnmoved(t *testing.T) {
	w, set := newWorld(t)
	body := system.SpawnBody(w, vmath.Vec3F{}, 10, 1)
	b, _ := w.Components.Body.GetComponent(body)
	b.Simulating = false
	w.Components.Body.SetComponent(body, b)

	moved := set.Body.ApplyImpulse(body, vmath.Vec3F{X: 100}, vmath.Vec3F{}, core.NoEntity)
	assert.False(t, moved)

	b, _ = w.Components.Body.GetComponent(body)
	assert.Equal(t, vmath.Vec3F{}, b.Velocity)
	assert.Len(t, ofType(drain(w), event.EventImpulseApplied), 1)
}

func TestBody_DriftsAndDamps(t *testing.T) {
	w, set := newWorld(t)
	body := system.SpawnBody(w, vmath.Vec3F{}, 10, 1)
	set.Body.ApplyImpulse(body, vmath.Vec3F{X: 100}, vmath.Vec3F{}, core.NoEntity)

	w.Step(tick)

	b, _ := w.Components.Body.GetComponent(body)
	tr, _ := w.Components.Transform.GetComponent(body)
	assert.Less(t, b.Velocity.X, 100.0)
	assert.Greater(t, tr.Position.X, 0.0)
}

func TestBody_StopsAtWall(t *testing.T) {
	w, _ := newWorld(t)
	system.SpawnWall(w, physics.Box{Min: vmath.Vec3F{X: 20, Y: -50, Z: -50}, Max: vmath.Vec3F{X: 30, Y: 50, Z: 50}})
	body := system.SpawnBody(w, vmath.Vec3F{}, 10, 1)
	w.Components.Body.SetComponent(body, component.BodyComponent{
		Simulating: true,
		Mass:       1,
		Velocity:   vmath.Vec3F{X: 10000},
	})

	w.Step(tick)

	tr, _ := w.Components.Transform.GetComponent(body)
	b, _ := w.Components.Body.GetComponent(body)
	assert.InDelta(t, 10.0, tr.Position.X, 1e-9)
	assert.InDelta(t, 0.0, b.Velocity.X, 1e-9)
}
