package system_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/minigold/event"
	"github.com/lixenwraith/minigold/parameter"
	"github.com/lixenwraith/minigold/system"
	"github.com/lixenwraith/minigold/vmath"
)

func TestThrustInput(t *testing.T) {
	assert.Equal(t, 0.25, system.ThrustInput(0.25, 0))
	assert.Equal(t, 0.5, system.ThrustInput(0.25, 1))
	assert.Equal(t, 0.0, system.ThrustInput(0.25, -1))
	assert.Equal(t, 1.0, system.ThrustInput(3, 0))
}

func TestFloating_ThrustsForwardWithoutInput(t *testing.T) {
	w, _ := newWorld(t)
	pawn := system.SpawnFloating(w, vmath.Vec3F{}, 90)

	stepN(w, 60, tick)

	tr, _ := w.Components.Transform.GetComponent(pawn)
	assert.Greater(t, tr.Position.Y, 0.0)
	assert.InDelta(t, 0.0, tr.Position.X, 1e-6)

	fm, _ := w.Components.Floating.GetComponent(pawn)
	top := parameter.FloatingSpeed * parameter.FloatingMaxSpeed
	assert.InDelta(t, top, vmath.V3FMag(fm.Velocity), 1e-6)
}

func TestFloating_IgnoresTurnAndFire(t *testing.T) {
	w, set := newWorld(t)
	pawn := system.SpawnFloating(w, vmath.Vec3F{}, 0)
	set.Ship.SetInput(pawn, 0, 1)
	set.Ship.RequestFire(pawn)

	w.Step(500 * time.Millisecond)

	tr, _ := w.Components.Transform.GetComponent(pawn)
	assert.Equal(t, 0.0, tr.Rotation.Yaw)
	assert.Equal(t, 0, w.Components.Projectile.CountEntities())

	events := drain(w)
	require.Len(t, ofType(events, event.EventFloatingFireIgnored), 1)
	assert.Empty(t, ofType(events, event.EventShipFired))
}
