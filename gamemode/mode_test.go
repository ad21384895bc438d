package gamemode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/minigold/engine"
	"github.com/lixenwraith/minigold/parameter"
	"github.com/lixenwraith/minigold/vmath"
)

func TestNew_DefaultsToMinigoldPawn(t *testing.T) {
	assert.Equal(t, PawnMinigold, New().DefaultPawn)
}

func TestSpawnPlayer_Minigold(t *testing.T) {
	w := engine.NewWorld()
	e := New().SpawnPlayer(w, vmath.Vec3F{X: 10}, 45)

	require.True(t, w.Components.Ship.HasEntity(e))
	assert.True(t, w.Components.Weapon.HasEntity(e))
	assert.False(t, w.Components.Floating.HasEntity(e))

	h, ok := w.Components.Health.GetComponent(e)
	require.True(t, ok)
	assert.Equal(t, uint32(parameter.ShipHealth), h.Health)

	tr, _ := w.Components.Transform.GetComponent(e)
	assert.Equal(t, 45.0, tr.Rotation.Yaw)
}

func TestSpawnPlayer_Floating(t *testing.T) {
	w := engine.NewWorld()
	e := Mode{DefaultPawn: PawnFloating}.SpawnPlayer(w, vmath.Vec3F{}, 0)

	assert.True(t, w.Components.Floating.HasEntity(e))
	assert.False(t, w.Components.Ship.HasEntity(e))
	assert.False(t, w.Components.Weapon.HasEntity(e))
	assert.True(t, w.Components.Input.HasEntity(e))
}

func TestParsePawnClass(t *testing.T) {
	cases := map[string]PawnClass{
		"":         PawnMinigold,
		"Minigold": PawnMinigold,
		"floating": PawnFloating,
		"ShipPawn": PawnFloating,
	}
	for in, want := range cases {
		got, err := ParsePawnClass(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParsePawnClass("submarine")
	assert.Error(t, err)
}
