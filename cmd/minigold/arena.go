package main

import (
	"github.com/lixenwraith/minigold/core"
	"github.com/lixenwraith/minigold/engine"
	"github.com/lixenwraith/minigold/gamemode"
	"github.com/lixenwraith/minigold/physics"
	"github.com/lixenwraith/minigold/system"
	"github.com/lixenwraith/minigold/vmath"
)

// Arena extents in world units
const (
	arenaHalfX    = 4000.0
	arenaHalfY    = 2000.0
	wallThickness = 200.0
	wallHalfZ     = 500.0
)

// populateArena builds the practice harbor and returns the player pawn
// Caller must hold the world lock
func populateArena(w *engine.World, mode gamemode.Mode) core.Entity {
	// Border
	spawnBox(w, -arenaHalfX-wallThickness, -arenaHalfY-wallThickness, arenaHalfX+wallThickness, -arenaHalfY)
	spawnBox(w, -arenaHalfX-wallThickness, arenaHalfY, arenaHalfX+wallThickness, arenaHalfY+wallThickness)
	spawnBox(w, -arenaHalfX-wallThickness, -arenaHalfY, -arenaHalfX, arenaHalfY)
	spawnBox(w, arenaHalfX, -arenaHalfY, arenaHalfX+wallThickness, arenaHalfY)

	// Piers
	spawnBox(w, -600, -2000, -400, -700)
	spawnBox(w, 400, 700, 600, 2000)

	// Crates and buoys drifting in the channel
	for _, p := range []vmath.Vec3F{
		{X: -1200, Y: 400},
		{X: -200, Y: 0},
		{X: 1000, Y: -500},
		{X: 1600, Y: 900},
	} {
		system.SpawnBody(w, p, 60, 40)
	}

	// Moored hulk for target practice
	system.SpawnShip(w, vmath.Vec3F{X: 2800}, 180)

	return mode.SpawnPlayer(w, vmath.Vec3F{X: -2800}, 0)
}

func spawnBox(w *engine.World, minX, minY, maxX, maxY float64) core.Entity {
	return system.SpawnWall(w, physics.Box{
		Min: vmath.Vec3F{X: minX, Y: minY, Z: -wallHalfZ},
		Max: vmath.Vec3F{X: maxX, Y: maxY, Z: wallHalfZ},
	})
}
