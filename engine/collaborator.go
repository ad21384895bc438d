package engine

import (
	"github.com/lixenwraith/minigold/core"
	"github.com/lixenwraith/minigold/physics"
	"github.com/lixenwraith/minigold/vmath"
)

//go:generate go tool mockgen -destination=./mocks/collaborator_mock.go -package=mocks . Sweeper,AudioPlayer,ProjectileSpawner

// Sweeper performs a swept sphere move against world geometry
// The mover itself is never reported as the blocking entity
type Sweeper interface {
	Sweep(mover core.Entity, start, delta vmath.Vec3F, radius float64) physics.SweepHit
}

// AudioPlayer plays a one-shot sound at a world location
// Best effort: a false return is not an error
type AudioPlayer interface {
	Play(sound core.SoundType, at vmath.Vec3F) bool
}

// ProjectileSpawner creates a projectile owned by owner
// Returns core.NoEntity when spawning fails
type ProjectileSpawner interface {
	Spawn(position vmath.Vec3F, rotation vmath.Rotator, owner core.Entity) core.Entity
}
