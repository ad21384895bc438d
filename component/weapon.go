package component

import (
	"time"

	"github.com/lixenwraith/minigold/core"
	"github.com/lixenwraith/minigold/vmath"
)

// WeaponComponent is the ship's main gun and its cooldown gate
type WeaponComponent struct {
	// CanFire is the ready-to-fire flag, cleared on fire and restored by ResetTask
	CanFire bool

	// FireRate is the delay between a shot and the gun being ready again
	FireRate time.Duration

	// GunOffset is the muzzle position relative to the hull (X forward, Y left, Z up)
	GunOffset vmath.Vec3F

	// ResetTask is the pending cooldown reset, 0 when none is outstanding
	ResetTask core.TaskID

	// Sound is played at the hull on each shot, SoundNone for silent guns
	Sound core.SoundType
}
