package parameter

import (
	"time"

	"github.com/lixenwraith/minigold/vmath"
)

// ShipTuning configures hull, motion and main gun of the default pawn
type ShipTuning struct {
	Health    uint32        `mapstructure:"health"`
	MoveSpeed float64       `mapstructure:"moveSpeed"`
	TurnRate  float64       `mapstructure:"turnRate"`
	Radius    float64       `mapstructure:"radius"`
	FireRate  time.Duration `mapstructure:"fireRate"`
	GunOffset vmath.Vec3F   `mapstructure:"gunOffset"`
}

// ProjectileTuning configures cannonballs
type ProjectileTuning struct {
	InitialSpeed float64       `mapstructure:"initialSpeed"`
	MaxSpeed     float64       `mapstructure:"maxSpeed"`
	GravityScale float64       `mapstructure:"gravityScale"`
	Lifespan     time.Duration `mapstructure:"lifespan"`
	Radius       float64       `mapstructure:"radius"`
	Damage       float64       `mapstructure:"damage"`
	ImpulseScale float64       `mapstructure:"impulseScale"`
}

// FloatingTuning configures the simple pawn variant
type FloatingTuning struct {
	Speed        float64 `mapstructure:"speed"`
	MaxSpeed     float64 `mapstructure:"maxSpeed"`
	Acceleration float64 `mapstructure:"acceleration"`
	Deceleration float64 `mapstructure:"deceleration"`
}

// WorldTuning configures global physics
type WorldTuning struct {
	Gravity     float64 `mapstructure:"gravity"`
	BodyDamping float64 `mapstructure:"bodyDamping"`
}

// Tuning is the full set of gameplay values systems read at runtime
type Tuning struct {
	Ship       ShipTuning       `mapstructure:"ship"`
	Projectile ProjectileTuning `mapstructure:"projectile"`
	Floating   FloatingTuning   `mapstructure:"floating"`
	World      WorldTuning      `mapstructure:"world"`
}

// DefaultTuning returns the built-in gameplay values
func DefaultTuning() Tuning {
	return Tuning{
		Ship: ShipTuning{
			Health:    ShipHealth,
			MoveSpeed: ShipMoveSpeed,
			TurnRate:  ShipTurnRate,
			Radius:    ShipRadius,
			FireRate:  WeaponFireRate,
			GunOffset: vmath.Vec3F{X: WeaponGunOffsetX, Z: WeaponGunOffsetZ},
		},
		Projectile: ProjectileTuning{
			InitialSpeed: ProjectileInitialSpeed,
			MaxSpeed:     ProjectileMaxSpeed,
			GravityScale: ProjectileGravityScale,
			Lifespan:     ProjectileLifespan,
			Radius:       ProjectileRadius,
			Damage:       ProjectileDamage,
			ImpulseScale: ProjectileImpulseScale,
		},
		Floating: FloatingTuning{
			Speed:        FloatingSpeed,
			MaxSpeed:     FloatingMaxSpeed,
			Acceleration: FloatingAcceleration,
			Deceleration: FloatingDeceleration,
		},
		World: WorldTuning{
			Gravity:     Gravity,
			BodyDamping: BodyDamping,
		},
	}
}

// GravityVector returns world gravity as a vector along the up axis
func (t *Tuning) GravityVector() vmath.Vec3F {
	return vmath.V3FScale(vmath.UpF, t.World.Gravity)
}
