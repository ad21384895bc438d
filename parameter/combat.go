package parameter

import (
	"time"
)

// Ship hull
const (
	// ShipHealth is the starting hit points of a ship
	ShipHealth = 10

	// ShipMoveSpeed is forward speed in units/sec at full input
	ShipMoveSpeed = 1000.0

	// ShipTurnRate is yaw speed in degrees/sec at full input
	ShipTurnRate = 90.0

	// ShipRadius is the hull collision sphere radius
	ShipRadius = 50.0
)

// Main gun
const (
	// WeaponFireRate is the delay before the gun can fire again
	WeaponFireRate = 100 * time.Millisecond

	// WeaponGunOffsetX is the muzzle distance ahead of the hull center
	WeaponGunOffsetX = 90.0

	// WeaponGunOffsetZ is the muzzle height above the hull center
	WeaponGunOffsetZ = 0.0
)

// Cannonball
const (
	ProjectileInitialSpeed = 5000.0
	ProjectileMaxSpeed     = 10000.0
	ProjectileGravityScale = 0.4
	ProjectileLifespan     = 4 * time.Second
	ProjectileRadius       = 10.0

	// ProjectileDamage is the hull damage of one cannonball
	ProjectileDamage = 1.0

	// ProjectileImpulseScale multiplies projectile velocity into the impulse on hit
	ProjectileImpulseScale = 20.0
)

// Floating pawn variant
const (
	FloatingSpeed        = 0.25
	FloatingMaxSpeed     = 1200.0
	FloatingAcceleration = 4000.0
	FloatingDeceleration = 8000.0
)

// World
const (
	// Gravity is the world's vertical acceleration in units/sec^2
	Gravity = -980.0

	// BodyDamping is the default linear damping of drifting bodies
	BodyDamping = 0.5
)
