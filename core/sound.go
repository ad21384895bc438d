package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundNone     SoundType = iota // No sound configured
	SoundCannon                    // Ship main gun
	SoundSplash                    // Cannonball expiring over water
	SoundMetalHit                  // Cannonball on hull
	SoundTypeCount
)

// String returns the asset name of the sound
func (s SoundType) String() string {
	switch s {
	case SoundCannon:
		return "cannon"
	case SoundSplash:
		return "splash"
	case SoundMetalHit:
		return "metal_hit"
	default:
		return "none"
	}
}
