package parameter

import (
	"time"
)

// Audio output
const (
	AudioSampleRate   = 44100
	AudioBufferPeriod = 100 * time.Millisecond
	AudioMasterVolume = 0.8

	// AudioFalloffDistance is the listener distance at which positional sounds fade to silence
	AudioFalloffDistance = 8000.0
)

// Cannon shot: low thump under a noise crack
const (
	CannonSoundDuration = 350 * time.Millisecond
	CannonSoundAttack   = 4 * time.Millisecond
	CannonSoundRelease  = 300 * time.Millisecond
	CannonThumpFreq     = 70.0
)

// Cannonball falling into water
const (
	SplashSoundDuration = 250 * time.Millisecond
	SplashSoundAttack   = 20 * time.Millisecond
	SplashSoundRelease  = 200 * time.Millisecond
)

// Cannonball striking a hull
const (
	MetalHitSoundDuration = 120 * time.Millisecond
	MetalHitSoundAttack   = 2 * time.Millisecond
	MetalHitSoundRelease  = 100 * time.Millisecond
)
