package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/minigold/core"
	"github.com/lixenwraith/minigold/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// NewEnvelope wraps s with an attack ramp and a release fade ending at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	start := total - rel
	if start < att {
		start = att
	}
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: start,
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= e.releaseStart {
			vol = float64(e.total-e.position) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s by a linear gain; zero or negative gain is silent
// math.Log2(0) is -Inf
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// CreateCannonSound generates the main gun report
func CreateCannonSound(rate beep.SampleRate) beep.Streamer {
	thump := NewOscillator(parameter.CannonThumpFreq, parameter.CannonSoundDuration, WaveSine, rate)
	thumpShaped := NewEnvelope(thump, parameter.CannonSoundDuration, parameter.CannonSoundAttack, parameter.CannonSoundRelease, rate)

	crack := NewOscillator(0, parameter.CannonSoundDuration/3, WaveNoise, rate)
	crackShaped := NewEnvelope(crack, parameter.CannonSoundDuration/3, parameter.CannonSoundAttack, parameter.CannonSoundDuration/4, rate)

	return beep.Mix(
		newVolume(thumpShaped, 0.8),
		newVolume(crackShaped, 0.4),
	)
}

// CreateSplashSound generates a soft noise burst
func CreateSplashSound(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, parameter.SplashSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, parameter.SplashSoundDuration, parameter.SplashSoundAttack, parameter.SplashSoundRelease, rate)
	return newVolume(shaped, 0.3)
}

// CreateMetalHitSound generates a two-tone clang
func CreateMetalHitSound(rate beep.SampleRate) beep.Streamer {
	low := NewOscillator(440, parameter.MetalHitSoundDuration/2, WaveSquare, rate)
	lowShaped := NewEnvelope(low, parameter.MetalHitSoundDuration/2, parameter.MetalHitSoundAttack, parameter.MetalHitSoundRelease/2, rate)

	high := NewOscillator(660, parameter.MetalHitSoundDuration/2, WaveSquare, rate)
	highShaped := NewEnvelope(high, parameter.MetalHitSoundDuration/2, parameter.MetalHitSoundAttack, parameter.MetalHitSoundRelease/2, rate)

	return newVolume(beep.Seq(lowShaped, highShaped), 0.5)
}

// GetSoundEffect returns a fresh streamer for the sound, nil for SoundNone or unknown types
func GetSoundEffect(sound core.SoundType, rate beep.SampleRate) beep.Streamer {
	switch sound {
	case core.SoundCannon:
		return CreateCannonSound(rate)
	case core.SoundSplash:
		return CreateSplashSound(rate)
	case core.SoundMetalHit:
		return CreateMetalHitSound(rate)
	default:
		return nil
	}
}
