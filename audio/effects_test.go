package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/minigold/core"
	"github.com/lixenwraith/minigold/parameter"
)

func drainLen(s beep.Streamer) int {
	buf := make([][2]float64, 1024)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	if got, want := drainLen(osc), rate.N(100*time.Millisecond); got != want {
		t.Errorf("Expected %d samples, got %d", want, got)
	}
}

func TestEnvelopeFadesToSilence(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 50*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected attack to start silent, got %f", samples[0][0])
	}
	if samples[30][0] != 1 {
		t.Errorf("Expected full sustain, got %f", samples[30][0])
	}
	if math.Abs(samples[99][0]) > 0.05 {
		t.Errorf("Expected release near silence, got %f", samples[99][0])
	}
}

func TestGetSoundEffect(t *testing.T) {
	rate := beep.SampleRate(parameter.AudioSampleRate)

	if GetSoundEffect(core.SoundNone, rate) != nil {
		t.Error("Expected nil streamer for SoundNone")
	}

	want := map[core.SoundType]time.Duration{
		core.SoundCannon:   parameter.CannonSoundDuration,
		core.SoundSplash:   parameter.SplashSoundDuration,
		core.SoundMetalHit: parameter.MetalHitSoundDuration,
	}
	for sound, d := range want {
		s := GetSoundEffect(sound, rate)
		if s == nil {
			t.Fatalf("Expected streamer for %s", sound)
		}
		if got := drainLen(s); got != rate.N(d) {
			t.Errorf("%s: expected %d samples, got %d", sound, rate.N(d), got)
		}
	}
}
