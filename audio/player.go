package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/minigold/core"
	"github.com/lixenwraith/minigold/parameter"
	"github.com/lixenwraith/minigold/vmath"
)

// Output is the device side of the player, satisfied by the beep speaker
type Output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Lock()
	Unlock()
}

type speakerOutput struct{}

func (speakerOutput) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}
func (speakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }
func (speakerOutput) Lock()                   { speaker.Lock() }
func (speakerOutput) Unlock()                 { speaker.Unlock() }

// SpeakerOutput returns the system audio device
func SpeakerOutput() Output {
	return speakerOutput{}
}

// Player plays pre-rendered effects attenuated by distance to a listener
// Playback is best effort: every failure is reported as false and never stops the game
type Player struct {
	mu          sync.Mutex
	out         Output
	rate        beep.SampleRate
	mixer       *beep.Mixer
	buffers     map[core.SoundType]*beep.Buffer
	listener    vmath.Vec3F
	volume      float64
	falloff     float64
	initialized bool
}

// NewPlayer creates a player on out; nil out uses the system speaker
func NewPlayer(out Output) *Player {
	if out == nil {
		out = SpeakerOutput()
	}
	return &Player{
		out:     out,
		rate:    beep.SampleRate(parameter.AudioSampleRate),
		mixer:   &beep.Mixer{},
		buffers: make(map[core.SoundType]*beep.Buffer),
		volume:  parameter.AudioMasterVolume,
		falloff: parameter.AudioFalloffDistance,
	}
}

// Initialize opens the output and renders every effect into memory
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := p.out.Init(p.rate, p.rate.N(parameter.AudioBufferPeriod)); err != nil {
		return err
	}

	format := beep.Format{SampleRate: p.rate, NumChannels: 2, Precision: 2}
	for s := core.SoundType(1); s < core.SoundTypeCount; s++ {
		src := GetSoundEffect(s, p.rate)
		if src == nil {
			continue
		}
		buf := beep.NewBuffer(format)
		buf.Append(src)
		p.buffers[s] = buf
	}

	p.out.Play(p.mixer)
	p.initialized = true
	return nil
}

// SetListener moves the point sounds are attenuated against
func (p *Player) SetListener(pos vmath.Vec3F) {
	p.mu.Lock()
	p.listener = pos
	p.mu.Unlock()
}

// SetVolume sets master gain, clamped to [0, 1]
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	p.volume = max(0, min(1, v))
	p.mu.Unlock()
}

// Play starts sound at world position at
// Returns false when uninitialized, the sound is unknown, or it is out of hearing range
func (p *Player) Play(sound core.SoundType, at vmath.Vec3F) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return false
	}
	buf, ok := p.buffers[sound]
	if !ok {
		return false
	}

	gain := p.volume * p.attenuation(at)
	if gain <= 0 {
		return false
	}

	s := newVolume(buf.Streamer(0, buf.Len()), gain)
	p.out.Lock()
	p.mixer.Add(s)
	p.out.Unlock()
	return true
}

// Active returns the number of sounds currently mixing
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.out.Lock()
	defer p.out.Unlock()
	return p.mixer.Len()
}

// Cleanup stops all sounds; the player can be initialized again afterward
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	p.out.Lock()
	p.mixer.Clear()
	p.out.Unlock()
	p.initialized = false
}

// attenuation is a linear falloff from 1 at the listener to 0 at the falloff distance
func (p *Player) attenuation(at vmath.Vec3F) float64 {
	if p.falloff <= 0 {
		return 1
	}
	d := vmath.V3FDist(p.listener, at)
	return max(0, 1-d/p.falloff)
}
