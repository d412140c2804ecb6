package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"looky-shapes/internal/session"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes feedback sounds into the speaker. Until Init succeeds every
// Play is a no-op, so a machine without audio runs silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer returns a player at the given linear volume (0 to 1).
func NewPlayer(volume float64) *Player {
	return &Player{mixer: &beep.Mixer{}, volume: volume}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Ready reports whether sounds will be heard.
func (p *Player) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play queues s. It returns immediately.
func (p *Player) Play(s Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	st := Effect(s, sampleRate, p.volume)
	if st == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(st)
	speaker.Unlock()
}

// Handle plays the sound for a session event, if it has one.
func (p *Player) Handle(e session.Event) {
	if s, ok := ForEvent(e.Kind); ok {
		p.Play(s)
	}
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// ForEvent maps a session event to its sound.
func ForEvent(k session.EventKind) (Sound, bool) {
	switch k {
	case session.PickedUp:
		return SoundPickup, true
	case session.Dropped:
		return SoundDrop, true
	case session.Collected:
		return SoundCollect, true
	case session.RecipeComplete:
		return SoundWin, true
	}
	return 0, false
}
