// Package audio synthesises the short feedback sounds and plays them through
// the beep speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator wave shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates a fixed-length tone.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
}

// NewOscillator returns a tone of freq Hz lasting duration.
func NewOscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, duration: rate.N(duration), wave: wave, rate: rate}
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
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
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

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s, which should last duration, with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Sound is a feedback effect.
type Sound int

const (
	SoundPickup Sound = iota
	SoundDrop
	SoundCollect
	SoundWin
)

func (s Sound) String() string {
	switch s {
	case SoundPickup:
		return "pickup"
	case SoundDrop:
		return "drop"
	case SoundCollect:
		return "collect"
	case SoundWin:
		return "win"
	default:
		return "unknown"
	}
}

type note struct {
	freq float64
	dur  time.Duration
	wave Wave
}

var (
	attack  = 5 * time.Millisecond
	release = 40 * time.Millisecond

	// Notes per sound, played in sequence.
	scores = map[Sound][]note{
		SoundPickup:  {{660, 50 * time.Millisecond, WaveSine}, {880, 70 * time.Millisecond, WaveSine}},
		SoundDrop:    {{330, 60 * time.Millisecond, WaveTriangle}, {220, 90 * time.Millisecond, WaveTriangle}},
		SoundCollect: {{987.77, 80 * time.Millisecond, WaveSquare}, {1318.51, 200 * time.Millisecond, WaveSquare}},
		SoundWin: {
			{523.25, 120 * time.Millisecond, WaveSine},
			{659.25, 120 * time.Millisecond, WaveSine},
			{783.99, 120 * time.Millisecond, WaveSine},
			{1046.5, 360 * time.Millisecond, WaveSine},
		},
	}
)

// Duration is how long s plays.
func Duration(s Sound) time.Duration {
	var d time.Duration
	for _, n := range scores[s] {
		d += n.dur
	}
	return d
}

// Effect returns a fresh streamer for s at the given linear volume, or nil
// for an unknown sound. Square waves are played quieter than the others.
func Effect(s Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	score, ok := scores[s]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, len(score))
	for i, n := range score {
		osc := NewOscillator(n.freq, n.dur, n.wave, rate)
		gain := 1.0
		if n.wave == WaveSquare {
			gain = 0.4
		}
		parts[i] = newVolume(NewEnvelope(osc, n.dur, attack, release, rate), gain)
	}
	return newVolume(beep.Seq(parts...), volume)
}
