package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"looky-shapes/internal/session"
)

func drain(t *testing.T, s beep.Streamer) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("stream never ended")
	return 0, 0
}

func TestOscillatorLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, w := range []Wave{WaveSine, WaveSquare, WaveTriangle} {
		n, peak := drain(t, NewOscillator(440, 100*time.Millisecond, w, rate))
		if n != 800 {
			t.Errorf("wave %d streamed %d samples, want 800", w, n)
		}
		if peak > 1 || peak < 0.9 {
			t.Errorf("wave %d peak %v", w, peak)
		}
	}
}

func TestEnvelopeStartsAndEndsQuiet(t *testing.T) {
	rate := beep.SampleRate(8000)
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate)
	buf := make([][2]float64, 800)
	n, _ := env.Stream(buf)
	if n != 800 {
		t.Fatalf("streamed %d", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample %v, want 0", buf[0][0])
	}
	if buf[400][0] != 1 {
		t.Errorf("sustain sample %v, want 1", buf[400][0])
	}
	if buf[799][0] > 0.02 {
		t.Errorf("last sample %v, want near 0", buf[799][0])
	}
}

func TestEffectsMatchDuration(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, s := range []Sound{SoundPickup, SoundDrop, SoundCollect, SoundWin} {
		t.Run(s.String(), func(t *testing.T) {
			n, peak := drain(t, Effect(s, rate, 0.5))
			if want := rate.N(Duration(s)); n != want {
				t.Errorf("streamed %d samples, want %d", n, want)
			}
			if peak == 0 || peak > 0.5+1e-9 {
				t.Errorf("peak %v outside (0, 0.5]", peak)
			}
		})
	}
	if Effect(Sound(99), rate, 1) != nil {
		t.Error("unknown sound produced a streamer")
	}
}

func TestSilentVolume(t *testing.T) {
	_, peak := drain(t, Effect(SoundPickup, beep.SampleRate(8000), 0))
	if peak != 0 {
		t.Errorf("peak %v at zero volume", peak)
	}
}

func TestForEvent(t *testing.T) {
	want := map[session.EventKind]Sound{
		session.PickedUp:       SoundPickup,
		session.Dropped:        SoundDrop,
		session.Collected:      SoundCollect,
		session.RecipeComplete: SoundWin,
	}
	for k, s := range want {
		if got, ok := ForEvent(k); !ok || got != s {
			t.Errorf("ForEvent(%v) = %v, %v", k, got, ok)
		}
	}
	if _, ok := ForEvent(session.StateChanged); ok {
		t.Error("state change has a sound")
	}
}

func TestPlayerSilentUntilInit(t *testing.T) {
	p := NewPlayer(1)
	if p.Ready() {
		t.Fatal("ready before Init")
	}
	p.Play(SoundWin)
	p.Handle(session.Event{Kind: session.Collected})
	p.Close()
}
