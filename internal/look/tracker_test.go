package look

import (
	"testing"

	"github.com/chewxy/math32"

	"looky-shapes/internal/rng"
)

func TestTrackerBlendsAndResets(t *testing.T) {
	tr := NewTracker(DefaultBlend)
	tr.Accumulate(6, 0)
	tr.Accumulate(4, -10)

	v := tr.Update()
	if math32.Abs(v.X-3) > 1e-5 || math32.Abs(v.Y+3) > 1e-5 {
		t.Fatalf("first update = %+v, want {3 -3}", v)
	}

	// The accumulator was consumed: an idle frame only decays.
	v = tr.Update()
	if math32.Abs(v.X-2.1) > 1e-5 || math32.Abs(v.Y+2.1) > 1e-5 {
		t.Fatalf("second update = %+v, want {2.1 -2.1}", v)
	}
}

func TestTrackerSettlesToZeroWhenIdle(t *testing.T) {
	tr := NewTracker(DefaultBlend)
	tr.Accumulate(50, -30)
	tr.Update()
	for i := 0; i < 100; i++ {
		tr.Update()
	}
	if v := tr.Velocity(); v != (Velocity{}) {
		t.Errorf("idle velocity = %+v, want exactly zero", v)
	}
}

func TestNewTrackerRejectsBadBlend(t *testing.T) {
	for _, b := range []float32{-0.5, 1, 3} {
		if tr := NewTracker(b); tr.blend != DefaultBlend {
			t.Errorf("NewTracker(%v).blend = %v", b, tr.blend)
		}
	}
	tr := NewTracker(0.3)
	tr.Accumulate(10, 0)
	if v := tr.Update(); math32.Abs(v.X-7) > 1e-5 {
		t.Errorf("blend 0.3: X = %v, want 7", v.X)
	}
	tr.Reset()
	if tr.Velocity() != (Velocity{}) {
		t.Error("Reset did not clear velocity")
	}
}

func TestVelocitySide(t *testing.T) {
	tests := []struct {
		name string
		v    Velocity
		want Side
	}{
		{"turning right", Velocity{5, 1}, SideRight},
		{"turning left", Velocity{-5, 1}, SideLeft},
		{"pitching down", Velocity{1, 4}, SideBottom},
		{"pitching up", Velocity{1, -4}, SideTop},
		{"tie goes horizontal", Velocity{-3, 3}, SideLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Side(0.5, rng.NewSequence(0)); got != tt.want {
				t.Errorf("Side() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVelocitySideBelowDeadzoneIsRandom(t *testing.T) {
	v := Velocity{0.1, -0.2}
	want := []Side{SideLeft, SideRight, SideTop, SideBottom}
	for i, draw := range []float32{0.1, 0.3, 0.6, 0.9} {
		if got := v.Side(0.5, rng.NewSequence(draw)); got != want[i] {
			t.Errorf("draw %v: Side() = %v, want %v", draw, got, want[i])
		}
	}
}

func TestHorizontalSide(t *testing.T) {
	if got := (Velocity{X: 2}).HorizontalSide(rng.NewSequence(0.9)); got != SideRight {
		t.Errorf("positive X: %v", got)
	}
	if got := (Velocity{X: -2}).HorizontalSide(rng.NewSequence(0.1)); got != SideLeft {
		t.Errorf("negative X: %v", got)
	}
	if got := (Velocity{}).HorizontalSide(rng.NewSequence(0.9)); got != SideRight {
		t.Errorf("zero X with high draw: %v", got)
	}
	if !SideLeft.Horizontal() || SideTop.Horizontal() {
		t.Error("Horizontal() misclassifies")
	}
}
