// Package look turns raw pointer movement into a smoothed turn rate that
// spawn placement uses to guess where the player is about to look.
//
// Sign convention (screen space, as reported by the pointer):
// X > 0 means the pointer moved right, i.e. the player is turning right;
// Y > 0 means the pointer moved down, i.e. the player is pitching down.
package look

import (
	"github.com/chewxy/math32"

	"looky-shapes/internal/rng"
)

// DefaultBlend is the weight kept from the previous velocity each update:
// v = v*0.7 + raw*0.3.
const DefaultBlend = 0.7

// restEpsilon snaps tiny residual velocities to zero so idle input settles
// at exactly (0, 0).
const restEpsilon = 1e-3

// Velocity is a smoothed pointer rate in pixels per frame.
type Velocity struct {
	X, Y float32
}

// Side is the screen edge the player is turning toward.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Horizontal reports whether s is the left or right edge.
func (s Side) Horizontal() bool { return s == SideLeft || s == SideRight }

// Side picks the edge the player is turning toward: the dominant axis by
// magnitude, then the sign on that axis. Below deadzone on both axes the
// edge is drawn uniformly from src.
func (v Velocity) Side(deadzone float32, src rng.Source) Side {
	ax, ay := math32.Abs(v.X), math32.Abs(v.Y)
	if ax < deadzone && ay < deadzone {
		return Side(rng.Intn(src, 4))
	}
	if ax >= ay {
		if v.X > 0 {
			return SideRight
		}
		return SideLeft
	}
	if v.Y > 0 {
		return SideBottom
	}
	return SideTop
}

// HorizontalSide returns the left/right edge by the sign of X, drawing from
// src when X is exactly zero.
func (v Velocity) HorizontalSide(src rng.Source) Side {
	switch {
	case v.X > 0:
		return SideRight
	case v.X < 0:
		return SideLeft
	default:
		return Side(rng.Intn(src, 2))
	}
}

// Tracker accumulates pointer deltas between frames and blends them into a
// smoothed Velocity once per frame.
type Tracker struct {
	blend float32
	raw   Velocity
	v     Velocity
}

// NewTracker returns a Tracker keeping blend of the previous velocity each
// update. Values outside [0, 1) fall back to DefaultBlend.
func NewTracker(blend float32) *Tracker {
	if blend < 0 || blend >= 1 {
		blend = DefaultBlend
	}
	return &Tracker{blend: blend}
}

// Accumulate adds a raw pointer delta. Call from input handling as often as
// events arrive.
func (t *Tracker) Accumulate(dx, dy float32) {
	t.raw.X += dx
	t.raw.Y += dy
}

// Update consumes the accumulated delta, blends it into the velocity, and
// resets the accumulator.
func (t *Tracker) Update() Velocity {
	t.v.X = settle(t.v.X*t.blend + t.raw.X*(1-t.blend))
	t.v.Y = settle(t.v.Y*t.blend + t.raw.Y*(1-t.blend))
	t.raw = Velocity{}
	return t.v
}

// Velocity returns the last smoothed value.
func (t *Tracker) Velocity() Velocity { return t.v }

// Reset clears both the accumulator and the smoothed velocity.
func (t *Tracker) Reset() {
	t.raw = Velocity{}
	t.v = Velocity{}
}

func settle(x float32) float32 {
	if math32.Abs(x) < restEpsilon {
		return 0
	}
	return x
}
