// Package input turns raylib keyboard and mouse state into per-frame game input.
package input

import "looky-shapes/internal/physics"

// Keys is the movement keys held this frame.
type Keys struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
}

// Intent maps held keys to a movement intent. Opposite keys cancel.
func (k Keys) Intent() physics.Intent {
	return physics.Intent{
		Forward: axis(k.Back, k.Forward),
		Right:   axis(k.Left, k.Right),
	}
}

func axis(neg, pos bool) float32 {
	var v float32
	if pos {
		v++
	}
	if neg {
		v--
	}
	return v
}

// Frame is everything the game reads from the devices in one frame.
type Frame struct {
	// DX and DY are the pointer movement in pixels; DX > 0 is right, DY > 0 is down.
	DX, DY  float32
	Keys    Keys
	Click   bool
	Release bool
	Console bool
	Confirm bool
}
