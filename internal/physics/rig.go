package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"looky-shapes/internal/viewport"
)

// maxPitch keeps the view just short of straight up or down.
const maxPitch = math32.Pi/2 - 0.01

// Rig is the first-person viewpoint: a walking player plus the look angles.
// It supplies the frame camera and integrates movement from Intent.
type Rig struct {
	Player *Player
	Intent Intent

	Yaw   float32
	Pitch float32
	// Sensitivity converts pointer pixels to radians.
	Sensitivity float32

	FovY   float32
	Near   float32
	Far    float32
	Aspect float32
}

// NewRig returns a rig for p looking down -Z with the default projection.
func NewRig(p *Player, sensitivity float32) *Rig {
	return &Rig{
		Player:      p,
		Sensitivity: sensitivity,
		FovY:        viewport.DefaultFovY,
		Near:        viewport.DefaultNear,
		Far:         viewport.DefaultFar,
		Aspect:      viewport.DefaultAspect,
	}
}

// Turn applies a pointer delta. Moving right turns right and moving down
// looks down. Yaw wraps to [-Pi, Pi); pitch is clamped.
func (r *Rig) Turn(dx, dy float32) {
	r.Yaw -= dx * r.Sensitivity
	r.Pitch = mgl32.Clamp(r.Pitch-dy*r.Sensitivity, -maxPitch, maxPitch)
	if r.Yaw >= math32.Pi || r.Yaw < -math32.Pi {
		r.Yaw = math32.Mod(r.Yaw+math32.Pi, 2*math32.Pi)
		if r.Yaw < 0 {
			r.Yaw += 2 * math32.Pi
		}
		r.Yaw -= math32.Pi
	}
}

// SetAspect updates the aspect ratio from a viewport size. Degenerate sizes are ignored.
func (r *Rig) SetAspect(width, height int) {
	if width > 0 && height > 0 {
		r.Aspect = float32(width) / float32(height)
	}
}

// Integrate moves the player along the current intent.
func (r *Rig) Integrate(dt float32) {
	r.Player.Step(r.Intent, r.Yaw, dt)
}

// Camera returns the camera for the current position and look angles.
func (r *Rig) Camera() viewport.Camera {
	c := viewport.NewCamera(r.Player.Position(), r.Yaw, r.Pitch)
	c.FovY, c.Near, c.Far, c.Aspect = r.FovY, r.Near, r.Far, r.Aspect
	return c
}
