package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"looky-shapes/internal/viewport"
)

// Intent is the movement the player asks for this frame, each axis in [-1, 1].
type Intent struct {
	Forward float32
	Right   float32
}

// Player walks on the ground plane at a fixed eye height inside a square world.
type Player struct {
	Body      *Body
	Speed     float32
	Bound     float32
	EyeHeight float32
}

// NewPlayer returns a player standing at (x, eyeHeight, z). Speed is the
// steady walking speed; damping sets how quickly it is reached and lost.
func NewPlayer(x, z, eyeHeight, speed, damping, bound float32) *Player {
	return &Player{
		Body:      NewBody(mgl32.Vec3{x, eyeHeight, z}, damping),
		Speed:     speed,
		Bound:     bound,
		EyeHeight: eyeHeight,
	}
}

// Step moves the player for dt seconds along intent relative to yaw (0 faces -Z,
// positive turns left). Diagonal input is normalised so it is not faster.
func (p *Player) Step(in Intent, yaw, dt float32) {
	fwd := viewport.HeadingDir(yaw)
	right := mgl32.Vec3{math32.Cos(yaw), 0, -math32.Sin(yaw)}
	dir := viewport.Normalize(fwd.Mul(in.Forward).Add(right.Mul(in.Right)))

	// Accelerating at Speed*Damping settles at Speed against the damping.
	p.Body.Step(dir.Mul(p.Speed*p.Body.Damping), dt)

	pos := &p.Body.Position
	pos[0] = mgl32.Clamp(pos[0], -p.Bound, p.Bound)
	pos[2] = mgl32.Clamp(pos[2], -p.Bound, p.Bound)
	pos[1] = p.EyeHeight
	p.Body.Velocity[1] = 0
}

// Position returns the eye position.
func (p *Player) Position() mgl32.Vec3 { return p.Body.Position }
