package physics

import "github.com/go-gl/mathgl/mgl32"

// Body is a point mass with position, velocity and linear damping.
// There is no collision: the world only bounds the player by clamping.
type Body struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	// Damping is the fraction of velocity lost per second.
	Damping float32
}

// NewBody returns a body at position with zero velocity. Negative damping is treated as zero.
func NewBody(position mgl32.Vec3, damping float32) *Body {
	if damping < 0 {
		damping = 0
	}
	return &Body{Position: position, Damping: damping}
}

// Step advances the body by dt seconds: damp, accelerate, then integrate position.
// Damping never reverses the velocity, even for large dt.
func (b *Body) Step(accel mgl32.Vec3, dt float32) {
	keep := 1 - b.Damping*dt
	if keep < 0 {
		keep = 0
	}
	b.Velocity = b.Velocity.Mul(keep).Add(accel.Mul(dt))
	b.Position = b.Position.Add(b.Velocity.Mul(dt))
}
