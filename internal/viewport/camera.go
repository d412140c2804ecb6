// Package viewport answers where a world position lands relative to the
// player's view: projection to normalized device coordinates, strict
// on-screen containment, and the wider retention zone used for culling.
//
// Conventions: right-handed, Y up, the camera looks down -Z at zero yaw and
// pitch. Positive yaw turns left (counter-clockwise seen from above),
// positive pitch looks up.
package viewport

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera projection defaults, matching raylib's perspective setup.
const (
	DefaultFovY   = 75
	DefaultNear   = 0.01
	DefaultFar    = 1000
	DefaultAspect = 16.0 / 9.0
)

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
)

// Camera is one frame's snapshot of the viewpoint. FovY is the vertical
// field of view in degrees.
type Camera struct {
	Position    mgl32.Vec3
	Orientation mgl32.Quat
	FovY        float32
	Aspect      float32
	Near        float32
	Far         float32
}

// NewCamera returns a camera at pos with the given yaw and pitch (radians)
// and default projection settings.
func NewCamera(pos mgl32.Vec3, yaw, pitch float32) Camera {
	return Camera{
		Position:    pos,
		Orientation: LookRotation(yaw, pitch),
		FovY:        DefaultFovY,
		Aspect:      DefaultAspect,
		Near:        DefaultNear,
		Far:         DefaultFar,
	}
}

// LookRotation builds the orientation for a first-person yaw/pitch pair.
// Yaw is applied about world Y, pitch about the resulting local X.
func LookRotation(yaw, pitch float32) mgl32.Quat {
	return mgl32.QuatRotate(yaw, axisY).Mul(mgl32.QuatRotate(pitch, axisX))
}

func (c Camera) Forward() mgl32.Vec3 { return c.Orientation.Rotate(mgl32.Vec3{0, 0, -1}) }
func (c Camera) Right() mgl32.Vec3   { return c.Orientation.Rotate(axisX) }
func (c Camera) Up() mgl32.Vec3      { return c.Orientation.Rotate(axisY) }

// View returns the world-to-camera matrix.
func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Forward()), c.Up())
}

// Projection returns the perspective projection matrix.
func (c Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), c.Aspect, c.Near, c.Far)
}

// HalfFovY is half the vertical field of view in radians.
func (c Camera) HalfFovY() float32 {
	return mgl32.DegToRad(c.FovY) / 2
}

// HalfFovX is half the horizontal field of view in radians, derived from
// the vertical one and the aspect ratio.
func (c Camera) HalfFovX() float32 {
	return math32.Atan(math32.Tan(c.HalfFovY()) * c.Aspect)
}

// Heading is the camera's horizontal forward direction. When looking
// straight up or down the up vector's horizontal part stands in; if both
// vanish the result is the zero vector.
func (c Camera) Heading() mgl32.Vec3 {
	f := c.Forward()
	h := Normalize(mgl32.Vec3{f.X(), 0, f.Z()})
	if h.Len() > 0 {
		return h
	}
	u := c.Up()
	if f.Y() > 0 {
		u = u.Mul(-1)
	}
	return Normalize(mgl32.Vec3{u.X(), 0, u.Z()})
}

// Yaw returns the heading angle about world Y in the same convention as
// LookRotation (0 looks down -Z, positive turns left).
func (c Camera) Yaw() float32 {
	h := c.Heading()
	return math32.Atan2(-h.X(), -h.Z())
}

// Pitch returns the elevation of the forward vector in radians.
func (c Camera) Pitch() float32 {
	y := c.Forward().Y()
	if y > 1 {
		y = 1
	} else if y < -1 {
		y = -1
	}
	return math32.Asin(y)
}

// Normalize returns v scaled to unit length, or the zero vector when v has
// no length.
func Normalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 || math32.IsNaN(l) {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// HeadingDir returns the horizontal unit vector for a yaw angle.
func HeadingDir(yaw float32) mgl32.Vec3 {
	return mgl32.Vec3{-math32.Sin(yaw), 0, -math32.Cos(yaw)}
}
