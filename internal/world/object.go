// Package world holds the live collectible objects and the Scene
// collaborator that renders them.
package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"looky-shapes/internal/shapes"
)

// Object is one collectible in the world.
type Object struct {
	ID       uint64
	Shape    shapes.Type
	Position mgl32.Vec3
	// Rotation is Euler angles in radians.
	Rotation mgl32.Vec3
	// Spin is the per-axis rotation rate in rad/s, fixed at spawn.
	Spin mgl32.Vec3
	// Radius is the bounding sphere radius used for visibility tests.
	Radius float32
	// Seen is set once the object has been on screen. Unseen objects are
	// pending: they count toward density and are not culled while near.
	Seen bool
}

// Advance applies dt seconds of spin.
func (o *Object) Advance(dt float32) {
	o.Rotation = o.Rotation.Add(o.Spin.Mul(dt))
}

// Scene adds and removes renderables for objects. The game's raylib scene
// implements it; MemScene is the in-memory version.
type Scene interface {
	Add(o *Object)
	Remove(o *Object)
}
