package viewport

import "github.com/go-gl/mathgl/mgl32"

// plane is n·p + d = 0 with n pointing into the frustum.
type plane struct {
	normal   mgl32.Vec3
	distance float32
}

func (p plane) signedDistance(point mgl32.Vec3) float32 {
	return p.normal.Dot(point) + p.distance
}

// Frustum holds the six planes of a view volume: left, right, bottom, top,
// near, far.
type Frustum struct {
	planes [6]plane
}

// FrustumFromMatrix extracts the planes of projection×view using the
// Gribb/Hartmann row combinations.
func FrustumFromMatrix(viewProj mgl32.Mat4) Frustum {
	r0, r1, r2, r3 := viewProj.Row(0), viewProj.Row(1), viewProj.Row(2), viewProj.Row(3)
	var f Frustum
	f.planes[0] = planeFromRow(r3.Add(r0))
	f.planes[1] = planeFromRow(r3.Sub(r0))
	f.planes[2] = planeFromRow(r3.Add(r1))
	f.planes[3] = planeFromRow(r3.Sub(r1))
	f.planes[4] = planeFromRow(r3.Add(r2))
	f.planes[5] = planeFromRow(r3.Sub(r2))
	return f
}

func planeFromRow(v mgl32.Vec4) plane {
	p := plane{normal: v.Vec3(), distance: v.W()}
	l := p.normal.Len()
	if l == 0 {
		return p
	}
	return plane{normal: p.normal.Mul(1 / l), distance: p.distance / l}
}

// ContainsSphere reports whether a sphere is inside or intersects the
// frustum. Radius 0 is a point test.
func (f Frustum) ContainsSphere(center mgl32.Vec3, radius float32) bool {
	for _, p := range f.planes {
		if p.signedDistance(center) < -radius {
			return false
		}
	}
	return true
}

// ContainsPoint reports whether point lies inside all six planes.
func (f Frustum) ContainsPoint(point mgl32.Vec3) bool {
	return f.ContainsSphere(point, 0)
}
