package viewport

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Visibility classifies a position against one frame's camera.
type Visibility int

const (
	// OffScreen positions are outside the retention zone and may be culled.
	OffScreen Visibility = iota
	// NearScreen positions are in the retention margin but not on screen.
	NearScreen
	// OnScreen positions pass the strict view-volume test.
	OnScreen
)

func (v Visibility) String() string {
	switch v {
	case OnScreen:
		return "on-screen"
	case NearScreen:
		return "near-screen"
	default:
		return "off-screen"
	}
}

// ScreenPoint is a position in normalized device coordinates. X and Y are
// in [-1, 1] when inside the viewport; Depth is 0 at the near plane and 1
// at the far plane, and -1 for points at or behind the eye.
type ScreenPoint struct {
	X, Y, Depth float32
}

// Query evaluates visibility predicates for a fixed camera. Build one per
// frame after the camera has been updated.
type Query struct {
	cam       Camera
	viewProj  mgl32.Mat4
	strict    Frustum
	retention Frustum
	margin    float32
}

// NewQuery prepares the strict frustum and a retention frustum whose
// half-angle tangents are widened by margin (0.15 = 15% beyond each screen
// edge) and whose far plane is pushed out by the same factor.
func NewQuery(cam Camera, margin float32) *Query {
	if margin < 0 {
		margin = 0
	}
	view := cam.View()
	viewProj := cam.Projection().Mul4(view)

	widened := 2 * math32.Atan(math32.Tan(cam.HalfFovY())*(1+margin))
	retProj := mgl32.Perspective(widened, cam.Aspect, cam.Near, cam.Far*(1+margin))

	return &Query{
		cam:       cam,
		viewProj:  viewProj,
		strict:    FrustumFromMatrix(viewProj),
		retention: FrustumFromMatrix(retProj.Mul4(view)),
		margin:    margin,
	}
}

// Camera returns the camera the query was built for.
func (q *Query) Camera() Camera { return q.cam }

// Margin returns the retention margin.
func (q *Query) Margin() float32 { return q.margin }

// ProjectToScreen maps a world position to normalized device coordinates.
func (q *Query) ProjectToScreen(p mgl32.Vec3) ScreenPoint {
	clip := q.viewProj.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= 0 {
		return ScreenPoint{Depth: -1}
	}
	return ScreenPoint{
		X:     clip.X() / w,
		Y:     clip.Y() / w,
		Depth: (clip.Z()/w + 1) / 2,
	}
}

// InView reports whether a projected point lies inside the viewport.
func (s ScreenPoint) InView() bool {
	return s.X >= -1 && s.X <= 1 && s.Y >= -1 && s.Y <= 1 && s.Depth >= 0 && s.Depth <= 1
}

// IsOnScreen is the strict containment test for a bounding sphere.
func (q *Query) IsOnScreen(p mgl32.Vec3, radius float32) bool {
	return q.strict.ContainsSphere(p, radius)
}

// IsWithinRetentionZone reports whether a bounding sphere is on screen or
// inside the widened retention frustum. Anything on screen is retained.
func (q *Query) IsWithinRetentionZone(p mgl32.Vec3, radius float32) bool {
	return q.IsOnScreen(p, radius) || q.retention.ContainsSphere(p, radius)
}

// Classify returns the visibility band of a bounding sphere.
func (q *Query) Classify(p mgl32.Vec3, radius float32) Visibility {
	if q.IsOnScreen(p, radius) {
		return OnScreen
	}
	if q.retention.ContainsSphere(p, radius) {
		return NearScreen
	}
	return OffScreen
}
