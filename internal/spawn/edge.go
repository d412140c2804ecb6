package spawn

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"looky-shapes/internal/look"
	"looky-shapes/internal/rng"
	"looky-shapes/internal/viewport"
)

// edgeRegion is a camera-relative sector used by the rejection search.
type edgeRegion int

const (
	regionLeft edgeRegion = iota
	regionRight
	regionBehindLeft
	regionBehindRight
	regionCount
)

// yawOffset converts an off-forward angle into a signed yaw offset for the
// region. Behind regions mirror the angle to π−θ.
func (r edgeRegion) yawOffset(theta float32) float32 {
	switch r {
	case regionLeft:
		return theta
	case regionRight:
		return -theta
	case regionBehindLeft:
		return math32.Pi - theta
	default:
		return -(math32.Pi - theta)
	}
}

// edge runs the bounded rejection search. Each attempt picks a region, an
// angle outside the half field of view and a distance, and keeps the first
// candidate that is off screen.
func (p *Placer) edge(q *viewport.Query, radius float32) Placement {
	cam := q.Camera()
	yaw := cam.Yaw()
	minA := mgl32.DegToRad(p.cfg.EdgeMinAngle)
	maxA := mgl32.DegToRad(p.cfg.EdgeMaxAngle)

	for attempt := 1; attempt <= p.cfg.MaxAttempts; attempt++ {
		region := edgeRegion(rng.Intn(p.src, int(regionCount)))
		theta := rng.Range(p.src, minA, maxA)
		d := rng.Range(p.src, p.cfg.EdgeMinDistance, p.cfg.EdgeMaxDistance)

		dir := viewport.HeadingDir(yaw + region.yawOffset(theta))
		pt := p.ground(cam.Position.Add(dir.Mul(d)))
		if !q.IsOnScreen(pt, radius) {
			return Placement{Position: pt, Attempts: attempt}
		}
	}
	return Placement{Position: p.fallback(q, radius), Attempts: p.cfg.MaxAttempts, Fallback: true}
}

// biased places just outside the edge the player is turning toward.
// Left/right candidates sit BiasMargin degrees past the horizontal half
// field of view, with the height band as the orthogonal jitter. Top/bottom
// candidates solve for the horizontal distance at which a band-height point
// sits just past the vertical edge, with a yaw jitter. When no such distance
// exists in range, or the candidate still overlaps the view, the search
// moves to the horizontal edge.
func (p *Placer) biased(q *viewport.Query, v look.Velocity, radius float32) Placement {
	cam := q.Camera()
	side := v.Side(p.cfg.BiasDeadzone, p.src)

	for attempt := 1; attempt <= p.cfg.MaxAttempts; attempt++ {
		var pt mgl32.Vec3
		if side.Horizontal() {
			pt = p.sideCandidate(cam, side)
		} else {
			var ok bool
			pt, ok = p.verticalCandidate(cam, side)
			if !ok {
				side = v.HorizontalSide(p.src)
				continue
			}
		}
		if !q.IsOnScreen(pt, radius) {
			return Placement{Position: pt, Attempts: attempt}
		}
		if !side.Horizontal() {
			side = v.HorizontalSide(p.src)
		}
	}
	return Placement{Position: p.fallback(q, radius), Attempts: p.cfg.MaxAttempts, Fallback: true}
}

func (p *Placer) sideCandidate(cam viewport.Camera, side look.Side) mgl32.Vec3 {
	off := cam.HalfFovX() + mgl32.DegToRad(p.cfg.BiasMargin)
	if side == look.SideRight {
		off = -off
	}
	d := rng.Range(p.src, p.cfg.EdgeMinDistance, p.cfg.EdgeMaxDistance)
	dir := viewport.HeadingDir(cam.Yaw() + off)
	return p.ground(cam.Position.Add(dir.Mul(d)))
}

// minVerticalDistance keeps bottom-edge spawns from landing at the feet.
const minVerticalDistance = 1

func (p *Placer) verticalCandidate(cam viewport.Camera, side look.Side) (mgl32.Vec3, bool) {
	edge := cam.HalfFovY() + mgl32.DegToRad(p.cfg.BiasMargin)
	elev := cam.Pitch() + edge
	if side == look.SideBottom {
		elev = cam.Pitch() - edge
	}
	if math32.Abs(elev) >= math32.Pi/2 {
		return mgl32.Vec3{}, false
	}

	h := rng.Range(p.src, p.cfg.HeightMin, p.cfg.HeightMax)
	tan := math32.Tan(elev)
	if tan == 0 {
		return mgl32.Vec3{}, false
	}
	d := (h - cam.Position.Y()) / tan
	if d < minVerticalDistance || d > p.cfg.EdgeMaxDistance {
		return mgl32.Vec3{}, false
	}

	jitter := rng.Range(p.src, -1, 1) * p.cfg.BiasJitter * cam.HalfFovX()
	dir := viewport.HeadingDir(cam.Yaw() + jitter)
	pt := cam.Position.Add(dir.Mul(d))
	pt[1] = h
	return p.clamp(pt), true
}
