// Package spawn chooses world positions for new collectibles relative to
// the camera. Three strategies exist: an ahead-of-view cone for populating
// the world at start, a rejection search along the frustum edges, and an
// edge placement biased toward where the player is turning.
package spawn

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"looky-shapes/internal/look"
	"looky-shapes/internal/rng"
	"looky-shapes/internal/viewport"
)

// Strategy selects a placement algorithm.
type Strategy int

const (
	// AheadCone places inside the view; reserved for initial population.
	AheadCone Strategy = iota
	// FrustumEdge searches left, right and behind the view for an off-screen spot.
	FrustumEdge
	// LookBiased places just outside the edge the player is turning toward.
	LookBiased
)

func (s Strategy) String() string {
	switch s {
	case AheadCone:
		return "cone"
	case FrustumEdge:
		return "edge"
	case LookBiased:
		return "biased"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy accepts the names produced by String.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "cone":
		return AheadCone, nil
	case "edge":
		return FrustumEdge, nil
	case "biased":
		return LookBiased, nil
	}
	return 0, fmt.Errorf("unknown spawn strategy %q (want cone, edge or biased)", name)
}

// Config holds the placement bands. Angles are in degrees.
type Config struct {
	WorldSize       float32
	PlayerClearance float32
	HeightMin       float32
	HeightMax       float32

	ConeNear          float32
	ConeRange         float32
	ConeAngleFraction float32

	EdgeMinAngle    float32
	EdgeMaxAngle    float32
	EdgeMinDistance float32
	EdgeMaxDistance float32

	BiasMargin   float32
	BiasJitter   float32
	BiasDeadzone float32

	MaxAttempts      int
	FallbackDistance float32
}

// DefaultConfig matches the shipped game.yaml.
func DefaultConfig() Config {
	return Config{
		WorldSize:         200,
		PlayerClearance:   5,
		HeightMin:         1,
		HeightMax:         5,
		ConeNear:          10,
		ConeRange:         40,
		ConeAngleFraction: 0.8,
		EdgeMinAngle:      50,
		EdgeMaxAngle:      90,
		EdgeMinDistance:   20,
		EdgeMaxDistance:   60,
		BiasMargin:        6,
		BiasJitter:        0.5,
		BiasDeadzone:      0.5,
		MaxAttempts:       20,
		FallbackDistance:  25,
	}
}

// Bound is the half-extent both horizontal axes are clamped to.
func (c Config) Bound() float32 {
	return c.WorldSize - c.PlayerClearance
}

// Placement is the result of one Place call.
type Placement struct {
	Position mgl32.Vec3
	// Attempts is the number of candidates generated; 1 for AheadCone.
	Attempts int
	// Fallback is set when every candidate was on screen and the
	// deterministic behind-the-camera point was used.
	Fallback bool
}

// Placer generates spawn positions. It is not safe for concurrent use; the
// game calls it from the frame loop only.
type Placer struct {
	cfg Config
	src rng.Source
}

// NewPlacer returns a Placer drawing randomness from src.
func NewPlacer(cfg Config, src rng.Source) *Placer {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Placer{cfg: cfg, src: src}
}

// Config returns the placement configuration.
func (p *Placer) Config() Config { return p.cfg }

// Place returns a position for an object of the given bounding radius.
// FrustumEdge and LookBiased results are never on screen for q's camera.
func (p *Placer) Place(q *viewport.Query, s Strategy, v look.Velocity, radius float32) Placement {
	switch s {
	case AheadCone:
		return Placement{Position: p.cone(q.Camera()), Attempts: 1}
	case LookBiased:
		return p.biased(q, v, radius)
	default:
		return p.edge(q, radius)
	}
}

// ConePoint is the deterministic core of the cone strategy: the point at
// distance d along the view axis, offset by tan(h)·d along right and
// tan(v)·d along up.
func ConePoint(cam viewport.Camera, d, h, v float32) mgl32.Vec3 {
	f, r, u := cam.Forward(), cam.Right(), cam.Up()
	return cam.Position.
		Add(f.Mul(d)).
		Add(r.Mul(math32.Tan(h) * d)).
		Add(u.Mul(math32.Tan(v) * d))
}

func (p *Placer) cone(cam viewport.Camera) mgl32.Vec3 {
	d := rng.Range(p.src, p.cfg.ConeNear, p.cfg.ConeNear+p.cfg.ConeRange)
	h := rng.Range(p.src, -1, 1) * p.cfg.ConeAngleFraction * cam.HalfFovX()
	v := rng.Range(p.src, -1, 1) * p.cfg.ConeAngleFraction * cam.HalfFovY()
	return p.ground(ConePoint(cam, d, h, v))
}

// ground replaces the height with a draw from the height band and clamps
// the horizontal axes to the world.
func (p *Placer) ground(pt mgl32.Vec3) mgl32.Vec3 {
	pt[1] = rng.Range(p.src, p.cfg.HeightMin, p.cfg.HeightMax)
	return p.clamp(pt)
}

func (p *Placer) clamp(pt mgl32.Vec3) mgl32.Vec3 {
	b := p.cfg.Bound()
	pt[0] = mgl32.Clamp(pt[0], -b, b)
	pt[2] = mgl32.Clamp(pt[2], -b, b)
	return pt
}

// fallback is the last resort of the off-screen strategies: a point
// FallbackDistance behind the camera heading at the floor of the height
// band. If clamping to the world pulled it back into view, the point
// directly behind the eye is used instead; it lies behind the near plane
// and so cannot be on screen.
func (p *Placer) fallback(q *viewport.Query, radius float32) mgl32.Vec3 {
	cam := q.Camera()
	pt := cam.Position.Sub(cam.Heading().Mul(p.cfg.FallbackDistance))
	pt[1] = p.cfg.HeightMin
	pt = p.clamp(pt)
	if !q.IsOnScreen(pt, radius) {
		return pt
	}
	return cam.Position.Sub(cam.Forward().Mul(p.cfg.FallbackDistance))
}
