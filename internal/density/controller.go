// Package density keeps a steady number of collectibles in front of the
// player. Each active tick culls objects that left the retention zone,
// counts what the player can see, and spawns replacements just outside the
// view.
//
// Objects spawned off screen are pending until they are first seen. Pending
// objects count toward density and survive culling while they stay within
// PendingRange of the camera; without that, an edge spawn would be culled on
// the tick after it was placed.
package density

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"looky-shapes/internal/look"
	"looky-shapes/internal/rng"
	"looky-shapes/internal/shapes"
	"looky-shapes/internal/spawn"
	"looky-shapes/internal/viewport"
	"looky-shapes/internal/world"
)

// State is the controller lifecycle state.
type State int

const (
	Idle State = iota
	Active
)

func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "idle"
}

// ErrConeAtRuntime is returned when the ahead-of-view cone is configured as
// the replenish strategy; it would spawn objects in plain sight.
var ErrConeAtRuntime = errors.New("cone strategy is reserved for initial population")

// Config tunes the controller.
type Config struct {
	TargetDensity int
	// PendingRange is how far an unseen object may be from the camera
	// before it is culled.
	PendingRange float32
	// Strategy is the runtime placement strategy: FrustumEdge or LookBiased.
	Strategy spawn.Strategy
	// MaxSpin bounds each spin axis in rad/s.
	MaxSpin float32
}

// Report summarises one Tick.
type Report struct {
	Removed   int
	OnScreen  int
	Pending   int
	Density   int
	Spawned   int
	Fallbacks int
}

func (r Report) String() string {
	return fmt.Sprintf("on screen %d  pending %d  density %d  removed %d  spawned %d  fallbacks %d",
		r.OnScreen, r.Pending, r.Density, r.Removed, r.Spawned, r.Fallbacks)
}

// Logger receives placement fallback notices.
type Logger interface {
	Logf(format string, args ...any)
}

// Controller runs the cull, count and replenish cycle.
type Controller struct {
	cfg      Config
	reg      *world.Registry
	scene    world.Scene
	table    shapes.Table
	selector *shapes.Selector
	placer   *spawn.Placer
	src      rng.Source
	log      Logger
	state    State
	last     Report
	doomed   []*world.Object
}

// New returns an Idle controller. log may be nil.
func New(cfg Config, reg *world.Registry, scene world.Scene, table shapes.Table,
	placer *spawn.Placer, src rng.Source, log Logger) (*Controller, error) {
	if cfg.Strategy == spawn.AheadCone {
		return nil, ErrConeAtRuntime
	}
	if cfg.TargetDensity < 0 {
		return nil, fmt.Errorf("target density %d is negative", cfg.TargetDensity)
	}
	sel, err := shapes.NewSelector(table)
	if err != nil {
		return nil, fmt.Errorf("density controller: %w", err)
	}
	return &Controller{
		cfg:      cfg,
		reg:      reg,
		scene:    scene,
		table:    table,
		selector: sel,
		placer:   placer,
		src:      src,
		log:      log,
	}, nil
}

// Activate moves the controller to Active.
func (c *Controller) Activate() { c.state = Active }

// Deactivate moves the controller to Idle. Idle ticks do nothing.
func (c *Controller) Deactivate() { c.state = Idle }

// State returns the lifecycle state.
func (c *Controller) State() State { return c.state }

// Last returns the report of the most recent active tick.
func (c *Controller) Last() Report { return c.last }

// Target returns the target density.
func (c *Controller) Target() int { return c.cfg.TargetDensity }

// SetTarget changes the target density. Negative values clamp to zero.
func (c *Controller) SetTarget(n int) { c.cfg.TargetDensity = max(n, 0) }

// Strategy returns the runtime placement strategy.
func (c *Controller) Strategy() spawn.Strategy { return c.cfg.Strategy }

// SetStrategy changes the runtime placement strategy.
func (c *Controller) SetStrategy(s spawn.Strategy) error {
	if s == spawn.AheadCone {
		return ErrConeAtRuntime
	}
	c.cfg.Strategy = s
	return nil
}

// Populate spawns n objects inside the view with the cone strategy. It runs
// in either state and returns the objects added.
func (c *Controller) Populate(q *viewport.Query, n int) []*world.Object {
	out := make([]*world.Object, 0, n)
	for i := 0; i < n; i++ {
		o, _ := c.spawn(q, spawn.AheadCone, look.Velocity{})
		out = append(out, o)
	}
	return out
}

// Tick runs one cull, count and replenish cycle for the camera in q. held
// is skipped by every step even if it is in the registry. Idle ticks
// return a zero Report.
func (c *Controller) Tick(q *viewport.Query, held *world.Object, v look.Velocity) Report {
	if c.state != Active {
		return Report{}
	}
	var r Report
	eye := q.Camera().Position

	c.doomed = c.doomed[:0]
	for _, o := range c.reg.Objects() {
		if o == held || q.IsWithinRetentionZone(o.Position, o.Radius) {
			continue
		}
		if !o.Seen && o.Position.Sub(eye).Len() <= c.cfg.PendingRange {
			continue
		}
		c.doomed = append(c.doomed, o)
	}
	for i, o := range c.doomed {
		c.reg.Remove(o)
		c.scene.Remove(o)
		c.doomed[i] = nil
	}
	r.Removed = len(c.doomed)

	for _, o := range c.reg.Objects() {
		if o == held {
			continue
		}
		switch {
		case q.IsOnScreen(o.Position, o.Radius):
			o.Seen = true
			r.OnScreen++
		case !o.Seen:
			r.Pending++
		}
	}
	r.Density = r.OnScreen + r.Pending

	deficit := max(0, c.cfg.TargetDensity-r.Density)
	for i := 0; i < deficit; i++ {
		o, pl := c.spawn(q, c.cfg.Strategy, v)
		r.Spawned++
		if pl.Fallback {
			r.Fallbacks++
			if c.log != nil {
				c.log.Logf("spawn: %s placement exhausted %d attempts, fallback at %v", c.cfg.Strategy, pl.Attempts, o.Position)
			}
		}
	}
	c.last = r
	return r
}

func (c *Controller) spawn(q *viewport.Query, s spawn.Strategy, v look.Velocity) (*world.Object, spawn.Placement) {
	shape := c.selector.Select(c.src)
	def, _ := c.table.Lookup(shape)
	pl := c.placer.Place(q, s, v, def.Radius)

	o := &world.Object{
		ID:       c.reg.NextID(),
		Shape:    shape,
		Position: pl.Position,
		Rotation: mgl32.Vec3{
			rng.Range(c.src, 0, math32.Pi),
			rng.Range(c.src, 0, math32.Pi),
			rng.Range(c.src, 0, math32.Pi),
		},
		Spin: mgl32.Vec3{
			rng.Range(c.src, -c.cfg.MaxSpin, c.cfg.MaxSpin),
			rng.Range(c.src, -c.cfg.MaxSpin, c.cfg.MaxSpin),
			rng.Range(c.src, -c.cfg.MaxSpin, c.cfg.MaxSpin),
		},
		Radius: def.Radius,
	}
	// IDs come from this registry, so Add cannot collide.
	_ = c.reg.Add(o)
	c.scene.Add(o)
	return o, pl
}
