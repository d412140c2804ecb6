// Package session owns one play-through: the live objects, the held slot,
// the recipe and tally, and the density controller that keeps the view
// populated.
package session

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"looky-shapes/internal/density"
	"looky-shapes/internal/gameconfig"
	"looky-shapes/internal/look"
	"looky-shapes/internal/recipe"
	"looky-shapes/internal/rng"
	"looky-shapes/internal/shapes"
	"looky-shapes/internal/spawn"
	"looky-shapes/internal/viewport"
	"looky-shapes/internal/world"
)

// Viewport supplies the camera for the current frame.
type Viewport interface {
	Camera() viewport.Camera
}

// Mover integrates player movement.
type Mover interface {
	Integrate(dt float32)
}

// Logger receives session events.
type Logger interface {
	Logf(format string, args ...any)
}

// Deps are the collaborators a Session needs. Log may be nil.
type Deps struct {
	Config   gameconfig.Config
	Table    shapes.Table
	Scene    world.Scene
	Viewport Viewport
	Mover    Mover
	Source   rng.Source
	Log      Logger
}

// Session is the game state aggregate. It is driven from the frame loop and
// is not safe for concurrent use.
type Session struct {
	cfg      gameconfig.Config
	table    shapes.Table
	scene    world.Scene
	view     Viewport
	mover    Mover
	src      rng.Source
	log      Logger
	reg      *world.Registry
	tracker  *look.Tracker
	ctl      *density.Controller
	held     *world.Object
	recipe   recipe.Recipe
	tally    recipe.Tally
	won      bool
	subs     []func(Event)
	lastView viewport.Camera
}

// New builds a session, generates the first recipe and populates the view
// with the initial objects. The session starts Idle.
func New(d Deps) (*Session, error) {
	if err := d.Config.Validate(); err != nil {
		return nil, err
	}
	dc, err := d.Config.DensityConfig()
	if err != nil {
		return nil, err
	}
	reg := world.NewRegistry()
	placer := spawn.NewPlacer(d.Config.SpawnConfig(), d.Source)
	ctl, err := density.New(dc, reg, d.Scene, d.Table, placer, d.Source, d.Log)
	if err != nil {
		return nil, err
	}
	first, err := recipe.Generate(1, d.Table, d.Source)
	if err != nil {
		return nil, err
	}
	s := &Session{
		cfg:     d.Config,
		table:   d.Table,
		scene:   d.Scene,
		view:    d.Viewport,
		mover:   d.Mover,
		src:     d.Source,
		log:     d.Log,
		reg:     reg,
		tracker: look.NewTracker(d.Config.Look.Blend),
		ctl:     ctl,
		recipe:  first,
		tally:   recipe.Tally{},
	}
	s.lastView = s.view.Camera()
	ctl.Populate(s.query(s.lastView), d.Config.Density.InitialPopulation)
	s.logf("session: %d objects placed, recipe %v", reg.Len(), first.Entries)
	return s, nil
}

// Subscribe registers fn for every future event.
func (s *Session) Subscribe(fn func(Event)) {
	s.subs = append(s.subs, fn)
}

func (s *Session) emit(e Event) {
	for _, fn := range s.subs {
		fn(e)
	}
}

func (s *Session) logf(format string, args ...any) {
	if s.log != nil {
		s.log.Logf(format, args...)
	}
}

func (s *Session) query(cam viewport.Camera) *viewport.Query {
	return viewport.NewQuery(cam, s.cfg.Density.RetentionMargin)
}

// Start activates the session. It does nothing while active or after the
// recipe is complete; NextRecipe resumes play from there.
func (s *Session) Start() {
	if s.ctl.State() == density.Active || s.won {
		return
	}
	s.ctl.Activate()
	s.logf("session: active")
	s.emit(Event{Kind: StateChanged, State: density.Active})
}

// Pause deactivates the session and discards pending look input.
func (s *Session) Pause() {
	if s.ctl.State() == density.Idle {
		return
	}
	s.ctl.Deactivate()
	s.tracker.Reset()
	s.logf("session: idle")
	s.emit(Event{Kind: StateChanged, State: density.Idle})
}

// State returns whether the session is being played.
func (s *Session) State() density.State { return s.ctl.State() }

// Look feeds a raw pointer delta into the look velocity tracker.
func (s *Session) Look(dx, dy float32) {
	if s.ctl.State() == density.Active {
		s.tracker.Accumulate(dx, dy)
	}
}

// Update advances one frame of dt seconds. Idle sessions do nothing.
func (s *Session) Update(dt float32) density.Report {
	if s.ctl.State() != density.Active {
		return density.Report{}
	}
	v := s.tracker.Update()
	s.mover.Integrate(dt)
	cam := s.view.Camera()
	s.lastView = cam

	r := s.ctl.Tick(s.query(cam), s.held, v)

	if s.held != nil {
		s.follow(cam)
		s.held.Rotation = s.held.Rotation.Add(mgl32.Vec3{
			s.cfg.Pickup.HoldSpin[0] * dt,
			s.cfg.Pickup.HoldSpin[1] * dt,
			0,
		})
	}
	for _, o := range s.reg.Objects() {
		o.Advance(dt)
	}
	return r
}

// follow places the held object at the hold offset in camera space.
func (s *Session) follow(cam viewport.Camera) {
	off := mgl32.Vec3(s.cfg.Pickup.HoldOffset)
	s.held.Position = cam.Position.Add(cam.Orientation.Rotate(off))
}

// TryPickup drops the held object if there is one; otherwise it picks up
// the nearest object hit by the view ray within the pickup distance. It
// returns the object picked up, or nil.
func (s *Session) TryPickup() *world.Object {
	if s.held != nil {
		s.Drop()
		return nil
	}
	cam := s.view.Camera()
	origin, dir := cam.Position, cam.Forward()

	var best *world.Object
	bestT := s.cfg.Pickup.Distance
	for _, o := range s.reg.Objects() {
		if t, ok := raySphere(origin, dir, o.Position, o.Radius); ok && t <= bestT {
			best, bestT = o, t
		}
	}
	if best == nil {
		return nil
	}
	s.reg.Remove(best)
	s.held = best
	s.follow(cam)
	s.logf("session: picked up %s #%d", best.Shape, best.ID)
	s.emit(Event{Kind: PickedUp, Shape: best.Shape, Object: best})
	return best
}

// raySphere returns the distance along the unit ray dir to the first
// intersection with the sphere. A ray starting inside the sphere hits at
// the exit point.
func raySphere(origin, dir, center mgl32.Vec3, radius float32) (float32, bool) {
	oc := origin.Sub(center)
	b := oc.Dot(dir)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math32.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// ZoneDistance is the horizontal distance from p to the collection zone
// centre.
func (s *Session) ZoneDistance(p mgl32.Vec3) float32 {
	c := s.cfg.Zone.Center
	dx, dz := p.X()-c[0], p.Z()-c[2]
	return math32.Sqrt(dx*dx + dz*dz)
}

// Drop releases the held object. Inside the collection zone it is
// collected and destroyed; anywhere else it returns to the world unseen.
func (s *Session) Drop() {
	o := s.held
	if o == nil {
		return
	}
	s.held = nil

	if s.ZoneDistance(o.Position) < s.cfg.Zone.Radius {
		s.collect(o)
		return
	}
	o.Seen = false
	if err := s.reg.Add(o); err != nil {
		s.logf("session: drop #%d: %v", o.ID, err)
		s.scene.Remove(o)
		return
	}
	s.logf("session: dropped %s #%d", o.Shape, o.ID)
	s.emit(Event{Kind: Dropped, Shape: o.Shape, Object: o})
}

func (s *Session) collect(o *world.Object) {
	s.scene.Remove(o)
	n := s.tally.Record(o.Shape)
	s.logf("session: collected %s (%d)", o.Shape, n)
	s.emit(Event{Kind: Collected, Shape: o.Shape, Object: o})

	if s.tally.Complete(s.recipe) {
		s.won = true
		s.logf("session: recipe complete at difficulty %d", s.recipe.Difficulty)
		s.emit(Event{Kind: RecipeComplete})
		s.Pause()
	}
}

// NextRecipe raises the difficulty, generates a new recipe, clears the
// tally and resumes play.
func (s *Session) NextRecipe() error {
	r, err := recipe.Generate(s.recipe.Difficulty+1, s.table, s.src)
	if err != nil {
		return fmt.Errorf("next recipe: %w", err)
	}
	s.recipe = r
	s.tally.Reset()
	s.won = false
	s.logf("session: difficulty %d recipe %v", r.Difficulty, r.Entries)
	s.Start()
	return nil
}

// Held returns the held object, or nil.
func (s *Session) Held() *world.Object { return s.held }

// Recipe returns the current recipe.
func (s *Session) Recipe() recipe.Recipe { return s.recipe }

// Progress returns the collected count toward e.
func (s *Session) Progress(e recipe.Entry) int { return s.tally.Progress(e) }

// Won reports whether the current recipe is complete.
func (s *Session) Won() bool { return s.won }

// Registry returns the live objects.
func (s *Session) Registry() *world.Registry { return s.reg }

// Controller returns the density controller, for the dev console.
func (s *Session) Controller() *density.Controller { return s.ctl }

// Visibility classifies o for the camera of the last update.
func (s *Session) Visibility(o *world.Object) viewport.Visibility {
	return s.query(s.lastView).Classify(o.Position, o.Radius)
}
