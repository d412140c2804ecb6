package density

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"looky-shapes/internal/look"
	"looky-shapes/internal/rng"
	"looky-shapes/internal/shapes"
	"looky-shapes/internal/spawn"
	"looky-shapes/internal/viewport"
	"looky-shapes/internal/world"
)

type fixture struct {
	reg   *world.Registry
	scene *world.MemScene
	ctl   *Controller
}

func newFixture(t *testing.T, target int, strategy spawn.Strategy, seed uint64) *fixture {
	t.Helper()
	src := rng.New(seed)
	reg := world.NewRegistry()
	scene := world.NewMemScene()
	cfg := Config{TargetDensity: target, PendingRange: 90, Strategy: strategy, MaxSpin: 0.6}
	ctl, err := New(cfg, reg, scene, shapes.DefaultTable(), spawn.NewPlacer(spawn.DefaultConfig(), src), src, nil)
	if err != nil {
		t.Fatal(err)
	}
	return &fixture{reg: reg, scene: scene, ctl: ctl}
}

func (f *fixture) checkScene(t *testing.T) {
	t.Helper()
	if f.scene.Len() != f.reg.Len() {
		t.Fatalf("scene has %d renderables, registry %d objects", f.scene.Len(), f.reg.Len())
	}
	for _, o := range f.reg.Objects() {
		if !f.scene.Has(o) {
			t.Fatalf("object %d missing from scene", o.ID)
		}
	}
}

func query(yaw float32) *viewport.Query {
	return viewport.NewQuery(viewport.NewCamera(mgl32.Vec3{0, 5, 0}, yaw, 0), 0.15)
}

func TestDensityConvergesFromEmpty(t *testing.T) {
	for _, s := range []spawn.Strategy{spawn.FrustumEdge, spawn.LookBiased} {
		t.Run(s.String(), func(t *testing.T) {
			f := newFixture(t, 12, s, 1)
			f.ctl.Activate()
			q := query(0)
			v := look.Velocity{X: 4}

			first := f.ctl.Tick(q, nil, v)
			if first.Spawned != 12 || first.Removed != 0 {
				t.Fatalf("first tick = %+v", first)
			}
			for i := 0; i < 10; i++ {
				r := f.ctl.Tick(q, nil, v)
				if r.Density != 12 || r.Spawned != 0 || r.Removed != 0 {
					t.Fatalf("tick %d = %+v, want steady density 12", i, r)
				}
			}
			f.checkScene(t)
		})
	}
}

func TestPopulatedViewIsStable(t *testing.T) {
	f := newFixture(t, 12, spawn.FrustumEdge, 2)
	q := query(0)
	objs := f.ctl.Populate(q, 12)
	if len(objs) != 12 || f.reg.Len() != 12 {
		t.Fatalf("populated %d, registry %d", len(objs), f.reg.Len())
	}

	f.ctl.Activate()
	r := f.ctl.Tick(q, nil, look.Velocity{})
	if r.OnScreen != 12 || r.Pending != 0 || r.Spawned != 0 || r.Removed != 0 {
		t.Fatalf("tick = %+v, want 12 on screen and nothing else", r)
	}
	for _, o := range objs {
		if !o.Seen {
			t.Errorf("object %d on screen but not marked seen", o.ID)
		}
	}
}

func TestFullViewNeitherCullsNorSpawns(t *testing.T) {
	f := newFixture(t, 12, spawn.FrustumEdge, 3)
	for i := 0; i < 50; i++ {
		o := &world.Object{
			ID:       f.reg.NextID(),
			Shape:    shapes.Sphere,
			Position: mgl32.Vec3{float32(i%5) - 2, 4, -15 - float32(i)},
			Radius:   1.2,
		}
		f.reg.Add(o)
		f.scene.Add(o)
	}
	f.ctl.Activate()

	r := f.ctl.Tick(query(0), nil, look.Velocity{})
	if r.Removed != 0 || r.Spawned != 0 || r.OnScreen != 50 {
		t.Fatalf("tick = %+v, want 50 on screen, no removals, no spawns", r)
	}
	f.checkScene(t)
}

func TestTurningAwayCullsSeenObjects(t *testing.T) {
	f := newFixture(t, 12, spawn.FrustumEdge, 4)
	f.ctl.Populate(query(0), 12)
	f.ctl.Activate()
	f.ctl.Tick(query(0), nil, look.Velocity{})

	r := f.ctl.Tick(query(math32.Pi), nil, look.Velocity{})
	if r.Removed != 12 || r.Spawned != 12 {
		t.Fatalf("tick after turning = %+v, want 12 removed and 12 spawned", r)
	}
	f.checkScene(t)
}

func TestDistantPendingObjectIsCulled(t *testing.T) {
	f := newFixture(t, 0, spawn.FrustumEdge, 5)
	nearby := &world.Object{ID: f.reg.NextID(), Shape: shapes.Cube, Position: mgl32.Vec3{0, 3, 40}, Radius: 1.75}
	distant := &world.Object{ID: f.reg.NextID(), Shape: shapes.Cube, Position: mgl32.Vec3{0, 3, 150}, Radius: 1.75}
	for _, o := range []*world.Object{nearby, distant} {
		f.reg.Add(o)
		f.scene.Add(o)
	}
	f.ctl.Activate()

	r := f.ctl.Tick(query(0), nil, look.Velocity{})
	if r.Removed != 1 || r.Pending != 1 {
		t.Fatalf("tick = %+v", r)
	}
	if !f.reg.Contains(nearby) || f.reg.Contains(distant) || f.scene.Has(distant) {
		t.Error("wrong object culled")
	}
}

func TestHeldObjectIsExempt(t *testing.T) {
	f := newFixture(t, 0, spawn.FrustumEdge, 6)
	far := &world.Object{ID: f.reg.NextID(), Shape: shapes.Torus, Position: mgl32.Vec3{5000, -300, 5000}, Radius: 1.4, Seen: true}
	f.reg.Add(far)
	f.scene.Add(far)
	f.ctl.Activate()

	r := f.ctl.Tick(query(0), far, look.Velocity{})
	if r.Removed != 0 || !f.reg.Contains(far) {
		t.Fatalf("held object culled: %+v", r)
	}

	// A held object in plain view is not counted either.
	f.reg.Remove(far)
	f.scene.Remove(far)
	inView := &world.Object{ID: f.reg.NextID(), Shape: shapes.Cube, Position: mgl32.Vec3{0, 4.5, -3}, Radius: 1.75}
	f.reg.Add(inView)
	f.scene.Add(inView)
	r = f.ctl.Tick(query(0), inView, look.Velocity{})
	if r.OnScreen != 0 || r.Density != 0 || inView.Seen {
		t.Fatalf("held object counted: %+v", r)
	}
}

func TestIdleTickIsNoop(t *testing.T) {
	f := newFixture(t, 12, spawn.FrustumEdge, 7)
	o := &world.Object{ID: f.reg.NextID(), Shape: shapes.Cube, Position: mgl32.Vec3{0, 3, 500}, Radius: 1.75, Seen: true}
	f.reg.Add(o)
	f.scene.Add(o)

	if r := f.ctl.Tick(query(0), nil, look.Velocity{}); r != (Report{}) {
		t.Fatalf("idle tick = %+v", r)
	}
	if f.reg.Len() != 1 || f.scene.Added != 1 {
		t.Error("idle tick changed the world")
	}

	f.ctl.Activate()
	f.ctl.Deactivate()
	if f.ctl.State() != Idle {
		t.Errorf("state = %v", f.ctl.State())
	}
}

func TestRuntimeStrategyRejectsCone(t *testing.T) {
	src := rng.New(1)
	_, err := New(Config{Strategy: spawn.AheadCone}, world.NewRegistry(), world.NewMemScene(),
		shapes.DefaultTable(), spawn.NewPlacer(spawn.DefaultConfig(), src), src, nil)
	if !errors.Is(err, ErrConeAtRuntime) {
		t.Fatalf("New with cone: %v", err)
	}

	f := newFixture(t, 5, spawn.FrustumEdge, 8)
	if err := f.ctl.SetStrategy(spawn.AheadCone); !errors.Is(err, ErrConeAtRuntime) {
		t.Errorf("SetStrategy(cone) = %v", err)
	}
	if err := f.ctl.SetStrategy(spawn.LookBiased); err != nil || f.ctl.Strategy() != spawn.LookBiased {
		t.Errorf("SetStrategy(biased) = %v, strategy %v", err, f.ctl.Strategy())
	}
	f.ctl.SetTarget(-3)
	if f.ctl.Target() != 0 {
		t.Errorf("target = %d, want 0", f.ctl.Target())
	}
}

func TestZeroWeightTableIsFatal(t *testing.T) {
	table := shapes.DefaultTable()
	for i := range table {
		table[i].Rarity = 0
	}
	src := rng.New(1)
	_, err := New(Config{Strategy: spawn.FrustumEdge}, world.NewRegistry(), world.NewMemScene(),
		table, spawn.NewPlacer(spawn.DefaultConfig(), src), src, nil)
	if !errors.Is(err, shapes.ErrZeroWeight) {
		t.Fatalf("err = %v, want ErrZeroWeight", err)
	}
}
