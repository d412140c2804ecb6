package scene

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"looky-shapes/internal/gameconfig"
	"looky-shapes/internal/mapgen"
	"looky-shapes/internal/primitives"
	"looky-shapes/internal/shapes"
	"looky-shapes/internal/viewport"
	"looky-shapes/internal/world"
)

const (
	gridMinorStep  = 5
	gridMajorStep  = 50
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
	zoneRingSlices = 4
	zonePulseRate  = 2.5
)

var (
	groundColor     = rl.NewColor(34, 42, 38, 255)
	decorationColor = rl.NewColor(96, 104, 112, 255)
	zoneColor       = rl.NewColor(60, 200, 120, 90)
	zoneRingColor   = rl.NewColor(80, 255, 150, 255)
	fallbackColor   = rl.LightGray
	lightDir        = [3]float32{0.5, 1, 0.5}
)

// Scene draws the play field: ground, decorations, the collection zone and
// every collectible it has been handed through Add. It implements world.Scene.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool

	prims       *primitives.Registry
	colors      map[shapes.Type]rl.Color
	objects     map[uint64]*world.Object
	decorations []mapgen.Decoration
	groundSize  float32
	zoneCenter  rl.Vector3
	zoneRadius  float32
	clock       float32
}

// New returns a scene for the configured world. Colours come from table;
// shapes with an unparsable colour draw light grey.
func New(cfg gameconfig.Config, table shapes.Table, decorations []mapgen.Decoration) *Scene {
	s := &Scene{
		prims:       primitives.NewRegistry(),
		colors:      make(map[shapes.Type]rl.Color, len(table)),
		objects:     make(map[uint64]*world.Object),
		decorations: decorations,
		groundSize:  cfg.World.Size * 2,
		zoneCenter:  rl.NewVector3(cfg.Zone.Center[0], cfg.Zone.Center[1], cfg.Zone.Center[2]),
		zoneRadius:  cfg.Zone.Radius,
	}
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = cfg.Camera.FovY
	s.Camera.Projection = rl.CameraPerspective
	for _, d := range table {
		r, g, b, err := d.RGB()
		if err != nil {
			s.colors[d.Type] = fallbackColor
			continue
		}
		s.colors[d.Type] = rl.NewColor(r, g, b, 255)
	}
	return s
}

// Add starts drawing o.
func (s *Scene) Add(o *world.Object) { s.objects[o.ID] = o }

// Remove stops drawing o.
func (s *Scene) Remove(o *world.Object) { delete(s.objects, o.ID) }

// Len is the number of collectibles being drawn.
func (s *Scene) Len() int { return len(s.objects) }

// SetGridVisible sets whether the debug grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// Update syncs the raylib camera with cam and advances scene animation.
func (s *Scene) Update(cam viewport.Camera, dt float32) {
	p, f := cam.Position, cam.Forward()
	s.Camera.Position = rl.NewVector3(p.X(), p.Y(), p.Z())
	s.Camera.Target = rl.NewVector3(p.X()+f.X(), p.Y()+f.Y(), p.Z()+f.Z())
	s.Camera.Fovy = cam.FovY
	s.clock += dt
}

// Draw renders the 3D scene. Call after ClearBackground and before 2D overlays (HUD, console).
func (s *Scene) Draw() {
	pos := s.Camera.Position
	s.prims.SetView([3]float32{pos.X, pos.Y, pos.Z}, lightDir)

	rl.BeginMode3D(s.Camera)
	s.prims.Draw(primitives.MeshPlane, primitives.Transform{
		Scale: [3]float32{s.groundSize, 1, s.groundSize},
	}, groundColor)
	if s.GridVisible {
		drawDebugGrid(s.groundSize / 2)
	}
	s.drawZone()
	for _, d := range s.decorations {
		name, t := primitives.ForDecoration(d)
		s.prims.Draw(name, t, decorationColor)
	}
	for _, o := range s.objects {
		s.prims.Draw(primitives.ForShape(o.Shape), primitives.Transform{
			Position: o.Position,
			Rotation: o.Rotation,
		}, s.color(o.Shape))
	}
	rl.EndMode3D()
}

func (s *Scene) color(t shapes.Type) rl.Color {
	if c, ok := s.colors[t]; ok {
		return c
	}
	return fallbackColor
}

// drawZone draws the collection disk just above the ground with a pulsing outline.
func (s *Scene) drawZone() {
	c := s.zoneCenter
	s.prims.Draw(primitives.MeshDisk, primitives.Transform{
		Position: [3]float32{c.X, c.Y + 0.02, c.Z},
		Scale:    [3]float32{s.zoneRadius, 0.02, s.zoneRadius},
	}, zoneColor)

	pulse := 1 + 0.05*math32.Sin(s.clock*zonePulseRate)
	for i := 0; i < zoneRingSlices; i++ {
		r := s.zoneRadius*pulse + float32(i)*0.05
		rl.DrawCircle3D(rl.NewVector3(c.X, c.Y+0.05, c.Z), r, rl.NewVector3(1, 0, 0), 90, zoneRingColor)
	}
}

// Unload releases GPU resources. Call before closing the window.
func (s *Scene) Unload() {
	s.prims.Unload()
}

// drawDebugGrid draws a grid on the XZ plane with major/minor lines and axis lines.
// Reuses start/end vectors to avoid per-frame allocations in the hot loop.
func drawDebugGrid(extent float32) {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	n := int(extent)
	var start, end rl.Vector3
	for i := -n; i <= n; i += gridMinorStep {
		c := major
		if i%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(i), 0.01, -extent
		end.X, end.Y, end.Z = float32(i), 0.01, extent
		rl.DrawLine3D(start, end, c)
		start.X, start.Z = -extent, float32(i)
		end.X, end.Z = extent, float32(i)
		rl.DrawLine3D(start, end, c)
	}

	start.X, start.Y, start.Z = -extent, 0.02, 0
	end.X, end.Y, end.Z = extent, 0.02, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, 0, 0
	end.X, end.Y, end.Z = 0, extent/10, 0
	rl.DrawLine3D(start, end, axisY)
	start.X, start.Y, start.Z = 0, 0.02, -extent
	end.X, end.Y, end.Z = 0, 0.02, extent
	rl.DrawLine3D(start, end, axisZ)
}
