package hud

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"looky-shapes/internal/density"
	"looky-shapes/internal/shapes"
)

const (
	fontSize      = 20
	titleSize     = 24
	promptSize    = 26
	padding       = 12
	lineHeight    = fontSize + 6
	swatchSize    = 14
	crosshairSize = 8
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

var (
	panelColor     = rl.NewColor(0, 0, 0, 140)
	doneColor      = rl.NewColor(120, 255, 150, 255)
	crosshairColor = rl.NewColor(255, 255, 255, 200)
)

// Frame is what the overlay shows this frame.
type Frame struct {
	Difficulty int
	Rows       []Row
	Prompt     string
	Captured   bool
	ShowFPS    bool
	ShowStats  bool
	Report     density.Report
	Live       int
}

// HUD draws the overlay. FPS and memory text is only recomputed every
// updateInterval frames.
type HUD struct {
	font         rl.Font // optional; when set, Draw uses DrawTextEx instead of default font
	colors       map[shapes.Type]rl.Color
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns a HUD that colours recipe rows like the shapes in table.
func New(table shapes.Table) *HUD {
	h := &HUD{colors: make(map[shapes.Type]rl.Color, len(table))}
	for _, d := range table {
		if r, g, b, err := d.RGB(); err == nil {
			h.colors[d.Type] = rl.NewColor(r, g, b, 255)
		}
	}
	return h
}

// SetFont sets the overlay font. Zero texture ID = use raylib default.
func (h *HUD) SetFont(font rl.Font) {
	h.font = font
}

// Draw renders f. Call after the scene and before the console.
func (h *HUD) Draw(f Frame) {
	h.frameCount++
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())

	h.drawRecipe(f)
	if f.Captured {
		cx, cy := screenW/2, screenH/2
		rl.DrawLine(cx-crosshairSize, cy, cx+crosshairSize, cy, crosshairColor)
		rl.DrawLine(cx, cy-crosshairSize, cx, cy+crosshairSize, crosshairColor)
	}
	if f.Prompt != "" {
		w := h.measure(f.Prompt, promptSize)
		h.text(f.Prompt, (screenW-w)/2, screenH-promptSize-4*padding, promptSize, rl.White)
	}

	update := h.frameCount%updateInterval == 0 || h.lastFpsText == ""
	if update {
		h.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		runtime.ReadMemStats(&h.lastMemStats)
		h.lastMemText = fmt.Sprintf("Mem: %.2f MiB", float64(h.lastMemStats.Alloc)/(1024*1024))
	}
	y := int32(padding)
	if f.ShowFPS {
		h.rightAligned(h.lastFpsText, screenW, y, rl.Green)
		y += lineHeight
	}
	if f.ShowStats {
		h.rightAligned(fmt.Sprintf("live %d", f.Live), screenW, y, rl.Green)
		y += lineHeight
		h.rightAligned(f.Report.String(), screenW, y, rl.Green)
		y += lineHeight
		h.rightAligned(h.lastMemText, screenW, y, rl.Green)
	}
}

func (h *HUD) drawRecipe(f Frame) {
	title := fmt.Sprintf("Recipe (level %d)", f.Difficulty)
	width := h.measure(title, titleSize)
	for _, r := range f.Rows {
		width = max(width, swatchSize+padding/2+h.measure(r.Text, fontSize))
	}
	height := titleSize + padding + int32(len(f.Rows))*lineHeight
	rl.DrawRectangle(padding/2, padding/2, width+2*padding, height+padding, panelColor)

	h.text(title, padding, padding, titleSize, rl.White)
	y := int32(padding + titleSize + padding/2)
	for _, r := range f.Rows {
		c, ok := h.colors[r.Shape]
		if !ok {
			c = rl.LightGray
		}
		rl.DrawRectangle(padding, y+(fontSize-swatchSize)/2, swatchSize, swatchSize, c)
		tc := rl.RayWhite
		if r.Done {
			tc = doneColor
		}
		h.text(r.Text, padding+swatchSize+padding/2, y, fontSize, tc)
		y += lineHeight
	}
}

func (h *HUD) rightAligned(s string, screenW, y int32, c rl.Color) {
	h.text(s, screenW-h.measure(s, fontSize)-padding, y, fontSize, c)
}

func (h *HUD) measure(s string, size int32) int32 {
	if h.font.Texture.ID != 0 {
		return int32(rl.MeasureTextEx(h.font, s, float32(size), 1).X)
	}
	return rl.MeasureText(s, size)
}

func (h *HUD) text(s string, x, y, size int32, c rl.Color) {
	if h.font.Texture.ID != 0 {
		rl.DrawTextEx(h.font, s, rl.NewVector2(float32(x), float32(y)), float32(size), 1, c)
		return
	}
	rl.DrawText(s, x, y, size, c)
}
