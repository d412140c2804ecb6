package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the game window.
type Window struct {
	Title     string
	Width     int32
	Height    int32
	TargetFPS int32
}

// DefaultWindow is a resizable 1280x720 window at 60 FPS.
func DefaultWindow(title string) Window {
	return Window{Title: title, Width: 1280, Height: 720, TargetFPS: 60}
}

// Run opens the window and runs the main loop. Each frame it calls update with the
// frame time in seconds, then clears the screen and calls draw.
// ESC releases the pointer instead of quitting; close via the window button.
// After the loop ends, unload runs while the GL context still exists. Any of
// update, draw and unload may be nil.
func Run(w Window, update func(dt float32), draw, unload func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(w.TargetFPS)

	for !rl.WindowShouldClose() {
		if update != nil {
			update(rl.GetFrameTime())
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		if draw != nil {
			draw()
		}
		rl.EndDrawing()
	}
	if unload != nil {
		unload()
	}
}
