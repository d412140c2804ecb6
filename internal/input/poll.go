package input

import rl "github.com/gen2brain/raylib-go/raylib"

// Pointer owns the captured cursor. While captured the cursor is hidden and
// pointer deltas turn the view.
type Pointer struct {
	captured bool
}

// Captured reports whether the cursor is captured.
func (p *Pointer) Captured() bool { return p.captured }

// Capture hides and locks the cursor. It returns false if already captured.
func (p *Pointer) Capture() bool {
	if p.captured {
		return false
	}
	rl.DisableCursor()
	p.captured = true
	return true
}

// Release frees the cursor. It returns false if it was not captured.
func (p *Pointer) Release() bool {
	if !p.captured {
		return false
	}
	rl.EnableCursor()
	p.captured = false
	return true
}

// Poll reads this frame's input. Pointer deltas are only reported while the
// cursor is captured; losing window focus reports a release.
func (p *Pointer) Poll() Frame {
	f := Frame{
		Keys: Keys{
			Forward: rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp),
			Back:    rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown),
			Left:    rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft),
			Right:   rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight),
		},
		Click:   rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		Release: rl.IsKeyPressed(rl.KeyEscape),
		Console: rl.IsKeyPressed(rl.KeyGrave),
		Confirm: rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter),
	}
	if p.captured {
		d := rl.GetMouseDelta()
		f.DX, f.DY = d.X, d.Y
		if !rl.IsWindowFocused() {
			f.Release = true
		}
	}
	return f
}
