package display

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/consolekit/platform"
)

// Window describes a preset host window.
type Window struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
}

// DockedWindow is a fixed 1920x1080 window for docked-style play.
func DockedWindow(title string) Window {
	r := platform.DockedResolution
	return Window{Title: title, Width: r.W, Height: r.H}
}

// HandheldWindow is a fixed 1280x720 window matching the built-in screen.
func HandheldWindow(title string) Window {
	r := platform.HandheldResolution
	return Window{Title: title, Width: r.W, Height: r.H}
}

// Apply pushes the descriptor to the host window. Call before the game
// loop starts.
func (w Window) Apply() {
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowSize(w.Width, w.Height)
	mode := ebiten.WindowResizingModeDisabled
	if w.Resizable {
		mode = ebiten.WindowResizingModeEnabled
	}
	ebiten.SetWindowResizingMode(mode)
}
