package display

import (
	"github.com/milk9111/consolekit/app"
	"github.com/milk9111/consolekit/platform"
)

// StateResource is the current presentation state, recomputed from the
// config only when the config changed since last tick.
var StateResource = app.NewResource[Display]()

// Display is the current presentation state.
type Display struct {
	Mode       platform.DisplayMode
	Resolution platform.Resolution
	VSync      bool
}

// DefaultDisplay is docked 1080p output with vsync on.
func DefaultDisplay() Display {
	return Display{
		Mode:       platform.Docked,
		Resolution: platform.DockedResolution,
		VSync:      true,
	}
}

// HandheldDisplay is the built-in screen at 720p.
func HandheldDisplay() Display {
	return Display{
		Mode:       platform.Handheld,
		Resolution: platform.HandheldResolution,
		VSync:      true,
	}
}

// ResolutionF64 returns the resolution as floats.
func (d Display) ResolutionF64() (float64, float64) {
	return d.Resolution.F64()
}

// AspectRatio returns width over height.
func (d Display) AspectRatio() float64 {
	return d.Resolution.Aspect()
}
