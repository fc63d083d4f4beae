package platform

// Platform is the build target the kit runs on.
type Platform int

const (
	// Desktop is the development build (Windows, macOS, Linux).
	Desktop Platform = iota
	// ConsoleDocked is the console outputting to a TV at 1080p.
	ConsoleDocked
	// ConsoleHandheld is the console on its built-in 720p screen.
	ConsoleHandheld
)

// Current returns the platform fixed at build time. Builds tagged
// `console` report ConsoleDocked; everything else reports Desktop. There
// is no runtime hardware probing.
func Current() Platform {
	return buildTarget
}

// Name returns a human-readable platform name.
func (p Platform) Name() string {
	switch p {
	case ConsoleDocked:
		return "Console (Docked)"
	case ConsoleHandheld:
		return "Console (Handheld)"
	}
	return "Desktop"
}

// Resolution returns the native resolution for p.
func (p Platform) Resolution() Resolution {
	if p == ConsoleHandheld {
		return HandheldResolution
	}
	return DockedResolution
}

// IsConsole reports whether p is a console target in any mode.
func (p Platform) IsConsole() bool {
	return p == ConsoleDocked || p == ConsoleHandheld
}

// DisplayMode is how the console is currently presented.
type DisplayMode int

const (
	// Docked outputs to a TV at 1080p.
	Docked DisplayMode = iota
	// Handheld uses the built-in screen at 720p.
	Handheld
	// Tabletop props the console on its kickstand; same output as
	// handheld.
	Tabletop
)

func (m DisplayMode) String() string {
	switch m {
	case Handheld:
		return "Handheld"
	case Tabletop:
		return "Tabletop"
	}
	return "Docked"
}

// Resolution returns the fixed output size for m.
func (m DisplayMode) Resolution() Resolution {
	if m == Docked {
		return DockedResolution
	}
	return HandheldResolution
}

// Resolution is a fixed output size in pixels.
type Resolution struct {
	W int
	H int
}

var (
	// DockedResolution is the TV output size.
	DockedResolution = Resolution{W: 1920, H: 1080}
	// HandheldResolution is the built-in screen size.
	HandheldResolution = Resolution{W: 1280, H: 720}
)

// F64 returns the resolution as floats.
func (r Resolution) F64() (float64, float64) {
	return float64(r.W), float64(r.H)
}

// Aspect returns width over height, or 0 for a degenerate height.
func (r Resolution) Aspect() float64 {
	if r.H == 0 {
		return 0
	}
	return float64(r.W) / float64(r.H)
}
