package display

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/consolekit/app"
	"github.com/milk9111/consolekit/platform"
)

// Surface is a host presentation target whose size can be pushed.
type Surface interface {
	SetSize(w, h int)
}

// HostSurface is a Surface that also controls host pacing.
type HostSurface interface {
	Surface
	SetVSync(on bool)
	SetTPS(tps int)
}

// WindowSurface pushes presentation changes to the host window.
type WindowSurface struct{}

func (WindowSurface) SetSize(w, h int) {
	ebiten.SetWindowSize(w, h)
}

func (WindowSurface) SetVSync(on bool) {
	ebiten.SetVsyncEnabled(on)
}

func (WindowSurface) SetTPS(tps int) {
	if tps > 0 {
		ebiten.SetTPS(tps)
	}
}

// System copies config changes into the display state and pushes the new
// size to every surface. It does nothing while the config version holds
// still.
type System struct {
	Surfaces []Surface

	seen uint64
}

func (s *System) Update(a *app.App) {
	if s == nil {
		return
	}
	v := app.Version(a, platform.ConfigResource)
	if v == s.seen {
		return
	}
	s.seen = v

	cfg, ok := app.Get(a, platform.ConfigResource)
	if !ok {
		return
	}
	d, ok := app.Get(a, StateResource)
	if !ok {
		d = DefaultDisplay()
	}
	d.Mode = cfg.Mode
	d.Resolution = cfg.Resolution
	app.Insert(a, StateResource, d)

	for _, surf := range s.Surfaces {
		if surf == nil {
			continue
		}
		surf.SetSize(d.Resolution.W, d.Resolution.H)
		if host, ok := surf.(HostSurface); ok {
			host.SetVSync(d.VSync)
			host.SetTPS(cfg.TargetFPS)
		}
	}
}

// Plugin wires display management into an app. When Surfaces is nil the
// host window and the app's logical layout are used.
type Plugin struct {
	Surfaces []Surface
}

func (p Plugin) Build(a *app.App) {
	app.Insert(a, StateResource, DefaultDisplay())
	surfaces := p.Surfaces
	if surfaces == nil {
		surfaces = []Surface{WindowSurface{}, a}
	}
	a.AddSystem(&System{Surfaces: surfaces})
}
