package app

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// System updates the app once per tick.
type System interface {
	Update(a *App)
}

// DrawSystem draws after every system has run for the tick.
type DrawSystem interface {
	Draw(a *App, screen *ebiten.Image)
}

// Plugin registers systems and resources with an app.
type Plugin interface {
	Build(a *App)
}

// App owns shared resources and system order, and runs as an ebiten game.
// Systems run in registration order, once per tick, on the tick goroutine;
// resources are single-writer-per-tick and carry no locks.
type App struct {
	systems  []System
	draws    []DrawSystem
	startups []func(a *App)
	started  bool

	resources map[uint32]*cell

	layoutW int
	layoutH int
}

// New creates an empty app with a 1920x1080 logical size.
func New() *App {
	return &App{
		resources: make(map[uint32]*cell),
		layoutW:   1920,
		layoutH:   1080,
	}
}

// AddPlugin builds a plugin against this app.
func (a *App) AddPlugin(p Plugin) *App {
	if a == nil || p == nil {
		return a
	}
	p.Build(a)
	return a
}

// AddSystem appends a system to the update order.
func (a *App) AddSystem(s System) {
	if a == nil || s == nil {
		return
	}
	a.systems = append(a.systems, s)
}

// AddDrawSystem appends a draw system to the draw order.
func (a *App) AddDrawSystem(d DrawSystem) {
	if a == nil || d == nil {
		return
	}
	a.draws = append(a.draws, d)
}

// AddStartupSystem appends a function that runs once, on the first tick,
// before any regular system.
func (a *App) AddStartupSystem(fn func(a *App)) {
	if a == nil || fn == nil {
		return
	}
	a.startups = append(a.startups, fn)
}

// Update runs startup systems once, then all systems in order.
func (a *App) Update() error {
	if a == nil {
		return nil
	}
	if !a.started {
		a.started = true
		for _, fn := range a.startups {
			fn(a)
		}
	}
	for _, s := range a.systems {
		s.Update(a)
	}
	return nil
}

// Draw runs all draw systems in order.
func (a *App) Draw(screen *ebiten.Image) {
	if a == nil {
		return
	}
	for _, d := range a.draws {
		d.Draw(a, screen)
	}
}

// Layout reports the logical render size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.layoutW, a.layoutH
}

// SetSize adjusts the logical render size. It lets the app double as a
// presentation surface for display management.
func (a *App) SetSize(w, h int) {
	if a == nil || w <= 0 || h <= 0 {
		return
	}
	a.layoutW = w
	a.layoutH = h
}
