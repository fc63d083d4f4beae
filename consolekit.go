// Package consolekit helps run ebiten games on a Switch-style handheld
// console: docked and handheld display modes with fixed resolutions, and
// a named-button abstraction over keyboard and gamepad input.
//
// Add the Kit plugin to an app and read the shared resources from your
// systems:
//
//	a := app.New()
//	a.AddPlugin(consolekit.Kit{})
//	if err := ebiten.RunGame(a); err != nil {
//		log.Fatal(err)
//	}
package consolekit

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/milk9111/consolekit/app"
	"github.com/milk9111/consolekit/display"
	"github.com/milk9111/consolekit/input"
	"github.com/milk9111/consolekit/overlay"
	"github.com/milk9111/consolekit/platform"
)

// Kit is the top-level plugin. It inserts the runtime config and builds
// the display, input, and overlay plugins.
type Kit struct {
	// Config overrides the build-time default when non-nil.
	Config *platform.Config
}

func (k Kit) Build(a *app.App) {
	cfg := platform.DefaultConfig()
	if k.Config != nil {
		cfg = *k.Config
	}
	app.Insert(a, platform.ConfigResource, cfg)

	display.Plugin{}.Build(a)
	input.Plugin{}.Build(a)
	overlay.Plugin{}.Build(a)

	a.AddStartupSystem(logStartup)
}

func logStartup(a *app.App) {
	cfg, ok := app.Get(a, platform.ConfigResource)
	if !ok {
		return
	}
	log.Info("consolekit initialized",
		"platform", cfg.Platform.Name(),
		"resolution", fmt.Sprintf("%dx%d", cfg.Resolution.W, cfg.Resolution.H),
		"fps", cfg.TargetFPS,
	)
}

// WatchConfig reloads cfgPath on edits, replacing the runtime config
// between ticks. Close the returned watcher on shutdown.
func WatchConfig(a *app.App, cfgPath string) (*platform.Watcher, error) {
	w, err := platform.NewWatcher(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("consolekit: watch %s: %w", cfgPath, err)
	}
	a.AddSystem(&platform.ReloadSystem{Watcher: w})
	return w, nil
}
