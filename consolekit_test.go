package consolekit

import (
	"testing"

	"github.com/milk9111/consolekit/app"
	"github.com/milk9111/consolekit/display"
	"github.com/milk9111/consolekit/input"
	"github.com/milk9111/consolekit/platform"
)

func TestKitBuildInsertsResources(t *testing.T) {
	a := app.New()
	a.AddPlugin(Kit{})

	cfg, ok := app.Get(a, platform.ConfigResource)
	if !ok {
		t.Fatalf("kit must insert the runtime config")
	}
	if cfg.Platform != platform.Current() || cfg.TargetFPS != 60 {
		t.Fatalf("expected the build-time default config, got %+v", cfg)
	}
	if _, ok := app.Get(a, input.StateResource); !ok {
		t.Fatalf("kit must insert the input state")
	}
	if d, ok := app.Get(a, display.StateResource); !ok || d.Resolution != platform.DockedResolution {
		t.Fatalf("kit must insert the default display state, got %+v", d)
	}
}

func TestKitBuildRespectsConfigOverride(t *testing.T) {
	a := app.New()
	cfg := platform.HandheldConfig().WithFPS(30)
	a.AddPlugin(Kit{Config: &cfg})

	got, ok := app.Get(a, platform.ConfigResource)
	if !ok {
		t.Fatalf("kit must insert the runtime config")
	}
	if got != cfg {
		t.Fatalf("expected override %+v, got %+v", cfg, got)
	}
}
