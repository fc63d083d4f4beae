package platform

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/consolekit/app"
)

// ConfigResource is the runtime configuration shared with every system.
// Replace it wholesale with app.Insert to trip change detection.
var ConfigResource = app.NewResource[Config]()

// Config is the runtime configuration for the kit.
type Config struct {
	Platform   Platform
	Mode       DisplayMode
	Resolution Resolution
	// TargetFPS is the tick rate the game aims for (consoles typically
	// run at 30 or 60).
	TargetFPS int
	// ShowOverlay enables the diagnostics overlay.
	ShowOverlay bool
}

// DefaultConfig derives a config from the build-time platform.
func DefaultConfig() Config {
	p := Current()
	return Config{
		Platform:   p,
		Mode:       Docked,
		Resolution: p.Resolution(),
		TargetFPS:  60,
	}
}

// DockedConfig is a fully-specified docked-mode config.
func DockedConfig() Config {
	c := DefaultConfig()
	c.Platform = ConsoleDocked
	c.Mode = Docked
	c.Resolution = DockedResolution
	return c
}

// HandheldConfig is a fully-specified handheld-mode config.
func HandheldConfig() Config {
	c := DefaultConfig()
	c.Platform = ConsoleHandheld
	c.Mode = Handheld
	c.Resolution = HandheldResolution
	return c
}

// WithFPS returns a copy of c targeting fps.
func (c Config) WithFPS(fps int) Config {
	c.TargetFPS = fps
	return c
}

// configSpec is the on-disk shape of a config override.
type configSpec struct {
	Platform string `yaml:"platform"`
	Mode     string `yaml:"mode"`
	FPS      int    `yaml:"fps"`
	Overlay  bool   `yaml:"overlay"`
}

// LoadConfig reads a YAML file overriding the build-time defaults.
// Recognized platforms are desktop, docked, and handheld; modes are
// docked, handheld, and tabletop. Empty fields keep their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("platform: read %s: %w", path, err)
	}
	var spec configSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return Config{}, fmt.Errorf("platform: unmarshal %s: %w", path, err)
	}
	return spec.config()
}

func (s configSpec) config() (Config, error) {
	c := DefaultConfig()
	switch s.Platform {
	case "":
	case "desktop":
		c.Platform = Desktop
	case "docked":
		c.Platform = ConsoleDocked
	case "handheld":
		c.Platform = ConsoleHandheld
	default:
		return Config{}, fmt.Errorf("platform: unknown platform %q", s.Platform)
	}
	c.Resolution = c.Platform.Resolution()

	switch s.Mode {
	case "":
	case "docked":
		c.Mode = Docked
	case "handheld":
		c.Mode = Handheld
	case "tabletop":
		c.Mode = Tabletop
	default:
		return Config{}, fmt.Errorf("platform: unknown display mode %q", s.Mode)
	}
	if s.Mode != "" {
		c.Resolution = c.Mode.Resolution()
	}

	if s.FPS > 0 {
		c.TargetFPS = s.FPS
	}
	c.ShowOverlay = s.Overlay
	return c, nil
}
