package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/consolekit/app"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "consolekit.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		want    Config
		wantErr bool
	}{
		{
			name: "handheld_30fps",
			body: "platform: handheld\nmode: handheld\nfps: 30\n",
			want: Config{
				Platform:   ConsoleHandheld,
				Mode:       Handheld,
				Resolution: HandheldResolution,
				TargetFPS:  30,
			},
		},
		{
			name: "tabletop_aliases_handheld_resolution",
			body: "platform: docked\nmode: tabletop\n",
			want: Config{
				Platform:   ConsoleDocked,
				Mode:       Tabletop,
				Resolution: HandheldResolution,
				TargetFPS:  60,
			},
		},
		{
			name: "overlay_flag",
			body: "platform: desktop\noverlay: true\n",
			want: Config{
				Platform:    Desktop,
				Mode:        Docked,
				Resolution:  DockedResolution,
				TargetFPS:   60,
				ShowOverlay: true,
			},
		},
		{
			name: "empty_keeps_defaults",
			body: "{}\n",
			want: DefaultConfig(),
		},
		{
			name:    "unknown_platform",
			body:    "platform: toaster\n",
			wantErr: true,
		},
		{
			name:    "unknown_mode",
			body:    "mode: upside-down\n",
			wantErr: true,
		},
		{
			name:    "bad_yaml",
			body:    "platform: [\n",
			wantErr: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := LoadConfig(writeConfig(t, c.body))
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfig: %v", err)
			}
			if got != c.want {
				t.Fatalf("expected %+v, got %+v", c.want, got)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestReloadSystemAppliesEdits(t *testing.T) {
	path := writeConfig(t, "mode: handheld\n")
	w := &Watcher{
		path:   path,
		Events: make(chan string, 1),
		Errors: make(chan error, 1),
	}
	sys := &ReloadSystem{Watcher: w}

	a := app.New()
	app.Insert(a, ConfigResource, DefaultConfig())

	// no event: nothing happens
	sys.Update(a)
	if v := app.Version(a, ConfigResource); v != 1 {
		t.Fatalf("expected version 1 with no events, got %d", v)
	}

	w.Events <- path
	sys.Update(a)

	cfg, ok := app.Get(a, ConfigResource)
	if !ok || cfg.Mode != Handheld || cfg.Resolution != HandheldResolution {
		t.Fatalf("expected handheld config after reload, got %+v", cfg)
	}
	if v := app.Version(a, ConfigResource); v != 2 {
		t.Fatalf("expected version bump after reload, got %d", v)
	}
}

func TestReloadSystemKeepsConfigOnBadFile(t *testing.T) {
	path := writeConfig(t, "platform: toaster\n")
	w := &Watcher{
		path:   path,
		Events: make(chan string, 1),
		Errors: make(chan error, 1),
	}
	sys := &ReloadSystem{Watcher: w}

	a := app.New()
	app.Insert(a, ConfigResource, HandheldConfig())

	w.Events <- path
	sys.Update(a)

	cfg, _ := app.Get(a, ConfigResource)
	if cfg.Mode != Handheld {
		t.Fatalf("bad file must not replace the config, got %+v", cfg)
	}
	if v := app.Version(a, ConfigResource); v != 1 {
		t.Fatalf("bad file must not bump the version, got %d", v)
	}
}

func TestWatcherCreateClose(t *testing.T) {
	path := writeConfig(t, "mode: docked\n")
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if w.Path() != path {
		t.Fatalf("expected path %s, got %s", path, w.Path())
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	// double close is a no-op
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
