// crabwalk is a small example game: steer the crab with WASD/IJKL, the
// D-pad (arrow keys), or a gamepad left stick. The right stick spins it.
// Backspace (Minus) toggles docked/handheld mode.
package main

import (
	"flag"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/consolekit"
	"github.com/milk9111/consolekit/app"
	"github.com/milk9111/consolekit/display"
	"github.com/milk9111/consolekit/input"
	"github.com/milk9111/consolekit/platform"
)

const crabSpeed = 6.0

type crab struct {
	x, y  float64
	angle float64
	img   *ebiten.Image
}

func newCrab() *crab {
	img := ebiten.NewImage(64, 40)
	img.Fill(color.NRGBA{R: 0xe6, G: 0x4d, B: 0x33, A: 0xff})
	r := platform.DockedResolution
	return &crab{
		x:   float64(r.W) / 2,
		y:   float64(r.H) / 2,
		img: img,
	}
}

func (c *crab) Update(a *app.App) {
	st, ok := app.Get(a, input.StateResource)
	if !ok {
		return
	}

	mv := st.Movement()
	c.x += mv.X * crabSpeed
	c.y -= mv.Y * crabSpeed // screen y points down

	if st.RightStick.Length() > input.Deadzone {
		c.angle += st.RightStick.X * 0.06
	}

	if st.JustPressed(input.ButtonMinus) {
		cfg, _ := app.Get(a, platform.ConfigResource)
		if cfg.Mode == platform.Handheld {
			cfg = platform.DockedConfig()
		} else {
			cfg = platform.HandheldConfig()
		}
		app.Insert(a, platform.ConfigResource, cfg)
	}

	if d, ok := app.Get(a, display.StateResource); ok {
		w, h := d.ResolutionF64()
		c.x = math.Min(math.Max(c.x, 32), w-32)
		c.y = math.Min(math.Max(c.y, 20), h-20)
	}
}

func (c *crab) Draw(a *app.App, screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0x1a, G: 0x1a, B: 0x26, A: 0xff})

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(-32, -20)
	op.GeoM.Rotate(c.angle)
	op.GeoM.Translate(c.x, c.y)
	screen.DrawImage(c.img, &op)
}

func main() {
	handheld := flag.Bool("handheld", false, "start in handheld mode")
	showOverlay := flag.Bool("overlay", false, "show the diagnostics overlay")
	configPath := flag.String("config", "", "optional YAML config to load and watch")
	flag.Parse()

	cfg := platform.DefaultConfig()
	win := display.DockedWindow("crabwalk")
	if *handheld {
		cfg = platform.HandheldConfig()
		win = display.HandheldWindow("crabwalk")
	}
	if *configPath != "" {
		loaded, err := platform.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	cfg.ShowOverlay = cfg.ShowOverlay || *showOverlay
	win.Apply()

	a := app.New()
	a.AddPlugin(consolekit.Kit{Config: &cfg})

	if *configPath != "" {
		w, err := consolekit.WatchConfig(a, *configPath)
		if err != nil {
			log.Fatal(err)
		}
		defer w.Close()
	}

	c := newCrab()
	a.AddSystem(c)
	a.AddDrawSystem(c)

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
