// Package overlay draws a small diagnostics panel — platform, resolution,
// frame pacing — when the config enables it.
package overlay

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/consolekit/app"
	"github.com/milk9111/consolekit/platform"
)

// Plugin wires the diagnostics overlay into an app.
type Plugin struct{}

func (Plugin) Build(a *app.App) {
	s := newSystem()
	a.AddSystem(s)
	a.AddDrawSystem(s)
}

type system struct {
	ui    *ebitenui.UI
	label *widget.Text
}

// newSystem builds a top-left panel using colored nine-slices and the
// built-in basic font, so no theme fonts need to be loaded.
func newSystem() *system {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 200})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	label := widget.NewText(
		widget.TextOpts.Text("", &face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	panel.AddChild(label)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &system{
		ui:    &ebitenui.UI{Container: root},
		label: label,
	}
}

func (s *system) Update(a *app.App) {
	cfg, ok := app.Get(a, platform.ConfigResource)
	if !ok || !cfg.ShowOverlay {
		return
	}
	s.label.Label = fmt.Sprintf("%s  %dx%d  fps %.0f  tps %.0f",
		cfg.Platform.Name(), cfg.Resolution.W, cfg.Resolution.H,
		ebiten.ActualFPS(), ebiten.ActualTPS())
	s.ui.Update()
}

func (s *system) Draw(a *app.App, screen *ebiten.Image) {
	cfg, ok := app.Get(a, platform.ConfigResource)
	if !ok || !cfg.ShowOverlay {
		return
	}
	s.ui.Draw(screen)
}
