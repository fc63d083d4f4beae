package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keyboard exposes per-tick key edges and held state from the host.
type Keyboard interface {
	AppendJustPressed(keys []ebiten.Key) []ebiten.Key
	AppendJustReleased(keys []ebiten.Key) []ebiten.Key
	Pressed(key ebiten.Key) bool
}

// Gamepad exposes the analog sticks of one attached controller. Axis
// values are in -1..1 with y pointing up.
type Gamepad interface {
	LeftStick() (x, y float64)
	RightStick() (x, y float64)
}

// GamepadSource lists the controllers attached this tick.
type GamepadSource interface {
	Gamepads() []Gamepad
}

// EbitenKeyboard reads the host keyboard.
type EbitenKeyboard struct{}

func (EbitenKeyboard) AppendJustPressed(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustPressedKeys(keys)
}

func (EbitenKeyboard) AppendJustReleased(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustReleasedKeys(keys)
}

func (EbitenKeyboard) Pressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// EbitenGamepads lists host gamepads through the standard layout.
type EbitenGamepads struct {
	ids  []ebiten.GamepadID
	pads []Gamepad
}

func (g *EbitenGamepads) Gamepads() []Gamepad {
	g.ids = ebiten.AppendGamepadIDs(g.ids[:0])
	g.pads = g.pads[:0]
	for _, id := range g.ids {
		g.pads = append(g.pads, ebitenGamepad{id: id})
	}
	return g.pads
}

type ebitenGamepad struct {
	id ebiten.GamepadID
}

func (p ebitenGamepad) LeftStick() (float64, float64) {
	x := ebiten.StandardGamepadAxisValue(p.id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	y := ebiten.StandardGamepadAxisValue(p.id, ebiten.StandardGamepadAxisLeftStickVertical)
	// the host's vertical axes point down
	return x, -y
}

func (p ebitenGamepad) RightStick() (float64, float64) {
	x := ebiten.StandardGamepadAxisValue(p.id, ebiten.StandardGamepadAxisRightStickHorizontal)
	y := ebiten.StandardGamepadAxisValue(p.id, ebiten.StandardGamepadAxisRightStickVertical)
	return x, -y
}
