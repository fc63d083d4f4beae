package input

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/consolekit/app"
)

// Deadzone is the stick magnitude below which input reads as neutral.
const Deadzone = 0.1

// System aggregates host devices into the shared input state once per
// tick.
type System struct {
	Keyboard Keyboard
	Gamepads GamepadSource

	keys []ebiten.Key
}

// Update refreshes the input state from the attached devices.
func (s *System) Update(a *app.App) {
	if s == nil || s.Keyboard == nil {
		return
	}
	st, ok := app.Get(a, StateResource)
	if !ok || st == nil {
		return
	}

	clear(st.pressed)
	clear(st.released)

	s.keys = s.Keyboard.AppendJustPressed(s.keys[:0])
	for _, key := range s.keys {
		if b, ok := ButtonForKey(key); ok {
			st.held[b] = struct{}{}
			st.pressed[b] = struct{}{}
		}
	}

	s.keys = s.Keyboard.AppendJustReleased(s.keys[:0])
	for _, key := range s.keys {
		if b, ok := ButtonForKey(key); ok {
			delete(st.held, b)
			st.released[b] = struct{}{}
		}
	}

	// Keyboard movement (WASD or IJKL)
	var kb cp.Vector
	if s.Keyboard.Pressed(ebiten.KeyW) || s.Keyboard.Pressed(ebiten.KeyI) {
		kb.Y += 1
	}
	if s.Keyboard.Pressed(ebiten.KeyS) || s.Keyboard.Pressed(ebiten.KeyK) {
		kb.Y -= 1
	}
	if s.Keyboard.Pressed(ebiten.KeyA) || s.Keyboard.Pressed(ebiten.KeyJ) {
		kb.X -= 1
	}
	if s.Keyboard.Pressed(ebiten.KeyD) || s.Keyboard.Pressed(ebiten.KeyL) {
		kb.X += 1
	}

	// Sticks from gamepads; last attached pad wins.
	if s.Gamepads != nil {
		for _, pad := range s.Gamepads.Gamepads() {
			lx, ly := pad.LeftStick()
			if math.Abs(lx) > Deadzone || math.Abs(ly) > Deadzone {
				st.LeftStick = cp.Vector{X: lx, Y: ly}
			}
			rx, ry := pad.RightStick()
			if math.Abs(rx) > Deadzone || math.Abs(ry) > Deadzone {
				st.RightStick = cp.Vector{X: rx, Y: ry}
			}
		}
	}

	// Keyboard movement takes precedence over the gamepad left stick.
	if kb.Length() > Deadzone {
		st.LeftStick = kb.Normalize()
	} else if st.LeftStick.Length() < Deadzone {
		st.LeftStick = cp.Vector{}
	}
}

// Plugin wires console input into an app. Zero-valued fields fall back to
// the host devices; tests supply fakes.
type Plugin struct {
	Keyboard Keyboard
	Gamepads GamepadSource
}

func (p Plugin) Build(a *app.App) {
	kb := p.Keyboard
	if kb == nil {
		kb = EbitenKeyboard{}
	}
	gp := p.Gamepads
	if gp == nil {
		gp = &EbitenGamepads{}
	}
	app.Insert(a, StateResource, NewState())
	a.AddSystem(&System{Keyboard: kb, Gamepads: gp})
}
