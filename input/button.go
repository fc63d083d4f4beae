package input

import "github.com/hajimehoshi/ebiten/v2"

// Button identifies a physical button on the console's controllers.
type Button int

const (
	// Face buttons (right pad)
	ButtonA Button = iota
	ButtonB
	ButtonX
	ButtonY

	// Shoulder buttons
	ButtonL
	ButtonR
	ButtonZL
	ButtonZR

	// Stick clicks
	ButtonLeftStick
	ButtonRightStick

	// System buttons
	ButtonPlus
	ButtonMinus
	ButtonHome
	ButtonCapture

	// D-pad (left pad)
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight

	// SL/SR on the rail (sideways mode)
	ButtonSL
	ButtonSR
)

func (b Button) String() string {
	switch b {
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	case ButtonX:
		return "X"
	case ButtonY:
		return "Y"
	case ButtonL:
		return "L"
	case ButtonR:
		return "R"
	case ButtonZL:
		return "ZL"
	case ButtonZR:
		return "ZR"
	case ButtonLeftStick:
		return "LeftStick"
	case ButtonRightStick:
		return "RightStick"
	case ButtonPlus:
		return "Plus"
	case ButtonMinus:
		return "Minus"
	case ButtonHome:
		return "Home"
	case ButtonCapture:
		return "Capture"
	case ButtonDPadUp:
		return "DPadUp"
	case ButtonDPadDown:
		return "DPadDown"
	case ButtonDPadLeft:
		return "DPadLeft"
	case ButtonDPadRight:
		return "DPadRight"
	case ButtonSL:
		return "SL"
	case ButtonSR:
		return "SR"
	}
	return "Unknown"
}

// StandardButton maps a console button onto the host's standard gamepad
// layout.
func (b Button) StandardButton() ebiten.StandardGamepadButton {
	switch b {
	case ButtonA:
		return ebiten.StandardGamepadButtonRightRight
	case ButtonB:
		return ebiten.StandardGamepadButtonRightBottom
	case ButtonX:
		return ebiten.StandardGamepadButtonRightTop
	case ButtonY:
		return ebiten.StandardGamepadButtonRightLeft
	case ButtonL:
		return ebiten.StandardGamepadButtonFrontTopLeft
	case ButtonR:
		return ebiten.StandardGamepadButtonFrontTopRight
	case ButtonZL:
		return ebiten.StandardGamepadButtonFrontBottomLeft
	case ButtonZR:
		return ebiten.StandardGamepadButtonFrontBottomRight
	case ButtonLeftStick:
		return ebiten.StandardGamepadButtonLeftStick
	case ButtonRightStick:
		return ebiten.StandardGamepadButtonRightStick
	case ButtonPlus:
		return ebiten.StandardGamepadButtonCenterRight
	case ButtonMinus:
		return ebiten.StandardGamepadButtonCenterLeft
	case ButtonHome:
		return ebiten.StandardGamepadButtonCenterCenter
	case ButtonCapture:
		// no direct mapping
		return ebiten.StandardGamepadButtonCenterCenter
	case ButtonDPadUp:
		return ebiten.StandardGamepadButtonLeftTop
	case ButtonDPadDown:
		return ebiten.StandardGamepadButtonLeftBottom
	case ButtonDPadLeft:
		return ebiten.StandardGamepadButtonLeftLeft
	case ButtonDPadRight:
		return ebiten.StandardGamepadButtonLeftRight
	case ButtonSL:
		return ebiten.StandardGamepadButtonFrontTopLeft
	case ButtonSR:
		return ebiten.StandardGamepadButtonFrontTopRight
	}
	return ebiten.StandardGamepadButtonCenterCenter
}

// keyTable is the fixed development-keyboard binding. Keys outside the
// table are ignored by the aggregation system.
var keyTable = map[ebiten.Key]Button{
	ebiten.KeyZ:          ButtonB,
	ebiten.KeyX:          ButtonA,
	ebiten.KeyA:          ButtonY,
	ebiten.KeyS:          ButtonX,
	ebiten.KeyQ:          ButtonL,
	ebiten.KeyW:          ButtonR,
	ebiten.KeyDigit1:     ButtonZL,
	ebiten.KeyDigit2:     ButtonZR,
	ebiten.KeyEnter:      ButtonPlus,
	ebiten.KeyBackspace:  ButtonMinus,
	ebiten.KeyArrowUp:    ButtonDPadUp,
	ebiten.KeyArrowDown:  ButtonDPadDown,
	ebiten.KeyArrowLeft:  ButtonDPadLeft,
	ebiten.KeyArrowRight: ButtonDPadRight,
}

// ButtonForKey maps a keyboard key to its console button, if the key is
// bound.
func ButtonForKey(key ebiten.Key) (Button, bool) {
	b, ok := keyTable[key]
	return b, ok
}

// Pad describes how the console's controllers are attached.
type Pad int

const (
	// PadCombined is both halves attached, or a full-size controller.
	PadCombined Pad = iota
	// PadLeftOnly is the left half on its own.
	PadLeftOnly
	// PadRightOnly is the right half on its own.
	PadRightOnly
	// PadSideways is a single half held sideways.
	PadSideways
)

func (p Pad) String() string {
	switch p {
	case PadCombined:
		return "Combined"
	case PadLeftOnly:
		return "LeftOnly"
	case PadRightOnly:
		return "RightOnly"
	case PadSideways:
		return "Sideways"
	}
	return "Unknown"
}
