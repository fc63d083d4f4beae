package input

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/consolekit/app"
)

// StateResource is the shared input state, refreshed once per tick.
var StateResource = app.NewResource[*State]()

// State is the logical controller state for the current tick. The
// pressed/released sets hold for exactly one tick; they are cleared at the
// start of the next aggregation pass.
type State struct {
	// LeftStick is the primary stick position, -1..1 per axis, y up.
	LeftStick cp.Vector
	// RightStick is the secondary stick position.
	RightStick cp.Vector

	held     map[Button]struct{}
	pressed  map[Button]struct{}
	released map[Button]struct{}
}

// NewState creates an empty input state.
func NewState() *State {
	return &State{
		held:     make(map[Button]struct{}),
		pressed:  make(map[Button]struct{}),
		released: make(map[Button]struct{}),
	}
}

// Held reports whether b is currently held down.
func (s *State) Held(b Button) bool {
	if s == nil {
		return false
	}
	_, ok := s.held[b]
	return ok
}

// JustPressed reports whether b was pressed this tick.
func (s *State) JustPressed(b Button) bool {
	if s == nil {
		return false
	}
	_, ok := s.pressed[b]
	return ok
}

// JustReleased reports whether b was released this tick.
func (s *State) JustReleased(b Button) bool {
	if s == nil {
		return false
	}
	_, ok := s.released[b]
	return ok
}

// Movement returns the left stick nudged by any held D-pad directions,
// clamped to unit length.
func (s *State) Movement() cp.Vector {
	if s == nil {
		return cp.Vector{}
	}
	dir := s.LeftStick
	if s.Held(ButtonDPadUp) {
		dir.Y += 1
	}
	if s.Held(ButtonDPadDown) {
		dir.Y -= 1
	}
	if s.Held(ButtonDPadLeft) {
		dir.X -= 1
	}
	if s.Held(ButtonDPadRight) {
		dir.X += 1
	}
	return dir.Clamp(1.0)
}
