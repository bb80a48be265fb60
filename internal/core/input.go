package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, K, Up arrow
	ActionDown              // S, J, Down arrow
	ActionLeft              // A, H, Left arrow
	ActionRight             // D, L, Right arrow
	ActionConfirm           // Enter - confirm selection in menu
	ActionBack              // B, Escape - go back to menu
	ActionRestart           // R key - restart game after game over
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionPause             // P, Space - pause/unpause game
	ActionScreenshot        // F2 - save the current frame to a file
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// InputFrame represents the player's input during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Elapsed is the wall-clock time since the previous frame.
	// Zero means the platform runs a fixed step of 1/TickRate.
	Elapsed time.Duration
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Elapsed = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Elapsed = f.Elapsed
	return clone
}

// Direction returns the last directional action set in the frame, or
// ActionNone. When several are held the order Up, Left, Down, Right wins.
func (f InputFrame) Direction() Action {
	for _, a := range [...]Action{ActionUp, ActionLeft, ActionDown, ActionRight} {
		if f.Has(a) {
			return a
		}
	}
	return ActionNone
}
