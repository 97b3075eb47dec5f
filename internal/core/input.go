package core

// Action represents a semantic game action, abstracted from physical key presses.
// The simulation only ever sees the set of actions active in the current frame.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // A, Left arrow - move left (held)
	ActionRight             // D, Right arrow - move right (held)
	ActionUp                // W, Up arrow - move up (held)
	ActionDown              // S, Down arrow - move down (held)
	ActionShoot             // Space - fire when the bullet power is active (held)
	ActionStart             // R, Enter - start a round from the title screen
	ActionPause             // Esc, P - pause/unpause
	ActionRestart           // R - new round after game over
	ActionQuit              // Q - back to the title screen
	ActionFullscreen        // F - toggle fullscreen (frontend only)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionShoot:
		return "Shoot"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionFullscreen:
		return "Fullscreen"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for the player during one simulation tick.
// It contains all actions that are active during this frame.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds a frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
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
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
