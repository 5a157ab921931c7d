package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionJump               // Space, W, Up - flap
	ActionReleaseJump        // Synthesized by the platform; terminals report no key-up
	ActionPause              // P, Escape while running
	ActionResume             // P, Escape while paused
	ActionRestart            // R, Space/Enter on the title or game over screen
	ActionBack               // B - leave the board screen
	ActionQuit               // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionReleaseJump:
		return "ReleaseJump"
	case ActionPause:
		return "Pause"
	case ActionResume:
		return "Resume"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// order keeps the sequence in which actions were first set.
	order []Action
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
	if !f.Actions[a] {
		f.order = append(f.order, a)
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

// Ordered returns the triggered actions in the order they were set.
func (f InputFrame) Ordered() []Action {
	out := make([]Action, 0, len(f.order))
	for _, a := range f.order {
		if f.Actions[a] {
			out = append(out, a)
		}
	}
	return out
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.order = f.order[:0]
}
