package core

// Action is a semantic input, decoupled from the key or click that produced it.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // Move cursor up
	ActionDown            // Move cursor down
	ActionLeft            // Move cursor left
	ActionRight           // Move cursor right
	ActionPlace           // Tap the cell under the cursor
	ActionRestartX        // Restart with X to move
	ActionRestartO        // Restart with O to move
	ActionDismiss         // Close the result dialog
	ActionQuit
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
	case ActionPlace:
		return "Place"
	case ActionRestartX:
		return "RestartX"
	case ActionRestartO:
		return "RestartO"
	case ActionDismiss:
		return "Dismiss"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered during one tick.
type InputFrame struct {
	Actions map[Action]bool
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

// Has reports whether a was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
