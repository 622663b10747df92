package core

// Action is a semantic game action, abstracted from physical key presses.
// Games work with these intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionSelect         // Enter, Space - flip a card, toggle snake pause
	ActionPause          // P - pause/unpause
	ActionRestart        // R - reset the board
	ActionBack           // B, Escape - back to menu
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionSelect:
		return "Select"
	case ActionPause:
		return "Pause"
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

// InputFrame is the input collected between two simulation ticks.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Directions keeps directional actions in arrival order, so games that
	// care about the latest turn can see it.
	Directions []Action

	clicked bool
	clickX  int
	clickY  int
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
	if a.IsDirection() {
		f.Directions = append(f.Directions, a)
	}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// LastDirection returns the most recent directional action of this frame.
func (f InputFrame) LastDirection() (Action, bool) {
	if len(f.Directions) == 0 {
		return ActionNone, false
	}
	return f.Directions[len(f.Directions)-1], true
}

// Click records a pointer click at screen coordinates (x, y).
// Only the latest click of a frame is kept.
func (f *InputFrame) Click(x, y int) {
	f.clicked = true
	f.clickX = x
	f.clickY = y
}

// Clicked returns the click position of this frame, if any.
func (f InputFrame) Clicked() (x, y int, ok bool) {
	return f.clickX, f.clickY, f.clicked
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Directions = f.Directions[:0]
	f.clicked = false
}

// IsDirection reports whether the action is one of the four arrows.
func (a Action) IsDirection() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}
