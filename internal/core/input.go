package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow
	ActionDown           // S, J, Down arrow
	ActionLeft           // A, H, Left arrow
	ActionRight          // D, L, Right arrow
	ActionConfirm        // Enter - start game, confirm selection in menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
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
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four movement directions.
func (a Action) IsDirection() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

// Opposite returns the reverse direction, or ActionNone for non-directions.
func (a Action) Opposite() Action {
	switch a {
	case ActionUp:
		return ActionDown
	case ActionDown:
		return ActionUp
	case ActionLeft:
		return ActionRight
	case ActionRight:
		return ActionLeft
	}
	return ActionNone
}

// DirectionActions lists the movement actions in a stable order.
var DirectionActions = [...]Action{ActionUp, ActionDown, ActionLeft, ActionRight}

// InputFrame represents the input state for a single player during one simulation tick.
// Direction actions are present while the direction is held; other actions are
// present only on the tick they were triggered.
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
}

// HoldBuffer turns discrete key presses into held direction state.
// Terminals only report presses (repeated while the key is down), so a
// direction counts as held until holdTicks ticks pass without a new press.
type HoldBuffer struct {
	holdTicks int
	remaining map[Action]int
}

// NewHoldBuffer creates a buffer that keeps a direction held for holdTicks
// ticks after its most recent press. holdTicks below 1 is treated as 1.
func NewHoldBuffer(holdTicks int) *HoldBuffer {
	return &HoldBuffer{
		holdTicks: Max(holdTicks, 1),
		remaining: make(map[Action]int, len(DirectionActions)),
	}
}

// Press records a press of a direction action. Non-direction actions are ignored.
func (b *HoldBuffer) Press(a Action) {
	if !a.IsDirection() {
		return
	}
	b.remaining[a] = b.holdTicks
}

// Release drops a direction immediately.
func (b *HoldBuffer) Release(a Action) {
	delete(b.remaining, a)
}

// Apply marks every held direction on the frame and ages the buffer by one tick.
func (b *HoldBuffer) Apply(f *InputFrame) {
	for _, a := range DirectionActions {
		n, ok := b.remaining[a]
		if !ok {
			continue
		}
		f.Set(a)
		if n <= 1 {
			delete(b.remaining, a)
		} else {
			b.remaining[a] = n - 1
		}
	}
}

// Reset releases every direction.
func (b *HoldBuffer) Reset() {
	for k := range b.remaining {
		delete(b.remaining, k)
	}
}
