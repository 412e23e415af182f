package core

// Action represents a semantic game command, abstracted from physical key presses.
// The terminal layer maps keys to actions; the game consumes at most one per tick.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // A, Left arrow
	ActionUp                // W, Up arrow
	ActionRight             // D, Right arrow
	ActionDown              // S, Down arrow
	ActionDebug             // B - toggle debug info
	ActionPause             // P - pause until any key
	ActionResetScore        // R - clear score and tail while playing
	ActionRestart           // Y/R after game over
	ActionQuit              // Q, Esc, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionUp:
		return "Up"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionDebug:
		return "Debug"
	case ActionPause:
		return "Pause"
	case ActionResetScore:
		return "ResetScore"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action requests a heading change.
func (a Action) IsMove() bool {
	return a >= ActionLeft && a <= ActionDown
}

// InputFrame is the input for one simulation tick: either no key at all or
// exactly one logical command.
type InputFrame struct {
	Action Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// FrameOf creates a frame carrying a single action.
func FrameOf(a Action) InputFrame {
	return InputFrame{Action: a}
}

// Has returns true if the given action was issued this frame.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && f.Action == a
}

// Empty reports whether no key was pressed this frame.
func (f InputFrame) Empty() bool {
	return f.Action == ActionNone
}

// InputQueue buffers commands between ticks so each tick consumes one,
// like a keyboard buffer drained one key per frame.
type InputQueue struct {
	pending []Action
	limit   int
}

// NewInputQueue creates a queue that keeps at most limit commands.
// Commands pushed beyond the limit are dropped.
func NewInputQueue(limit int) *InputQueue {
	if limit <= 0 {
		limit = 1
	}
	return &InputQueue{limit: limit}
}

// Push appends a command. Returns false if it was dropped.
func (q *InputQueue) Push(a Action) bool {
	if a == ActionNone || len(q.pending) >= q.limit {
		return false
	}
	q.pending = append(q.pending, a)
	return true
}

// Pop removes the oldest command and returns it as a frame.
// An empty queue yields an empty frame.
func (q *InputQueue) Pop() InputFrame {
	if len(q.pending) == 0 {
		return NewInputFrame()
	}
	a := q.pending[0]
	q.pending = q.pending[1:]
	return FrameOf(a)
}

// Len returns the number of buffered commands.
func (q *InputQueue) Len() int {
	return len(q.pending)
}

// Reset drops all buffered commands.
func (q *InputQueue) Reset() {
	q.pending = q.pending[:0]
}
