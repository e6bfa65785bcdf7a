package core

// Action represents a semantic input action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move up / focus previous
	ActionDown           // S, Down arrow - move down / focus next
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionFire           // Space - shoot (held) / primary action
	ActionConfirm        // Enter - start, evaluate, toggle
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart after game over
	ActionQuit           // Q, Ctrl+C - exit program
	ActionPause          // P - pause/unpause
	ActionClear          // Delete - clear input
	ActionErase          // Backspace - erase last input
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
	case ActionFire:
		return "Fire"
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
	case ActionClear:
		return "Clear"
	case ActionErase:
		return "Erase"
	default:
		return "Unknown"
	}
}

// Point is a cell position on the screen.
type Point struct {
	X, Y int
}

// Pointer is the last known cursor position in screen cells.
type Pointer struct {
	Point
	Valid bool // false until the first pointer event arrives
	Down  bool // primary button currently held
}

// InputFrame is the input snapshot a program reads at the start of one frame.
type InputFrame struct {
	// Actions holds actions that were newly pressed since the previous frame.
	Actions map[Action]bool

	// Held holds actions whose keys are currently held down.
	Held map[Action]bool

	// Pointer is the latest cursor position and button state.
	Pointer Pointer

	// Clicks are primary-button presses since the previous frame, in order.
	Clicks []Point

	// Text is the printable input typed since the previous frame.
	Text []rune

	// Keys lists every key action since the previous frame in arrival
	// order, autorepeats included. List navigation steps once per entry.
	Keys []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	f.Keys = append(f.Keys, a)
}

// Hold marks an action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// IsHeld returns true if the given action is held down.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// Clear resets all per-frame input.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Held)
	f.Clicks = f.Clicks[:0]
	f.Text = f.Text[:0]
	f.Keys = f.Keys[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	clone.Pointer = f.Pointer
	clone.Clicks = append([]Point(nil), f.Clicks...)
	clone.Text = append([]rune(nil), f.Text...)
	clone.Keys = append([]Action(nil), f.Keys...)
	return clone
}

// InputAdapter turns raw device events into persistent held flags, edge
// presses, typed text and a cursor position. Event callbacks write to it;
// the frame loop reads it once per frame through Frame.
type InputAdapter struct {
	held    map[Action]bool
	pressed map[Action]bool
	pointer Pointer
	clicks  []Point
	text    []rune
	keys    []Action
}

// NewInputAdapter creates an adapter with nothing held.
func NewInputAdapter() *InputAdapter {
	return &InputAdapter{
		held:    make(map[Action]bool),
		pressed: make(map[Action]bool),
	}
}

// KeyDown records a key-down for a holdable action. A repeat event, or a
// key-down for an action that is already held, produces no new press.
func (a *InputAdapter) KeyDown(act Action, repeat bool) {
	if act == ActionNone {
		return
	}
	a.keys = append(a.keys, act)
	if repeat || a.held[act] {
		a.held[act] = true
		return
	}
	a.held[act] = true
	a.pressed[act] = true
}

// KeyUp releases a held action.
func (a *InputAdapter) KeyUp(act Action) {
	delete(a.held, act)
}

// Press records a discrete action that is never held.
func (a *InputAdapter) Press(act Action) {
	if act == ActionNone {
		return
	}
	a.pressed[act] = true
	a.keys = append(a.keys, act)
}

// Type records printable input.
func (a *InputAdapter) Type(r rune) {
	a.text = append(a.text, r)
}

// PointerMove updates the cursor position.
func (a *InputAdapter) PointerMove(x, y int) {
	a.pointer.Point = Point{X: x, Y: y}
	a.pointer.Valid = true
}

// PointerDown records a primary-button press at (x, y).
func (a *InputAdapter) PointerDown(x, y int) {
	a.PointerMove(x, y)
	if !a.pointer.Down {
		a.clicks = append(a.clicks, Point{X: x, Y: y})
	}
	a.pointer.Down = true
}

// PointerUp records a primary-button release at (x, y).
func (a *InputAdapter) PointerUp(x, y int) {
	a.PointerMove(x, y)
	a.pointer.Down = false
}

// IsHeld reports whether act is currently held.
func (a *InputAdapter) IsHeld(act Action) bool {
	return a.held[act]
}

// Frame returns the snapshot for the coming frame and clears the edge
// events (presses, clicks, text). Held flags and the pointer persist.
func (a *InputAdapter) Frame() InputFrame {
	f := NewInputFrame()
	for k := range a.pressed {
		f.Actions[k] = true
	}
	for k := range a.held {
		f.Held[k] = true
	}
	f.Pointer = a.pointer
	if len(a.clicks) > 0 {
		f.Clicks = append([]Point(nil), a.clicks...)
	}
	if len(a.text) > 0 {
		f.Text = append([]rune(nil), a.text...)
	}
	if len(a.keys) > 0 {
		f.Keys = append([]Action(nil), a.keys...)
	}

	clear(a.pressed)
	a.clicks = a.clicks[:0]
	a.text = a.text[:0]
	a.keys = a.keys[:0]
	return f
}

// Reset releases everything, including the pointer button.
func (a *InputAdapter) Reset() {
	clear(a.held)
	clear(a.pressed)
	a.clicks = a.clicks[:0]
	a.text = a.text[:0]
	a.keys = a.keys[:0]
	a.pointer.Down = false
}
