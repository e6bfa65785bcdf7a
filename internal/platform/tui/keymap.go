package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/minis/internal/core"
)

// DefaultHoldTimeout is how long a holdable key stays down after its last
// key event. It must outlast the terminal's autorepeat delay.
const DefaultHoldTimeout = 550 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to program actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ":
		return core.ActionFire, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "delete":
		return core.ActionClear, false
	case "backspace":
		return core.ActionErase, false
	}

	return core.ActionNone, false
}

// Holdable reports whether an action is tracked as held rather than as a
// one-shot press.
func Holdable(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionFire:
		return true
	}
	return false
}

// opposite pairs movement actions; pressing one releases the other.
var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// KeyLatch synthesizes key-up events. Terminals report key presses and
// autorepeats but never releases, so a holdable action is released once no
// key event for it has arrived within the hold timeout.
type KeyLatch struct {
	timeout   time.Duration
	deadlines map[core.Action]time.Time
}

// NewKeyLatch creates a latch. A non-positive timeout selects
// DefaultHoldTimeout.
func NewKeyLatch(timeout time.Duration) *KeyLatch {
	if timeout <= 0 {
		timeout = DefaultHoldTimeout
	}
	return &KeyLatch{
		timeout:   timeout,
		deadlines: make(map[core.Action]time.Time),
	}
}

// KeyDown records a key event for a holdable action at now. Events that
// arrive while the action is latched are forwarded as repeats.
func (l *KeyLatch) KeyDown(in *core.InputAdapter, act core.Action, now time.Time) {
	if opp, ok := opposite[act]; ok {
		if _, held := l.deadlines[opp]; held {
			delete(l.deadlines, opp)
			in.KeyUp(opp)
		}
	}

	_, repeat := l.deadlines[act]
	l.deadlines[act] = now.Add(l.timeout)
	in.KeyDown(act, repeat)
}

// Expire releases every action whose deadline has passed at now.
func (l *KeyLatch) Expire(in *core.InputAdapter, now time.Time) {
	for act, deadline := range l.deadlines {
		if now.Before(deadline) {
			continue
		}
		delete(l.deadlines, act)
		in.KeyUp(act)
	}
}

// Reset forgets all latched actions.
func (l *KeyLatch) Reset() {
	clear(l.deadlines)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
