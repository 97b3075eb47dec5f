package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/roborun/internal/core"
)

// holdTicks is how long a key counts as held after its last press or repeat.
// Terminals report no key releases, so movement would otherwise stutter
// between auto-repeat events.
const holdTicks = 8

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to actions.
// Returns the actions (possibly none) and whether it's a hard quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (actions []core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c":
		return nil, true
	case "left", "a":
		return []core.Action{core.ActionLeft}, false
	case "right", "d":
		return []core.Action{core.ActionRight}, false
	case "up", "w":
		return []core.Action{core.ActionUp}, false
	case "down", "s":
		return []core.Action{core.ActionDown}, false
	case " ":
		return []core.Action{core.ActionShoot}, false
	case "enter":
		return []core.Action{core.ActionStart}, false
	case "r":
		// R starts from the title screen and restarts after game over
		return []core.Action{core.ActionStart, core.ActionRestart}, false
	case "p", "esc":
		return []core.Action{core.ActionPause}, false
	case "q":
		return []core.Action{core.ActionQuit}, false
	case "f":
		return []core.Action{core.ActionFullscreen}, false
	}
	return nil, false
}

// IsHeld reports whether an action comes from a key the player keeps down.
func IsHeld(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown, core.ActionShoot:
		return true
	}
	return false
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	}
	return core.ActionNone
}

// heldKeys emulates key-down state from repeated key presses.
type heldKeys map[core.Action]int

// press marks a as held and releases the opposite direction.
func (h heldKeys) press(a core.Action) {
	h[a] = holdTicks
	if o := opposite(a); o != core.ActionNone {
		delete(h, o)
	}
}

// apply adds every held action to f.
func (h heldKeys) apply(f *core.InputFrame) {
	for a := range h {
		f.Set(a)
	}
}

// decay ages every hold by one tick.
func (h heldKeys) decay() {
	for a, n := range h {
		if n <= 1 {
			delete(h, a)
			continue
		}
		h[a] = n - 1
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	}
	return MenuActionNone
}
