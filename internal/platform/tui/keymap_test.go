package tui

import (
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/roborun/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected []core.Action
		quit     bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, []core.Action{core.ActionLeft}, false},
		{"a", runeKey('a'), []core.Action{core.ActionLeft}, false},
		{"d", runeKey('d'), []core.Action{core.ActionRight}, false},
		{"w", runeKey('w'), []core.Action{core.ActionUp}, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, []core.Action{core.ActionDown}, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, []core.Action{core.ActionShoot}, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []core.Action{core.ActionStart}, false},
		{"r", runeKey('r'), []core.Action{core.ActionStart, core.ActionRestart}, false},
		{"p", runeKey('p'), []core.Action{core.ActionPause}, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, []core.Action{core.ActionPause}, false},
		{"q", runeKey('q'), []core.Action{core.ActionQuit}, false},
		{"f", runeKey('f'), []core.Action{core.ActionFullscreen}, false},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, nil, true},
		{"unbound", runeKey('z'), nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			actions, quit := km.MapKey(tc.msg)
			if !slices.Equal(actions, tc.expected) || quit != tc.quit {
				t.Errorf("MapKey() = (%v, %v), expected (%v, %v)", actions, quit, tc.expected, tc.quit)
			}
		})
	}
}

func TestHeldKeys(t *testing.T) {
	h := make(heldKeys)
	h.press(core.ActionLeft)

	for i := 0; i < holdTicks; i++ {
		f := core.NewInputFrame()
		h.apply(&f)
		if !f.Has(core.ActionLeft) {
			t.Fatalf("left released after %d ticks, expected %d", i, holdTicks)
		}
		h.decay()
	}

	f := core.NewInputFrame()
	h.apply(&f)
	if f.Has(core.ActionLeft) {
		t.Error("hold should expire without repeats")
	}
}

func TestHeldKeysOppositeReleases(t *testing.T) {
	h := make(heldKeys)
	h.press(core.ActionLeft)
	h.press(core.ActionUp)
	h.press(core.ActionRight)

	f := core.NewInputFrame()
	h.apply(&f)
	if f.Has(core.ActionLeft) || !f.Has(core.ActionRight) || !f.Has(core.ActionUp) {
		t.Errorf("held = %v, expected right and up only", f.Actions)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{runeKey('h'), MenuActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}
