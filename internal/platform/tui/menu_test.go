package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/roborun/internal/core"
)

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, "hard", 99)
	if m.Difficulty() != "hard" {
		t.Fatalf("Difficulty() = %q, expected hard", m.Difficulty())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.(MenuModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("selecting an entry should close the menu")
	}

	res := next.(MenuModel).Result()
	if res.Choice != ChoiceWindow || res.Difficulty != "hard" {
		t.Errorf("Result() = %+v, expected window at hard", res)
	}
}

func TestMenuCycleDifficulty(t *testing.T) {
	var model tea.Model = NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, "", 0)
	for i := 0; i < 3; i++ {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if d := model.(MenuModel).Difficulty(); d != "fixed" {
		t.Errorf("Difficulty() = %q after left, expected fixed", d)
	}
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("selecting difficulty should cycle, not close")
	}
	if d := model.(MenuModel).Difficulty(); d != "normal" {
		t.Errorf("Difficulty() = %q after cycling, expected normal", d)
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, "normal", 0)
	next, _ := m.Update(runeKey('q'))
	if res := next.(MenuModel).Result(); res.Choice != ChoiceQuit {
		t.Errorf("Choice = %v, expected quit", res.Choice)
	}
}
