package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/roborun/internal/storage"
)

func TestScoreRows(t *testing.T) {
	played := time.Date(2026, 3, 4, 17, 5, 0, 0, time.UTC)
	rows := scoreRows([]storage.ScoreEntry{
		{Score: 42, Distance: 812.6, Coins: 3, Difficulty: 2, CreatedAt: played},
		{Score: 7, Distance: 90, CreatedAt: played},
	})

	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, expected 2", len(rows))
	}
	expected := []string{"1", "42", "813m", "3", "2", "2026-03-04 17:05"}
	for i, cell := range expected {
		if rows[0][i] != cell {
			t.Errorf("rows[0][%d] = %q, expected %q", i, rows[0][i], cell)
		}
	}
	if rows[1][0] != "2" {
		t.Errorf("second rank = %q, expected 2", rows[1][0])
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, 120, 30)
	if !m.withStats {
		t.Error("wide terminal should show the stats column")
	}
	view := m.View()
	if !strings.Contains(view, "No scores recorded yet") {
		t.Errorf("empty board view missing placeholder:\n%s", view)
	}
	if !strings.Contains(view, "no runs yet") {
		t.Error("stats column should report no runs")
	}
}

func TestScoreboardKeys(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		back     bool
		quitting bool
	}{
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, true, false},
		{"b", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}}, true, false},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, false, true},
		{"r", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, _ := NewScoreboardModel(nil, 60, 20).Update(tt.msg)
			m := next.(ScoreboardModel)
			if m.IsGoingBack() != tt.back {
				t.Errorf("IsGoingBack() = %v, expected %v", m.IsGoingBack(), tt.back)
			}
			if m.IsQuitting() != tt.quitting {
				t.Errorf("IsQuitting() = %v, expected %v", m.IsQuitting(), tt.quitting)
			}
		})
	}
}

func TestScoreboardResize(t *testing.T) {
	next, _ := NewScoreboardModel(nil, 120, 30).Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	if next.(ScoreboardModel).withStats {
		t.Error("narrow terminal should hide the stats column")
	}
}
