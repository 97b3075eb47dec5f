package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/roborun/internal/config"
	"github.com/vovakirdan/roborun/internal/core"
	"github.com/vovakirdan/roborun/internal/game"
	"github.com/vovakirdan/roborun/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	session := game.NewSession(config.DefaultRoboRunConfig(), nil)
	return NewModel(session, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 5}, nil)
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelStartAndPause(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = send(t, m, runeKey('r'))
	m, _ = send(t, m, TickMsg{})
	if m.Session().Phase() != game.PhasePlaying {
		t.Fatalf("Phase() = %v, expected playing", m.Session().Phase())
	}

	m, _ = send(t, m, runeKey('p'))
	m, _ = send(t, m, TickMsg{})
	if m.Session().Phase() != game.PhasePaused {
		t.Errorf("Phase() = %v, expected paused", m.Session().Phase())
	}
}

func TestModelHeldMovement(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, TickMsg{})

	p := m.Session().Round().Player
	startX := p.X
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for i := 0; i < 4; i++ {
		m, _ = send(t, m, TickMsg{})
	}
	if p.X >= startX {
		t.Fatal("held left should keep moving the player")
	}

	for i := 0; i < holdTicks+2; i++ {
		m, _ = send(t, m, TickMsg{})
	}
	x := p.X
	m, _ = send(t, m, TickMsg{})
	if p.X != x {
		t.Error("movement should stop once the hold expires")
	}
}

func TestModelQuitFromTitle(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := send(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q on the title screen should quit the program")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected a tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelQuitFromRoundReturnsToTitle(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, TickMsg{})

	m, cmd := send(t, m, runeKey('q'))
	if cmd != nil {
		t.Fatal("q during a round should not quit the program")
	}
	m, _ = send(t, m, TickMsg{})
	if m.Session().Phase() != game.PhaseStart {
		t.Errorf("Phase() = %v, expected start", m.Session().Phase())
	}
}

func TestModelSavesFinishedRound(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	if _, err := store.SaveRun(storage.Run{RoundID: uuid.New(), Score: 7}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	m := newTestModel(t, store)
	if m.Session().HighScore() != 7 {
		t.Errorf("HighScore() = %d, expected the stored 7", m.Session().HighScore())
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, TickMsg{})
	r := m.Session().Round()
	r.Player.Distance = 500
	r.Obstacles = append(r.Obstacles, game.NewObstacle(r.Player.X-12, r.Player.Y-12, m.Session().Config().Obstacle))

	m, _ = send(t, m, TickMsg{})
	if m.Session().Phase() != game.PhaseGameOver {
		t.Fatalf("Phase() = %v, expected gameover", m.Session().Phase())
	}
	m, _ = send(t, m, TickMsg{})

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != r.Score {
		t.Errorf("stored scores = %+v, expected the finished round once", scores)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, nil)
	if !strings.Contains(m.View(), "ROBORUN") {
		t.Error("title screen should show the game name")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, 'c', core.ColorRed)
	s.DrawTextColored(0, 1, "xy", core.ColorDarkGray)

	out := RenderScreen(s)
	for _, want := range []string{"ab", "c", "xy"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen output %q missing %q", out, want)
		}
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected one newline between two rows, got %q", out)
	}
}
