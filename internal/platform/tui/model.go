package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roborun/internal/core"
	"github.com/vovakirdan/roborun/internal/game"
	"github.com/vovakirdan/roborun/internal/platform"
	"github.com/vovakirdan/roborun/internal/storage"
)

// Model is the Bubble Tea model for playing RoboRun in a terminal.
type Model struct {
	session    *game.Session
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame // One-shot actions pressed since the last tick
	held       heldKeys
	quitting   bool
}

// NewModel creates a new Bubble Tea model around session.
func NewModel(session *game.Session, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	session.Reset(cfg)
	platform.SeedHighScore(session, store, logger)

	return Model{
		session:    session,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		held:       make(heldKeys),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	actions, hardQuit := m.keys.MapKey(msg)
	if hardQuit {
		m.quitting = true
		return m, tea.Quit
	}

	for _, a := range actions {
		switch {
		case a == core.ActionQuit && m.session.Phase() == game.PhaseStart:
			m.quitting = true
			return m, tea.Quit
		case a == core.ActionFullscreen:
			// The terminal already is the whole screen.
		case IsHeld(a):
			m.held.press(a)
			m.inputFrame.Set(a)
		default:
			m.inputFrame.Set(a)
		}
	}
	return m, nil
}

// handleTick runs one simulation step with the collected input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.inputFrame.Clone()
	m.held.apply(&frame)

	res := m.session.Step(frame)
	if res.Finished != nil {
		platform.Record(m.store, *res.Finished, m.logger)
	}
	if res.Phase != game.PhasePlaying {
		// Held directions should not leak into the next round or the resume.
		clear(m.held)
	}

	m.held.decay()
	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.session.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".roborun", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	name := fmt.Sprintf("roborun_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.session.Render(m.screen)
	return RenderScreen(m.screen)
}

// Session returns the session driven by the model.
func (m Model) Session() *game.Session {
	return m.session
}

// Run starts the Bubble Tea program for session.
func Run(session *game.Session, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(session, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
