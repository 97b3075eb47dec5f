package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/roborun/internal/core"
)

// MenuChoice is what the launcher menu was closed with.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceWindow
	ChoiceScores
	ChoiceDifficulty // Not a closing choice; cycles the preset
	ChoiceQuit
)

// DifficultyOptions lists the presets the menu cycles through.
var DifficultyOptions = []string{"normal", "easy", "hard", "fixed"}

// MenuItem is one launcher entry.
type MenuItem struct {
	Title  string
	Choice MenuChoice
}

// MenuModel is the Bubble Tea model for the launcher menu.
type MenuModel struct {
	items      []MenuItem
	cursor     int
	difficulty int // Index into DifficultyOptions
	highScore  int
	width      int
	height     int
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	chosen     MenuChoice
}

// NewMenuModel creates a new menu model. difficulty preselects a preset.
func NewMenuModel(cfg core.RuntimeConfig, difficulty string, highScore int) MenuModel {
	m := MenuModel{
		items: []MenuItem{
			{Title: "Play", Choice: ChoicePlay},
			{Title: "Play in window", Choice: ChoiceWindow},
			{Title: "High scores", Choice: ChoiceScores},
			{Title: "Difficulty", Choice: ChoiceDifficulty},
			{Title: "Quit", Choice: ChoiceQuit},
		},
		highScore: highScore,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	for i, d := range DifficultyOptions {
		if d == difficulty {
			m.difficulty = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.chosen = ChoiceQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if m.items[m.cursor].Choice == ChoiceDifficulty {
			m.cycleDifficulty(-1)
		}

	case MenuActionRight:
		if m.items[m.cursor].Choice == ChoiceDifficulty {
			m.cycleDifficulty(1)
		}

	case MenuActionSelect:
		choice := m.items[m.cursor].Choice
		if choice == ChoiceDifficulty {
			m.cycleDifficulty(1)
			return m, nil
		}
		m.chosen = choice
		return m, tea.Quit
	}

	return m, nil
}

func (m *MenuModel) cycleDifficulty(step int) {
	n := len(DifficultyOptions)
	m.difficulty = ((m.difficulty+step)%n + n) % n
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.chosen != ChoiceNone {
		return ""
	}

	var b strings.Builder
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	b.WriteString("\n")
	b.WriteString(centerText(title.Render("R O B O R U N"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dim.Render(fmt.Sprintf("High score: %d", m.highScore)), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		label := item.Title
		if item.Choice == ChoiceDifficulty {
			label = fmt.Sprintf("Difficulty: < %s >", m.Difficulty())
		}
		if i == m.cursor {
			b.WriteString(centerText(active.Render("> "+label), m.width))
		} else {
			b.WriteString(centerText("  "+label, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dim.Render("Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Difficulty returns the selected preset name.
func (m MenuModel) Difficulty() string {
	return DifficultyOptions[m.difficulty]
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice     MenuChoice
	Difficulty string
	Config     core.RuntimeConfig
}

// Result summarizes how the menu was closed.
func (m MenuModel) Result() MenuResult {
	choice := m.chosen
	if choice == ChoiceNone {
		choice = ChoiceQuit
	}
	return MenuResult{Choice: choice, Difficulty: m.Difficulty(), Config: m.config}
}

// RunMenu runs the launcher menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, difficulty string, highScore int) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg, difficulty, highScore),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: ChoiceQuit, Difficulty: difficulty, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Choice: ChoiceQuit, Difficulty: difficulty, Config: cfg}, nil
	}
	return m.Result(), nil
}
