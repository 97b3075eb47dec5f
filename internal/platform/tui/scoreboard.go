package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/roborun/internal/storage"
)

const (
	statsMinWidth = 90 // terminal width needed for the stats column
	statsWidth    = 24
	leaderLimit   = 100
)

// leaderboardKeys lists what the leaderboard screen responds to.
type leaderboardKeys struct {
	Prev, Next  key.Binding
	First, Last key.Binding
	Reload      key.Binding
	Menu, Exit  key.Binding
}

func (k leaderboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Reload, k.Menu}
}

func (k leaderboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.First, k.Last},
		{k.Reload, k.Menu, k.Exit},
	}
}

func bind(help, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
}

func newLeaderboardKeys() leaderboardKeys {
	return leaderboardKeys{
		Prev:   bind("↑/k", "better run", "up", "k"),
		Next:   bind("↓/j", "worse run", "down", "j"),
		First:  bind("g", "best", "home", "g"),
		Last:   bind("G", "last", "end", "G"),
		Reload: bind("r", "reload", "r"),
		Menu:   bind("esc", "menu", "esc", "b", "backspace"),
		Exit:   bind("q", "exit", "q", "ctrl+c"),
	}
}

// ScoreboardModel shows the stored runs ranked by score, with an
// aggregate column on wide terminals.
type ScoreboardModel struct {
	store   *storage.Store
	scores  []storage.ScoreEntry
	stats   *storage.Stats
	loadErr error

	table table.Model
	help  help.Model
	keys  leaderboardKeys

	width, height int
	withStats     bool

	quitting  bool
	goingBack bool
}

// NewScoreboardModel loads the leaderboard from store. A nil store yields
// an empty board.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:     store,
		keys:      newLeaderboardKeys(),
		help:      help.New(),
		width:     width,
		height:    height,
		withStats: width >= statsMinWidth,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the current window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 10},
		{Title: "Distance", Width: 9},
		{Title: "Coins", Width: 6},
		{Title: "Lvl", Width: 4},
		{Title: "Played", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the leaderboard and its stats.
func (m *ScoreboardModel) load() {
	m.scores, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		m.scores, m.loadErr = m.store.TopScores(leaderLimit)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.Stats()
		}
	}
	m.table.SetRows(scoreRows(m.scores))
	m.table.GotoTop()
}

const playedLayout = "2006-01-02 15:04"

// scoreRows formats leaderboard entries as table rows.
func scoreRows(scores []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(s.Score),
			fmt.Sprintf("%.0fm", s.Distance),
			strconv.Itoa(s.Coins),
			strconv.Itoa(s.Difficulty),
			s.CreatedAt.Format(playedLayout),
		}
	}
	return rows
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Exit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Menu):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Reload):
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.First):
			m.table.GotoTop()
			return m, nil

		case key.Matches(msg, m.keys.Last):
			m.table.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.withStats = m.width >= statsMinWidth
		m.table = m.createTable()
		m.table.SetRows(scoreRows(m.scores))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("ROBORUN HIGH SCORES", m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableBox := boxStyle.Render(m.renderTableContent())

	if m.withStats {
		sidebar := boxStyle.Width(statsWidth).Render(m.renderStats())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", tableBox))
	} else {
		b.WriteString(tableBox)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderStats renders the aggregate sidebar.
func (m ScoreboardModel) renderStats() string {
	if m.stats == nil || m.stats.Runs == 0 {
		return "Stats\n\nno runs yet"
	}
	st := m.stats
	lines := []string{
		"Stats",
		"",
		fmt.Sprintf("Runs:     %d", st.Runs),
		fmt.Sprintf("Best:     %d", st.HighScore),
		fmt.Sprintf("Average:  %.0f", st.AvgScore),
		fmt.Sprintf("Farthest: %d", int(st.BestDistance)),
		fmt.Sprintf("Coins:    %d", st.TotalCoins),
	}
	if !st.LastPlayed.IsZero() {
		lines = append(lines, "", "Last played", st.LastPlayed.Format(playedLayout))
	}
	return strings.Join(lines, "\n")
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.loadErr != nil {
		return emptyStyle.Render(fmt.Sprintf("Could not load scores:\n%v", m.loadErr))
	}
	if len(m.scores) == 0 {
		return emptyStyle.Render("No scores recorded yet.\nPlay a round to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to the menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
