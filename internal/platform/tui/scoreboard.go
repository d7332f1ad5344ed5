package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fledgegame/fledge/internal/storage"
)

const maxScoreRows = 100

// scoreboardKeyMap defines the key bindings for the scoreboard view.
type scoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k scoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k scoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

var defaultScoreboardKeys = scoreboardKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

var (
	scoreboardTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("11")).
				Padding(0, 1)

	scoreboardBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))
)

// ScoreboardModel is the Bubble Tea model for browsing recorded scores.
type ScoreboardModel struct {
	table table.Model
	help  help.Model
	keys  scoreboardKeyMap
	best  int
}

// NewScoreboardModel builds a scoreboard from the stored scores.
func NewScoreboardModel(store *storage.Store) (ScoreboardModel, error) {
	entries, err := store.TopScores(maxScoreRows)
	if err != nil {
		return ScoreboardModel{}, fmt.Errorf("scoreboard: %w", err)
	}
	best, err := store.HighScore()
	if err != nil {
		return ScoreboardModel{}, fmt.Errorf("scoreboard: %w", err)
	}

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 18},
	}

	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", e.Score),
			e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	return ScoreboardModel{
		table: t,
		help:  help.New(),
		keys:  defaultScoreboardKeys,
		best:  best,
	}, nil
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation and quit keys.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	title := scoreboardTitleStyle.Render(fmt.Sprintf("Fledge High Scores (best: %d)", m.best))
	body := scoreboardBorderStyle.Render(m.table.View())
	return title + "\n" + body + "\n" + m.help.View(m.keys) + "\n"
}

// RunScoreboard shows the interactive scoreboard for the given store.
func RunScoreboard(store *storage.Store) error {
	model, err := NewScoreboardModel(store)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model)
	_, err = p.Run()
	return err
}
