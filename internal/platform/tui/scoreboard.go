package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Scoreboard layout constants
const (
	maxResults     = 100 // Max results to load
	tableChrome    = 8   // Rows taken by title, borders and help
	minTableHeight = 3
)

// scoreView selects which ordering the scoreboard shows.
type scoreView int

const (
	viewTop scoreView = iota
	viewRecent
	viewMine
	viewCount
)

func (v scoreView) title(player string) string {
	switch v {
	case viewRecent:
		return "RECENT GAMES"
	case viewMine:
		return "MY GAMES - " + player
	}
	return "HIGH SCORES"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Help   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Back, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Back, k.Quit, k.Help},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "top/recent/mine"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the results recorded this run. It is embedded in
// the game model and reports through Closed and IsQuitting instead of
// ending the program itself on back.
type ScoreboardModel struct {
	store    *storage.Store
	player   string
	view     scoreView
	results  []storage.Result
	total    int // Games recorded this run, all players
	loadErr  error
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	closed   bool
	quitting bool
}

// NewScoreboardModel creates a scoreboard showing the best results first.
// player selects the rows of the "mine" view.
func NewScoreboardModel(store *storage.Store, player string, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		store:  store,
		player: player,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable builds the results table sized to the current window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: 14},
		{Title: "Score", Width: 7},
		{Title: "Length", Width: 7},
		{Title: "Result", Width: 10},
		{Title: "Time", Width: 8},
	}

	// Give spare width to the player column
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if spare := m.width - 6 - used; spare > 0 {
		columns[1].Width += min(spare, 16)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-tableChrome, minTableHeight)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load fetches results for the current view.
func (m *ScoreboardModel) load() {
	m.results, m.loadErr, m.total = nil, nil, 0
	if m.store != nil {
		switch m.view {
		case viewRecent:
			m.results, m.loadErr = m.store.RecentResults(maxResults)
		case viewMine:
			m.results, m.loadErr = m.store.PlayerResults(m.player)
		default:
			m.results, m.loadErr = m.store.TopResults(maxResults)
		}
		if m.loadErr == nil {
			m.total, m.loadErr = m.store.Count()
		}
	}
	m.updateTableRows()
}

// updateTableRows refreshes the table from the loaded results.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			r.Player,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Length),
			outcomeLabel(r.Outcome),
			r.CreatedAt.Format("15:04:05"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// outcomeLabel turns a stored outcome into a table label.
func outcomeLabel(outcome string) string {
	switch outcome {
	case "game_over":
		return "crashed"
	case "board_full":
		return "won"
	default:
		return outcome
	}
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.closed = true
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			m.view = (m.view + 1) % viewCount
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("10"))
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, titleStyle.Render(m.view.title(m.player))))
	b.WriteString("\n")
	countStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, countStyle.Render(fmt.Sprintf("%d games this session", m.total))))
	b.WriteString("\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(m.renderTableContent())))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or a placeholder.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("Scoreboard unavailable.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load results.")
	case len(m.results) == 0:
		return emptyStyle.Render("No games finished yet.\nPlay one to get on the board!")
	}
	return m.table.View()
}

// Closed reports whether the user left the scoreboard.
func (m ScoreboardModel) Closed() bool {
	return m.closed
}

// IsQuitting reports whether the user asked to quit the program.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
