package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-road/internal/storage"
)

// History layout constants
const (
	historyChrome = 8   // Rows used by title, summary, borders and help
	maxRuns       = 100 // Max runs to load
)

// HistoryKeyMap defines the key bindings for the run history.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Filter key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Filter, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Filter, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Filter: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "mine/all"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing recorded runs.
type HistoryModel struct {
	store    *storage.Store
	player   string // Player shown when onlyMine is set
	onlyMine bool
	limit    int
	runs     []storage.RunEntry
	longest  *storage.RunEntry
	total    int
	loadErr  error
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a history model. A non-empty player starts
// filtered to that player's runs.
func NewHistoryModel(store *storage.Store, player string, limit, width, height int) HistoryModel {
	if limit <= 0 || limit > maxRuns {
		limit = maxRuns
	}
	m := HistoryModel{
		store:    store,
		player:   player,
		onlyMine: player != "",
		limit:    limit,
		keys:     DefaultHistoryKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	m.loadRuns()
	return m
}

// createTable creates a new table sized to the terminal.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: 12},
		{Title: "Started", Width: 14},
		{Title: "Time", Width: 8},
		{Title: "Frames", Width: 8},
		{Title: "Scrolled", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-historyChrome, 3)),
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

// loadRuns reloads runs and totals for the current filter.
func (m *HistoryModel) loadRuns() {
	m.runs, m.longest, m.total, m.loadErr = nil, nil, 0, nil
	if m.store != nil {
		player := ""
		if m.onlyMine {
			player = m.player
		}
		m.runs, m.loadErr = m.store.RecentRuns(player, m.limit)
		if m.loadErr == nil {
			m.total, m.loadErr = m.store.RunCount()
		}
		if m.loadErr == nil {
			m.longest, m.loadErr = m.store.LongestRun()
		}
	}
	m.table.SetRows(runRows(m.runs))
	m.table.GotoTop()
}

func runRows(runs []storage.RunEntry) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			r.Player,
			r.StartedAt.Local().Format("Jan 02 15:04"),
			r.Duration.Round(time.Second).String(),
			fmt.Sprintf("%d", r.Frames),
			fmt.Sprintf("%.0f", r.Scrolled),
		}
	}
	return rows
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Filter):
			if m.player != "" {
				m.onlyMine = !m.onlyMine
				m.loadRuns()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(runRows(m.runs))
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the run history.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	title := "RUN HISTORY - all players"
	if m.onlyMine {
		title = fmt.Sprintf("RUN HISTORY - %s", m.player)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(m.summary())
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m HistoryModel) summary() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	switch {
	case m.loadErr != nil:
		return style.Render("could not load runs: " + m.loadErr.Error())
	case m.longest == nil:
		return style.Render("no runs yet")
	}
	return style.Render(fmt.Sprintf("%d runs, farthest %.0f by %s",
		m.total, m.longest.Scrolled, m.longest.Player))
}

// renderTableContent renders the table or empty message.
func (m HistoryModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nTake the car for a drive!")
	}

	return m.table.View()
}

// Runs returns the runs currently listed.
func (m HistoryModel) Runs() []storage.RunEntry {
	return m.runs
}

// RunHistory shows the run history until the user quits.
func RunHistory(store *storage.Store, player string, limit, width, height int) error {
	model := NewHistoryModel(store, player, limit, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
