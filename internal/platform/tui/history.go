package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pong-bricks/internal/registry"
	"github.com/vovakirdan/pong-bricks/internal/storage"
)

const maxHistory = 100

// allLayouts is the filter tab that shows every layout.
const allLayouts = ""

// HistoryKeyMap defines the key bindings for the history browser.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next layout"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev layout"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel browses recorded sessions, filtered by layout.
type HistoryModel struct {
	filters  []string // allLayouts followed by every registered layout ID
	cursor   int
	store    *storage.Store
	records  []storage.SessionRecord
	totals   *storage.LayoutTotals
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	err      error
	quitting bool
}

// NewHistoryModel creates a history browser starting at the given layout
// filter. An empty layout shows every session.
func NewHistoryModel(store *storage.Store, layout string, width, height int) HistoryModel {
	filters := []string{allLayouts}
	for _, info := range registry.List() {
		filters = append(filters, info.ID)
	}

	cursor := 0
	for i, f := range filters {
		if f == layout {
			cursor = i
		}
	}

	m := HistoryModel{
		filters: filters,
		cursor:  cursor,
		store:   store,
		keys:    DefaultHistoryKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 13},
		{Title: "Layout", Width: 9},
		{Title: "Host", Width: 9},
		{Title: "Player", Width: 10},
		{Title: "Ticks", Width: 8},
		{Title: "Balls", Width: 6},
		{Title: "Bricks", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Title, tabs, totals, help and borders
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

// load refreshes records and totals for the current filter.
func (m *HistoryModel) load() {
	m.records, m.totals, m.err = nil, nil, nil

	if m.store != nil {
		layout := m.filters[m.cursor]
		m.records, m.err = m.store.RecentSessions(layout, maxHistory)
		if m.err == nil && layout != allLayouts {
			totals, err := m.store.Totals(layout)
			if err == nil {
				m.totals = &totals
			}
		}
	}

	m.table.SetRows(historyRows(m.records))
	m.table.GotoTop()
}

// historyRows formats records as table rows.
func historyRows(records []storage.SessionRecord) []table.Row {
	rows := make([]table.Row, len(records))
	for i, r := range records {
		player := r.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			r.CreatedAt.Format("Jan 02 15:04"),
			r.Layout,
			r.Host,
			player,
			strconv.Itoa(r.Ticks),
			strconv.Itoa(r.BallsSpawned),
			strconv.Itoa(r.BricksCleared),
		}
	}
	return rows
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			m.cursor = (m.cursor + 1) % len(m.filters)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.cursor = (m.cursor - 1 + len(m.filters)) % len(m.filters)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(historyRows(m.records))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var body string
	switch {
	case m.store == nil:
		body = emptyStyle().Render("History is unavailable.")
	case m.err != nil:
		body = emptyStyle().Render("Cannot read history:\n" + m.err.Error())
	case len(m.records) == 0:
		body = emptyStyle().Render("No sessions recorded yet.\nPlay a round to start the history!")
	default:
		body = m.table.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		menuTitleStyle.Render("SESSION HISTORY"),
		"",
		m.tabs(),
		boxStyle.Render(body),
		statusStyle.Render(m.totalsLine()),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

func emptyStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(1, 4)
}

// tabs renders the layout filter row.
func (m HistoryModel) tabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.filters))
	for i, f := range m.filters {
		name := f
		if f == allLayouts {
			name = "all"
		}
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// totalsLine summarizes the selected layout.
func (m HistoryModel) totalsLine() string {
	if m.totals == nil {
		return fmt.Sprintf("%d sessions shown", len(m.records))
	}
	t := m.totals
	return fmt.Sprintf("%d sessions  %d ticks  %d balls  %d bricks cleared",
		t.Sessions, t.Ticks, t.BallsSpawned, t.BricksCleared)
}

// RunHistory runs the history browser until the user quits.
func RunHistory(store *storage.Store, layout string, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(store, layout, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
