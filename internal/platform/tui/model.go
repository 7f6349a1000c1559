package tui

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pong-bricks/internal/arena"
	"github.com/vovakirdan/pong-bricks/internal/core"
	"github.com/vovakirdan/pong-bricks/internal/storage"
)

// Rows and columns around the playfield: border on each side, then the
// status line and the help bar below.
const (
	chromeW = 2
	chromeH = 4
)

var (
	fieldStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	pausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
)

// Options configures one arena session.
type Options struct {
	LayoutID string
	Settings arena.Settings
	Store    *storage.Store
	Config   core.RuntimeConfig
	Host     string // storage.HostTerminal or storage.HostSSH
	Player   string

	// Embedded sessions hand control back to a parent model instead of
	// quitting the program.
	Embedded bool

	// Generation tags this game's ticks. A parent that runs several games
	// in turn gives each a new value so late ticks of an old game are dropped.
	Generation int
}

// Model is the Bubble Tea model for running one arena session.
type Model struct {
	arena      *arena.Arena
	screen     *core.Screen
	styles     styleCache
	store      *storage.Store
	config     core.RuntimeConfig
	layoutID   string
	host       string
	player     string
	embedded   bool
	gen        int
	inputFrame core.InputFrame
	keys       KeyMap
	help       help.Model
	width      int
	height     int
	started    time.Time
	notice     string
	paused     bool
	quitting   bool
	saved      bool
}

// NewModel creates a new Bubble Tea model running a fresh arena.
func NewModel(opts Options) Model {
	cfg := opts.Config
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}

	rng := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // Gameplay randomness
	fw, fh := fieldSize(cfg.ScreenW, cfg.ScreenH, chromeW, chromeH)

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return Model{
		arena:      arena.New(opts.Settings, rng),
		screen:     core.NewScreen(fw, fh),
		styles:     styleCache{},
		store:      opts.Store,
		config:     cfg,
		layoutID:   opts.LayoutID,
		host:       opts.Host,
		player:     opts.Player,
		embedded:   opts.Embedded,
		gen:        opts.Generation,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       h,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		started:    time.Now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if m.quitting || msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err == nil {
			m.notice = "saved " + path
		} else {
			m.notice = "screenshot failed"
		}
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.saveSession()
		m.quitting = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit

	case core.ActionPause:
		m.paused = !m.paused

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case core.ActionNone:

	default:
		if !m.paused {
			m.inputFrame.Set(action)
		}
	}

	return m, nil
}

// handleResize keeps the arena and fits the playfield to the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(fieldSize(msg.Width, msg.Height, chromeW, chromeH))
	return m, nil
}

// handleTick runs one frame of the host loop: apply input, then step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused {
		m.arena.Apply(m.inputFrame)
		m.arena.Step()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate, m.gen)
}

// saveSession records the session once. Failures are ignored; play never
// depends on history.
func (m *Model) saveSession() {
	if m.saved || m.store == nil {
		return
	}
	m.saved = true

	rec := m.Record()
	//nolint:errcheck // Best-effort save, session ends regardless
	m.store.SaveSession(rec)
}

// Record returns the history record describing the session so far.
func (m Model) Record() storage.SessionRecord {
	stats := m.arena.Stats()
	return storage.SessionRecord{
		Layout:        m.layoutID,
		Host:          m.host,
		Player:        m.player,
		Seed:          m.config.Seed,
		Ticks:         stats.Ticks,
		BallsSpawned:  stats.BallsSpawned,
		BricksCleared: stats.BricksCleared,
		Duration:      int(time.Since(m.started).Seconds()),
	}
}

// saveScreenshot saves the current playfield to a text file.
func (m *Model) saveScreenshot() (string, error) {
	DrawArena(m.screen, m.arena)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".bricks", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.layoutID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the playfield, status line and help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawArena(m.screen, m.arena)
	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, " PAUSED ")
	}

	field := fieldStyle.Render(renderScreen(m.screen, m.styles))
	body := lipgloss.JoinVertical(lipgloss.Left,
		field,
		statusStyle.Render(m.statusLine()),
		helpStyle.Render(m.help.View(m.keys)),
	)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)
}

// statusLine summarizes the session in one line.
func (m Model) statusLine() string {
	stats := m.arena.Stats()

	parts := []string{
		fmt.Sprintf("layout %s", m.layoutID),
		fmt.Sprintf("balls %d", len(m.arena.Balls())),
		fmt.Sprintf("bricks %d left", stats.BricksRemaining),
		fmt.Sprintf("tick %d", stats.Ticks),
	}
	if m.paused {
		parts = append(parts, pausedStyle.Render("paused"))
	}
	if m.notice != "" {
		parts = append(parts, m.notice)
	}
	return strings.Join(parts, "  ")
}

// Done reports whether the user ended the session.
func (m Model) Done() bool {
	return m.quitting
}

// Paused reports whether stepping is suspended.
func (m Model) Paused() bool {
	return m.paused
}

// Arena returns the running arena.
func (m Model) Arena() *arena.Arena {
	return m.arena
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
