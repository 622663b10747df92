package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/storage"
)

// footerHeight is the line under the game screen used for toasts and help.
const footerHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	logger      *log.Logger
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	help        help.Model
	inputFrame  core.InputFrame
	gameState   core.GameState
	toasts      Toaster
	width       int
	quitting    bool
	back        bool
	resultSaved bool // Whether the result of the current game has been recorded
}

// NewModel creates a new Bubble Tea model for the given game. store and
// logger may be nil.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerHeight, 1)),
		store:      store,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		width:      cfg.ScreenW,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)

	return tickCmd(m.config.TickInterval())
}

// gameConfig is the runtime config as seen by the game: the screen minus
// the footer.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenW = m.screen.Width()
	cfg.ScreenH = m.screen.Height()
	return cfg
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

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

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.game.Close()
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.back = true
		m.game.Close()
		return m, tea.Quit
	}

	return m, nil
}

// handleMouse forwards left clicks to the game.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.Click(msg.X, msg.Y)
	}
	return m, nil
}

// handleResize processes window resize events. Games lay themselves out on
// every render, so the running game is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.width = msg.Width
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 1))

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.logger.Info("game reset", "game", m.game.ID())
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, n := range result.Events {
		m.logger.Debug("notification", "game", m.game.ID(), "title", n.Title, "severity", n.Severity)
		m.toasts.Push(n)
	}
	m.toasts.Advance(m.config.TickInterval())

	switch {
	case m.gameState.GameOver && !m.resultSaved:
		m.saveResult()
		m.resultSaved = true
	case !m.gameState.GameOver:
		m.resultSaved = false
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickInterval())
}

// saveResult records the finished game, best effort.
func (m Model) saveResult() {
	s := m.gameState
	m.logger.Info("game finished",
		"game", m.game.ID(),
		"score", s.Score,
		"moves", s.Moves,
		"elapsed", s.Elapsed,
		"won", s.Won,
	)

	if m.store == nil {
		return
	}
	_, err := m.store.SaveResult(storage.Result{
		GameID:  m.game.ID(),
		Score:   s.Score,
		Moves:   s.Moves,
		Seconds: int(s.Elapsed / time.Second),
		Won:     s.Won,
	})
	if err != nil {
		m.logger.Warn("could not save result", "game", m.game.ID(), "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

// footer shows the newest toast, or the key help when there is none.
func (m Model) footer() string {
	if toast := m.toasts.View(m.width); toast != "" {
		return toast
	}
	return helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// GoingBack reports whether the player asked to return to the menu.
func (m Model) GoingBack() bool {
	return m.back
}

// Run starts the Bubble Tea program with the given game. It reports whether
// the player went back to the menu rather than quitting.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (goBack bool, err error) {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.GoingBack(), nil
}
