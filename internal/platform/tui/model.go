package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/badgers-arcade/internal/core"
	"github.com/vovakirdan/badgers-arcade/internal/registry"
)

// helpHeight is the number of rows reserved below the game for key help.
const helpHeight = 1

// Sounder plays a cue for a game event.
type Sounder interface {
	Play(kind core.EventKind)
}

// Options configures a game model.
type Options struct {
	Config   core.RuntimeConfig
	Logger   *log.Logger        // Nil discards logs
	Sound    Sounder            // Nil plays nothing
	Renderer *lipgloss.Renderer // Nil uses the process default
	MenuBack bool               // Esc returns to the menu
}

// GameModel is the Bubble Tea model for running one game.
type GameModel struct {
	id         int
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	palette    Palette
	logger     *log.Logger
	sound      Sounder
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, opts Options) GameModel {
	cfg := opts.Config
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	km := NewKeyMapper()
	km.EnableBack(opts.MenuBack)

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		id:         nextID(),
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 0)),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  km,
		help:       h,
		palette:    NewPalette(opts.Renderer),
		logger:     logger.With("game", game.ID()),
		sound:      opts.Sound,
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.logger.Info("game started", "seed", m.config.Seed)
	return tickCmd(m.id, tickRateOf(m.game))
}

// gameConfig returns the runtime config with the help row taken off.
func (m GameModel) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-helpHeight, 0)
	return cfg
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.id {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.IsBack(msg) {
		m.backToMenu = true
		m.logger.Info("back to menu", "score", m.gameState.Score)
		return m, tea.Quit
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	cfg := m.gameConfig()
	m.screen.Resize(cfg.ScreenW, cfg.ScreenH)

	// Resizable games keep their state; others start over at the new size.
	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(cfg.ScreenW, cfg.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(cfg)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.handleEvents(result.Events)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.id, tickRateOf(m.game))
}

// handleEvents logs events and plays their sound cues.
func (m GameModel) handleEvents(events []core.Event) {
	if d, ok := m.game.(registry.Debugger); ok && len(events) > 0 {
		m.logger.Debug("tick", "state", d.DebugState())
	}
	for _, e := range events {
		switch e.Kind {
		case core.EventGameOver:
			m.logger.Info("run ended", "score", m.gameState.Score, "reason", e.Detail)
		default:
			m.logger.Debug("event", "kind", e.Kind, "delta", e.Delta, "detail", e.Detail, "x", e.Pos.X, "y", e.Pos.Y)
		}
		if m.sound != nil {
			m.sound.Play(e.Kind)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".badgers", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.palette.RenderScreen(m.screen) + "\n" + m.help.View(m.keyMapper.Keys())
}

// State returns the game state after the latest tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
// backToMenu reports whether the player left with the back key.
func Run(game registry.Game, opts Options) (backToMenu bool, err error) {
	p := tea.NewProgram(
		NewGameModel(game, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(GameModel)
	return ok && m.BackToMenu(), nil
}
