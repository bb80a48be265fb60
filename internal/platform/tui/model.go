package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/registry"
	"github.com/vovakirdan/maze-chase/internal/storage"
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time

	quitting   bool
	back       bool  // player left a paused or finished game
	scoreSaved bool  // score has been saved for the current game over
	saveErr    error // last failed save, reported after the program ends
	shotPath   string
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionBack:
		if !m.gameState.GameOver && !m.gameState.Paused {
			return m, nil
		}
		m.back = true
		return m, tea.Quit
	case core.ActionScreenshot:
		if path, err := m.saveScreenshot(); err == nil {
			m.shotPath = path
		}
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize keeps the game running at the new size when it can adapt,
// and restarts it otherwise.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick runs one simulation step with the real time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastTick.IsZero() {
		m.inputFrame.Elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	m = m.step()
	return m, tickCmd(m.config.TickRate)
}

// step feeds the pending input to the game and records the score once per
// game over.
func (m Model) step() Model {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if !m.gameState.GameOver {
		m.scoreSaved = false
		return m
	}
	if m.scoreSaved {
		return m
	}
	m.scoreSaved = true
	if m.store == nil || m.gameState.Score <= 0 || !registry.IsScored(m.game) {
		return m
	}
	_, err := m.store.SaveScore(storage.Record{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Maze:   m.gameState.Variant,
		Level:  m.gameState.Level,
		Player: m.config.Player,
	})
	m.saveErr = err
	return m
}

// saveScreenshot writes the current screen as plain text under
// ~/.arcade/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Outcome describes how a game program ended.
type Outcome struct {
	State      core.GameState
	Back       bool
	SaveErr    error
	Screenshot string // path of the last screenshot taken, if any
}

// Outcome reports the model's final state.
func (m Model) Outcome() Outcome {
	return Outcome{
		State:      m.gameState,
		Back:       m.back,
		SaveErr:    m.saveErr,
		Screenshot: m.shotPath,
	}
}

// Run starts the Bubble Tea program with the given game and reports how it ended.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (Outcome, error) {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return Outcome{}, err
	}
	if fm, ok := final.(Model); ok {
		return fm.Outcome(), nil
	}
	return Outcome{}, nil
}
