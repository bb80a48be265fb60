package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/registry"
	"github.com/vovakirdan/maze-chase/internal/storage"
)

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID   string
	Title    string
	Scored   bool
	PickMaze bool // the game plays on a chosen maze
}

// MenuModel is the Bubble Tea model for the game picker menu.
// Games that play on a maze get a second stage listing the mazes.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	mazes          []MazeChoice
	currentMaze    string
	picker         *MazePickerModel // non-nil while choosing a maze
	quitting       bool
	selected       *MenuItem // Set when user selects a game
	maze           string
	openScoreboard bool // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model. mazes feeds the maze stage;
// current is the maze the cursor starts on.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, mazes []MazeChoice, current string) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))

	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title, Scored: g.Scored}
		if game, err := registry.Create(g.ID); err == nil {
			_, item.PickMaze = game.(registry.MazeSelector)
		}
		items = append(items, item)
	}

	return MenuModel{
		items:       items,
		cursor:      0,
		width:       cfg.ScreenW,
		height:      cfg.ScreenH,
		store:       store,
		config:      cfg,
		keyMapper:   NewKeyMapper(),
		mazes:       mazes,
		currentMaze: current,
	}
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
		if m.picker != nil {
			m.picker.width = msg.Width
			m.picker.height = msg.Height
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.picker != nil {
		return m.handlePickerKey(action)
	}

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		selected := m.items[m.cursor]
		if selected.PickMaze && len(m.mazes) > 0 {
			picker := NewMazePickerModel(m.mazes, m.currentMaze, m.width, m.height)
			m.picker = &picker
			return m, nil
		}
		m.selected = &selected
		return m, tea.Quit // Exit menu to start game

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

func (m MenuModel) handlePickerKey(action MenuAction) (tea.Model, tea.Cmd) {
	picker, done := m.picker.apply(action)
	m.picker = &picker
	if !done {
		return m, nil
	}

	switch {
	case picker.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case picker.WantsBack():
		m.picker = nil
		return m, nil
	}

	selected := m.items[m.cursor]
	m.selected = &selected
	m.maze = picker.Selected().ID
	m.currentMaze = m.maze
	m.picker = nil
	return m, tea.Quit
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.picker != nil {
		return m.picker.View()
	}

	var b strings.Builder

	// Title
	b.WriteString("\n")
	b.WriteString(centerText("M A Z E   C H A S E", m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText("Select a game", m.width))
	b.WriteString("\n\n")

	// Game list
	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		note := ""
		if !item.Scored {
			note = " (unscored)"
		}

		line := fmt.Sprintf("%s%s%s", cursor, item.Title, note)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Maze returns the maze chosen in the second stage, if any.
func (m MenuModel) Maze() string {
	return m.maze
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Maze            string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result summarizes how the menu ended.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.Config()}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.GameID = m.Selected().GameID
		result.Maze = m.Maze()
	}
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, mazes []MazeChoice, current string) (MenuResult, error) {
	model := NewMenuModel(store, cfg, mazes, current)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
