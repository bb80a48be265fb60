package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/games/chase/levels"
)

// MazeChoice is one entry of the maze picker.
type MazeChoice struct {
	ID     string
	Name   string
	Width  int
	Height int
	Custom bool // loaded from a file rather than built in
}

// MazeChoices turns loaded mazes into picker entries.
func MazeChoices(all []levels.Level) []MazeChoice {
	out := make([]MazeChoice, 0, len(all))
	for _, lvl := range all {
		w, h := lvl.Size()
		out = append(out, MazeChoice{
			ID:     lvl.ID,
			Name:   lvl.Name,
			Width:  w,
			Height: h,
			Custom: lvl.FilePath != "",
		})
	}
	return out
}

// MazePickerModel lets the player choose which maze to run on.
type MazePickerModel struct {
	choices   []MazeChoice
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  *MazeChoice
	quitting  bool
	back      bool
}

// NewMazePickerModel creates a picker over the given mazes with the
// cursor on current, if present.
func NewMazePickerModel(choices []MazeChoice, current string, width, height int) MazePickerModel {
	m := MazePickerModel{
		choices:   choices,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	for i, c := range choices {
		if c.ID == current {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m MazePickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MazePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		var done bool
		m, done = m.apply(m.keyMapper.MapKeyToMenuAction(msg))
		if done {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// apply handles one menu action and reports whether the picker is finished.
func (m MazePickerModel) apply(action MenuAction) (MazePickerModel, bool) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, true
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.choices) > 0 {
			c := m.choices[m.cursor]
			m.selected = &c
			return m, true
		}
	case MenuActionBack:
		m.back = true
		return m, true
	}
	return m, false
}

// View renders the maze list.
func (m MazePickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("M A Z E   C H A S E", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a maze:", m.width))
	b.WriteString("\n\n")

	if len(m.choices) == 0 {
		b.WriteString(centerText("No mazes available", m.width))
		b.WriteString("\n")
	}
	for i, c := range m.choices {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		tag := ""
		if c.Custom {
			tag = " *"
		}
		fit := ""
		if c.Width > m.width || c.Height+hudRows > m.height {
			fit = " (too big)"
		}
		line := fmt.Sprintf("%s%-16s %3dx%-3d%s%s", cursor, c.Name, c.Width, c.Height, tag, fit)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Play  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// hudRows matches the status lines drawn above the maze.
const hudRows = 2

// Selected returns the chosen maze, or nil if none was chosen.
func (m MazePickerModel) Selected() *MazeChoice {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m MazePickerModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m MazePickerModel) WantsBack() bool {
	return m.back
}

// RunMazePicker runs the maze picker and returns the chosen maze ID.
// An empty ID means the player backed out, or quit when quit is set.
func RunMazePicker(all []levels.Level, current string, cfg core.RuntimeConfig) (id string, quit bool, err error) {
	model := NewMazePickerModel(MazeChoices(all), current, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, ok := finalModel.(MazePickerModel)
	if !ok {
		return "", true, nil
	}
	if m.Selected() == nil {
		return "", m.IsQuitting(), nil
	}
	return m.Selected().ID, false, nil
}
