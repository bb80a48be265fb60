package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/maze-chase/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"w", runeKey("w"), core.ActionUp, false},
		{"k", runeKey("k"), core.ActionUp, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"s", runeKey("s"), core.ActionDown, false},
		{"j", runeKey("j"), core.ActionDown, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"a", runeKey("a"), core.ActionLeft, false},
		{"h", runeKey("h"), core.ActionLeft, false},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d", runeKey("d"), core.ActionRight, false},
		{"l", runeKey("l"), core.ActionRight, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"p", runeKey("p"), core.ActionPause, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionPause, false},
		{"r", runeKey("r"), core.ActionRestart, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"b", runeKey("b"), core.ActionBack, false},
		{"f2", tea.KeyMsg{Type: tea.KeyF2}, core.ActionScreenshot, false},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("MapKey(%q) action = %v, expected %v", tt.msg.String(), action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("MapKey(%q) quit = %v, expected %v", tt.msg.String(), quit, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey("a"), &frame) {
		t.Error("a should not quit")
	}
	if km.MapKeyToFrame(runeKey("z"), &frame) {
		t.Error("z should not quit")
	}
	if !frame.Has(core.ActionLeft) {
		t.Error("frame should hold Left")
	}
	if len(frame.Actions) != 1 {
		t.Errorf("frame has %d actions, expected 1", len(frame.Actions))
	}
	if !km.MapKeyToFrame(runeKey("q"), &frame) {
		t.Error("q should quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action MenuAction
	}{
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeySpace}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.action {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.action)
		}
	}
}
