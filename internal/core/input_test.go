package core

import (
	"testing"
	"time"
)

func TestInputFrameDirection(t *testing.T) {
	tests := []struct {
		name string
		set  []Action
		want Action
	}{
		{"empty", nil, ActionNone},
		{"left", []Action{ActionLeft}, ActionLeft},
		{"non-directional", []Action{ActionPause}, ActionNone},
		{"up wins over right", []Action{ActionRight, ActionUp}, ActionUp},
		{"left wins over down", []Action{ActionDown, ActionLeft}, ActionLeft},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.set {
				f.Set(a)
			}
			if got := f.Direction(); got != tc.want {
				t.Errorf("Direction() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestInputFrameCloneClear(t *testing.T) {
	var f InputFrame
	f.Set(ActionRight)
	f.Elapsed = 16 * time.Millisecond

	c := f.Clone()
	f.Clear()

	if f.Has(ActionRight) || f.Elapsed != 0 {
		t.Error("Clear should drop actions and elapsed time")
	}
	if !c.Has(ActionRight) || c.Elapsed != 16*time.Millisecond {
		t.Error("Clone should be independent of the original")
	}
}

func TestTickDuration(t *testing.T) {
	if d := DefaultConfig().TickDuration(); d != time.Second/60 {
		t.Errorf("TickDuration() = %v, expected 1/60s", d)
	}
	if d := (RuntimeConfig{TickRate: 20}).TickDuration(); d != 50*time.Millisecond {
		t.Errorf("TickDuration() = %v, expected 50ms", d)
	}
	if d := (RuntimeConfig{}).TickDuration(); d != time.Second/60 {
		t.Errorf("zero tick rate should fall back to 60, got %v", d)
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" || ActionScreenshot.String() != "Screenshot" {
		t.Error("unexpected action names")
	}
	if Action(99).String() != "Unknown" {
		t.Error("out of range action should be Unknown")
	}
}
