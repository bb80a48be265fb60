package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the difficulty presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset parses a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return DifficultyNormal, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyChasePreset modifies the config based on a difficulty preset.
// Presets only trade lives against the frightened window; the mode
// schedule and speeds stay as configured.
func ApplyChasePreset(cfg *ChaseConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Timing.FrightenedSeconds = 8
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Timing.FrightenedSeconds = 3
		if cfg.Timing.FrightenedWarningSeconds > cfg.Timing.FrightenedSeconds {
			cfg.Timing.FrightenedWarningSeconds = cfg.Timing.FrightenedSeconds
		}
	}
}
