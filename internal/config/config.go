// Package config provides YAML-based game configuration loading and
// difficulty presets for the maze chase.
package config

import (
	"errors"
	"fmt"
)

// ChaseConfig contains all configuration for the maze chase.
type ChaseConfig struct {
	Timing   ChaseTiming   `yaml:"timing"`
	Speed    ChaseSpeed    `yaml:"speed"`
	Scoring  ChaseScoring  `yaml:"scoring"`
	Gameplay ChaseGameplay `yaml:"gameplay"`
}

// ChaseTiming defines the mode schedule and house release.
type ChaseTiming struct {
	Phases                   []PhaseConfig `yaml:"phases"`
	FrightenedSeconds        float64       `yaml:"frightened_seconds"`
	FrightenedWarningSeconds float64       `yaml:"frightened_warning_seconds"`
	ReleaseSeconds           []float64     `yaml:"release_seconds"` // one per role, in role order
	MaxDeltaMS               int           `yaml:"max_delta_ms"`
}

// PhaseConfig is one entry of the scatter/chase table.
type PhaseConfig struct {
	Mode    string  `yaml:"mode"`    // "scatter" or "chase"
	Seconds float64 `yaml:"seconds"` // 0 = forever
}

// ChaseSpeed defines actor speeds in cells per second.
type ChaseSpeed struct {
	Player               float64 `yaml:"player"`
	Ghost                float64 `yaml:"ghost"`
	EatenMultiplier      float64 `yaml:"eaten_multiplier"`
	FrightenedMultiplier float64 `yaml:"frightened_multiplier"`
	TunnelMultiplier     float64 `yaml:"tunnel_multiplier"`
}

// ChaseScoring defines point values.
type ChaseScoring struct {
	Pellet      int   `yaml:"pellet"`
	PowerPellet int   `yaml:"power_pellet"`
	Ghost       []int `yaml:"ghost"`         // escalating reward within one frightened window
	ExtraLifeAt int   `yaml:"extra_life_at"` // 0 disables
}

// ChaseGameplay defines lives and pacing between rounds.
type ChaseGameplay struct {
	Lives        int `yaml:"lives"`
	ReadyMS      int `yaml:"ready_ms"`
	DeathPauseMS int `yaml:"death_pause_ms"`
	ClearPauseMS int `yaml:"clear_pause_ms"`
}

// Validate reports the first setting that cannot drive a game.
func (c ChaseConfig) Validate() error {
	if len(c.Timing.Phases) == 0 {
		return errors.New("config: timing.phases is empty")
	}
	for i, p := range c.Timing.Phases {
		if p.Mode != "scatter" && p.Mode != "chase" {
			return fmt.Errorf("config: timing.phases[%d]: unknown mode %q", i, p.Mode)
		}
		if p.Seconds < 0 {
			return fmt.Errorf("config: timing.phases[%d]: negative duration", i)
		}
	}
	if n := len(c.Timing.ReleaseSeconds); n != 4 {
		return fmt.Errorf("config: timing.release_seconds needs 4 entries, got %d", n)
	}
	if c.Timing.FrightenedSeconds < 0 || c.Timing.FrightenedWarningSeconds < 0 {
		return errors.New("config: frightened timings must not be negative")
	}
	if c.Timing.MaxDeltaMS <= 0 {
		return errors.New("config: timing.max_delta_ms must be positive")
	}
	s := c.Speed
	if s.Player <= 0 || s.Ghost <= 0 {
		return errors.New("config: speeds must be positive")
	}
	if s.EatenMultiplier <= 0 || s.FrightenedMultiplier <= 0 || s.TunnelMultiplier <= 0 {
		return errors.New("config: speed multipliers must be positive")
	}
	if len(c.Scoring.Ghost) == 0 {
		return errors.New("config: scoring.ghost is empty")
	}
	if c.Gameplay.Lives <= 0 {
		return errors.New("config: gameplay.lives must be positive")
	}
	return nil
}
