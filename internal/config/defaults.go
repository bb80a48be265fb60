package config

import (
	_ "embed"
)

//go:embed defaults/chase.yaml
var defaultChaseYAML []byte

// DefaultChaseConfig returns the default maze chase configuration.
func DefaultChaseConfig() ChaseConfig {
	return ChaseConfig{
		Timing: ChaseTiming{
			Phases: []PhaseConfig{
				{Mode: "scatter", Seconds: 7},
				{Mode: "chase", Seconds: 20},
				{Mode: "scatter", Seconds: 7},
				{Mode: "chase", Seconds: 20},
				{Mode: "scatter", Seconds: 7},
				{Mode: "chase", Seconds: 20},
				{Mode: "scatter", Seconds: 7},
				{Mode: "chase", Seconds: 0},
			},
			FrightenedSeconds:        6,
			FrightenedWarningSeconds: 2,
			ReleaseSeconds:           []float64{0, 2, 5, 8},
			MaxDeltaMS:               50,
		},
		Speed: ChaseSpeed{
			Player:               8,
			Ghost:                7.5,
			EatenMultiplier:      2,
			FrightenedMultiplier: 0.5,
			TunnelMultiplier:     0.5,
		},
		Scoring: ChaseScoring{
			Pellet:      10,
			PowerPellet: 50,
			Ghost:       []int{200, 400, 800, 1600},
			ExtraLifeAt: 10000,
		},
		Gameplay: ChaseGameplay{
			Lives:        3,
			ReadyMS:      1500,
			DeathPauseMS: 1500,
			ClearPauseMS: 2000,
		},
	}
}
