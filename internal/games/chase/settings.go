package chase

import (
	"fmt"
	"time"

	"github.com/vovakirdan/maze-chase/internal/config"
	"github.com/vovakirdan/maze-chase/internal/games/chase/engine"
	"github.com/vovakirdan/maze-chase/internal/games/chase/levels"
)

// Package-level selections made by the CLI or menu before a game starts.
var (
	configPath       string
	difficultyPreset string
	mazeRef          string
	mazeDir          = levels.DefaultDir()
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetMaze selects the maze by ID or file path. Empty means the default maze.
func SetMaze(ref string) {
	mazeRef = ref
}

// SelectedMaze returns the current maze selection.
func SelectedMaze() string {
	if mazeRef == "" {
		return levels.DefaultID
	}
	return mazeRef
}

// SetMazeDir changes the directory searched for custom mazes.
func SetMazeDir(dir string) {
	mazeDir = dir
}

// MazeLoader returns a loader over the custom maze directory.
func MazeLoader() *levels.Loader {
	return levels.NewLoader(mazeDir)
}

// LoadSettings resolves the current selections into a config and a maze.
func LoadSettings() (config.ChaseConfig, levels.Level, error) {
	return loadSettings(mazeRef)
}

func loadSettings(maze string) (config.ChaseConfig, levels.Level, error) {
	cfg, err := config.LoadChase(configPath)
	if err != nil {
		return cfg, levels.Level{}, err
	}
	preset, err := config.ParsePreset(difficultyPreset)
	if err != nil {
		return cfg, levels.Level{}, err
	}
	config.ApplyChasePreset(&cfg, preset)

	lvl, err := MazeLoader().Find(maze)
	if err != nil {
		return cfg, levels.Level{}, err
	}
	return cfg, lvl, nil
}

// Preflight reports whether the current selections can start a game.
func Preflight() error {
	_, lvl, err := LoadSettings()
	if err != nil {
		return err
	}
	if _, _, err := lvl.Build(); err != nil {
		return err
	}
	return nil
}

// EngineConfig converts file configuration into simulation settings.
func EngineConfig(c config.ChaseConfig) (engine.Config, error) {
	if err := c.Validate(); err != nil {
		return engine.Config{}, err
	}
	out := engine.Config{
		Frightened:      c.Timing.FrightenedSeconds,
		FrightenWarning: c.Timing.FrightenedWarningSeconds,
		MaxDelta:        time.Duration(c.Timing.MaxDeltaMS) * time.Millisecond,
		Speeds: engine.Speeds{
			Player:     c.Speed.Player,
			Ghost:      c.Speed.Ghost,
			Eaten:      c.Speed.EatenMultiplier,
			Frightened: c.Speed.FrightenedMultiplier,
			Tunnel:     c.Speed.TunnelMultiplier,
		},
		Scores: engine.ScoreTable{
			Pellet:      c.Scoring.Pellet,
			PowerPellet: c.Scoring.PowerPellet,
			Ghost:       append([]int(nil), c.Scoring.Ghost...),
		},
	}
	for _, p := range c.Timing.Phases {
		mode := engine.ModeScatter
		switch p.Mode {
		case "scatter":
		case "chase":
			mode = engine.ModeChase
		default:
			return engine.Config{}, fmt.Errorf("unknown phase mode %q", p.Mode)
		}
		out.Phases = append(out.Phases, engine.Phase{Mode: mode, Seconds: p.Seconds})
	}
	copy(out.Release[:], c.Timing.ReleaseSeconds)
	return out, nil
}
