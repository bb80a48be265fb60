package main

import (
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/maze-chase/internal/config"
	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/games/chase"
	"github.com/vovakirdan/maze-chase/internal/platform/tui"
	"github.com/vovakirdan/maze-chase/internal/storage"
)

// Game flags shared by play, menu and serve.
var (
	flagConfig     string
	flagDifficulty string
	flagMaze       string
)

// runtimeConfig builds the runtime config from the terminal size and
// global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	cfg.Player = os.Getenv("USER")
	return cfg
}

// applyGameFlags hands the game flags to the chase package and checks that
// a game can start with them. It returns the broken config files the search
// passed over.
func applyGameFlags() ([]config.SkippedConfig, error) {
	chase.SetConfigPath(flagConfig)
	chase.SetDifficultyPreset(flagDifficulty)
	chase.SetMaze(flagMaze)
	res, err := config.ResolveChase(flagConfig)
	if err != nil {
		return nil, err
	}
	return res.Skipped, chase.Preflight()
}

// openStore opens the score database. A failure is logged and the game
// runs without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// reportOutcome logs what a finished game left behind.
func reportOutcome(out tui.Outcome) {
	if out.SaveErr != nil {
		logger.Warn("could not save score", "score", out.State.Score, "error", out.SaveErr)
	}
	if out.Screenshot != "" {
		logger.Info("screenshot saved", "path", out.Screenshot)
	}
}
