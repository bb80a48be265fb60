package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-chase/internal/games/chase"
	"github.com/vovakirdan/maze-chase/internal/platform/tui"
	"github.com/vovakirdan/maze-chase/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game and maze picker menu",
	Long: `Start in interactive menu mode.

Pick a game, then a maze. After a game ends, press Esc to return to the
menu and play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scoreboard
  Esc/B        - Back
  Q            - Quit

Examples:
  mazechase menu
  mazechase menu --fps 30
  mazechase menu --difficulty easy --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	skipped, err := applyGameFlags()
	if err != nil {
		return fmt.Errorf("cannot start game: %w", err)
	}
	tui.WarnSkippedConfigs(logger, skipped)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	current := chase.SelectedMaze()

	// Menu loop
	for {
		mazes := tui.MazeChoices(chase.MazeLoader().All())
		menuResult, err := tui.RunMenu(store, cfg, mazes, current)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", menuResult.GameID, "error", err)
			continue
		}
		if menuResult.Maze != "" {
			current = menuResult.Maze
			if ms, ok := game.(registry.MazeSelector); ok {
				ms.SelectMaze(current)
			}
		}

		// Fresh seed per game unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		out, err := tui.Run(game, store, cfg)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		reportOutcome(out)
		if !out.Back {
			return nil // User quit from the game
		}
	}
}
