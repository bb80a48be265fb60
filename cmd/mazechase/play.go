package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-chase/internal/games/chase"
	"github.com/vovakirdan/maze-chase/internal/platform/tui"
	"github.com/vovakirdan/maze-chase/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to "chase"; "chase_practice" gives
unlimited lives and keeps the run off the scoreboard.

Without --maze a maze picker is shown first.

Controls:
  Arrows/WASD/HJKL  - Steer
  P/Space           - Pause
  R                 - Restart (after game over or while paused)
  Esc/B             - Back (after game over or while paused)
  F2/Ctrl+S         - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - 5 lives, 8 second frightened window
  normal - settings as configured
  hard   - 2 lives, 3 second frightened window

Examples:
  mazechase play
  mazechase play chase_practice
  mazechase play --maze compact --difficulty hard
  mazechase play --maze ./my-maze.yaml
  mazechase play --config ./my-chase.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().StringVar(&flagMaze, "maze", "", "Maze ID or path to a maze file")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := string(chase.VariantArcade)
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'mazechase list' to see available games)", gameID)
	}

	cfg := runtimeConfig()

	if flagMaze == "" {
		id, _, err := tui.RunMazePicker(chase.MazeLoader().All(), chase.SelectedMaze(), cfg)
		if err != nil {
			return err
		}
		// User pressed back or quit
		if id == "" {
			return nil
		}
		flagMaze = id
	}

	skipped, err := applyGameFlags()
	if err != nil {
		return fmt.Errorf("cannot start game: %w", err)
	}
	tui.WarnSkippedConfigs(logger, skipped)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	out, err := tui.Run(game, store, cfg)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	reportOutcome(out)
	return nil
}
