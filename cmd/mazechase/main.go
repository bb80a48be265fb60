// mazechase is a terminal maze chase: clear the pellets while four
// pursuers with their own targeting rules hunt you down.
//
// Usage:
//
//	mazechase list              - List available game variants
//	mazechase play [game]       - Play a game (default: chase)
//	mazechase menu              - Start menu to pick games and mazes interactively
//	mazechase serve             - Start SSH server for remote play
//	mazechase scores [game]     - Show high scores
//	mazechase mazes ...         - List, show and validate mazes
//	mazechase config ...        - Write or print the game configuration
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.arcade/scores.db)
//	--maze-dir <dir>  - Directory of custom mazes (default: ~/.arcade/mazes)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-chase/internal/games/chase"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagMazeDir string

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "mazechase"})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazechase",
	Short: "Maze Chase - a pellet-eating chase in your terminal",
	Long: `Maze Chase is a grid maze game for the terminal. Eat every pellet
while four pursuers chase you; power pellets turn the tables for a few
seconds.

Available commands:
  list     - Show the game variants
  play     - Play directly
  menu     - Interactive game and maze picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  mazes    - List, show and validate mazes
  config   - Write or print the game configuration

Examples:
  mazechase play
  mazechase play --maze compact --difficulty easy
  mazechase menu
  mazechase serve --ssh :2222
  mazechase scores chase --maze classic`,
	SilenceUsage:      true,
	PersistentPreRunE: applyGlobalFlags,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagMazeDir, "maze-dir", "", "Directory of custom maze files (default ~/.arcade/mazes)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(mazesCmd)
	rootCmd.AddCommand(configCmd)
}

func applyGlobalFlags(_ *cobra.Command, _ []string) error {
	if flagMazeDir != "" {
		chase.SetMazeDir(flagMazeDir)
	}
	return nil
}
