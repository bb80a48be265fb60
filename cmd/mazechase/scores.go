package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-chase/internal/games/chase"
	"github.com/vovakirdan/maze-chase/internal/registry"
	"github.com/vovakirdan/maze-chase/internal/storage"
)

var (
	flagScoresMaze  string
	flagScoresLimit int
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top high scores for a game (default: chase),
optionally limited to one maze.

Examples:
  mazechase scores
  mazechase scores chase --maze compact
  mazechase scores --limit 25
  mazechase scores --all
  mazechase scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresMaze, "maze", "", "Only show scores from this maze")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded score")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the game")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := string(chase.VariantArcade)
	if len(args) == 1 {
		gameID = args[0]
	}

	info, ok := registry.Info(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q (run 'mazechase list' to see available games)", gameID)
	}
	if !info.Scored {
		return fmt.Errorf("%s does not record scores", info.Title)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", info.Title)
		return nil
	}

	var scores []storage.ScoreEntry
	switch {
	case flagScoresAll:
		scores, err = store.AllScores(gameID)
	case flagScoresMaze != "":
		scores, err = store.TopScoresForMaze(gameID, flagScoresMaze, flagScoresLimit)
	default:
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	title := info.Title
	if flagScoresMaze != "" {
		title += " / " + flagScoresMaze
	}
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'mazechase play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %-12s  %-12s  %s\n", "Rank", "Score", "Level", "Maze", "Player", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-12s  %-12s  %s\n", "----", "-----", "-----", "----", "------", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-10d  %-5d  %-12s  %-12s  %s\n",
			i+1, entry.Score, entry.Level, entry.Maze, player, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Games: %d  Average: %.0f  Best level: %d\n", stats.GamesCount, stats.AvgScore, stats.BestLevel)
	}
	return nil
}
