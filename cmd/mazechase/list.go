package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-chase/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the game variants",
	Long:  `Shows every registered game variant and whether it reaches the scoreboard.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Scored", "Title")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "------", "-----")

	for _, g := range games {
		scored := "yes"
		if !g.Scored {
			scored = "no"
		}
		fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, g.ID, scored, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'mazechase play <id>' to play.")
}
