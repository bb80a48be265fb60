package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-chase/internal/games/chase"
	"github.com/vovakirdan/maze-chase/internal/games/chase/engine"
	"github.com/vovakirdan/maze-chase/internal/games/chase/levels"
)

var mazesCmd = &cobra.Command{
	Use:   "mazes",
	Short: "List, show and validate mazes",
	Long: `Work with maze definitions. Built-in mazes are always available;
custom mazes are YAML files in the maze directory (--maze-dir, default
~/.arcade/mazes).

Maze file format:
  id: my-maze
  name: My Maze
  rows:
    - "#######"
    - "#P...o#"
    ...
  corners:          # optional scatter targets
    chaser: {x: 25, y: -3}

Cells: # wall, . pellet, o power pellet, - house door, H house floor,
P player, A-D pursuers (a-d when they start inside the house),
T tunnel, space empty.`,
}

var mazesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available mazes",
	Run:   runMazesList,
}

var mazesShowCmd = &cobra.Command{
	Use:   "show <maze>",
	Short: "Print a maze and its layout",
	Args:  cobra.ExactArgs(1),
	RunE:  runMazesShow,
}

var mazesValidateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check that maze files parse and build",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMazesValidate,
}

func init() {
	mazesCmd.AddCommand(mazesListCmd, mazesShowCmd, mazesValidateCmd)
}

func runMazesList(_ *cobra.Command, _ []string) {
	all := chase.MazeLoader().All()

	maxIDLen := 2
	for _, lvl := range all {
		maxIDLen = max(maxIDLen, len(lvl.ID))
	}

	fmt.Printf("  %-*s  %-7s  %-20s  %s\n", maxIDLen, "ID", "Size", "Name", "Source")
	fmt.Printf("  %-*s  %-7s  %-20s  %s\n", maxIDLen, "--", "----", "----", "------")
	for _, lvl := range all {
		w, h := lvl.Size()
		source := "built-in"
		if lvl.FilePath != "" {
			source = lvl.FilePath
		}
		fmt.Printf("  %-*s  %-7s  %-20s  %s\n", maxIDLen, lvl.ID, fmt.Sprintf("%dx%d", w, h), lvl.Name, source)
	}

	fmt.Println()
	fmt.Println("Run 'mazechase play --maze <id>' to play one.")
}

func runMazesShow(_ *cobra.Command, args []string) error {
	lvl, err := chase.MazeLoader().Find(args[0])
	if err != nil {
		return err
	}
	m, layout, err := lvl.Build()
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", lvl.Name, lvl.ID)
	if lvl.FilePath != "" {
		fmt.Printf("File:    %s\n", lvl.FilePath)
	}
	fmt.Printf("Size:    %dx%d\n", m.Width(), m.Height())
	fmt.Printf("Pellets: %d\n", m.CountPellets())
	fmt.Printf("Player:  %s\n", layout.Player)
	for _, g := range layout.Ghosts {
		fmt.Printf("%-8s %s, scatter corner %s\n", g.Role.String()+":", g.Pos, layout.Corners[g.Role])
	}
	if !layout.HasHouse {
		fmt.Println("House:   none")
	}
	for k, v := range lvl.Metadata {
		fmt.Printf("%s: %s\n", k, v)
	}
	fmt.Println()
	for _, row := range lvl.Rows {
		fmt.Println(row)
	}
	return nil
}

func runMazesValidate(_ *cobra.Command, args []string) error {
	loader := chase.MazeLoader()
	var failed int
	for _, path := range args {
		if err := validateMaze(loader, path); err != nil {
			fmt.Printf("FAIL  %s: %v\n", path, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d maze files invalid", failed, len(args))
	}
	return nil
}

func validateMaze(loader *levels.Loader, path string) error {
	lvl, err := loader.LoadFile(path)
	if err != nil {
		return err
	}
	m, layout, err := lvl.Build()
	if err != nil {
		return err
	}
	if _, err := engine.New(m, layout, engine.DefaultConfig(), 1); err != nil {
		return err
	}
	if m.CountPellets() == 0 {
		return errors.New("maze has no pellets")
	}
	w, h := lvl.Size()
	fmt.Printf("ok    %s (%s, %dx%d, %d pellets)\n", path, lvl.ID, w, h, m.CountPellets())
	return nil
}
