package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-chase/internal/games/chase"
	"github.com/vovakirdan/maze-chase/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a game and maze picker.
Scores are stored per-server under the SSH user name (all users share
the same leaderboard). --config and --difficulty apply to every session;
--maze sets where the maze picker starts.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  mazechase serve                           # Listen on :23234 with auto-generated key
  mazechase serve --ssh :2222               # Listen on port 2222
  mazechase serve --host-key ./my_host_key  # Use specific host key
  mazechase serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	addGameFlags(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	skipped, err := applyGameFlags()
	if err != nil {
		return fmt.Errorf("cannot start game: %w", err)
	}

	cfg := tui.SSHServerConfig{
		Address:        flagSSHAddr,
		HostKeyPath:    flagHostKey,
		DBPath:         flagDBPath,
		IdleTimeout:    time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:       flagFPS,
		Mazes:          tui.MazeChoices(chase.MazeLoader().All()),
		DefaultMaze:    chase.SelectedMaze(),
		SkippedConfigs: skipped,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting Maze Chase SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
