package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/maze-chase/internal/config"
	"github.com/vovakirdan/maze-chase/internal/platform/tui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Write or print the game configuration",
	Long: `Inspect the configuration the game runs with.

The game reads, in order: the --config path, ~/.arcade/configs/chase.yaml,
./configs/chase.yaml and finally the built-in defaults. A file only needs
the keys it changes.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default config for editing",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		path := config.UserConfigPath()
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			return fmt.Errorf("no home directory; pass a path")
		}
		if err := config.WriteDefault(path); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(_ *cobra.Command, _ []string) error {
		res, err := config.ResolveChase(flagConfig)
		if err != nil {
			return err
		}
		tui.WarnSkippedConfigs(logger, res.Skipped)
		logger.Info("effective config", "source", res.Source)
		cfg := res.Config
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplyChasePreset(&cfg, preset)

		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(cfg)
	},
}

func init() {
	configShowCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configShowCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	configCmd.AddCommand(configInitCmd, configShowCmd)
}
