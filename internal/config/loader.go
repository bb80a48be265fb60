package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const chaseFile = "chase.yaml"

// SkippedConfig is a config file that exists but could not be used.
type SkippedConfig struct {
	Path string
	Err  error
}

// Resolution describes where the effective config came from.
type Resolution struct {
	Config ChaseConfig
	// Source is the file that was used, or "embedded".
	Source string
	// Skipped lists broken files passed over on the way to Source.
	Skipped []SkippedConfig
}

// LoadChase loads maze chase configuration.
// Search order: customPath -> ~/.arcade/configs/chase.yaml -> ./configs/chase.yaml -> embedded default
//
// Files are decoded over the defaults, so a file may set only the keys it
// changes. A custom path that fails to load or validate is an error; the
// other locations are passed over when broken. Use ResolveChase to find
// out which ones were.
func LoadChase(customPath string) (ChaseConfig, error) {
	res, err := ResolveChase(customPath)
	return res.Config, err
}

// ResolveChase runs the LoadChase search and reports the file it used and
// the broken files it skipped. Missing files are not reported.
func ResolveChase(customPath string) (Resolution, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := decodeChase(customPath)
		if err != nil {
			return Resolution{Config: DefaultChaseConfig()}, err
		}
		return Resolution{Config: cfg, Source: customPath}, nil
	}

	var res Resolution
	candidates := []string{filepath.Join("configs", chaseFile)}
	if userCfgPath := userConfigPath(chaseFile); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		cfg, err := decodeChase(path)
		if err == nil {
			res.Config, res.Source = cfg, path
			return res, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			res.Skipped = append(res.Skipped, SkippedConfig{Path: path, Err: err})
		}
	}

	// Use embedded default YAML
	res.Source = "embedded"
	res.Config = DefaultChaseConfig()
	if err := yaml.Unmarshal(defaultChaseYAML, &res.Config); err != nil {
		res.Config = DefaultChaseConfig() // Fallback to hardcoded if embed fails
	}
	return res, nil
}

func decodeChase(path string) (ChaseConfig, error) {
	cfg := DefaultChaseConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	// Lists replace rather than merge.
	cfg.Timing.Phases = nil
	cfg.Timing.ReleaseSeconds = nil
	cfg.Scoring.Ghost = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultChaseConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	fillLists(&cfg)
	if err := cfg.Validate(); err != nil {
		return DefaultChaseConfig(), fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// fillLists restores default lists the file left out.
func fillLists(cfg *ChaseConfig) {
	def := DefaultChaseConfig()
	if cfg.Timing.Phases == nil {
		cfg.Timing.Phases = def.Timing.Phases
	}
	if cfg.Timing.ReleaseSeconds == nil {
		cfg.Timing.ReleaseSeconds = def.Timing.ReleaseSeconds
	}
	if cfg.Scoring.Ghost == nil {
		cfg.Scoring.Ghost = def.Scoring.Ghost
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// WriteDefault writes the embedded default config to path, creating parent
// directories. An existing file is left alone.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, defaultChaseYAML, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// UserConfigPath returns where LoadChase looks for the user's config.
func UserConfigPath() string {
	return userConfigPath(chaseFile)
}
