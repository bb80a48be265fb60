package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-chase/internal/config"
)

func TestWarnSkippedConfigs(t *testing.T) {
	var buf strings.Builder
	logger := log.New(&buf)

	WarnSkippedConfigs(logger, nil)
	if buf.Len() != 0 {
		t.Fatalf("no skipped configs should log nothing, got %q", buf.String())
	}

	WarnSkippedConfigs(logger, []config.SkippedConfig{
		{Path: "/home/u/.arcade/configs/chase.yaml", Err: errors.New("invalid config: lives must be positive")},
	})
	out := buf.String()
	for _, want := range []string{"WARN", "/home/u/.arcade/configs/chase.yaml", "lives must be positive"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}
