package main

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roborun/internal/config"
)

func TestLoadConfigPresets(t *testing.T) {
	flagConfig = filepath.Join(t.TempDir(), "missing.yaml")
	defer func() { flagConfig = "" }()

	tests := []struct {
		difficulty string
		enabled    bool
		level      float64
	}{
		{"easy", true, 0.0},
		{"hard", true, 0.7},
		{"fixed", false, config.DefaultRoboRunConfig().Difficulty.InitialLevel},
		{"bogus", config.DefaultRoboRunConfig().Difficulty.Enabled, config.DefaultRoboRunConfig().Difficulty.InitialLevel},
	}

	logger := log.New(io.Discard)
	for _, tc := range tests {
		cfg := loadConfig(tc.difficulty, logger)
		if cfg.Difficulty.Enabled != tc.enabled || cfg.Difficulty.InitialLevel != tc.level {
			t.Errorf("loadConfig(%q).Difficulty = %+v, expected enabled=%v level=%v",
				tc.difficulty, cfg.Difficulty, tc.enabled, tc.level)
		}
	}
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	flagLogLevel = "loud"
	defer func() { flagLogLevel = "info" }()

	if _, _, err := newLogger(); err == nil {
		t.Error("newLogger() should reject an unknown level")
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	flagLogFile = filepath.Join(t.TempDir(), "roborun.log")
	defer func() { flagLogFile = "" }()

	logger, closeFn, err := newLogger()
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	defer closeFn()
	if logger.GetPrefix() != "roborun" {
		t.Errorf("prefix = %q, expected roborun", logger.GetPrefix())
	}
}
