package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/roborun/internal/config"
	"github.com/vovakirdan/roborun/internal/core"
	"github.com/vovakirdan/roborun/internal/game"
	"github.com/vovakirdan/roborun/internal/storage"
)

// newLogger builds the process logger. The terminal frontend owns the
// screen, so logs are discarded unless a file is given.
func newLogger() (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closeFn, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		closeFn()
		return nil, func() {}, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "roborun",
		Level:           level,
	})
	return logger, closeFn, nil
}

// mustLogger is newLogger for command entry points.
func mustLogger() (*log.Logger, func()) {
	logger, closeFn, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger, closeFn
}

// loadConfig reads the tuning file and applies the difficulty preset.
// A broken file falls back to the defaults.
func loadConfig(difficulty string, logger *log.Logger) config.RoboRunConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Warn("using default config", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}

	if difficulty != "" {
		preset := config.ParsePreset(difficulty)
		if preset == "" {
			logger.Warn("unknown difficulty preset", "difficulty", difficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg
}

// newSession builds a session for one frontend run.
func newSession(difficulty string, logger *log.Logger) *game.Session {
	return game.NewSession(loadConfig(difficulty, logger), logger)
}

// openStore opens the leaderboard. Play continues without it on failure.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// terminalSize returns the terminal size, or 80x24 when stdout is not a tty.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// runtimeConfig combines a screen size with the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
