package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/roborun/internal/core"
	"github.com/vovakirdan/roborun/internal/platform/tui"
	"github.com/vovakirdan/roborun/internal/platform/window"
	"github.com/vovakirdan/roborun/internal/storage"
)

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// runMenu loops between the launcher and the chosen screen until quit.
func runMenu(cmd *cobra.Command, args []string) {
	logger, closeLog := mustLogger()
	defer closeLog()

	if !isTerminal() {
		fmt.Fprintln(os.Stderr, "Error: the launcher needs a terminal; try 'roborun window' or 'roborun scores --plain'")
		os.Exit(1)
	}

	difficulty := flagDifficulty
	for {
		width, height := terminalSize()
		cfg := runtimeConfig(width, height)

		result, err := tui.RunMenu(cfg, difficulty, storedHighScore(logger))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		difficulty = result.Difficulty

		switch result.Choice {
		case tui.ChoicePlay:
			if err := playTerminal(result.Config, difficulty, logger); err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
				os.Exit(1)
			}

		case tui.ChoiceWindow:
			if err := playWindow(difficulty, logger); err != nil {
				// No display is not fatal; back to the launcher.
				logger.Error("window frontend failed", "error", err)
			}

		case tui.ChoiceScores:
			goBack, err := showScores(result.Config, logger)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			if !goBack {
				return
			}

		default:
			return
		}
	}
}

// storedHighScore reads the best score for the menu header.
func storedHighScore(logger *log.Logger) int {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Debug("no leaderboard for menu", "error", err)
		return 0
	}
	defer store.Close()

	high, err := store.HighScore()
	if err != nil {
		logger.Warn("could not read high score", "error", err)
		return 0
	}
	return high
}

func playTerminal(cfg core.RuntimeConfig, difficulty string, logger *log.Logger) error {
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	return tui.Run(newSession(difficulty, logger), store, cfg, logger)
}

func playWindow(difficulty string, logger *log.Logger) error {
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	session := newSession(difficulty, logger)
	cfg := runtimeConfig(int(session.Config().Canvas.Width), int(session.Config().Canvas.Height))
	return window.Run(session, store, cfg, flagAssets, logger)
}

func showScores(cfg core.RuntimeConfig, logger *log.Logger) (bool, error) {
	store := openStore(logger)
	if store == nil {
		return true, nil
	}
	defer store.Close()
	return tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
}
