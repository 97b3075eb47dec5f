package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roborun/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start RoboRun in the terminal.

Controls:
  Arrows/WASD  - Move (held)
  Space        - Shoot (with the bullet power)
  R/Enter      - Start, R restarts after game over
  P/Esc        - Pause
  Q            - Back to the title screen, quit from the title
  Ctrl+S       - Save a text screenshot
  Ctrl+C       - Quit immediately

Difficulty options:
  easy   - Start at the base speed
  normal - Start 30% into the speed bonus
  hard   - Start 70% into the speed bonus
  fixed  - No speed growth over time

Examples:
  roborun play
  roborun play --difficulty hard
  roborun play --seed 42 --fps 30`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog := mustLogger()
	defer closeLog()

	width, height := terminalSize()
	cfg := runtimeConfig(width, height)

	store := openStore(logger)
	session := newSession(flagDifficulty, logger)

	runErr := tui.Run(session, store, cfg, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
