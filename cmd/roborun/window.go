package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagAssets string

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start RoboRun in a resizable desktop window (960x720 canvas).

Sprites are read from robo.gif and enemy.gif in the assets directory;
missing files are drawn as colored boxes.

Controls are the same as in the terminal, plus F to toggle fullscreen.

Examples:
  roborun window
  roborun window --assets ./assets --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagAssets, "assets", ".", "Directory holding robo.gif and enemy.gif")
}

func runWindow(cmd *cobra.Command, args []string) {
	logger, closeLog := mustLogger()
	defer closeLog()

	if err := playWindow(flagDifficulty, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
