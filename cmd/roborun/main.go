// roborun is a scrolling robot runner for the terminal and the desktop.
//
// Usage:
//
//	roborun                 - Launcher menu
//	roborun play            - Play in the terminal
//	roborun window          - Play in a desktop window
//	roborun scores          - Show the leaderboard
//
// Global flags:
//
//	--fps <rate>            - Set tick rate (default: 60)
//	--seed <value>          - Set RNG seed for reproducible rounds
//	--db <path>             - Set database path (default: ~/.roborun/scores.db)
//	--config <path>         - Custom tuning YAML
//	--difficulty <preset>   - easy, normal, hard or fixed
//	--log-file <path>       - Write logs to a file
//	--log-level <level>     - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roborun/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roborun",
	Short: "RoboRun - dodge drones and lasers, grab coins",
	Long: `RoboRun is an endless scrolling runner. Steer the robot around drones
and laser beams, collect coins to multiply your distance, and pick up
power-ups for invincibility, a coin magnet or a blaster.

Without a subcommand the launcher menu opens.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  scores   - View the leaderboard

Examples:
  roborun
  roborun play --difficulty hard
  roborun window --assets ./assets
  roborun scores --plain`,
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
}
