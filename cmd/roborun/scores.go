package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roborun/internal/platform/tui"
	"github.com/vovakirdan/roborun/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the best runs. Opens an interactive table unless --plain is set
or stdout is not a terminal.

Examples:
  roborun scores
  roborun scores --plain --limit 5
  roborun scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the leaderboard as text")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of entries for --plain")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every stored run")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := clearScores(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if !flagPlain && isTerminal() {
		width, height := terminalSize()
		if _, err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	if err := printScores(store, flagLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
	}
}

// clearScores wipes the leaderboard and reports how many runs were dropped.
func clearScores(store *storage.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	if err := store.ClearScores(); err != nil {
		return err
	}
	fmt.Printf("Cleared %d runs.\n", stats.Runs)
	return nil
}

// printScores writes the leaderboard as plain text.
func printScores(store *storage.Store, limit int) error {
	scores, err := store.TopScores(limit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - RoboRun")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'roborun play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-8s  %-5s  %-5s  %-8s  %s\n", "Rank", "Score", "Distance", "Coins", "Level", "Time", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-5s  %-5s  %-8s  %s\n", "----", "-----", "--------", "-----", "-----", "----", "----")

	for i, e := range scores {
		fmt.Printf("  %-4d  %-10d  %-8d  %-5d  %-5d  %-8s  %s\n",
			i+1, e.Score, int(e.Distance), e.Coins, e.Difficulty,
			e.Duration.Round(time.Second), e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d   Runs: %d   Coins collected: %d\n", stats.HighScore, stats.Runs, stats.TotalCoins)
	}
	return nil
}
