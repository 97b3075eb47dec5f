// Package platform holds the pieces shared by the terminal and desktop
// frontends.
package platform

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roborun/internal/game"
	"github.com/vovakirdan/roborun/internal/storage"
)

// SeedHighScore loads the stored best score into the session.
// A nil store leaves the session untouched.
func SeedHighScore(session *game.Session, store *storage.Store, logger *log.Logger) {
	if store == nil {
		return
	}
	high, err := store.HighScore()
	if err != nil {
		logger.Warn("could not read high score", "error", err)
		return
	}
	session.SetHighScore(high)
}

// Record writes a finished round to the leaderboard. Rounds that scored
// nothing are skipped. Failures are logged and never stop play.
func Record(store *storage.Store, res game.Result, logger *log.Logger) bool {
	if store == nil || res.Score <= 0 {
		return false
	}
	_, err := store.SaveRun(storage.Run{
		RoundID:    res.RoundID,
		Score:      res.Score,
		Distance:   res.Distance,
		Coins:      res.Coins,
		Difficulty: res.Difficulty,
		Duration:   res.Duration,
	})
	if err != nil {
		logger.Warn("could not save score", "round", res.RoundID, "error", err)
		return false
	}
	logger.Debug("score saved", "round", res.RoundID, "score", res.Score)
	return true
}
