package platform

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/roborun/internal/config"
	"github.com/vovakirdan/roborun/internal/game"
	"github.com/vovakirdan/roborun/internal/storage"
)

func TestRecordAndSeed(t *testing.T) {
	logger := log.New(io.Discard)
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if Record(store, game.Result{RoundID: uuid.New(), Score: 0}, logger) {
		t.Error("zero scores should not be recorded")
	}
	if !Record(store, game.Result{RoundID: uuid.New(), Score: 420, Distance: 140, Coins: 3}, logger) {
		t.Fatal("Record() should save a positive score")
	}

	session := game.NewSession(config.DefaultRoboRunConfig(), logger)
	SeedHighScore(session, store, logger)
	if session.HighScore() != 420 {
		t.Errorf("HighScore() = %d, expected 420", session.HighScore())
	}
}

func TestRecordWithoutStore(t *testing.T) {
	logger := log.New(io.Discard)
	if Record(nil, game.Result{Score: 10}, logger) {
		t.Error("Record() without a store should report nothing saved")
	}

	session := game.NewSession(config.DefaultRoboRunConfig(), logger)
	SeedHighScore(session, nil, logger)
	if session.HighScore() != 0 {
		t.Errorf("HighScore() = %d, expected 0", session.HighScore())
	}
}
