package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func run(score int) Run {
	return Run{
		RoundID:    uuid.New(),
		Score:      score,
		Distance:   float64(score) / 2,
		Coins:      2,
		Difficulty: 1,
		Duration:   1500 * time.Millisecond,
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saved := run(100)
	for _, r := range []Run{saved, run(50), run(200)} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	for i, expected := range []int{200, 100, 50} {
		if scores[i].Score != expected {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, expected)
		}
	}

	e := scores[1]
	if e.RoundID != saved.RoundID {
		t.Errorf("RoundID = %v, expected %v", e.RoundID, saved.RoundID)
	}
	if e.Distance != 50 || e.Coins != 2 || e.Difficulty != 1 {
		t.Errorf("entry = %+v, expected distance 50, 2 coins, level 1", e)
	}
	if e.Duration != 1500*time.Millisecond {
		t.Errorf("Duration = %v, expected 1.5s", e.Duration)
	}
}

func TestStoreSaveRunTwice(t *testing.T) {
	store := openTestStore(t)
	r := run(10)

	if _, err := store.SaveRun(r); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(r); err == nil {
		t.Error("saving the same round twice should fail")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 15; i++ {
		if _, err := store.SaveRun(run(i * 10)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	scores, err := store.TopScores(5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 150 || scores[4].Score != 110 {
		t.Errorf("top five = %d..%d, expected 150..110", scores[0].Score, scores[4].Score)
	}

	all, err := store.TopScores(0)
	if err != nil {
		t.Fatalf("TopScores(0) failed: %v", err)
	}
	if len(all) != 10 {
		t.Errorf("default limit returned %d rows, expected 10", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty store, got %d", high)
	}

	for _, s := range []int{100, 300, 200} {
		store.SaveRun(run(s))
	}

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("HighScore() = %d, expected 300", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.HighScore != 0 {
		t.Errorf("empty Stats() = %+v", empty)
	}

	for _, s := range []int{100, 300} {
		store.SaveRun(run(s))
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("Stats() = %+v, expected 2 runs, high 300, avg 200", stats)
	}
	if stats.BestDistance != 150 || stats.TotalCoins != 4 {
		t.Errorf("Stats() = %+v, expected best distance 150 and 4 coins", stats)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveRun(run(100))
	store.SaveRun(run(200))

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores(10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
