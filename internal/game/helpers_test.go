package game

import (
	"time"

	"github.com/vovakirdan/roborun/internal/config"
	"github.com/vovakirdan/roborun/internal/core"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// scriptedRand replays fixed values, cycling when exhausted.
type scriptedRand struct {
	floats []float64
	ints   []int
	fi, ii int
	calls  int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *scriptedRand) Intn(n int) int {
	r.calls++
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	return v % n
}

// box is a bare body for planner tests.
type box core.Rect

func (b box) Hitbox() core.Rect { return core.Rect(b) }

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

const frame = time.Second / 60

func testConfig() *config.RoboRunConfig {
	cfg := config.DefaultRoboRunConfig()
	return &cfg
}

// quietRound returns a round whose random source never triggers optional
// spawns, so tests control every entity.
func quietRound() *Round {
	return NewRound(testConfig(), &scriptedRand{floats: []float64{0.99}}, t0, nil)
}
