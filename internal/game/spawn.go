package game

import (
	"github.com/vovakirdan/roborun/internal/config"
	"github.com/vovakirdan/roborun/internal/core"
)

// Rand is the randomness the planner and entities need.
// *math/rand.Rand satisfies it; tests can inject scripted sources.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Body is anything that occupies space for placement and lane checks.
type Body interface {
	Hitbox() core.Rect
}

// Planner decides where new content may appear. It never mutates the
// entities it is given; every method is a pure function of its arguments
// and the random source.
type Planner struct {
	Width, Height float64 // Canvas size
	Margin        float64 // Clearance required around every body
	Lanes         int
	Coin          config.CoinConfig
}

// NewPlanner builds a planner from the game configuration.
func NewPlanner(cfg *config.RoboRunConfig) Planner {
	return Planner{
		Width:  cfg.Canvas.Width,
		Height: cfg.Canvas.Height,
		Margin: cfg.Spawn.SafeMargin,
		Lanes:  cfg.Spawn.Lanes,
		Coin:   cfg.Coin,
	}
}

// Blocked reports whether r touches any body's hitbox once both rects are
// grown by the margin, so the effective clearance is twice the margin.
func (p Planner) Blocked(r core.Rect, bodies []Body) bool {
	candidate := r.Expand(p.Margin)
	for _, b := range bodies {
		if core.Overlaps(candidate, b.Hitbox().Expand(p.Margin)) {
			return true
		}
	}
	return false
}

// FindSafePosition samples up to maxAttempts x positions just above the
// visible area and returns the first one that is not blocked.
func (p Planner) FindSafePosition(rng Rand, w, h float64, bodies []Body, maxAttempts int) (core.Vec, bool) {
	span := int(p.Width - w)
	for i := 0; i < maxAttempts; i++ {
		x := 0.0
		if span > 0 {
			x = float64(rng.Intn(span + 1))
		}
		pos := core.Vec{X: x, Y: -h}
		if !p.Blocked(core.NewRect(pos.X, pos.Y, w, h), bodies) {
			return pos, true
		}
	}
	return core.Vec{}, false
}

// LaneRect returns the full-height column of the canvas for lane i.
// Content still above the screen does not count against any lane.
func (p Planner) LaneRect(i int) core.Rect {
	laneW := p.Width / float64(p.Lanes)
	return core.NewRect(float64(i)*laneW, 0, laneW, p.Height)
}

// LaneIsClear reports whether at least one lane has no body in it.
func (p Planner) LaneIsClear(bodies []Body) bool {
	for lane := 0; lane < p.Lanes; lane++ {
		r := p.LaneRect(lane)
		blocked := false
		for _, b := range bodies {
			if core.Overlaps(r, b.Hitbox()) {
				blocked = true
				break
			}
		}
		if !blocked {
			return true
		}
	}
	return false
}

// SpawnCoinLine lays out a vertical line of coins above the screen around
// baseX. Each coin is accepted or dropped on its own, so partial lines are
// normal.
func (p Planner) SpawnCoinLine(rng Rand, baseX float64, bodies []Body) []*Coin {
	var coins []*Coin
	for i := 0; i < p.Coin.LineLength; i++ {
		jitter := 0
		if p.Coin.Jitter > 0 {
			jitter = rng.Intn(2*p.Coin.Jitter+1) - p.Coin.Jitter
		}
		c := NewCoin(baseX+float64(jitter), -float64(i)*p.Coin.LineSpacing, p.Coin)
		if !p.Blocked(c.Rect(), bodies) {
			coins = append(coins, c)
		}
	}
	return coins
}
