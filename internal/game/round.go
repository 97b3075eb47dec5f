package game

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/roborun/internal/config"
)

// Round is the mutable world of one playthrough. It owns every entity;
// a new round starts from scratch and nothing carries over.
type Round struct {
	ID uuid.UUID

	Player     *Player
	Bullets    []*Bullet
	Obstacles  []*Obstacle
	Lasers     []*Laser
	Coins      []*Coin
	PowerUps   []*PowerUp
	Explosions []*Explosion

	ScrollSpeed     float64
	SpeedMultiplier float64
	BgScroll        float64 // Background offset, visual only
	Difficulty      int     // Checkpoint level, starts at 1
	StartedAt       time.Time
	Tick            uint64

	Announcement      string
	AnnouncementTimer int
	Shake             int // Screen shake frames after the fatal hit

	Over  bool
	Score int

	spawnTimer     int
	laserTimer     int
	coinTimer      int
	lastCheckpoint int

	cfg        *config.RoboRunConfig
	planner    Planner
	difficulty *config.DifficultyManager
	rng        Rand
	logger     *log.Logger
}

// NewRound creates a fresh world whose clock starts at now.
func NewRound(cfg *config.RoboRunConfig, rng Rand, now time.Time, logger *log.Logger) *Round {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Round{
		ID:              uuid.New(),
		Player:          NewPlayer(cfg),
		ScrollSpeed:     cfg.Physics.BaseSpeed,
		SpeedMultiplier: 1.0,
		Difficulty:      1,
		StartedAt:       now,
		cfg:             cfg,
		planner:         NewPlanner(cfg),
		difficulty:      config.NewDifficultyManager(cfg.Difficulty, cfg.Physics.SpeedGrowth),
		rng:             rng,
		logger:          logger,
	}
}

// Planner returns the placement rules used by this round.
func (r *Round) Planner() Planner {
	return r.planner
}

// FinalScore is floor(distance × max(1, coins)).
func (r *Round) FinalScore() int {
	return int(math.Floor(r.Player.Distance * float64(max(1, r.Player.Coins))))
}

// bodies gathers every placed entity that new content must keep clear of.
func (r *Round) bodies() []Body {
	out := make([]Body, 0, len(r.Obstacles)+len(r.Lasers)+len(r.PowerUps)+len(r.Coins))
	for _, o := range r.Obstacles {
		out = append(out, o)
	}
	for _, l := range r.Lasers {
		out = append(out, l)
	}
	for _, p := range r.PowerUps {
		out = append(out, p)
	}
	for _, c := range r.Coins {
		out = append(out, c)
	}
	return out
}

// hazards gathers the entities that can block a lane.
func (r *Round) hazards(extra ...Body) []Body {
	out := make([]Body, 0, len(r.Obstacles)+len(r.Lasers)+len(extra))
	for _, o := range r.Obstacles {
		out = append(out, o)
	}
	for _, l := range r.Lasers {
		out = append(out, l)
	}
	return append(out, extra...)
}

func (r *Round) announce(text string) {
	r.Announcement = text
	r.AnnouncementTimer = r.cfg.Progress.AnnouncementFrames
}

// shiftClock moves every wall-clock reference forward by d so a pause
// neither speeds the round up nor eats into power-up or cooldown time.
func (r *Round) shiftClock(d time.Duration) {
	if d <= 0 {
		return
	}
	r.StartedAt = r.StartedAt.Add(d)
	if r.Player.Power.Active() {
		r.Player.Power.Start = r.Player.Power.Start.Add(d)
	}
	if !r.Player.lastShot.IsZero() {
		r.Player.lastShot = r.Player.lastShot.Add(d)
	}
}
