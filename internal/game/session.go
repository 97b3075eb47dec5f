package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/roborun/internal/config"
	"github.com/vovakirdan/roborun/internal/core"
)

// Phase is the session's finite state.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Result summarizes a finished round.
type Result struct {
	RoundID    uuid.UUID
	Score      int
	Distance   float64
	Coins      int
	Difficulty int
	Duration   time.Duration
}

// StepResult is returned by every Session.Step call.
type StepResult struct {
	Phase Phase
	// Finished is set only on the frame a round ends.
	Finished *Result
}

// Session drives the start/playing/paused/gameover state machine and owns
// the current round and the high score.
type Session struct {
	cfg     config.RoboRunConfig
	runtime core.RuntimeConfig
	phase   Phase

	round    *Round // Live only while playing or paused
	finished *Round // Last ended round, kept for the game-over screen

	highScore  int
	lastResult *Result
	pausedAt   time.Time

	rng    *rand.Rand
	now    func() time.Time
	logger *log.Logger
}

// NewSession creates a session on the title screen.
func NewSession(cfg config.RoboRunConfig, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Session{
		cfg:    cfg,
		now:    time.Now,
		logger: logger,
	}
	s.Reset(core.DefaultConfig())
	return s
}

// Reset returns to the title screen and reseeds the random source.
// The high score survives.
func (s *Session) Reset(runtime core.RuntimeConfig) {
	s.runtime = runtime
	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.rng = rand.New(rand.NewSource(seed))
	s.phase = PhaseStart
	s.round = nil
	s.finished = nil
	s.lastResult = nil
}

// SetClock replaces the wall clock used for power-up and cooldown timing.
func (s *Session) SetClock(now func() time.Time) {
	s.now = now
}

// Phase returns the current state.
func (s *Session) Phase() Phase { return s.phase }

// Round returns the live round, or the frozen last round on the game-over
// screen. It is nil on the title screen.
func (s *Session) Round() *Round {
	if s.round != nil {
		return s.round
	}
	if s.phase == PhaseGameOver {
		return s.finished
	}
	return nil
}

// HighScore returns the best score seen by this session.
func (s *Session) HighScore() int { return s.highScore }

// SetHighScore seeds the high score, typically from the leaderboard.
// It never lowers the current value.
func (s *Session) SetHighScore(score int) {
	s.highScore = max(s.highScore, score)
}

// LastResult returns the most recently finished round, if any.
func (s *Session) LastResult() *Result { return s.lastResult }

// Config returns the tuning the session plays with.
func (s *Session) Config() config.RoboRunConfig { return s.cfg }

// Step consumes one frame of input. Only the playing phase advances the
// simulation; a frame that changes phase does not simulate.
func (s *Session) Step(in core.InputFrame) StepResult {
	switch s.phase {
	case PhaseStart:
		if in.Has(core.ActionStart) {
			s.startRound()
		}

	case PhasePlaying:
		switch {
		case in.Has(core.ActionQuit):
			s.quit()
		case in.Has(core.ActionPause):
			s.phase = PhasePaused
			s.pausedAt = s.now()
		default:
			if s.round.Step(in, s.now()) {
				return StepResult{Phase: s.phase, Finished: s.endRound()}
			}
		}

	case PhasePaused:
		switch {
		case in.Has(core.ActionQuit):
			s.quit()
		case in.Has(core.ActionPause):
			s.round.shiftClock(s.now().Sub(s.pausedAt))
			s.phase = PhasePlaying
		}

	case PhaseGameOver:
		switch {
		case in.Has(core.ActionQuit):
			s.quit()
		case in.Has(core.ActionRestart):
			s.startRound()
		default:
			s.finished.fadeFeedback()
		}
	}
	return StepResult{Phase: s.phase}
}

func (s *Session) startRound() {
	s.finished = nil
	s.round = NewRound(&s.cfg, s.rng, s.now(), s.logger)
	s.phase = PhasePlaying
	s.logger.Info("round started",
		"round", s.round.ID,
		"preset_level", s.round.difficulty.Level(),
		"speed_growth", s.round.difficulty.IsEnabled(),
	)
}

func (s *Session) endRound() *Result {
	r := s.round
	res := &Result{
		RoundID:    r.ID,
		Score:      r.Score,
		Distance:   r.Player.Distance,
		Coins:      r.Player.Coins,
		Difficulty: r.Difficulty,
		Duration:   s.now().Sub(r.StartedAt),
	}
	if res.Score > s.highScore {
		s.highScore = res.Score
	}
	s.lastResult = res
	s.finished = r
	s.round = nil
	s.phase = PhaseGameOver

	s.logger.Info("game over",
		"round", res.RoundID,
		"score", res.Score,
		"distance", int(res.Distance),
		"coins", res.Coins,
		"high", s.highScore,
	)
	return res
}

func (s *Session) quit() {
	if s.round != nil {
		s.logger.Debug("round abandoned", "round", s.round.ID)
	}
	s.round = nil
	s.finished = nil
	s.phase = PhaseStart
}
