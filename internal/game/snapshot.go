package game

// Snapshot is a plain summary of the session used to compare runs.
type Snapshot struct {
	Phase      string
	Tick       uint64
	Score      int
	HighScore  int
	Distance   float64
	Coins      int
	Difficulty int
	Power      string

	Obstacles     int
	Lasers        int
	CoinsOnScreen int
	PowerUps      int
	Bullets       int
}

// Snapshot captures the current state. Entity counts are zero on the
// title screen.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:     s.phase.String(),
		HighScore: s.highScore,
	}
	r := s.Round()
	if r == nil {
		return snap
	}
	snap.Tick = r.Tick
	snap.Score = r.Score
	snap.Distance = r.Player.Distance
	snap.Coins = r.Player.Coins
	snap.Difficulty = r.Difficulty
	snap.Power = r.Player.Power.Kind.String()
	snap.Obstacles = len(r.Obstacles)
	snap.Lasers = len(r.Lasers)
	snap.CoinsOnScreen = len(r.Coins)
	snap.PowerUps = len(r.PowerUps)
	snap.Bullets = len(r.Bullets)
	return snap
}
