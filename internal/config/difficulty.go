package config

// DifficultyManager turns elapsed round time into the current scroll speed.
type DifficultyManager struct {
	cfg          DifficultyConfig
	growth       float64
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig, speedGrowth float64) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		growth:       speedGrowth,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether speed grows with elapsed time.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the preset level (0.0 to 1.0).
func (d *DifficultyManager) Level() float64 {
	return d.initialLevel
}

// Speed returns base × (1 + elapsed×growth) × multiplier, with the base raised
// by the preset level. With the default level 0 this is exactly the classic
// time-scaled formula.
func (d *DifficultyManager) Speed(baseSpeed, elapsedSeconds, multiplier float64) float64 {
	base := baseSpeed * (1.0 + d.initialLevel*d.cfg.LevelBonus)
	scale := 1.0
	if d.cfg.Enabled {
		scale += elapsedSeconds * d.growth
	}
	return base * scale * multiplier
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
