// Package config provides YAML-based game configuration loading and
// difficulty management for RoboRun.
package config

// RoboRunConfig contains all tunables for the game. The embedded default
// file mirrors DefaultRoboRunConfig.
type RoboRunConfig struct {
	Canvas     CanvasConfig     `yaml:"canvas"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Obstacle   ObstacleConfig   `yaml:"obstacle"`
	Laser      LaserConfig      `yaml:"laser"`
	Coin       CoinConfig       `yaml:"coin"`
	PowerUp    PowerUpConfig    `yaml:"powerup"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Progress   ProgressConfig   `yaml:"progress"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CanvasConfig defines the logical coordinate space.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines scroll speed parameters.
type PhysicsConfig struct {
	BaseSpeed            float64 `yaml:"base_speed"`
	SpeedGrowth          float64 `yaml:"speed_growth"` // Fraction of base speed gained per elapsed second
	InvincibleMultiplier float64 `yaml:"invincible_multiplier"`
}

// PlayerConfig defines the player sprite.
type PlayerConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	HitboxInset     float64 `yaml:"hitbox_inset"` // Fraction of width trimmed from each side
	BottomOffset    float64 `yaml:"bottom_offset"`
	ShootCooldownMs int     `yaml:"shoot_cooldown_ms"`
	HitFlashFrames  int     `yaml:"hit_flash_frames"`
}

// BulletConfig defines projectiles fired with the bullet power.
type BulletConfig struct {
	Speed       float64 `yaml:"speed"`
	Radius      float64 `yaml:"radius"`
	TrailChance float64 `yaml:"trail_chance"`
	TrailLife   int     `yaml:"trail_life"`
	TrailJitter float64 `yaml:"trail_jitter"`
}

// ObstacleConfig defines drones.
type ObstacleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LaserConfig defines laser beams and their placement.
type LaserConfig struct {
	MaxLengthRatio float64 `yaml:"max_length_ratio"` // Fraction of canvas width
	AnchorSize     float64 `yaml:"anchor_size"`
	HitDistance    float64 `yaml:"hit_distance"`
	Padding        float64 `yaml:"padding"`
	PulseStep      float64 `yaml:"pulse_step"`
	Attempts       int     `yaml:"attempts"`
	EdgeMargin     float64 `yaml:"edge_margin"`
	StartY         float64 `yaml:"start_y"`
}

// CoinConfig defines coins, coin lines and the magnet pull.
type CoinConfig struct {
	Radius      float64 `yaml:"radius"`
	MagnetRange float64 `yaml:"magnet_range"`
	MagnetPull  float64 `yaml:"magnet_pull"`
	LineLength  int     `yaml:"line_length"`
	LineSpacing float64 `yaml:"line_spacing"`
	Jitter      int     `yaml:"jitter"`
	EdgeMargin  float64 `yaml:"edge_margin"`
}

// PowerUpConfig defines power-up pickups and effects.
type PowerUpConfig struct {
	Size        float64 `yaml:"size"`
	DurationMs  int     `yaml:"duration_ms"`
	SpawnChance float64 `yaml:"spawn_chance"`
	PulseStep   float64 `yaml:"pulse_step"`
	SpinStep    float64 `yaml:"spin_step"`
}

// SpawnConfig defines spawn cadence (in frames) and placement safety.
type SpawnConfig struct {
	ObstacleEvery int     `yaml:"obstacle_every"`
	LaserEvery    int     `yaml:"laser_every"`
	CoinEvery     int     `yaml:"coin_every"`
	SafeMargin    float64 `yaml:"safe_margin"`
	MaxAttempts   int     `yaml:"max_attempts"`
	Lanes         int     `yaml:"lanes"`
}

// ProgressConfig defines checkpoints and on-screen announcements.
type ProgressConfig struct {
	CheckpointDistance int `yaml:"checkpoint_distance"`
	AnnouncementFrames int `yaml:"announcement_frames"`
	ShakeFrames        int `yaml:"shake_frames"`
}

// DifficultyConfig defines how the scroll speed evolves.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`       // false freezes the elapsed-time speed growth
	InitialLevel float64 `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	LevelBonus   float64 `yaml:"level_bonus"`   // Base speed gained at level 1.0
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Unknown values map to "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *RoboRunConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
