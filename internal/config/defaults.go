package config

import (
	_ "embed"
)

//go:embed defaults/roborun.yaml
var defaultRoboRunYAML []byte

// DefaultRoboRunConfig returns the built-in configuration.
func DefaultRoboRunConfig() RoboRunConfig {
	return RoboRunConfig{
		Canvas: CanvasConfig{
			Width:  960,
			Height: 720,
		},
		Physics: PhysicsConfig{
			BaseSpeed:            5,
			SpeedGrowth:          0.01,
			InvincibleMultiplier: 3,
		},
		Player: PlayerConfig{
			Width:           120,
			Height:          120,
			HitboxInset:     0.2,
			BottomOffset:    100,
			ShootCooldownMs: 300,
			HitFlashFrames:  30,
		},
		Bullet: BulletConfig{
			Speed:       10,
			Radius:      5,
			TrailChance: 0.3,
			TrailLife:   10,
			TrailJitter: 2,
		},
		Obstacle: ObstacleConfig{
			Width:  144,
			Height: 144,
		},
		Laser: LaserConfig{
			MaxLengthRatio: 0.7,
			AnchorSize:     20,
			HitDistance:    6,
			Padding:        5,
			PulseStep:      0.2,
			Attempts:       5,
			EdgeMargin:     50,
			StartY:         -20,
		},
		Coin: CoinConfig{
			Radius:      10,
			MagnetRange: 100,
			MagnetPull:  5,
			LineLength:  5,
			LineSpacing: 40,
			Jitter:      10,
			EdgeMargin:  100,
		},
		PowerUp: PowerUpConfig{
			Size:        45,
			DurationMs:  10000,
			SpawnChance: 0.1,
			PulseStep:   0.1,
			SpinStep:    2,
		},
		Spawn: SpawnConfig{
			ObstacleEvery: 60,
			LaserEvery:    180,
			CoinEvery:     90,
			SafeMargin:    30,
			MaxAttempts:   10,
			Lanes:         3,
		},
		Progress: ProgressConfig{
			CheckpointDistance: 400,
			AnnouncementFrames: 60,
			ShakeFrames:        10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			LevelBonus:   1.0,
		},
	}
}
