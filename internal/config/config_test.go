package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	if got, want := embeddedDefault(), DefaultRoboRunConfig(); got != want {
		t.Errorf("embedded YAML diverges from DefaultRoboRunConfig:\n got %+v\nwant %+v", got, want)
	}
}

func TestLoadCustomOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  base_speed: 8\nspawn:\n  lanes: 4\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.BaseSpeed != 8 {
		t.Errorf("BaseSpeed = %v, expected 8", cfg.Physics.BaseSpeed)
	}
	if cfg.Spawn.Lanes != 4 {
		t.Errorf("Lanes = %v, expected 4", cfg.Spawn.Lanes)
	}
	// Untouched keys keep their defaults
	if cfg.Player.Width != 120 {
		t.Errorf("Player.Width = %v, expected default 120", cfg.Player.Width)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing custom path")
	}
	if cfg.Canvas.Width != 960 {
		t.Error("failed Load should still return usable defaults")
	}
}

func TestLoadMalformedCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics: [oops"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should report a parse error")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultRoboRunConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.level)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should be DifficultyHard")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should map to empty")
	}
}

func TestDifficultySpeed(t *testing.T) {
	cfg := DefaultRoboRunConfig()
	d := NewDifficultyManager(cfg.Difficulty, cfg.Physics.SpeedGrowth)

	tests := []struct {
		elapsed, mult, expected float64
	}{
		{0, 1, 5},
		{10, 1, 5.5},
		{100, 1, 10},
		{10, 3, 16.5},
	}
	for _, tc := range tests {
		got := d.Speed(cfg.Physics.BaseSpeed, tc.elapsed, tc.mult)
		if math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Speed(5, %v, %v) = %v, expected %v", tc.elapsed, tc.mult, got, tc.expected)
		}
	}

	fixed := cfg.Difficulty
	fixed.Enabled = false
	df := NewDifficultyManager(fixed, cfg.Physics.SpeedGrowth)
	if got := df.Speed(5, 100, 1); got != 5 {
		t.Errorf("fixed difficulty Speed = %v, expected 5", got)
	}

	hard := cfg.Difficulty
	hard.InitialLevel = 0.7
	dh := NewDifficultyManager(hard, cfg.Physics.SpeedGrowth)
	if got := dh.Speed(5, 0, 1); math.Abs(got-8.5) > 1e-9 {
		t.Errorf("hard difficulty Speed = %v, expected 8.5", got)
	}
}
