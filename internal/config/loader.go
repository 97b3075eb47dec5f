package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads RoboRun configuration.
// Search order: customPath -> ~/.roborun/configs/roborun.yaml -> ./configs/roborun.yaml -> embedded default.
// Files are overlaid on the defaults, so a file only needs the keys it changes.
func Load(customPath string) (RoboRunConfig, error) {
	cfg := embeddedDefault()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return embeddedDefault(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("roborun.yaml"); userCfgPath != "" {
		if overlay, ok := readOverlay(userCfgPath, cfg); ok {
			return overlay, nil
		}
	}

	// Try local configs directory
	if overlay, ok := readOverlay(filepath.Join("configs", "roborun.yaml"), cfg); ok {
		return overlay, nil
	}

	return cfg, nil
}

// readOverlay parses path on top of base. A missing or malformed file is skipped.
func readOverlay(path string, base RoboRunConfig) (RoboRunConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	if err := yaml.Unmarshal(data, &base); err != nil {
		return base, false
	}
	return base, true
}

// embeddedDefault decodes the embedded YAML, falling back to the hardcoded values.
func embeddedDefault() RoboRunConfig {
	cfg := DefaultRoboRunConfig()
	if err := yaml.Unmarshal(defaultRoboRunYAML, &cfg); err != nil {
		return DefaultRoboRunConfig()
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".roborun", "configs", filename)
}
