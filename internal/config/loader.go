package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "road.yaml"

// Load loads the road configuration.
// Search order: customPath -> ~/.road/configs/road.yaml -> ./configs/road.yaml -> embedded default.
// Files only need to set the keys they override.
func Load(customPath string) (RoadConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RoadConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data, userCfgPath); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", fileName)
	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := parse(data, localPath); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := parse(defaultRoadYAML, "embedded default"); err == nil {
		return cfg, nil
	}
	return DefaultRoadConfig(), nil // Fallback to hardcoded if embed fails
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (RoadConfig, error) {
	return parse(data, "input")
}

func parse(data []byte, source string) (RoadConfig, error) {
	cfg := DefaultRoadConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RoadConfig{}, fmt.Errorf("failed to parse config %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return RoadConfig{}, fmt.Errorf("config %s: %w", source, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".road", "configs", filename)
}
