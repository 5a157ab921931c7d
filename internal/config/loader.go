package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported as the source when the embedded defaults were used.
const SourceEmbedded = "embedded"

// LoadFlappy loads Flappy Bird configuration.
// Search order: customPath -> ~/.arcade/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default
func LoadFlappy(customPath string) (FlappyConfig, error) {
	cfg, _, err := LoadFlappyWithSource(customPath)
	return cfg, err
}

// LoadFlappyWithSource is LoadFlappy that also reports which file was used.
// Values missing from a file keep their defaults.
func LoadFlappyWithSource(customPath string) (FlappyConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := LoadFlappyFile(customPath)
		if err != nil {
			return cfg, "", err
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("flappy.yaml"); userCfgPath != "" {
		if cfg, err := LoadFlappyFile(userCfgPath); err == nil {
			return cfg, userCfgPath, nil
		}
	}

	// Try local configs directory
	if cfg, err := LoadFlappyFile(filepath.Join("configs", "flappy.yaml")); err == nil {
		return cfg, filepath.Join("configs", "flappy.yaml"), nil
	}

	// Use embedded default YAML
	cfg, err := ParseFlappy(defaultFlappyYAML)
	if err != nil {
		return DefaultFlappyConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// LoadFlappyFile reads a single config file layered over the defaults.
func LoadFlappyFile(path string) (FlappyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultFlappyConfig(), fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := ParseFlappy(data)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// ParseFlappy decodes YAML over DefaultFlappyConfig.
func ParseFlappy(data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultFlappyConfig(), err
	}
	return cfg, nil
}

// MarshalFlappy encodes the configuration as YAML.
func MarshalFlappy(cfg FlappyConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
