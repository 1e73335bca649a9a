package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalPath is the project-local config location.
const LocalPath = "configs/tictactoe.yaml"

// Load reads the configuration.
// Search order: customPath -> ~/.tictactoe/config.yaml -> ./configs/tictactoe.yaml -> embedded default.
// Only a custom path that cannot be read or parsed is an error; the other
// locations are skipped when missing or unparsable. The result is not
// validated, so callers can apply overrides first and then call Validate.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		return loadFile(customPath)
	}

	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := loadFile(LocalPath); err == nil {
		return cfg, nil
	}

	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default, so omitted fields keep their defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns ~/.tictactoe/config.yaml, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tictactoe", "config.yaml")
}
