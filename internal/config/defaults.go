package config

import (
	_ "embed"
)

//go:embed defaults/tictactoe.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/tictactoe.yaml.
func Default() Config {
	return Config{
		TickRate:       60,
		StartingPlayer: "X",
		Input: InputConfig{
			DebounceMS: 60,
		},
		Animation: AnimationConfig{
			ScaleInMS: 360,
			ScaleFrom: 0.6,
		},
		Haptics: HapticsConfig{
			Enabled: true,
			PulseMS: 120,
			Bell:    false,
		},
		Theme: ThemeConfig{
			X:         "blue",
			O:         "red",
			Highlight: "bright_yellow",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
