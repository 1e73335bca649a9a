// Package config loads the YAML settings for the tic-tac-toe front end:
// tick rate, tap debounce, animation timing, haptics and colors.
// The rule engine itself takes no configuration.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/engine"
)

// Config is the complete front-end configuration.
type Config struct {
	TickRate       int             `yaml:"tick_rate"`
	StartingPlayer string          `yaml:"starting_player"`
	Input          InputConfig     `yaml:"input"`
	Animation      AnimationConfig `yaml:"animation"`
	Haptics        HapticsConfig   `yaml:"haptics"`
	Theme          ThemeConfig     `yaml:"theme"`
}

// InputConfig controls tap handling.
type InputConfig struct {
	DebounceMS int `yaml:"debounce_ms"`
}

// AnimationConfig controls the scale-in of a freshly placed mark.
type AnimationConfig struct {
	ScaleInMS int     `yaml:"scale_in_ms"`
	ScaleFrom float64 `yaml:"scale_from"`
}

// HapticsConfig controls the feedback pulse on a successful move.
type HapticsConfig struct {
	Enabled bool `yaml:"enabled"`
	PulseMS int  `yaml:"pulse_ms"`
	Bell    bool `yaml:"bell"`
}

// ThemeConfig holds color names, see core.ParseColor.
type ThemeConfig struct {
	X         string `yaml:"x"`
	O         string `yaml:"o"`
	Highlight string `yaml:"highlight"`
}

// Theme is a resolved ThemeConfig.
type Theme struct {
	X         core.Color
	O         core.Color
	Highlight core.Color
}

// Debounce returns the tap debounce window.
func (c Config) Debounce() time.Duration {
	return time.Duration(c.Input.DebounceMS) * time.Millisecond
}

// ScaleIn returns the scale-in animation length.
func (c Config) ScaleIn() time.Duration {
	return time.Duration(c.Animation.ScaleInMS) * time.Millisecond
}

// Pulse returns the haptic pulse length.
func (c Config) Pulse() time.Duration {
	return time.Duration(c.Haptics.PulseMS) * time.Millisecond
}

// Starter parses StartingPlayer, defaulting to X when unset.
func (c Config) Starter() (engine.Player, error) {
	if c.StartingPlayer == "" {
		return engine.X, nil
	}
	return engine.ParsePlayer(c.StartingPlayer)
}

// ResolveTheme parses the theme color names.
func (c Config) ResolveTheme() (Theme, error) {
	var t Theme
	var err error
	if t.X, err = core.ParseColor(c.Theme.X); err != nil {
		return t, fmt.Errorf("theme.x: %w", err)
	}
	if t.O, err = core.ParseColor(c.Theme.O); err != nil {
		return t, fmt.Errorf("theme.o: %w", err)
	}
	if t.Highlight, err = core.ParseColor(c.Theme.Highlight); err != nil {
		return t, fmt.Errorf("theme.highlight: %w", err)
	}
	return t, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error

	if c.TickRate < 1 || c.TickRate > 240 {
		errs = append(errs, fmt.Errorf("tick_rate must be in [1, 240], got %d", c.TickRate))
	}
	if _, err := c.Starter(); err != nil {
		errs = append(errs, fmt.Errorf("starting_player: %w", err))
	}
	if c.Input.DebounceMS < 0 {
		errs = append(errs, fmt.Errorf("input.debounce_ms must not be negative, got %d", c.Input.DebounceMS))
	}
	if c.Animation.ScaleInMS < 0 {
		errs = append(errs, fmt.Errorf("animation.scale_in_ms must not be negative, got %d", c.Animation.ScaleInMS))
	}
	if c.Animation.ScaleFrom <= 0 || c.Animation.ScaleFrom > 1 {
		errs = append(errs, fmt.Errorf("animation.scale_from must be in (0, 1], got %g", c.Animation.ScaleFrom))
	}
	if c.Haptics.PulseMS < 0 {
		errs = append(errs, fmt.Errorf("haptics.pulse_ms must not be negative, got %d", c.Haptics.PulseMS))
	}
	if _, err := c.ResolveTheme(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
