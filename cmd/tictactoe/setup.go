package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
)

// overrides holds the command-line values that replace config fields.
// Zero values leave the loaded config untouched.
type overrides struct {
	Starts   string
	FPS      int
	Debounce string
}

func flagOverrides() overrides {
	return overrides{Starts: flagStarts, FPS: flagFPS, Debounce: flagDebounce}
}

// loadConfig loads the config from path (or the default locations), applies
// o and validates the result.
func loadConfig(path string, o overrides) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if o.Starts != "" {
		cfg.StartingPlayer = o.Starts
	}
	if o.FPS > 0 {
		cfg.TickRate = o.FPS
	}
	if o.Debounce != "" {
		d, err := time.ParseDuration(o.Debounce)
		if err != nil {
			return cfg, fmt.Errorf("invalid --debounce: %w", err)
		}
		if d%time.Millisecond != 0 {
			return cfg, fmt.Errorf("invalid --debounce: %s is not a whole number of milliseconds", d)
		}
		cfg.Input.DebounceMS = int(d / time.Millisecond)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newLogger returns a logger writing to path, or a discarding logger when
// path is empty. The terminal belongs to the board, so logs never go there.
func newLogger(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	if path == "" {
		logger := log.New(io.Discard)
		logger.SetLevel(lvl)
		return logger, io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tictactoe",
		Level:           lvl,
	})
	return logger, f, nil
}
