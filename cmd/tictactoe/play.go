package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/game"
	"github.com/vovakirdan/tui-tictactoe/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a two-player game in the terminal.

Controls:
  Arrows/WASD  - Move the cursor
  Enter/Space  - Place a mark (or click a cell)
  R / X        - Restart, X starts
  O            - Restart, O starts
  Esc          - Close the result dialog
  Ctrl+S       - Save a screenshot to ~/.tictactoe/screenshots
  Q/Ctrl+C     - Quit

Examples:
  tictactoe play
  tictactoe play --starts o
  tictactoe play --debounce 0s --log-file /tmp/ttt.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(flagConfig, flagOverrides())
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	//nolint:errcheck // Best-effort close on exit
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	g := game.New(cfg, game.WithLogger(logger))
	defer g.Close()

	logger.Info("starting", "starts", cfg.StartingPlayer, "fps", cfg.TickRate, "debounce", cfg.Debounce())

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.TickRate,
	}
	return tui.Run(g, rc, tui.WithLogger(logger))
}
