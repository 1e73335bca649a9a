package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/engine"
	"github.com/vovakirdan/tui-tictactoe/internal/game"
	"github.com/vovakirdan/tui-tictactoe/internal/platform/tui"
)

var replayCmd = &cobra.Command{
	Use:   "replay <cell>...",
	Short: "Apply moves and print the board",
	Long: `Apply moves to a fresh board without the UI, then print the board and
the result. Cells are numbered 0-8 in row-major order:

  0 1 2
  3 4 5
  6 7 8

The command fails on the first rejected move.

Examples:
  tictactoe replay 0 1 3 2 6
  tictactoe replay --starts o 4 0 8`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(flagConfig, flagOverrides())
		if err != nil {
			return err
		}
		return replay(cmd.OutOrStdout(), cfg, args)
	},
}

// replay plays moves on a new engine and writes the board and status to w.
// A rejected move is returned as an error after the board so far is printed.
func replay(w io.Writer, cfg config.Config, moves []string) error {
	starter, err := cfg.Starter()
	if err != nil {
		return err
	}
	theme, err := cfg.ResolveTheme()
	if err != nil {
		return err
	}

	eng := engine.NewWithStarter(starter)
	var moveErr error
	for i, arg := range moves {
		idx, err := strconv.Atoi(arg)
		if err != nil {
			moveErr = fmt.Errorf("move %d: %q is not a cell number", i+1, arg)
			break
		}
		if err := eng.AttemptMove(idx); err != nil {
			moveErr = fmt.Errorf("move %d: %w", i+1, err)
			break
		}
	}

	fmt.Fprintln(w, formatBoard(eng, theme))
	fmt.Fprintln(w, game.StatusText(eng.Status()))
	return moveErr
}

// formatBoard renders the board as three rows of marks, winning cells in the
// highlight color.
func formatBoard(eng *engine.Engine, theme config.Theme) string {
	line, won := eng.WinningLine()
	board := eng.Board()

	rows := make([]string, 0, 3)
	for r := 0; r < 3; r++ {
		cells := make([]string, 3)
		for c := 0; c < 3; c++ {
			idx := r*3 + c
			text := board[idx].String()

			switch {
			case board[idx] == engine.Empty:
				cells[c] = text
			case won && line.Contains(idx):
				cells[c] = tui.StyleFor(theme.Highlight).Render(text)
			case board[idx] == engine.MarkX:
				cells[c] = tui.StyleFor(theme.X).Render(text)
			default:
				cells[c] = tui.StyleFor(theme.O).Render(text)
			}
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return strings.Join(rows, "\n")
}
