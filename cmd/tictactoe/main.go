// tictactoe is a two-player tic-tac-toe board for the terminal.
//
// Usage:
//
//	tictactoe                  - Play (same as "tictactoe play")
//	tictactoe play             - Play in the terminal
//	tictactoe replay <idx>...  - Apply moves headlessly and print the result
//
// Global flags:
//
//	--starts <x|o>          - Player who moves first
//	--fps <rate>            - Tick rate (default: from config)
//	--config <path>         - Config YAML (default: ~/.tictactoe/config.yaml)
//	--debounce <duration>   - Tap debounce window, e.g. 60ms
//	--log-file <path>       - Write logs to a file (default: no logs)
//	--log-level <level>     - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagStarts   string
	flagFPS      int
	flagConfig   string
	flagDebounce string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tictactoe",
	Short: "Tic-Tac-Toe - two players, one terminal",
	Long: `Tic-Tac-Toe for two players sharing one terminal.

Available commands:
  play     - Start a game (default)
  replay   - Apply a list of moves and print the board

Examples:
  tictactoe
  tictactoe play --starts o
  tictactoe replay 0 1 3 2 6`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagStarts, "starts", "", "Player who moves first: x or o (default: from config)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDebounce, "debounce", "", "Tap debounce window, e.g. 60ms (default: from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
}
