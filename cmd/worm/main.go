// worm is a terminal snake game on a 256x256 wrapping grid.
//
// Usage:
//
//	worm play [game]   - Play (default game: worm)
//	worm list          - List available games
//	worm config        - Print the effective configuration
//	worm menu          - Pick a game interactively
//
// Global flags:
//
//	--config <path>    - Config file (default: ~/.worm/config.yaml, ./configs/worm.yaml)
//	--log-file <path>  - Write logs to a file (default: discarded)
//	--debug            - Enable debug logging
//	--seed <value>     - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-worm/internal/games/worm"
)

var (
	// Global flags
	flagConfig  string
	flagLogFile string
	flagDebug   bool
	flagSeed    int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "worm",
	Short: "Worm - a snake game for your terminal",
	Long: `Worm is a snake game played on a 256x256 grid that wraps around
at every edge. Eat the food directly in front of the head to grow;
running into your own body ends the game.

Available commands:
  play     - Play the game
  list     - Show all available games
  config   - Print the effective configuration
  menu     - Interactive game picker

Examples:
  worm play
  worm play worm_origin
  worm play --frontend term --tick 40ms
  worm config > ~/.worm/config.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(menuCmd)
}

// newLogger creates the logger. The terminal belongs to the game, so logs
// go to --log-file or nowhere.
func newLogger() (*log.Logger, func() error, error) {
	var w io.Writer = io.Discard
	closeFn := func() error { return nil }

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file %s: %w", flagLogFile, err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "worm",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
