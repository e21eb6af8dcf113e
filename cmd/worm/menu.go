package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-worm/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a game from an interactive menu",
	Long: `Start in interactive menu mode.

Use the steering keys to navigate and Enter to select a game.
After a game ends, you return to the menu to play again.

Examples:
  worm menu
  worm menu --frontend term`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addPlayFlags(menuCmd)
}

func runMenu(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close() //nolint:errcheck // Best-effort close on exit

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rc := s.runtime
	for ctx.Err() == nil {
		result, err := tui.RunMenu(ctx, rc, s.keys)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		// Update config with any size changes
		rc.ScreenW, rc.ScreenH = result.Config.ScreenW, result.Config.ScreenH
		if result.Quit {
			return nil
		}

		// Fresh seed per game unless one was given
		if flagSeed == 0 {
			rc.Seed = time.Now().UnixNano()
		}
		s.logger.Debug("menu selection", "game", result.GameID)
		if err := s.play(ctx, result.GameID, rc); err != nil {
			return err
		}
	}
	return nil
}
