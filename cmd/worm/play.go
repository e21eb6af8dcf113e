package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-worm/internal/config"
	"github.com/vovakirdan/tui-worm/internal/core"
	"github.com/vovakirdan/tui-worm/internal/games/worm"
	"github.com/vovakirdan/tui-worm/internal/platform/keymap"
	platformterm "github.com/vovakirdan/tui-worm/internal/platform/term"
	"github.com/vovakirdan/tui-worm/internal/platform/tui"
	"github.com/vovakirdan/tui-worm/internal/registry"
)

var (
	flagFrontend string
	flagTick     time.Duration
	flagStart    string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: worm).

Controls:
  Arrows/WASD/HJKL - Steer
  P/Space          - Pause
  R                - Restart (after game over)
  Q/Esc/Ctrl+C     - Quit

Frontends:
  tui  - Bubble Tea (default)
  term - tcell with a fixed render/poll/tick loop

Examples:
  worm play
  worm play --start origin --seed 42
  worm play --frontend term --tick 50ms
  worm play --config ./my-worm.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the flags shared by play and menu.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagFrontend, "frontend", "", "Frontend: tui or term (default from config)")
	cmd.Flags().DurationVar(&flagTick, "tick", 0, "Simulation tick period, e.g. 20ms (default from config)")
	cmd.Flags().StringVar(&flagStart, "start", "", "Start mode: random or origin (default from config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "worm"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'worm list' to see available games", gameID)
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close() //nolint:errcheck // Best-effort close on exit

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return s.play(ctx, gameID, s.runtime)
}

// playSession holds everything resolved from flags and config that a
// game run needs.
type playSession struct {
	cfg          config.WormConfig
	style        worm.Style
	keys         keymap.KeyMap
	runtime      core.RuntimeConfig
	logger       *log.Logger
	close        func() error
	startChanged bool
}

func newSession(cmd *cobra.Command) (*playSession, error) {
	logger, closeLog, err := newLogger()
	if err != nil {
		return nil, err
	}

	loaded, source, err := config.Load(flagConfig)
	if err != nil {
		closeLog() //nolint:errcheck // Already failing
		return nil, err
	}
	overrides, err := overridesFromFlags(flagTick, flagStart, flagFrontend)
	if err != nil {
		closeLog() //nolint:errcheck // Already failing
		return nil, err
	}
	cfg, err := config.Apply(loaded, overrides)
	if err != nil {
		closeLog() //nolint:errcheck // Already failing
		return nil, err
	}
	logger.Debug("config loaded", "source", source, "tick", cfg.TickInterval(),
		"start", cfg.Simulation.Start, "frontend", cfg.Render.Frontend)

	style, err := styleFrom(cfg.Render)
	if err != nil {
		closeLog() //nolint:errcheck // Already failing
		return nil, err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return &playSession{
		cfg:   cfg,
		style: style,
		keys:  keymap.New(cfg.Keys),
		runtime: core.RuntimeConfig{
			ScreenW:      width,
			ScreenH:      height,
			TickInterval: cfg.TickInterval(),
			Seed:         flagSeed,
		},
		logger:       logger,
		close:        closeLog,
		startChanged: cmd.Flags().Changed("start"),
	}, nil
}

// play runs one game until the player quits. Cancellation is not an error.
func (s *playSession) play(ctx context.Context, gameID string, rc core.RuntimeConfig) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	if w, ok := game.(*worm.Game); ok {
		w.SetStyle(s.style)
		// worm_origin keeps its start unless asked otherwise
		if gameID == "worm" || s.startChanged {
			w.SetStart(s.cfg.Start())
		}
	}

	switch s.cfg.Render.Frontend {
	case config.FrontendTerm:
		screen, err := platformterm.NewScreen()
		if err != nil {
			return err
		}
		err = platformterm.NewRunner(screen, game, rc, s.cfg.PollInterval(), s.keys, s.logger).Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	default:
		err := tui.Run(ctx, game, rc, s.keys, s.logger)
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
}

// overridesFromFlags converts play flags into config overrides.
func overridesFromFlags(tick time.Duration, start, frontend string) (config.Overrides, error) {
	o := config.Overrides{Start: start, Frontend: frontend}
	if tick != 0 {
		if tick < time.Millisecond {
			return o, fmt.Errorf("--tick must be at least 1ms, got %v", tick)
		}
		o.TickMS = int(tick / time.Millisecond)
	}
	return o, nil
}

// styleFrom builds the field style from validated render settings.
func styleFrom(r config.RenderConfig) (worm.Style, error) {
	s := worm.Style{
		Head: config.Glyph(r.Head),
		Body: config.Glyph(r.Body),
		Food: config.Glyph(r.Food),
	}

	var err error
	if s.HeadColor, err = core.ParseColor(r.HeadColor); err != nil {
		return s, err
	}
	if s.BodyColor, err = core.ParseColor(r.BodyColor); err != nil {
		return s, err
	}
	if s.FoodColor, err = core.ParseColor(r.FoodColor); err != nil {
		return s, err
	}
	return s, nil
}
