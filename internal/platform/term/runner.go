// Package term runs a game directly on a tcell screen.
//
// The loop is single threaded: render, wait a bounded time for one input
// event, then tick when the fixed period has elapsed. A helper goroutine
// only forwards PollEvent results into a channel.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-worm/internal/core"
	"github.com/vovakirdan/tui-worm/internal/platform/keymap"
	"github.com/vovakirdan/tui-worm/internal/registry"
)

// DefaultPollInterval bounds the wait for input between renders.
const DefaultPollInterval = 10 * time.Millisecond

// resizer is implemented by games that track the screen size without a reset.
type resizer interface {
	Resize(w, h int)
}

// Runner drives one game on one tcell screen.
type Runner struct {
	screen tcell.Screen
	game   registry.Game
	keys   keymap.KeyMap
	logger *log.Logger
	cfg    core.RuntimeConfig
	poll   time.Duration

	buf   *core.Screen
	frame core.InputFrame
	state core.GameState
	quit  bool
}

// NewScreen creates the terminal screen. Tests pass a simulation screen to
// NewRunner instead.
func NewScreen() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: cannot create screen: %w", err)
	}
	return s, nil
}

// NewRunner creates a runner. A zero poll or tick interval uses the default.
func NewRunner(screen tcell.Screen, game registry.Game, cfg core.RuntimeConfig, poll time.Duration, keys keymap.KeyMap, logger *log.Logger) *Runner {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultTickInterval
	}
	if poll <= 0 {
		poll = DefaultPollInterval
	}
	return &Runner{
		screen: screen,
		game:   game,
		keys:   keys,
		logger: logger,
		cfg:    cfg,
		poll:   poll,
		buf:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		frame:  core.NewInputFrame(),
	}
}

// Run initializes the screen and plays until the player quits or ctx is done.
// The screen is finalized before Run returns.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.screen.Init(); err != nil {
		return fmt.Errorf("term: cannot initialize screen: %w", err)
	}
	defer r.screen.Fini()

	r.screen.HideCursor()
	r.resize(r.screen.Size())
	r.game.Reset(r.cfg)
	r.logger.Info("game started", "game", r.game.ID(), "seed", r.cfg.Seed, "tick", r.cfg.TickInterval)

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	wait := time.NewTimer(r.poll)
	defer wait.Stop()
	last := time.Now()

	for !r.quit {
		r.Draw()

		wait.Reset(r.poll)
		select {
		case <-ctx.Done():
			r.logger.Info("cancelled", "length", r.state.Length)
			return ctx.Err()
		case ev := <-events:
			r.HandleEvent(ev)
		case <-wait.C:
		}

		if now := time.Now(); now.Sub(last) >= r.cfg.TickInterval {
			r.Tick()
			last = now
		}
	}

	r.logger.Info("quit requested", "length", r.state.Length)
	return nil
}

// HandleEvent applies one terminal event.
func (r *Runner) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if r.keys.MapKeyToFrame(KeyName(ev), &r.frame) {
			r.quit = true
		}
	case *tcell.EventResize:
		r.resize(ev.Size())
		r.screen.Sync()
	}
}

// Tick steps the game once with the input gathered since the last tick.
func (r *Runner) Tick() {
	wasOver := r.state.GameOver

	r.state = r.game.Step(r.frame).State
	r.frame.Clear()

	switch {
	case r.state.GameOver && !wasOver:
		r.logger.Info("game over", "length", r.state.Length)
	case wasOver && !r.state.GameOver:
		r.logger.Info("game restarted")
	}
}

// Draw renders the game and copies the buffer to the terminal.
func (r *Runner) Draw() {
	r.game.Render(r.buf)

	for y := range r.buf.Height() {
		for x := range r.buf.Width() {
			cell := r.buf.GetCell(x, y)
			r.screen.SetContent(x, y, cell.Rune, nil, styleFor(cell.Color))
		}
	}
	r.screen.Show()
}

// Quitting reports whether a quit key was pressed.
func (r *Runner) Quitting() bool {
	return r.quit
}

// State returns the state reported by the last tick.
func (r *Runner) State() core.GameState {
	return r.state
}

func (r *Runner) resize(w, h int) {
	r.cfg.ScreenW, r.cfg.ScreenH = w, h
	r.buf.Resize(w, h)
	if g, ok := r.game.(resizer); ok {
		g.Resize(w, h)
	}
	r.logger.Debug("screen resized", "width", w, "height", h)
}
