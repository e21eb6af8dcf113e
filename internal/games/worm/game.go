// Package worm provides the worm game: a single snake on a 256x256 torus.
package worm

import (
	"fmt"
	"math/rand"

	platformcore "github.com/vovakirdan/tui-worm/internal/core"
	"github.com/vovakirdan/tui-worm/internal/games/worm/core"
	"github.com/vovakirdan/tui-worm/internal/registry"
)

// Style holds the glyphs and colors used to draw the field.
type Style struct {
	Head      rune
	Body      rune
	Food      rune
	HeadColor platformcore.Color
	BodyColor platformcore.Color
	FoodColor platformcore.Color
}

// DefaultStyle returns the stock glyph set.
func DefaultStyle() Style {
	return Style{
		Head:      '@',
		Body:      'o',
		Food:      '*',
		HeadColor: platformcore.ColorBrightRed,
		BodyColor: platformcore.ColorRed,
		FoodColor: platformcore.ColorBrightYellow,
	}
}

// headings maps steering actions to worm directions.
var headings = map[platformcore.Action]core.Direction{
	platformcore.ActionUp:    core.Up,
	platformcore.ActionDown:  core.Down,
	platformcore.ActionLeft:  core.Left,
	platformcore.ActionRight: core.Right,
}

// Game adapts a worm session to the platform game interface.
type Game struct {
	start   core.Start
	style   Style
	rng     *rand.Rand
	session *core.Session

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver bool
	paused   bool
	restarts int
}

// New creates a game whose worm starts at a random cell.
func New() *Game {
	return NewWithStart(core.StartRandom)
}

// NewOrigin creates a game whose worm starts at (0,0) facing Up.
func NewOrigin() *Game {
	return NewWithStart(core.StartOrigin)
}

// NewWithStart creates a game with the given start mode.
func NewWithStart(start core.Start) *Game {
	return &Game{
		start: start,
		style: DefaultStyle(),
	}
}

func init() {
	registry.Register("worm", func() registry.Game {
		return New()
	})
	registry.Register("worm_origin", func() registry.Game {
		return NewOrigin()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.start == core.StartOrigin {
		return "worm_origin"
	}
	return "worm"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.start == core.StartOrigin {
		return "Worm (origin start)"
	}
	return "Worm"
}

// SetStyle replaces the glyph set. Takes effect on the next Render.
func (g *Game) SetStyle(s Style) {
	g.style = s
}

// SetStart changes the start mode used by the next Reset.
func (g *Game) SetStart(s core.Start) {
	g.start = s
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.session = core.NewSession(g.rng, g.start)
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.paused = false
}

// Resize updates the screen dimensions without touching the simulation.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Step advances the game by one tick.
// Steering actions are applied in arrival order so the last one wins,
// then the session ticks exactly once.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	if g.session == nil {
		g.Reset(platformcore.DefaultConfig())
	}

	// Handle restart
	if input.Has(platformcore.ActionRestart) && g.gameOver {
		g.restarts++
		g.Reset(platformcore.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(platformcore.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	for _, a := range input.Actions() {
		if a.IsSteering() {
			g.session.Turn(headings[a])
		}
	}

	g.session.Tick()
	if !g.session.Alive() {
		g.gameOver = true
	}

	return platformcore.StepResult{State: g.State(), Ticked: true}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	length := 0
	if g.session != nil {
		length = g.session.Worm().Size()
	}
	return platformcore.GameState{
		Length:   length,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// WindowTitle returns "Worm: <size> (xxx, yyy)" with the head coordinates
// zero padded to three digits.
func (g *Game) WindowTitle() string {
	if g.session == nil {
		return "Worm"
	}
	head := g.session.Worm().Head()
	return fmt.Sprintf("Worm: %d (%03d, %03d)", g.session.Worm().Size(), head.X, head.Y)
}

// Session exposes the underlying session for frontends and tests.
func (g *Game) Session() *core.Session {
	return g.session
}
