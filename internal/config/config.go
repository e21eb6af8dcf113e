// Package config provides YAML-based configuration loading and validation
// for the worm game.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/tui-worm/internal/core"
	"github.com/vovakirdan/tui-worm/internal/games/worm/core"
)

// Frontend names accepted by render.frontend.
const (
	FrontendTUI  = "tui"
	FrontendTerm = "term"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// WormConfig contains all configuration for the worm game.
type WormConfig struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Input      InputConfig      `yaml:"input"`
	Render     RenderConfig     `yaml:"render"`
	Keys       KeysConfig       `yaml:"keys"`
}

// SimulationConfig defines the tick clock and start placement.
type SimulationConfig struct {
	TickMS int    `yaml:"tick_ms"`
	Start  string `yaml:"start"` // random | origin
}

// InputConfig defines input polling.
type InputConfig struct {
	PollMS int `yaml:"poll_ms"`
}

// RenderConfig defines the frontend and the field glyphs.
type RenderConfig struct {
	Frontend  string `yaml:"frontend"` // tui | term
	Head      string `yaml:"head"`
	Body      string `yaml:"body"`
	Food      string `yaml:"food"`
	HeadColor string `yaml:"head_color"`
	BodyColor string `yaml:"body_color"`
	FoodColor string `yaml:"food_color"`
}

// KeysConfig maps actions to key names as reported by Bubble Tea
// ("up", "ctrl+c", "w", " ").
type KeysConfig struct {
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Pause   []string `yaml:"pause"`
	Restart []string `yaml:"restart"`
	Quit    []string `yaml:"quit"`
}

// TickInterval returns the simulation period.
func (c WormConfig) TickInterval() time.Duration {
	return time.Duration(c.Simulation.TickMS) * time.Millisecond
}

// PollInterval returns the bounded input wait.
func (c WormConfig) PollInterval() time.Duration {
	return time.Duration(c.Input.PollMS) * time.Millisecond
}

// Start returns the parsed start mode. Call Validate first.
func (c WormConfig) Start() core.Start {
	s, _ := core.ParseStart(c.Simulation.Start)
	return s
}

// Validate checks every field and reports the first problem found.
func (c WormConfig) Validate() error {
	if c.Simulation.TickMS <= 0 {
		return fmt.Errorf("config: simulation.tick_ms must be positive, got %d: %w", c.Simulation.TickMS, ErrInvalid)
	}
	if _, err := core.ParseStart(c.Simulation.Start); err != nil {
		return fmt.Errorf("config: simulation.start: %w: %w", err, ErrInvalid)
	}
	if c.Input.PollMS <= 0 {
		return fmt.Errorf("config: input.poll_ms must be positive, got %d: %w", c.Input.PollMS, ErrInvalid)
	}

	switch c.Render.Frontend {
	case FrontendTUI, FrontendTerm:
	default:
		return fmt.Errorf("config: render.frontend %q is not tui or term: %w", c.Render.Frontend, ErrInvalid)
	}

	glyphs := map[string]string{
		"head": c.Render.Head,
		"body": c.Render.Body,
		"food": c.Render.Food,
	}
	for name, g := range glyphs {
		if utf8.RuneCountInString(g) != 1 {
			return fmt.Errorf("config: render.%s must be a single character, got %q: %w", name, g, ErrInvalid)
		}
	}

	colors := map[string]string{
		"head_color": c.Render.HeadColor,
		"body_color": c.Render.BodyColor,
		"food_color": c.Render.FoodColor,
	}
	for name, col := range colors {
		if _, err := platformcore.ParseColor(col); err != nil {
			return fmt.Errorf("config: render.%s: %w: %w", name, err, ErrInvalid)
		}
	}

	for _, b := range c.Keys.bindings() {
		if len(b.keys) == 0 {
			return fmt.Errorf("config: keys.%s must list at least one key: %w", b.name, ErrInvalid)
		}
	}
	return nil
}

type namedKeys struct {
	name string
	keys []string
}

func (k KeysConfig) bindings() []namedKeys {
	return []namedKeys{
		{"up", k.Up},
		{"down", k.Down},
		{"left", k.Left},
		{"right", k.Right},
		{"pause", k.Pause},
		{"restart", k.Restart},
		{"quit", k.Quit},
	}
}

// Glyph returns the first rune of a validated glyph string.
func Glyph(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
