package config

import (
	_ "embed"
)

//go:embed defaults/worm.yaml
var defaultWormYAML []byte

// DefaultWormConfig returns the default worm configuration.
func DefaultWormConfig() WormConfig {
	return WormConfig{
		Simulation: SimulationConfig{
			TickMS: 20,
			Start:  "random",
		},
		Input: InputConfig{
			PollMS: 10,
		},
		Render: RenderConfig{
			Frontend:  FrontendTUI,
			Head:      "@",
			Body:      "o",
			Food:      "*",
			HeadColor: "bright_red",
			BodyColor: "red",
			FoodColor: "bright_yellow",
		},
		Keys: KeysConfig{
			Up:      []string{"up", "w", "k"},
			Down:    []string{"down", "s", "j"},
			Left:    []string{"left", "a", "h"},
			Right:   []string{"right", "d", "l"},
			Pause:   []string{"p", " "},
			Restart: []string{"r"},
			Quit:    []string{"q", "ctrl+c", "esc"},
		},
	}
}
