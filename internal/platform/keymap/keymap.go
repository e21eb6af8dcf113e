// Package keymap translates key names into game actions.
// Key names follow Bubble Tea's KeyMsg.String() form ("up", "ctrl+c", "w", " ")
// so both frontends share one set of bindings.
package keymap

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-worm/internal/config"
	"github.com/vovakirdan/tui-worm/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// New builds bindings from configured key lists.
func New(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Up:      binding(cfg.Up, "up"),
		Down:    binding(cfg.Down, "down"),
		Left:    binding(cfg.Left, "left"),
		Right:   binding(cfg.Right, "right"),
		Pause:   binding(cfg.Pause, "pause"),
		Restart: binding(cfg.Restart, "restart"),
		Quit:    binding(cfg.Quit, "quit"),
	}
}

// Default returns the stock bindings.
func Default() KeyMap {
	return New(config.DefaultWormConfig().Keys)
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys(keys), desc),
	)
}

func helpKeys(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return strings.Join(names, "/")
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pause, k.Restart, k.Quit},
	}
}

// Action translates a key name to an action.
// Quit is checked first so it cannot be shadowed by a steering binding.
func (k KeyMap) Action(name string) core.Action {
	bindings := []struct {
		b      key.Binding
		action core.Action
	}{
		{k.Quit, core.ActionQuit},
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Pause, core.ActionPause},
		{k.Restart, core.ActionRestart},
	}

	for _, e := range bindings {
		if e.b.Enabled() && slices.Contains(e.b.Keys(), name) {
			return e.action
		}
	}
	return core.ActionNone
}

// MapKeyToFrame records the action for a key name in frame.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(name string, frame *core.InputFrame) bool {
	action := k.Action(name)
	if action == core.ActionQuit {
		return true
	}
	frame.Set(action)
	return false
}
