package term

import (
	"github.com/gdamore/tcell/v2"
)

// keyNames maps tcell special keys to the names used by the key bindings.
var keyNames = map[tcell.Key]string{
	tcell.KeyUp:     "up",
	tcell.KeyDown:   "down",
	tcell.KeyLeft:   "left",
	tcell.KeyRight:  "right",
	tcell.KeyEscape: "esc",
	tcell.KeyCtrlC:  "ctrl+c",
	tcell.KeyEnter:  "enter",
	tcell.KeyTab:    "tab",
}

// KeyName returns the binding name for a key event, or "" if it has none.
// Runes map to themselves so that "w" and " " match the configured keys.
func KeyName(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		return string(ev.Rune())
	}
	return keyNames[ev.Key()]
}
