package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-worm/internal/core"
)

// styleFor maps a screen color to a tcell style on the same palette index
// the Bubble Tea renderer uses.
func styleFor(c core.Color) tcell.Style {
	i, ok := c.Palette()
	if !ok {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(i))
}
