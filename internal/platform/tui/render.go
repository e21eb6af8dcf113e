package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-worm/internal/core"
)

// footerStyle dims the help line under the field.
var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// cellStyle returns the lipgloss style for a screen color.
func cellStyle(c core.Color) lipgloss.Style {
	i, ok := c.Palette()
	if !ok {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(i)))
}

// colorRun is a horizontal stretch of cells that share one color.
type colorRun struct {
	color core.Color
	text  string
}

// rowRuns splits row y of s into color runs, left to right.
func rowRuns(s *core.Screen, y int) []colorRun {
	var runs []colorRun
	var text strings.Builder
	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if x > 0 && cell.Color != runs[len(runs)-1].color {
			runs[len(runs)-1].text = text.String()
			text.Reset()
		}
		if x == 0 || cell.Color != runs[len(runs)-1].color {
			runs = append(runs, colorRun{color: cell.Color})
		}
		text.WriteRune(cell.Rune)
	}
	if len(runs) > 0 {
		runs[len(runs)-1].text = text.String()
	}
	return runs
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each color run gets one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for _, run := range rowRuns(s, y) {
			sb.WriteString(cellStyle(run.color).Render(run.text))
		}
	}
	return sb.String()
}
