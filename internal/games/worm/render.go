package worm

import (
	platformcore "github.com/vovakirdan/tui-worm/internal/core"
	"github.com/vovakirdan/tui-worm/internal/games/worm/core"
)

// Render draws the game to the screen.
// The field is a window onto the torus centred on the head, with y growing upwards.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	bounds := dst.Bounds()
	if bounds.W < 3 || bounds.H < 3 {
		dst.DrawTextCentered(0, "Window too small")
		return
	}

	dst.DrawBox(bounds)
	if g.session == nil {
		return
	}
	title := []rune(" " + g.WindowTitle() + " ")
	title = title[:platformcore.Clamp(bounds.W-4, 0, len(title))]
	dst.DrawText(2, 0, string(title))

	field := bounds.Inset(1)
	view := g.session.Snapshot()

	g.plot(dst, field, view.Head, view.Food, g.style.Food, g.style.FoodColor)
	// Tail first so the head wins on overlap
	for i := len(view.Body) - 1; i > 0; i-- {
		g.plot(dst, field, view.Head, view.Body[i], g.style.Body, g.style.BodyColor)
	}
	g.plot(dst, field, view.Head, view.Head, g.style.Head, g.style.HeadColor)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// plot draws p relative to head. Offsets wrap, so every point is
// within 128 cells of the head in both axes.
func (g *Game) plot(dst *platformcore.Screen, field platformcore.Rect, head, p core.Point, r rune, c platformcore.Color) {
	dx := int(int8(p.X - head.X))
	dy := int(int8(p.Y - head.Y))
	cx, cy := field.Center()
	sx, sy := cx+dx, cy-dy
	if field.Contains(sx, sy) {
		dst.SetColored(sx, sy, r, c)
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	box := platformcore.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
