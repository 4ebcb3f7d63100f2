package hexmatch

import (
	"fmt"

	"github.com/vovakirdan/hexarcade/internal/core"
	"github.com/vovakirdan/hexarcade/internal/hexgrid"
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	dst.DrawBox(g.view.frame(), core.ColorGray)
	g.renderTiles(dst)
	if g.phase == phaseIdle {
		g.renderSelection(dst)
	}
	g.renderHelp(dst)
	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := g.view.minScreen()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d, please resize terminal", w, h))
}

func (g *Game) renderHUD(dst *core.Screen) {
	frame := g.view.frame()
	dst.DrawTextColored(frame.X, 0, g.Title(), core.ColorBrightWhite)

	info := fmt.Sprintf("Score: %d  Moves: %d", g.score, g.moves)
	if g.bombsEnabled() {
		info += fmt.Sprintf("  Bombs: %d", g.board.Session().BombCount())
	}
	x := frame.Right() - len(info)
	dst.DrawText(max(x, frame.X+len(g.Title())+2), 0, info)
}

func (g *Game) renderHelp(dst *core.Screen) {
	help := "arrows select  e/space rotate  z rotate back  p pause  q quit"
	dst.DrawTextCentered(g.view.frame().Bottom(), help)
}

// renderTiles draws settled tiles at their slot and falling tiles at their
// interpolated position.
func (g *Game) renderTiles(dst *core.Screen) {
	moving := make(map[*hexgrid.Tile]hexgrid.Point, len(g.anims))
	for i := range g.anims {
		moving[g.anims[i].Tile] = g.anims[i].Position()
	}
	flashing := make(map[*hexgrid.Tile]bool, len(g.exploding))
	for _, t := range g.exploding {
		flashing[t] = true
	}

	l := g.board.Layout()
	for _, t := range g.board.Grid().Tiles() {
		p, ok := moving[t]
		if !ok {
			p = l.Position(t.Coord())
		}
		fill := '█'
		switch {
		case flashing[t] && (g.phaseTicks/2)%2 == 0:
			fill = '░'
		case g.phase == phaseIdle && g.selected.Contains(t.Coord()):
			fill = '▓'
		}
		g.drawTile(dst, t, p, fill)
	}
}

// drawTile draws one hexagon. Rows above the board are clipped so tiles
// can fall in from outside.
func (g *Game) drawTile(dst *core.Screen, t *hexgrid.Tile, p hexgrid.Point, fill rune) {
	x, y := g.view.tileCell(p)
	color := core.PaletteColor(t.Color().Index)

	top := []rune{'▗', fill, fill, fill, '▖'}
	bottom := []rune{'▝', fill, fill, fill, '▘'}
	if n, ok := t.Counter(); ok {
		top[2] = counterRune(n)
	}

	for i, rows := range [tileH][]rune{top, bottom} {
		row := y + i
		if row < g.view.originY {
			continue
		}
		for j, r := range rows {
			dst.SetColored(x+j, row, r, color)
		}
	}
}

func counterRune(n int) rune {
	if n > 9 {
		return '+'
	}
	return rune('0' + n)
}

// renderSelection marks the vertex shared by the selected triple.
func (g *Game) renderSelection(dst *core.Screen) {
	x, y := g.view.pointCell(g.selected.Center(g.board.Layout()))
	dst.SetColored(x, y, '◆', core.ColorBrightWhite)
}

func (g *Game) renderOverlays(dst *core.Screen) {
	frame := g.view.frame()
	_, cy := frame.Center()

	switch {
	case g.phase == phaseOver:
		reason := "No moves left"
		if g.endReason == EndReasonBomb {
			reason = "A bomb went off"
		}
		g.drawBanner(dst, cy-1, "GAME OVER", core.ColorRed)
		g.drawBanner(dst, cy, reason, core.ColorWhite)
		g.drawBanner(dst, cy+1, fmt.Sprintf("Score %d - R to restart", g.score), core.ColorYellow)
	case g.paused:
		g.drawBanner(dst, cy, "PAUSED", core.ColorYellow)
	}
}

// drawBanner writes text centred on the board with a blank margin.
func (g *Game) drawBanner(dst *core.Screen, y int, text string, color core.Color) {
	padded := "  " + text + "  "
	frame := g.view.frame()
	x := frame.X + (frame.W-len([]rune(padded)))/2
	dst.DrawTextColored(x, y, padded, color)
}
