package hexmatch

import (
	"math"

	"github.com/vovakirdan/hexarcade/internal/core"
	"github.com/vovakirdan/hexarcade/internal/hexgrid"
)

// defaultSelection picks the triple nearest the middle of the board.
func (g *Game) defaultSelection() hexgrid.Triple {
	l := g.board.Layout()
	lo, hi := l.Bounds(g.board.Grid().W, g.board.Grid().H)
	mid := lo.Lerp(hi, 0.5)

	tr, _ := hexgrid.NearestTriple(l, mid, hexgrid.AllTriples(g.board.Grid()))
	return tr
}

// moveSelection jumps to the nearest triple whose centre lies in direction
// (dx, dy). Y grows upward. Sideways drift costs twice as much as distance
// along the direction, so arrows follow rows and columns.
func (g *Game) moveSelection(dx, dy int) {
	l := g.board.Layout()
	from := g.selected.Center(l)

	best := g.selected
	bestCost := math.MaxFloat64
	for _, tr := range hexgrid.AllTriples(g.board.Grid()) {
		d := tr.Center(l).Sub(from)
		along := d.X*float64(dx) + d.Y*float64(dy)
		if along < 1e-6 {
			continue
		}
		across := math.Abs(d.X*float64(dy) - d.Y*float64(dx))
		if cost := along + 2*across; cost < bestCost {
			best, bestCost = tr, cost
		}
	}
	g.selected = best
}

// tripleAt resolves a click to the nearest triple around the clicked tile.
func (g *Game) tripleAt(p core.Pointer) (hexgrid.Triple, bool) {
	if !g.view.frame().Contains(p.X, p.Y) {
		return hexgrid.Triple{}, false
	}
	l := g.board.Layout()
	pt := g.view.layoutPoint(p.X, p.Y)

	slot, ok := l.NearestSlot(g.board.Grid(), pt)
	if !ok {
		return hexgrid.Triple{}, false
	}
	tr, ok := hexgrid.NearestTriple(l, pt, hexgrid.TriplesAt(g.board.Grid(), slot))
	if !ok {
		return hexgrid.Triple{}, false
	}
	return tr.Canonical(), true
}
