package hexgrid

import "math"

// Point is a position in layout space. Y grows upward like grid rows.
type Point struct {
	X float64
	Y float64
}

// Add returns p + o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p - o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Scale returns p * k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// DistSq returns the squared Euclidean distance to o.
func (p Point) DistSq(o Point) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return dx*dx + dy*dy
}

// Lerp interpolates from p to o; t=0 is p and t=1 is o.
func (p Point) Lerp(o Point, t float64) Point {
	return p.Add(o.Sub(p).Scale(t))
}

// Layout maps slots to positions for flat-topped hexagons.
// Odd columns are shifted up by half a row.
type Layout struct {
	ColStep float64 // Horizontal distance between adjacent column centres
	RowStep float64 // Vertical distance between adjacent row centres
}

// DefaultLayout is the geometry of unit-radius flat-topped hexagons.
func DefaultLayout() Layout {
	return Layout{
		ColStep: 1.5,
		RowStep: math.Sqrt(3),
	}
}

// Position returns the centre of slot c.
func (l Layout) Position(c Coord) Point {
	y := float64(c.Row) * l.RowStep
	if !c.IsEvenColumn() {
		y += l.RowStep / 2
	}
	return Point{X: float64(c.Col) * l.ColStep, Y: y}
}

// SpawnPosition returns where the k-th tile (0-based) entering column col from
// above a grid of height h starts.
func (l Layout) SpawnPosition(col, h, k int) Point {
	return l.Position(C(col, h+k))
}

// NearestSlot returns the grid slot whose centre is closest to p.
// Ties go to the first slot in AllCoords order.
func (l Layout) NearestSlot(g *Grid, p Point) (Coord, bool) {
	best := Coord{}
	bestDist := math.MaxFloat64
	found := false
	for _, c := range g.AllCoords() {
		d := l.Position(c).DistSq(p)
		if d < bestDist {
			best, bestDist, found = c, d, true
		}
	}
	return best, found
}

// Bounds returns the lowest and highest slot centres of a w x h grid.
func (l Layout) Bounds(w, h int) (lo, hi Point) {
	lo = l.Position(C(0, 0))
	hi = Point{X: float64(w-1) * l.ColStep, Y: float64(h-1)*l.RowStep + l.RowStep/2}
	return lo, hi
}
