package hexgrid

import "errors"

// ResolveFall moves t down to the lowest empty slot of its column.
// The grid and the tile's coordinate change together before ResolveFall
// returns, so animating between start and end never needs the grid.
// When the lowest empty slot is not below t, t is already settled and
// start == end. A full column has no empty slot and is treated the same
// way: ResolveFall returns start == end and a nil error instead of
// ErrColumnFull.
func ResolveFall(g *Grid, l Layout, t *Tile) (start, end Point, err error) {
	from := t.Coord()
	start = l.Position(from)

	if err := g.checkSlot(from); err != nil {
		return start, start, err
	}
	if held, ok := g.Get(from); !ok || held != t {
		return start, start, &InvariantError{Slot: from, Tile: from, Cause: "falling tile not in its slot"}
	}

	// Vacating from would make it the lowest empty slot of a full column.
	target, err := g.LowestEmptySlot(from.Col)
	if errors.Is(err, ErrColumnFull) {
		target = from
	} else if err != nil {
		return start, start, err
	}
	if target.Row >= from.Row {
		return start, start, nil
	}

	t.state = TileFalling
	// Both slots are known valid, Set cannot fail here.
	_ = g.Set(from, nil)
	_ = g.Set(target, t)
	t.moveTo(target)
	t.state = TilePlaced

	return start, l.Position(target), nil
}

// FallAnimation is the presentation-side record of a fall: two positions
// and a progress fraction. It never reads or writes the grid.
type FallAnimation struct {
	Tile     *Tile
	From     Point
	To       Point
	Progress float64 // 0.0 -> 1.0
}

// Advance sets progress from elapsed and total durations (any unit).
func (a *FallAnimation) Advance(elapsed, total int) {
	if total <= 0 {
		a.Progress = 1
		return
	}
	p := float64(elapsed) / float64(total)
	if p > 1 {
		p = 1
	}
	if p < 0 {
		p = 0
	}
	a.Progress = p
}

// Done reports whether the animation reached its end.
func (a *FallAnimation) Done() bool {
	return a.Progress >= 1
}

// Position returns the interpolated position with an ease-out curve.
func (a *FallAnimation) Position() Point {
	return a.From.Lerp(a.To, easeOutQuad(a.Progress))
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}
