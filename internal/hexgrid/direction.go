// Package hexgrid is the engine behind hexmatch: offset hex coordinates, the
// slot store, neighbour-biased colour placement, tiles, triples and falls.
// It is UI-agnostic and deterministic for a given RNG seed.
//
// A Board is not safe for concurrent use. All mutations are expected to come
// from one goroutine (the game loop that owns it).
package hexgrid

// Direction is one of the six neighbour directions of a hex slot.
// Values are ordered clockwise starting at Up.
type Direction uint8

const (
	DirUp Direction = iota
	DirUpRight
	DirDownRight
	DirDown
	DirDownLeft
	DirUpLeft

	DirectionCount // Sentinel value for iteration
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirUpRight:
		return "UpRight"
	case DirDownRight:
		return "DownRight"
	case DirDown:
		return "Down"
	case DirDownLeft:
		return "DownLeft"
	case DirUpLeft:
		return "UpLeft"
	default:
		return "Unknown"
	}
}

// Opposite returns the direction pointing back the other way.
func (d Direction) Opposite() Direction {
	return (d + DirectionCount/2) % DirectionCount
}

// Clockwise returns the next direction in clockwise order.
func (d Direction) Clockwise() Direction {
	return (d + 1) % DirectionCount
}

// AllDirections returns the six directions in clockwise order.
func AllDirections() []Direction {
	return []Direction{DirUp, DirUpRight, DirDownRight, DirDown, DirDownLeft, DirUpLeft}
}

// parity selects the column class of the offset layout.
type parity uint8

const (
	evenColumn parity = iota
	oddColumn
)

// offset is a (column, row) delta.
type offset struct {
	dc, dr int
}

// neighborOffsets holds the adjacency rule: direction x column parity -> delta.
// Odd columns sit half a slot higher than even columns.
var neighborOffsets = [DirectionCount][2]offset{
	DirUp:        {evenColumn: {0, 1}, oddColumn: {0, 1}},
	DirUpRight:   {evenColumn: {1, 0}, oddColumn: {1, 1}},
	DirDownRight: {evenColumn: {1, -1}, oddColumn: {1, 0}},
	DirDown:      {evenColumn: {0, -1}, oddColumn: {0, -1}},
	DirDownLeft:  {evenColumn: {-1, -1}, oddColumn: {-1, 0}},
	DirUpLeft:    {evenColumn: {-1, 0}, oddColumn: {-1, 1}},
}
