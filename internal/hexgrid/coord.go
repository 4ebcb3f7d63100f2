package hexgrid

import "fmt"

// Coord is a slot position on the offset hex grid.
// Col increases to the right, Row increases upward (row 0 is the bottom).
type Coord struct {
	Col int
	Row int
}

// C is a convenience constructor for Coord.
func C(col, row int) Coord {
	return Coord{Col: col, Row: row}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// IsEvenColumn reports whether the coordinate lies in an even column.
func (c Coord) IsEvenColumn() bool {
	return c.Col%2 == 0
}

func (c Coord) parity() parity {
	if c.IsEvenColumn() {
		return evenColumn
	}
	return oddColumn
}

// Neighbor returns the adjacent coordinate in direction d.
// It never fails; validity is a question for the Grid.
func (c Coord) Neighbor(d Direction) Coord {
	off := neighborOffsets[d%DirectionCount][c.parity()]
	return Coord{Col: c.Col + off.dc, Row: c.Row + off.dr}
}

// Neighbors returns the six adjacent coordinates in clockwise order from Up.
func (c Coord) Neighbors() [DirectionCount]Coord {
	var result [DirectionCount]Coord
	for d := range DirectionCount {
		result[d] = c.Neighbor(d)
	}
	return result
}

// IsAdjacent reports whether other is one of c's six neighbours.
func (c Coord) IsAdjacent(other Coord) bool {
	for _, n := range c.Neighbors() {
		if n == other {
			return true
		}
	}
	return false
}

// less orders coordinates by column, then row.
func (c Coord) less(other Coord) bool {
	if c.Col != other.Col {
		return c.Col < other.Col
	}
	return c.Row < other.Row
}
