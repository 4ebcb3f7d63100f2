package hexgrid

import "fmt"

// Grid is the slot store: a W x H table where every slot holds at most one tile.
// Slots are stored in row-major order: index = row*W + col.
type Grid struct {
	W     int
	H     int
	slots []*Tile
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	return &Grid{
		W:     w,
		H:     h,
		slots: make([]*Tile, w*h),
	}
}

// index converts a coordinate to a flat slot index.
func (g *Grid) index(c Coord) int {
	return c.Row*g.W + c.Col
}

// IsValid reports whether c lies inside the grid.
func (g *Grid) IsValid(c Coord) bool {
	return c.Col >= 0 && c.Col < g.W && c.Row >= 0 && c.Row < g.H
}

// Get returns the tile at c. Invalid coordinates and empty slots both
// report false.
func (g *Grid) Get(c Coord) (*Tile, bool) {
	if !g.IsValid(c) {
		return nil, false
	}
	t := g.slots[g.index(c)]
	return t, t != nil
}

// Set overwrites the slot at c. A nil tile empties the slot.
// Keeping t.Coord() == c is the caller's job.
func (g *Grid) Set(c Coord, t *Tile) error {
	if !g.IsValid(c) {
		return fmt.Errorf("set %s: %w", c, ErrInvalidCoordinate)
	}
	g.slots[g.index(c)] = t
	return nil
}

// LowestEmptySlot scans column col from the bottom row upward and returns the
// first empty slot.
func (g *Grid) LowestEmptySlot(col int) (Coord, error) {
	if col < 0 || col >= g.W {
		return Coord{}, fmt.Errorf("column %d: %w", col, ErrInvalidCoordinate)
	}
	for row := 0; row < g.H; row++ {
		c := C(col, row)
		if g.slots[g.index(c)] == nil {
			return c, nil
		}
	}
	return Coord{}, fmt.Errorf("column %d: %w", col, ErrColumnFull)
}

// EmptySlots returns the empty slots of column col, bottom first.
func (g *Grid) EmptySlots(col int) []Coord {
	var result []Coord
	if col < 0 || col >= g.W {
		return result
	}
	for row := 0; row < g.H; row++ {
		c := C(col, row)
		if g.slots[g.index(c)] == nil {
			result = append(result, c)
		}
	}
	return result
}

// HasEmpty reports whether column col has at least one empty slot.
func (g *Grid) HasEmpty(col int) bool {
	return len(g.EmptySlots(col)) > 0
}

// AllCoords returns every coordinate of the grid, column by column,
// bottom row first.
func (g *Grid) AllCoords() []Coord {
	coords := make([]Coord, 0, g.W*g.H)
	for col := 0; col < g.W; col++ {
		for row := 0; row < g.H; row++ {
			coords = append(coords, C(col, row))
		}
	}
	return coords
}

// Tiles returns all placed tiles in the same order as AllCoords.
func (g *Grid) Tiles() []*Tile {
	tiles := make([]*Tile, 0, len(g.slots))
	for _, c := range g.AllCoords() {
		if t, ok := g.Get(c); ok {
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// FilledCount returns the number of occupied slots.
func (g *Grid) FilledCount() int {
	count := 0
	for _, t := range g.slots {
		if t != nil {
			count++
		}
	}
	return count
}

// IsFull reports whether every slot is occupied.
func (g *Grid) IsFull() bool {
	return g.FilledCount() == len(g.slots)
}

// Clear empties every slot.
func (g *Grid) Clear() {
	for i := range g.slots {
		g.slots[i] = nil
	}
}

// checkSlot verifies that the tile at c (if any) agrees with c.
func (g *Grid) checkSlot(c Coord) error {
	t, ok := g.Get(c)
	if !ok {
		return nil
	}
	if t.Coord() != c {
		return &InvariantError{Slot: c, Tile: t.Coord(), Cause: "coordinate mismatch"}
	}
	return nil
}

// CheckInvariant verifies that every populated slot holds a tile whose
// coordinate equals the slot, and that no tile occupies two slots.
func (g *Grid) CheckInvariant() error {
	seen := make(map[*Tile]Coord, len(g.slots))
	for _, c := range g.AllCoords() {
		t, ok := g.Get(c)
		if !ok {
			continue
		}
		if prev, dup := seen[t]; dup {
			return &InvariantError{Slot: c, Tile: prev, Cause: "tile in two slots"}
		}
		seen[t] = c
		if err := g.checkSlot(c); err != nil {
			return err
		}
	}
	return nil
}
