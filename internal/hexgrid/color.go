package hexgrid

import (
	"fmt"
	"sort"
)

// MaxConflictingColors is the largest set ConflictingNeighborColors can
// return: six neighbours form at most three same-colour pairs.
const MaxConflictingColors = int(DirectionCount) / 2

// Color is a tile colour. Equality is by Index only; Name and Hex are
// display values.
type Color struct {
	Index int
	Name  string
	Hex   string // Display value, "#rrggbb"
}

// Same reports whether two colours share an index.
func (c Color) Same(other Color) bool {
	return c.Index == other.Index
}

// String returns the colour name, or its index when unnamed.
func (c Color) String() string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("color#%d", c.Index)
}

// Rand is the subset of *rand.Rand the engine draws from.
type Rand interface {
	Intn(n int) int
}

// Palette is the ordered set of colours tiles can take.
type Palette struct {
	colors []Color
}

// NewPalette builds a palette. Colour indices are reassigned to their
// position so that indices are stable and dense.
func NewPalette(colors []Color) Palette {
	p := Palette{colors: make([]Color, len(colors))}
	for i, c := range colors {
		c.Index = i
		p.colors[i] = c
	}
	return p
}

// DefaultPalette returns the five-colour palette used when nothing is configured.
func DefaultPalette() Palette {
	return NewPalette([]Color{
		{Name: "red", Hex: "#e74c3c"},
		{Name: "green", Hex: "#2ecc71"},
		{Name: "blue", Hex: "#3498db"},
		{Name: "yellow", Hex: "#f1c40f"},
		{Name: "purple", Hex: "#9b59b6"},
	})
}

// Len returns the number of colours.
func (p Palette) Len() int {
	return len(p.colors)
}

// At returns the colour with index i.
func (p Palette) At(i int) Color {
	return p.colors[i]
}

// Colors returns a copy of the palette colours in index order.
func (p Palette) Colors() []Color {
	out := make([]Color, len(p.colors))
	copy(out, p.colors)
	return out
}

// CheckExclusion verifies that Pick always has a candidate when up to
// maxExcluded colours are excluded. Call it once at setup.
func (p Palette) CheckExclusion(maxExcluded int) error {
	if p.Len() <= maxExcluded {
		return fmt.Errorf("%d colors, up to %d excluded: %w", p.Len(), maxExcluded, ErrPaletteExhausted)
	}
	return nil
}

// Pick returns a uniformly random colour that is not in excluded.
// With nothing excluded every colour is a candidate. The palette must be
// larger than excluded (see CheckExclusion).
func (p Palette) Pick(rng Rand, excluded []Color) Color {
	if len(excluded) == 0 {
		return p.colors[rng.Intn(len(p.colors))]
	}

	candidates := make([]Color, 0, len(p.colors))
	for _, c := range p.colors {
		if !containsColor(excluded, c) {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		panic(fmt.Sprintf("%v: all %d colors excluded", ErrPaletteExhausted, p.Len()))
	}
	return candidates[rng.Intn(len(candidates))]
}

// containsColor reports whether set holds a colour with c's index.
func containsColor(set []Color, c Color) bool {
	for _, s := range set {
		if s.Same(c) {
			return true
		}
	}
	return false
}

// ConflictingNeighborColors returns the colours held by two or more of c's
// occupied neighbours, ordered by index. A colour seen once does not count.
func ConflictingNeighborColors(g *Grid, c Coord) []Color {
	counts := make(map[int]int, DirectionCount)
	byIndex := make(map[int]Color, DirectionCount)

	for _, n := range c.Neighbors() {
		t, ok := g.Get(n)
		if !ok {
			continue
		}
		color := t.Color()
		counts[color.Index]++
		byIndex[color.Index] = color
	}

	var result []Color
	for idx, n := range counts {
		if n >= 2 {
			result = append(result, byIndex[idx])
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Index < result[j].Index
	})
	return result
}
