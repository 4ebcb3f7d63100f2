package hexgrid_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/hexarcade/internal/hexgrid"
)

func TestConflictingNeighborColorsDoublesOnly(t *testing.T) {
	g := hexgrid.NewGrid(5, 5)
	palette := testPalette()
	center := hexgrid.C(2, 2)

	put(t, g, center.Neighbor(hexgrid.DirUp), palette.At(3))
	put(t, g, center.Neighbor(hexgrid.DirDownRight), palette.At(3))
	put(t, g, center.Neighbor(hexgrid.DirDownLeft), palette.At(5))

	got := hexgrid.ConflictingNeighborColors(g, center)
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Index)
}

func TestConflictingNeighborColors(t *testing.T) {
	palette := testPalette()

	tests := []struct {
		name     string
		center   hexgrid.Coord
		colors   map[hexgrid.Direction]int
		expected []int
	}{
		{
			name:     "no neighbors",
			center:   hexgrid.C(2, 2),
			expected: nil,
		},
		{
			name:   "all distinct",
			center: hexgrid.C(2, 2),
			colors: map[hexgrid.Direction]int{
				hexgrid.DirUp: 0, hexgrid.DirUpRight: 1, hexgrid.DirDownRight: 2,
				hexgrid.DirDown: 3, hexgrid.DirDownLeft: 4, hexgrid.DirUpLeft: 5,
			},
			expected: nil,
		},
		{
			name:   "three pairs",
			center: hexgrid.C(3, 2),
			colors: map[hexgrid.Direction]int{
				hexgrid.DirUp: 4, hexgrid.DirUpRight: 1, hexgrid.DirDownRight: 4,
				hexgrid.DirDown: 1, hexgrid.DirDownLeft: 0, hexgrid.DirUpLeft: 0,
			},
			expected: []int{0, 1, 4},
		},
		{
			name:   "triple counts once",
			center: hexgrid.C(2, 2),
			colors: map[hexgrid.Direction]int{
				hexgrid.DirUp: 2, hexgrid.DirDown: 2, hexgrid.DirUpLeft: 2, hexgrid.DirUpRight: 1,
			},
			expected: []int{2},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := hexgrid.NewGrid(6, 6)
			for d, idx := range tc.colors {
				put(t, g, tc.center.Neighbor(d), palette.At(idx))
			}

			var got []int
			for _, c := range hexgrid.ConflictingNeighborColors(g, tc.center) {
				got = append(got, c.Index)
			}
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestConflictingNeighborColorsAtEdge(t *testing.T) {
	g := hexgrid.NewGrid(3, 3)
	palette := testPalette()
	corner := hexgrid.C(0, 0)

	// Only Up and UpRight exist for the bottom-left corner.
	put(t, g, hexgrid.C(0, 1), palette.At(1))
	put(t, g, hexgrid.C(1, 0), palette.At(1))

	got := hexgrid.ConflictingNeighborColors(g, corner)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Index)
}

func TestPaletteIndicesAreDense(t *testing.T) {
	p := hexgrid.NewPalette([]hexgrid.Color{{Index: 7, Name: "a"}, {Index: 7, Name: "b"}})
	assert.Equal(t, 0, p.At(0).Index)
	assert.Equal(t, 1, p.At(1).Index)
	assert.Equal(t, 2, p.Len())
}

func TestColorSameByIndex(t *testing.T) {
	a := hexgrid.Color{Index: 1, Name: "red", Hex: "#ff0000"}
	b := hexgrid.Color{Index: 1, Name: "crimson", Hex: "#dc143c"}
	c := hexgrid.Color{Index: 2, Name: "red", Hex: "#ff0000"}
	assert.True(t, a.Same(b))
	assert.False(t, a.Same(c))
}

func TestPickNeverReturnsExcluded(t *testing.T) {
	palette := hexgrid.DefaultPalette()
	rng := rand.New(rand.NewSource(7))
	excluded := []hexgrid.Color{palette.At(0), palette.At(2), palette.At(4)}

	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		c := palette.Pick(rng, excluded)
		require.NotContains(t, []int{0, 2, 4}, c.Index)
		seen[c.Index] = true
	}
	assert.Equal(t, map[int]bool{1: true, 3: true}, seen)
}

func TestPickWithoutExclusionUsesWholePalette(t *testing.T) {
	palette := hexgrid.DefaultPalette()
	rng := rand.New(rand.NewSource(11))

	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		seen[palette.Pick(rng, nil).Index] = true
	}
	assert.Len(t, seen, palette.Len())
}

func TestPickPanicsWhenEverythingExcluded(t *testing.T) {
	palette := hexgrid.NewPalette([]hexgrid.Color{{Name: "a"}, {Name: "b"}})
	rng := rand.New(rand.NewSource(1))
	assert.Panics(t, func() {
		palette.Pick(rng, palette.Colors())
	})
}

func TestPaletteCheckExclusion(t *testing.T) {
	small := hexgrid.NewPalette([]hexgrid.Color{{Name: "a"}, {Name: "b"}, {Name: "c"}})
	assert.ErrorIs(t, small.CheckExclusion(hexgrid.MaxConflictingColors), hexgrid.ErrPaletteExhausted)
	assert.NoError(t, hexgrid.DefaultPalette().CheckExclusion(hexgrid.MaxConflictingColors))
}
