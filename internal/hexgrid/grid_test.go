package hexgrid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/hexarcade/internal/hexgrid"
)

func TestGridIsValid(t *testing.T) {
	g := hexgrid.NewGrid(4, 3)

	tests := []struct {
		coord    hexgrid.Coord
		expected bool
	}{
		{hexgrid.C(0, 0), true},
		{hexgrid.C(3, 2), true},
		{hexgrid.C(-1, 0), false},
		{hexgrid.C(0, -1), false},
		{hexgrid.C(4, 0), false},
		{hexgrid.C(0, 3), false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, g.IsValid(tc.coord), "IsValid(%v)", tc.coord)
	}
}

func TestGridGetSet(t *testing.T) {
	g := hexgrid.NewGrid(3, 3)
	palette := testPalette()

	_, ok := g.Get(hexgrid.C(1, 1))
	assert.False(t, ok, "empty slot")

	_, ok = g.Get(hexgrid.C(9, 9))
	assert.False(t, ok, "out of range is treated as no tile")

	tile := put(t, g, hexgrid.C(1, 1), palette.At(2))
	got, ok := g.Get(hexgrid.C(1, 1))
	require.True(t, ok)
	assert.Same(t, tile, got)

	err := g.Set(hexgrid.C(-1, 0), tile)
	assert.ErrorIs(t, err, hexgrid.ErrInvalidCoordinate)

	require.NoError(t, g.Set(hexgrid.C(1, 1), nil))
	_, ok = g.Get(hexgrid.C(1, 1))
	assert.False(t, ok)
}

func TestLowestEmptySlotSkipsGap(t *testing.T) {
	g := hexgrid.NewGrid(1, 5)
	palette := testPalette()
	for _, row := range []int{0, 1, 3} {
		put(t, g, hexgrid.C(0, row), palette.At(0))
	}

	c, err := g.LowestEmptySlot(0)
	require.NoError(t, err)
	assert.Equal(t, hexgrid.C(0, 2), c)
}

func TestLowestEmptySlotErrors(t *testing.T) {
	g := hexgrid.NewGrid(2, 2)
	palette := testPalette()
	put(t, g, hexgrid.C(0, 0), palette.At(0))
	put(t, g, hexgrid.C(0, 1), palette.At(1))

	_, err := g.LowestEmptySlot(0)
	assert.ErrorIs(t, err, hexgrid.ErrColumnFull)

	_, err = g.LowestEmptySlot(5)
	assert.ErrorIs(t, err, hexgrid.ErrInvalidCoordinate)

	c, err := g.LowestEmptySlot(1)
	require.NoError(t, err)
	assert.Equal(t, hexgrid.C(1, 0), c)
}

func TestGridCheckInvariant(t *testing.T) {
	g := hexgrid.NewGrid(3, 3)
	palette := testPalette()
	tile := put(t, g, hexgrid.C(0, 0), palette.At(0))
	require.NoError(t, g.CheckInvariant())

	// Same tile in a second slot.
	require.NoError(t, g.Set(hexgrid.C(2, 2), tile))
	err := g.CheckInvariant()
	require.ErrorIs(t, err, hexgrid.ErrInvariantViolation)

	var invErr *hexgrid.InvariantError
	require.True(t, errors.As(err, &invErr))
	assert.Equal(t, hexgrid.C(2, 2), invErr.Slot)

	// Tile whose coordinate disagrees with its only slot.
	require.NoError(t, g.Set(hexgrid.C(0, 0), nil))
	err = g.CheckInvariant()
	assert.ErrorIs(t, err, hexgrid.ErrInvariantViolation)
}

func TestGridCounts(t *testing.T) {
	g := hexgrid.NewGrid(2, 2)
	palette := testPalette()
	assert.Equal(t, 0, g.FilledCount())
	assert.Len(t, g.AllCoords(), 4)

	put(t, g, hexgrid.C(0, 0), palette.At(0))
	put(t, g, hexgrid.C(1, 1), palette.At(1))
	assert.Equal(t, 2, g.FilledCount())
	assert.False(t, g.IsFull())
	assert.Equal(t, []hexgrid.Coord{hexgrid.C(1, 0)}, g.EmptySlots(1))
	assert.Len(t, g.Tiles(), 2)

	g.Clear()
	assert.Equal(t, 0, g.FilledCount())
}
