package hexgrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/hexarcade/internal/hexgrid"
)

func TestResolveFall(t *testing.T) {
	g := hexgrid.NewGrid(2, 5)
	l := hexgrid.DefaultLayout()
	palette := testPalette()

	put(t, g, hexgrid.C(0, 0), palette.At(0))
	put(t, g, hexgrid.C(0, 1), palette.At(1))
	tile := put(t, g, hexgrid.C(0, 3), palette.At(2))

	start, end, err := hexgrid.ResolveFall(g, l, tile)
	require.NoError(t, err)

	assert.Equal(t, l.Position(hexgrid.C(0, 3)), start)
	assert.Equal(t, l.Position(hexgrid.C(0, 2)), end)
	assert.Equal(t, hexgrid.C(0, 2), tile.Coord())
	assert.Equal(t, hexgrid.TilePlaced, tile.State())

	held, ok := g.Get(hexgrid.C(0, 2))
	require.True(t, ok)
	assert.Same(t, tile, held)
	_, ok = g.Get(hexgrid.C(0, 3))
	assert.False(t, ok)
	assert.NoError(t, g.CheckInvariant())
}

func TestResolveFallSettledTile(t *testing.T) {
	g := hexgrid.NewGrid(2, 3)
	l := hexgrid.DefaultLayout()
	palette := testPalette()

	bottom := put(t, g, hexgrid.C(0, 0), palette.At(0))
	start, end, err := hexgrid.ResolveFall(g, l, bottom)
	require.NoError(t, err)
	assert.Equal(t, start, end)
	assert.Equal(t, hexgrid.C(0, 0), bottom.Coord())

	put(t, g, hexgrid.C(0, 1), palette.At(1))
	top := put(t, g, hexgrid.C(0, 2), palette.At(2))
	_, err = g.LowestEmptySlot(0)
	require.ErrorIs(t, err, hexgrid.ErrColumnFull)

	start, end, err = hexgrid.ResolveFall(g, l, top)
	require.NoError(t, err)
	assert.Equal(t, start, end)
	assert.NoError(t, g.CheckInvariant())
}

func TestResolveFallTileNotInSlot(t *testing.T) {
	g := hexgrid.NewGrid(2, 3)
	tile := hexgrid.NewTile()
	require.NoError(t, tile.Place(hexgrid.C(1, 2), testPalette().At(0), hexgrid.TileNormal, 0))

	_, _, err := hexgrid.ResolveFall(g, hexgrid.DefaultLayout(), tile)
	assert.ErrorIs(t, err, hexgrid.ErrInvariantViolation)
}

func TestFallAnimation(t *testing.T) {
	a := hexgrid.FallAnimation{
		From: hexgrid.Point{X: 0, Y: 10},
		To:   hexgrid.Point{X: 0, Y: 2},
	}
	assert.Equal(t, a.From, a.Position())
	assert.False(t, a.Done())

	a.Advance(5, 10)
	assert.InDelta(t, 0.5, a.Progress, 1e-9)
	// Ease-out covers three quarters of the distance at half time.
	assert.InDelta(t, 4.0, a.Position().Y, 1e-9)

	a.Advance(20, 10)
	assert.True(t, a.Done())
	assert.Equal(t, a.To, a.Position())

	a.Advance(-3, 10)
	assert.Zero(t, a.Progress)

	a.Advance(1, 0)
	assert.True(t, a.Done())
}
