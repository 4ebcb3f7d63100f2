package hexgrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/hexarcade/internal/hexgrid"
)

func TestNewTileIsUninitialized(t *testing.T) {
	tile := hexgrid.NewTile()
	assert.Equal(t, hexgrid.TileUninitialized, tile.State())
	assert.False(t, tile.IsBomb())
	_, ok := tile.Counter()
	assert.False(t, ok)
}

func TestTilePlace(t *testing.T) {
	palette := testPalette()
	tile := hexgrid.NewTile()

	require.NoError(t, tile.Place(hexgrid.C(1, 2), palette.At(2), hexgrid.TileBomb, 4))
	assert.Equal(t, hexgrid.C(1, 2), tile.Coord())
	assert.Equal(t, 2, tile.Color().Index)
	assert.Equal(t, hexgrid.TilePlaced, tile.State())
	n, ok := tile.Counter()
	require.True(t, ok)
	assert.Equal(t, 4, n)

	require.NoError(t, tile.Place(hexgrid.C(1, 2), palette.At(2), hexgrid.TileNormal, 9))
	_, ok = tile.Counter()
	assert.False(t, ok)
}

func TestTilePlaceRejectsEmptyBomb(t *testing.T) {
	tile := hexgrid.NewTile()
	err := tile.Place(hexgrid.C(0, 0), testPalette().At(0), hexgrid.TileBomb, 0)
	assert.ErrorIs(t, err, hexgrid.ErrCounterExhausted)
}

func TestSubscribeRequiresBomb(t *testing.T) {
	tile := hexgrid.NewTile()
	require.NoError(t, tile.Place(hexgrid.C(0, 0), testPalette().At(0), hexgrid.TileNormal, 0))
	assert.ErrorIs(t, tile.Subscribe(func(*hexgrid.Tile) {}), hexgrid.ErrNotBomb)
}

func TestDecrementCounterNotifiesOnce(t *testing.T) {
	tile := hexgrid.NewTile()
	require.NoError(t, tile.Place(hexgrid.C(0, 0), testPalette().At(0), hexgrid.TileBomb, 3))

	calls := 0
	require.NoError(t, tile.Subscribe(func(got *hexgrid.Tile) {
		assert.Same(t, tile, got)
		calls++
	}))

	for i := 0; i < 2; i++ {
		exhausted, err := tile.DecrementCounter()
		require.NoError(t, err)
		assert.False(t, exhausted)
	}
	assert.Equal(t, 0, calls)

	exhausted, err := tile.DecrementCounter()
	require.NoError(t, err)
	assert.True(t, exhausted)
	assert.Equal(t, 1, calls)

	_, err = tile.DecrementCounter()
	assert.ErrorIs(t, err, hexgrid.ErrCounterExhausted)
	assert.Equal(t, 1, calls)
}

func TestDecrementCounterRequiresBomb(t *testing.T) {
	tile := hexgrid.NewTile()
	require.NoError(t, tile.Place(hexgrid.C(0, 0), testPalette().At(0), hexgrid.TileNormal, 0))
	_, err := tile.DecrementCounter()
	assert.ErrorIs(t, err, hexgrid.ErrNotBomb)
}

func TestPlaceAsNormalDropsObservers(t *testing.T) {
	palette := testPalette()
	tile := hexgrid.NewTile()
	require.NoError(t, tile.Place(hexgrid.C(0, 0), palette.At(0), hexgrid.TileBomb, 1))

	calls := 0
	require.NoError(t, tile.Subscribe(func(*hexgrid.Tile) { calls++ }))

	require.NoError(t, tile.Place(hexgrid.C(0, 0), palette.At(1), hexgrid.TileNormal, 0))
	require.NoError(t, tile.Place(hexgrid.C(0, 0), palette.At(1), hexgrid.TileBomb, 1))

	exhausted, err := tile.DecrementCounter()
	require.NoError(t, err)
	assert.True(t, exhausted)
	assert.Equal(t, 0, calls)
}

func TestTileExplode(t *testing.T) {
	g := hexgrid.NewGrid(3, 3)
	tile := put(t, g, hexgrid.C(1, 1), testPalette().At(0))

	require.NoError(t, tile.Explode(g))
	assert.Equal(t, hexgrid.TileExploded, tile.State())
	_, ok := g.Get(hexgrid.C(1, 1))
	assert.False(t, ok)

	assert.ErrorIs(t, tile.Explode(g), hexgrid.ErrTileState)
}

func TestTileExplodeOutsideItsSlot(t *testing.T) {
	g := hexgrid.NewGrid(3, 3)
	tile := hexgrid.NewTile()
	require.NoError(t, tile.Place(hexgrid.C(2, 2), testPalette().At(0), hexgrid.TileNormal, 0))

	err := tile.Explode(g)
	require.ErrorIs(t, err, hexgrid.ErrInvariantViolation)

	var inv *hexgrid.InvariantError
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, hexgrid.C(2, 2), inv.Slot)
}
