package hexgrid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/hexarcade/internal/hexgrid"
)

// testPalette has six colours so tests can refer to indices 0..5.
func testPalette() hexgrid.Palette {
	return hexgrid.NewPalette([]hexgrid.Color{
		{Name: "red"}, {Name: "green"}, {Name: "blue"},
		{Name: "yellow"}, {Name: "purple"}, {Name: "cyan"},
	})
}

// put places a normal tile of the given colour directly into g.
func put(t *testing.T, g *hexgrid.Grid, c hexgrid.Coord, color hexgrid.Color) *hexgrid.Tile {
	t.Helper()
	tile := hexgrid.NewTile()
	require.NoError(t, tile.Place(c, color, hexgrid.TileNormal, 0))
	require.NoError(t, g.Set(c, tile))
	return tile
}

// newBoard builds a board of the given size with the test palette.
func newBoard(t *testing.T, w, h int) *hexgrid.Board {
	t.Helper()
	opts := hexgrid.DefaultOptions()
	opts.Width = w
	opts.Height = h
	opts.Palette = testPalette()
	opts.Seed = 42
	b, err := hexgrid.NewBoard(opts)
	require.NoError(t, err)
	return b
}
