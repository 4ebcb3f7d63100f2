package hexmatch

import (
	"github.com/vovakirdan/hexarcade/internal/core"
	"github.com/vovakirdan/hexarcade/internal/hexgrid"
)

// Tiles are drawn five cells wide and two rows tall. Columns are six cells
// apart and rows two, so the half-row shift of odd columns is one cell.
const (
	tileW     = 5
	tileH     = 2
	colCells  = 6
	rowCells  = 2
	hudHeight = 1 // Score line above the board box
	helpLines = 1 // Key help below the board box
)

// view maps layout space to screen cells and back.
type view struct {
	originX int     // Left cell of column 0
	originY int     // Top row of the highest slot
	sx      float64 // Cells per layout unit, horizontally
	sy      float64 // Rows per layout unit, vertically
	maxY    float64 // Layout Y of the highest slot centre
	boardW  int     // Board width in cells
	boardH  int     // Board height in rows
}

func newView(b *hexgrid.Board, screenW int) view {
	l := b.Layout()
	g := b.Grid()
	_, hi := l.Bounds(g.W, g.H)

	v := view{
		sx:   colCells / l.ColStep,
		sy:   rowCells / l.RowStep,
		maxY: hi.Y,
	}
	v.boardW = roundHalf(hi.X*v.sx) + tileW
	v.boardH = roundHalf(hi.Y*v.sy) + tileH
	v.originX = max((screenW-v.boardW)/2, 2)
	v.originY = hudHeight + 1
	return v
}

// minScreen is the smallest screen the board, its box and the text fit in.
func (v view) minScreen() (w, h int) {
	return v.boardW + 4, hudHeight + v.boardH + 2 + helpLines
}

// frame is the box drawn around the board.
func (v view) frame() core.Rect {
	return core.NewRect(v.originX-2, v.originY-1, v.boardW+4, v.boardH+2)
}

// tileCell returns the top-left cell of a tile centred at p.
func (v view) tileCell(p hexgrid.Point) (x, y int) {
	x = v.originX + roundHalf(p.X*v.sx)
	y = v.originY + roundHalf((v.maxY-p.Y)*v.sy)
	return x, y
}

// pointCell returns the cell at the centre of a tile centred at p.
// It shares tileCell's rounding.
func (v view) pointCell(p hexgrid.Point) (x, y int) {
	x, y = v.tileCell(p)
	return x + tileW/2, y + tileH/2
}

// layoutPoint returns the layout position whose tile is centred on cell (x, y).
// It inverts pointCell.
func (v view) layoutPoint(x, y int) hexgrid.Point {
	fx := float64(x - v.originX - tileW/2)
	fy := float64(y - v.originY - tileH/2)
	return hexgrid.Point{X: fx / v.sx, Y: v.maxY - fy/v.sy}
}
