package hexgrid

import (
	"errors"
	"fmt"
)

// Engine errors. ErrInvalidCoordinate is expected during neighbour scans and
// is handled by skipping; the rest signal a broken calling sequence.
var (
	ErrInvalidCoordinate  = errors.New("hexgrid: invalid coordinate")
	ErrColumnFull         = errors.New("hexgrid: column has no empty slot")
	ErrPaletteExhausted   = errors.New("hexgrid: palette too small for excluded colors")
	ErrInvariantViolation = errors.New("hexgrid: slot and tile coordinate disagree")
	ErrNotBomb            = errors.New("hexgrid: tile is not a bomb")
	ErrCounterExhausted   = errors.New("hexgrid: bomb counter already at zero")
	ErrTileState          = errors.New("hexgrid: illegal tile state transition")
)

// InvariantError describes a slot whose content disagrees with the tile's own
// coordinate, or a tile found in more than one slot.
type InvariantError struct {
	Slot  Coord // Slot being checked
	Tile  Coord // Coordinate the tile believes it has
	Cause string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%v: slot %s holds tile at %s (%s)", ErrInvariantViolation, e.Slot, e.Tile, e.Cause)
}

// Is lets errors.Is match InvariantError against ErrInvariantViolation.
func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariantViolation
}
