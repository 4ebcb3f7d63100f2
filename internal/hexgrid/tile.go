package hexgrid

import "fmt"

// Bomb counters are drawn uniformly from this range when nothing else is configured.
const (
	DefaultBombCounterMin = 3
	DefaultBombCounterMax = 6
)

// TileType distinguishes plain tiles from bombs.
type TileType uint8

const (
	TileNormal TileType = iota
	TileBomb
)

// String returns the string representation of a tile type.
func (k TileType) String() string {
	switch k {
	case TileNormal:
		return "normal"
	case TileBomb:
		return "bomb"
	default:
		return "unknown"
	}
}

// TileState is the lifecycle stage of a tile.
type TileState uint8

const (
	TileUninitialized TileState = iota
	TilePlaced
	TileFalling // Only observable inside a fall
	TileExploded
)

// String returns the string representation of a tile state.
func (s TileState) String() string {
	switch s {
	case TileUninitialized:
		return "uninitialized"
	case TilePlaced:
		return "placed"
	case TileFalling:
		return "falling"
	case TileExploded:
		return "exploded"
	default:
		return "unknown"
	}
}

// CounterObserver is notified once when a bomb's counter reaches zero.
type CounterObserver func(t *Tile)

// Tile is a single hexagon: coordinate, colour, type and, for bombs, the
// number of moves left before the session ends.
type Tile struct {
	coord     Coord
	color     Color
	kind      TileType
	counter   int
	state     TileState
	origin    Point // Position the tile was spawned at, for the presentation layer
	observers []CounterObserver
}

// NewTile returns an uninitialized tile.
func NewTile() *Tile {
	return &Tile{}
}

// Coord returns the slot the tile occupies.
func (t *Tile) Coord() Coord { return t.coord }

// Color returns the tile colour.
func (t *Tile) Color() Color { return t.color }

// Type returns the tile type.
func (t *Tile) Type() TileType { return t.kind }

// State returns the lifecycle state.
func (t *Tile) State() TileState { return t.state }

// Origin returns the position the tile was spawned at.
func (t *Tile) Origin() Point { return t.origin }

// IsBomb reports whether the tile currently carries a bomb counter.
func (t *Tile) IsBomb() bool { return t.kind == TileBomb }

// Counter returns the bomb counter. ok is false for non-bomb tiles.
func (t *Tile) Counter() (n int, ok bool) {
	if !t.IsBomb() {
		return 0, false
	}
	return t.counter, true
}

// Place sets the tile's coordinate, colour and type. counter is the initial
// bomb counter and must be positive for bombs; it is ignored otherwise.
// Turning a tile into a normal tile drops its counter observers.
// Place does not touch any grid.
func (t *Tile) Place(c Coord, color Color, kind TileType, counter int) error {
	if t.state == TileFalling {
		return fmt.Errorf("place while %s: %w", t.state, ErrTileState)
	}
	if kind == TileBomb && counter < 1 {
		return fmt.Errorf("bomb counter %d: %w", counter, ErrCounterExhausted)
	}

	t.coord = c
	t.color = color
	t.kind = kind
	t.state = TilePlaced

	if kind == TileBomb {
		t.counter = counter
	} else {
		t.counter = 0
		t.observers = nil
	}
	return nil
}

// Subscribe registers an observer for counter exhaustion. Only bombs accept
// observers.
func (t *Tile) Subscribe(o CounterObserver) error {
	if !t.IsBomb() {
		return ErrNotBomb
	}
	t.observers = append(t.observers, o)
	return nil
}

// DecrementCounter lowers the bomb counter by one. exhausted is true exactly
// on the transition to zero, at which point observers are notified.
func (t *Tile) DecrementCounter() (exhausted bool, err error) {
	if !t.IsBomb() {
		return false, ErrNotBomb
	}
	if t.state != TilePlaced {
		return false, fmt.Errorf("decrement while %s: %w", t.state, ErrTileState)
	}
	if t.counter == 0 {
		return false, ErrCounterExhausted
	}

	t.counter--
	if t.counter > 0 {
		return false, nil
	}
	for _, o := range t.observers {
		o(t)
	}
	return true, nil
}

// Explode removes the tile from g and deactivates it. The slot must hold t.
func (t *Tile) Explode(g *Grid) error {
	if t.state != TilePlaced {
		return fmt.Errorf("explode while %s: %w", t.state, ErrTileState)
	}
	held, ok := g.Get(t.coord)
	if !ok || held != t {
		return &InvariantError{Slot: t.coord, Tile: t.coord, Cause: "exploding tile not in its slot"}
	}
	if err := g.Set(t.coord, nil); err != nil {
		return err
	}
	t.state = TileExploded
	t.observers = nil
	return nil
}

// moveTo relocates the tile's own coordinate during a fall or rotation.
func (t *Tile) moveTo(c Coord) {
	t.coord = c
}
