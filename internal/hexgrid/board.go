package hexgrid

import (
	"errors"
	"fmt"
	"math/rand"
)

// Options configures a Board.
type Options struct {
	Width          int
	Height         int
	Palette        Palette
	Layout         Layout
	BombCounterMin int
	BombCounterMax int
	Seed           int64
}

// DefaultOptions returns an 8x9 board with the default palette.
func DefaultOptions() Options {
	return Options{
		Width:          8,
		Height:         9,
		Palette:        DefaultPalette(),
		Layout:         DefaultLayout(),
		BombCounterMin: DefaultBombCounterMin,
		BombCounterMax: DefaultBombCounterMax,
	}
}

// Validate checks the options once, at setup, so that no engine call has to.
func (o Options) Validate() error {
	if o.Width < 2 || o.Height < 2 {
		return fmt.Errorf("board %dx%d: %w", o.Width, o.Height, ErrInvalidCoordinate)
	}
	if err := o.Palette.CheckExclusion(MaxConflictingColors); err != nil {
		return err
	}
	if o.BombCounterMin < 1 || o.BombCounterMax < o.BombCounterMin {
		return fmt.Errorf("bomb counter range %d..%d: %w", o.BombCounterMin, o.BombCounterMax, ErrCounterExhausted)
	}
	return nil
}

// Board owns a grid and every tile on it. All placement, rotation, fall and
// explosion goes through the Board so the slot/tile invariant holds between
// calls.
type Board struct {
	grid    *Grid
	palette Palette
	layout  Layout
	rng     *rand.Rand
	session *Session
	bombMin int
	bombMax int
}

// NewBoard creates an empty board.
func NewBoard(opts Options) (*Board, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Layout == (Layout{}) {
		opts.Layout = DefaultLayout()
	}
	return &Board{
		grid:    NewGrid(opts.Width, opts.Height),
		palette: opts.Palette,
		layout:  opts.Layout,
		rng:     rand.New(rand.NewSource(opts.Seed)),
		session: NewSession(),
		bombMin: opts.BombCounterMin,
		bombMax: opts.BombCounterMax,
	}, nil
}

// Grid returns the slot store. Callers must not mutate it directly.
func (b *Board) Grid() *Grid { return b.grid }

// Palette returns the board palette.
func (b *Board) Palette() Palette { return b.palette }

// Layout returns the board geometry.
func (b *Board) Layout() Layout { return b.layout }

// Session returns the bomb bookkeeping.
func (b *Board) Session() *Session { return b.session }

// SetBombRange changes the counter range for bombs placed from now on.
func (b *Board) SetBombRange(lo, hi int) error {
	if lo < 1 || hi < lo {
		return fmt.Errorf("bomb counter range %d..%d: %w", lo, hi, ErrCounterExhausted)
	}
	b.bombMin, b.bombMax = lo, hi
	return nil
}

// Reset empties the board and the session and reseeds the RNG.
func (b *Board) Reset(seed int64) {
	b.grid.Clear()
	b.session.Reset()
	b.rng = rand.New(rand.NewSource(seed))
}

// Place creates a tile of the given type in the empty slot c. With
// useNeighborBias the colour avoids any colour two neighbours already share.
// Bombs get a counter drawn from the configured range and are reported to
// the session.
func (b *Board) Place(c Coord, start Point, kind TileType, useNeighborBias bool) (*Tile, error) {
	if !b.grid.IsValid(c) {
		return nil, fmt.Errorf("place %s: %w", c, ErrInvalidCoordinate)
	}
	if held, ok := b.grid.Get(c); ok {
		return nil, &InvariantError{Slot: c, Tile: held.Coord(), Cause: "slot already occupied"}
	}

	var excluded []Color
	if useNeighborBias {
		excluded = ConflictingNeighborColors(b.grid, c)
	}
	color := b.palette.Pick(b.rng, excluded)

	counter := 0
	if kind == TileBomb {
		counter = b.bombMin + b.rng.Intn(b.bombMax-b.bombMin+1)
	}

	t := NewTile()
	if err := t.Place(c, color, kind, counter); err != nil {
		return nil, err
	}
	t.origin = start

	if err := b.grid.Set(c, t); err != nil {
		return nil, err
	}
	if kind == TileBomb {
		if err := b.session.BombPlaced(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// PlaceColor places a normal tile with a fixed colour. Used to set up
// known boards.
func (b *Board) PlaceColor(c Coord, color Color) (*Tile, error) {
	if !b.grid.IsValid(c) {
		return nil, fmt.Errorf("place %s: %w", c, ErrInvalidCoordinate)
	}
	if held, ok := b.grid.Get(c); ok {
		return nil, &InvariantError{Slot: c, Tile: held.Coord(), Cause: "slot already occupied"}
	}
	t := NewTile()
	if err := t.Place(c, color, TileNormal, 0); err != nil {
		return nil, err
	}
	t.origin = b.layout.Position(c)
	return t, b.grid.Set(c, t)
}

// Fill places a neighbour-biased normal tile in every empty slot, column by
// column from the bottom. Placements are returned in order.
func (b *Board) Fill() ([]*Tile, error) {
	var placed []*Tile
	for col := 0; col < b.grid.W; col++ {
		for k, c := range b.grid.EmptySlots(col) {
			t, err := b.Place(c, b.layout.SpawnPosition(col, b.grid.H, k), TileNormal, true)
			if err != nil {
				return placed, err
			}
			placed = append(placed, t)
		}
	}
	return placed, nil
}

// Explode removes t from the board.
func (b *Board) Explode(t *Tile) error {
	wasBomb := t.IsBomb()
	if err := t.Explode(b.grid); err != nil {
		return err
	}
	if wasBomb {
		b.session.BombRemoved()
	}
	return nil
}

// ResolveFall drops t to the lowest empty slot below it. See ResolveFall.
func (b *Board) ResolveFall(t *Tile) (start, end Point, err error) {
	return ResolveFall(b.grid, b.layout, t)
}

// Settle resolves falls for every tile with empty space below it, bottom-up
// per column. Only tiles that moved produce an animation.
func (b *Board) Settle() ([]FallAnimation, error) {
	var anims []FallAnimation
	for col := 0; col < b.grid.W; col++ {
		if !b.grid.HasEmpty(col) {
			continue
		}
		for row := 0; row < b.grid.H; row++ {
			t, ok := b.grid.Get(C(col, row))
			if !ok {
				continue
			}
			start, end, err := b.ResolveFall(t)
			if err != nil {
				return anims, err
			}
			if start != end {
				anims = append(anims, FallAnimation{Tile: t, From: start, To: end})
			}
		}
	}
	return anims, nil
}

// Rotate turns the three tiles of tr one step. Every slot of tr must hold a
// tile. Slots and tile coordinates are updated together.
func (b *Board) Rotate(tr Triple, clockwise bool) error {
	order := tr.Clockwise(b.layout)
	var tiles [3]*Tile
	for i, c := range order {
		t, ok := b.grid.Get(c)
		if !ok {
			return fmt.Errorf("rotate %v: empty slot %s: %w", tr, c, ErrInvalidCoordinate)
		}
		if err := b.grid.checkSlot(c); err != nil {
			return err
		}
		tiles[i] = t
	}

	shift := 1
	if !clockwise {
		shift = 2
	}
	for i, t := range tiles {
		dst := order[(i+shift)%3]
		_ = b.grid.Set(dst, t)
		t.moveTo(dst)
	}
	return nil
}

// Matches returns every fully occupied triple whose three tiles share a colour.
func (b *Board) Matches() []Triple {
	var result []Triple
	for _, tr := range AllTriples(b.grid) {
		if b.isMatch(tr) {
			result = append(result, tr)
		}
	}
	return result
}

// MatchedTiles returns the distinct tiles covered by triples, in the order
// first seen.
func (b *Board) MatchedTiles(triples []Triple) []*Tile {
	seen := make(map[*Tile]bool)
	var tiles []*Tile
	for _, tr := range triples {
		for _, c := range tr {
			t, ok := b.grid.Get(c)
			if !ok || seen[t] {
				continue
			}
			seen[t] = true
			tiles = append(tiles, t)
		}
	}
	return tiles
}

func (b *Board) isMatch(tr Triple) bool {
	first, ok := b.grid.Get(tr[0])
	if !ok {
		return false
	}
	for _, c := range tr[1:] {
		t, ok := b.grid.Get(c)
		if !ok || !t.Color().Same(first.Color()) {
			return false
		}
	}
	return true
}

// hasMatchNear reports whether any triple touching the given slots matches.
func (b *Board) hasMatchNear(slots [3]Coord) bool {
	for _, c := range slots {
		for _, tr := range TriplesAt(b.grid, c) {
			if b.isMatch(tr) {
				return true
			}
		}
	}
	return false
}

// RotationMatches reports whether rotating tr once in the given direction
// would create a match. The board is left unchanged.
func (b *Board) RotationMatches(tr Triple, clockwise bool) (bool, error) {
	if err := b.Rotate(tr, clockwise); err != nil {
		return false, err
	}
	found := b.hasMatchNear(tr)
	if err := b.Rotate(tr, !clockwise); err != nil {
		return found, err
	}
	return found, nil
}

// HasLegalMove reports whether some rotation of some triple creates a match.
func (b *Board) HasLegalMove() bool {
	for _, tr := range AllTriples(b.grid) {
		for _, cw := range []bool{true, false} {
			ok, err := b.RotationMatches(tr, cw)
			if err != nil {
				continue
			}
			if ok {
				return true
			}
		}
	}
	return false
}

// DecrementBombs lowers every bomb on the board by one. It reports whether
// any counter reached zero.
func (b *Board) DecrementBombs() (exhausted bool, err error) {
	for _, t := range b.grid.Tiles() {
		if !t.IsBomb() {
			continue
		}
		done, derr := t.DecrementCounter()
		if derr != nil && !errors.Is(derr, ErrCounterExhausted) {
			return exhausted, derr
		}
		exhausted = exhausted || done
	}
	return exhausted, nil
}

// CheckInvariant verifies the slot/tile agreement over the whole board.
func (b *Board) CheckInvariant() error {
	return b.grid.CheckInvariant()
}
