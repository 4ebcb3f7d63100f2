package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/hexarcade/internal/hexgrid"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
	Err     error // Underlying engine error, if any
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap exposes the engine error so callers can use errors.Is.
func (e ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks the configuration once at load time so that the engine
// never has to.
func (c HexmatchConfig) Validate() error {
	if c.Board.Width < 2 || c.Board.Height < 2 {
		return ValidationError{
			Code:    "BOARD_TOO_SMALL",
			Message: fmt.Sprintf("board %dx%d, need at least 2x2", c.Board.Width, c.Board.Height),
			Err:     hexgrid.ErrInvalidCoordinate,
		}
	}

	seen := make(map[string]bool, len(c.Palette))
	for i, p := range c.Palette {
		if p.Name == "" {
			return ValidationError{Code: "PALETTE_NAME", Message: fmt.Sprintf("palette entry %d has no name", i)}
		}
		if seen[p.Name] {
			return ValidationError{Code: "PALETTE_DUPLICATE", Message: fmt.Sprintf("palette name %q used twice", p.Name)}
		}
		seen[p.Name] = true
		if _, err := colorful.Hex(p.Hex); err != nil {
			return ValidationError{Code: "PALETTE_HEX", Message: fmt.Sprintf("palette %q: bad colour %q", p.Name, p.Hex), Err: err}
		}
		if p.ANSI < 0 || p.ANSI > 255 {
			return ValidationError{Code: "PALETTE_ANSI", Message: fmt.Sprintf("palette %q: ansi %d out of range", p.Name, p.ANSI)}
		}
	}

	if n := c.activeColors(); n <= hexgrid.MaxConflictingColors {
		return ValidationError{
			Code: "PALETTE_EXHAUSTED",
			Message: fmt.Sprintf("%d colours in play, need more than %d so a tile can always avoid its neighbours",
				n, hexgrid.MaxConflictingColors),
			Err: hexgrid.ErrPaletteExhausted,
		}
	}

	if c.Bombs.CounterMin < 1 || c.Bombs.CounterMax < c.Bombs.CounterMin {
		return ValidationError{
			Code:    "BOMB_COUNTER",
			Message: fmt.Sprintf("bomb counter range %d..%d", c.Bombs.CounterMin, c.Bombs.CounterMax),
			Err:     hexgrid.ErrCounterExhausted,
		}
	}
	if c.Bombs.Enabled && c.Bombs.ScoreInterval < 1 {
		return ValidationError{Code: "BOMB_INTERVAL", Message: fmt.Sprintf("bomb score interval %d", c.Bombs.ScoreInterval)}
	}
	if c.Scoring.PointsPerTile < 0 || c.Scoring.CascadeBonus < 0 {
		return ValidationError{Code: "SCORING", Message: "points must not be negative"}
	}
	if c.Animation.FallTicks < 0 || c.Animation.ExplodeTicks < 0 {
		return ValidationError{Code: "ANIMATION", Message: "animation ticks must not be negative"}
	}
	return nil
}

// activeColors is the number of palette entries in play.
func (c HexmatchConfig) activeColors() int {
	if c.Board.PaletteSize <= 0 || c.Board.PaletteSize > len(c.Palette) {
		return len(c.Palette)
	}
	return c.Board.PaletteSize
}

// HexPalette builds the engine palette from the entries in play.
// Hex values are normalised to lowercase "#rrggbb".
func (c HexmatchConfig) HexPalette() (hexgrid.Palette, error) {
	n := c.activeColors()
	colors := make([]hexgrid.Color, 0, n)
	for _, p := range c.Palette[:n] {
		rgb, err := colorful.Hex(p.Hex)
		if err != nil {
			return hexgrid.Palette{}, fmt.Errorf("palette %q: %w", p.Name, err)
		}
		colors = append(colors, hexgrid.Color{Name: p.Name, Hex: rgb.Hex()})
	}
	return hexgrid.NewPalette(colors), nil
}

// BoardOptions converts the configuration into engine options.
func (c HexmatchConfig) BoardOptions(seed int64) (hexgrid.Options, error) {
	if err := c.Validate(); err != nil {
		return hexgrid.Options{}, err
	}
	palette, err := c.HexPalette()
	if err != nil {
		return hexgrid.Options{}, err
	}
	opts := hexgrid.DefaultOptions()
	opts.Width = c.Board.Width
	opts.Height = c.Board.Height
	opts.Palette = palette
	opts.BombCounterMin = c.Bombs.CounterMin
	opts.BombCounterMax = c.Bombs.CounterMax
	opts.Seed = seed
	return opts, nil
}

// ANSI returns the 256-colour fallback for palette index i, or 0 when unset.
func (c HexmatchConfig) ANSI(i int) int {
	if i < 0 || i >= len(c.Palette) {
		return 0
	}
	return c.Palette[i].ANSI
}
