// Package hexmatch implements a hexagon match-three game: rotate three
// adjacent tiles until they line up in a colour, clear them, and keep
// ticking bombs from running out.
package hexmatch

import (
	"fmt"
	"math"

	"github.com/vovakirdan/hexarcade/internal/config"
	"github.com/vovakirdan/hexarcade/internal/core"
	"github.com/vovakirdan/hexarcade/internal/hexgrid"
	"github.com/vovakirdan/hexarcade/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeZen     Mode = "zen" // No bombs
)

// Reasons a game ends.
const (
	EndReasonBomb    = "bomb"
	EndReasonNoMoves = "no_moves"
)

// dealAttempts bounds how often Reset redeals a board without a legal move.
const dealAttempts = 32

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset by name.
// Unknown names clear the preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

type phase int

const (
	phaseIdle      phase = iota // Waiting for input
	phaseExploding              // Matched tiles flash before they go
	phaseFalling                // Columns compact and refill
	phaseOver
)

// Game implements the hex match game.
type Game struct {
	mode     Mode
	override *config.HexmatchConfig

	cfg        config.HexmatchConfig
	difficulty *config.DifficultyManager
	board      *hexgrid.Board
	rng        int64
	tick       uint64

	score        int
	moves        int
	cascade      int // Explosion rounds in the current move
	nextBombAt   int
	pendingBombs int

	selected hexgrid.Triple

	phase      phase
	phaseTicks int
	exploding  []*hexgrid.Tile
	anims      []hexgrid.FallAnimation

	paused    bool
	tooSmall  bool
	endReason string
	screenW   int
	screenH   int
	view      view
	events    []core.Event
}

// New creates a classic hex match game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewZen creates a hex match game without bombs.
func NewZen() *Game {
	return &Game{mode: ModeZen}
}

// NewWithConfig creates a game that ignores config files and presets.
func NewWithConfig(mode Mode, cfg config.HexmatchConfig) *Game {
	return &Game{mode: mode, override: &cfg}
}

func init() {
	registry.Register("hexmatch", func() registry.Game {
		return New()
	})
	registry.Register("hexmatch_zen", func() registry.Game {
		return NewZen()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeZen {
		return "hexmatch_zen"
	}
	return "hexmatch"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "Hex Match (Zen)"
	}
	return "Hex Match"
}

// Description returns a one-line summary for game listings.
func (g *Game) Description() string {
	if g.mode == ModeZen {
		return "Rotate hexagon triples into colour matches, no bombs"
	}
	return "Rotate hexagon triples into colour matches before the bombs go off"
}

// loadConfig resolves the configuration for the next game.
func (g *Game) loadConfig() config.HexmatchConfig {
	if g.override != nil {
		return *g.override
	}
	cfg, err := config.LoadHexmatch(configPath)
	if err != nil {
		cfg = config.DefaultHexmatchConfig()
	}
	if difficultyPreset != "" {
		config.ApplyHexmatchPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Reset initializes/restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.cfg = g.loadConfig()
	if g.mode == ModeZen {
		g.cfg.Bombs.Enabled = false
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	opts, err := g.cfg.BoardOptions(runtime.Seed)
	if err != nil {
		g.cfg = config.DefaultHexmatchConfig()
		opts, err = g.cfg.BoardOptions(runtime.Seed)
	}
	must(err)
	board, err := hexgrid.NewBoard(opts)
	must(err)

	g.board = board
	g.rng = runtime.Seed
	g.tick = 0
	g.score = 0
	g.moves = 0
	g.cascade = 0
	g.pendingBombs = 0
	g.nextBombAt = g.bombInterval()
	g.paused = false
	g.endReason = ""
	g.exploding = nil
	g.events = nil
	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH

	g.deal()
	g.view = newView(g.board, g.screenW)
	g.checkScreenSize()
	g.selected = g.defaultSelection()
}

// deal fills the board, redealing while no rotation can make a match.
func (g *Game) deal() {
	var placed []*hexgrid.Tile
	for attempt := 0; attempt < dealAttempts; attempt++ {
		g.board.Reset(g.rng + int64(attempt))
		var err error
		placed, err = g.board.Fill()
		must(err)
		if g.board.HasLegalMove() {
			break
		}
	}

	anims := make([]hexgrid.FallAnimation, 0, len(placed))
	for _, t := range placed {
		anims = append(anims, hexgrid.FallAnimation{
			Tile: t,
			From: t.Origin(),
			To:   g.board.Layout().Position(t.Coord()),
		})
	}
	g.startFall(anims)
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.view = newView(g.board, w)
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	minW, minH := g.view.minScreen()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.events = nil

	if g.tooSmall {
		return g.result()
	}

	if in.Has(core.ActionPause) && g.phase != phaseOver {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	switch g.phase {
	case phaseIdle:
		g.handleInput(in)
	case phaseExploding:
		g.phaseTicks++
		if g.phaseTicks >= g.cfg.Animation.ExplodeTicks {
			g.finishExplosion()
		}
	case phaseFalling:
		g.phaseTicks++
		g.advanceFall()
	case phaseOver:
		// Restart is handled by the platform
	}

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// handleInput processes selection and rotation while the board is idle.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionPoint) {
		if tr, ok := g.tripleAt(in.Pointer); ok {
			if tr.Equal(g.selected) {
				g.tryMove(true)
				return
			}
			g.selected = tr
		}
	}

	switch {
	case in.Has(core.ActionLeft):
		g.moveSelection(-1, 0)
	case in.Has(core.ActionRight):
		g.moveSelection(1, 0)
	case in.Has(core.ActionUp):
		g.moveSelection(0, 1)
	case in.Has(core.ActionDown):
		g.moveSelection(0, -1)
	}

	switch {
	case in.Has(core.ActionRotateCW):
		g.tryMove(true)
	case in.Has(core.ActionRotateCCW):
		g.tryMove(false)
	}
}

// bombInterval is the current score distance between bomb spawns.
func (g *Game) bombInterval() int {
	return g.difficulty.BombInterval(g.cfg.Bombs.ScoreInterval, g.score, g.moves)
}

func (g *Game) bombsEnabled() bool {
	return g.cfg.Bombs.Enabled && g.mode != ModeZen
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:        g.score,
		Moves:        g.moves,
		BombsSpawned: g.board.Session().BombsPlaced(),
		GameOver:     g.phase == phaseOver,
		Paused:       g.paused || g.tooSmall,
		EndReason:    g.endReason,
	}
}

// Palette returns the display colours of the tiles in play.
func (g *Game) Palette() []registry.PaletteEntry {
	palette, err := g.cfg.HexPalette()
	if err != nil {
		return nil
	}
	out := make([]registry.PaletteEntry, palette.Len())
	for i := range out {
		out[i] = registry.PaletteEntry{Hex: palette.At(i).Hex, ANSI: g.cfg.ANSI(i)}
	}
	return out
}

// Board exposes the engine board for inspection.
func (g *Game) Board() *hexgrid.Board {
	return g.board
}

// Selected returns the currently selected triple.
func (g *Game) Selected() hexgrid.Triple {
	return g.selected
}

// must turns engine contract violations into panics. They indicate a bug
// in the game's call sequence, never bad input.
func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("hexmatch: %v", err))
	}
}

// roundHalf rounds to the nearest integer.
func roundHalf(v float64) int {
	return int(math.Round(v))
}
