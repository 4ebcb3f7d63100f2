package hexmatch

import (
	"testing"

	"github.com/vovakirdan/hexarcade/internal/config"
	"github.com/vovakirdan/hexarcade/internal/core"
	"github.com/vovakirdan/hexarcade/internal/hexgrid"
	"github.com/vovakirdan/hexarcade/internal/registry"
)

// instantConfig resolves explosions and falls within the tick they start.
func instantConfig() config.HexmatchConfig {
	cfg := config.DefaultHexmatchConfig()
	cfg.Animation.FallTicks = 0
	cfg.Animation.ExplodeTicks = 0
	return cfg
}

func newGame(t *testing.T, mode Mode, cfg config.HexmatchConfig) *Game {
	t.Helper()
	g := NewWithConfig(mode, cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 7})
	return g
}

// layBoard replaces the board contents with fixed colours, given per
// column from the bottom row up. -1 leaves a slot empty.
func layBoard(t *testing.T, g *Game, cols [][]int) {
	t.Helper()
	g.board.Reset(1)
	for col, rows := range cols {
		for row, idx := range rows {
			if idx < 0 {
				continue
			}
			if _, err := g.board.PlaceColor(hexgrid.C(col, row), g.board.Palette().At(idx)); err != nil {
				t.Fatalf("PlaceColor(%d, %d): %v", col, row, err)
			}
		}
	}
	g.phase = phaseIdle
	g.anims = nil
	g.score = 0
	g.moves = 0
	g.nextBombAt = g.bombInterval()
}

func step(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func hasEvent(r core.StepResult, e core.Event) bool {
	for _, got := range r.Events {
		if got == e {
			return true
		}
	}
	return false
}

// smallConfig is a 2x2 board: two triples, enough for one scripted move.
func smallConfig() config.HexmatchConfig {
	cfg := instantConfig()
	cfg.Board.Width = 2
	cfg.Board.Height = 2
	return cfg
}

var leftTriple = hexgrid.Triple{hexgrid.C(0, 0), hexgrid.C(0, 1), hexgrid.C(1, 0)}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"hexmatch", "hexmatch_zen"} {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
		}
	}
	g, err := registry.Create("hexmatch_zen")
	if err != nil {
		t.Fatal(err)
	}
	if g.Title() != "Hex Match (Zen)" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestResetDealsPlayableBoard(t *testing.T) {
	g := newGame(t, ModeClassic, instantConfig())
	snap := g.Snapshot()

	if snap.Phase != PhaseIdle {
		t.Fatalf("phase = %s, expected idle", snap.Phase)
	}
	if len(snap.Tiles) != 8*9 {
		t.Errorf("tiles = %d, expected 72", len(snap.Tiles))
	}
	if m := g.board.Matches(); len(m) != 0 {
		t.Errorf("fresh board has %d matches", len(m))
	}
	if !g.board.HasLegalMove() {
		t.Error("fresh board has no legal move")
	}
	if !g.board.Grid().IsValid(snap.Selected[0]) {
		t.Errorf("selection %v not on the board", snap.Selected)
	}
}

func TestDeterminism(t *testing.T) {
	inputs := []core.Action{
		core.ActionRight, core.ActionRotateCW, core.ActionUp, core.ActionRotateCCW,
		core.ActionLeft, core.ActionRotateCW, core.ActionDown, core.ActionRotateCW,
	}

	run := func() Snapshot {
		g := newGame(t, ModeClassic, instantConfig())
		for _, a := range inputs {
			step(g, a)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if a.Score != b.Score || a.Moves != b.Moves || a.Selected != b.Selected || a.Phase != b.Phase {
		t.Fatalf("runs diverged: %+v vs %+v", a, b)
	}
	if len(a.Tiles) != len(b.Tiles) {
		t.Fatalf("tile counts differ: %d vs %d", len(a.Tiles), len(b.Tiles))
	}
	for i := range a.Tiles {
		if a.Tiles[i] != b.Tiles[i] {
			t.Fatalf("tile %d differs: %+v vs %+v", i, a.Tiles[i], b.Tiles[i])
		}
	}
}

func TestRotationMatchScores(t *testing.T) {
	g := newGame(t, ModeClassic, smallConfig())
	layBoard(t, g, [][]int{{0, 0}, {1, 0}})
	g.selected = leftTriple

	r := step(g, core.ActionRotateCW)
	if !hasEvent(r, core.EventMatch) {
		t.Fatalf("expected a match, events %v", r.Events)
	}

	snap := g.Snapshot()
	if snap.Moves != 1 {
		t.Errorf("moves = %d, expected 1", snap.Moves)
	}
	if snap.Score < 15 || snap.Score%5 != 0 {
		t.Errorf("score = %d, expected at least 15 in steps of 5", snap.Score)
	}
	if len(snap.Tiles) != 4 {
		t.Errorf("board not refilled, %d tiles", len(snap.Tiles))
	}
	if len(g.board.Matches()) != 0 {
		t.Error("board came to rest with a match on it")
	}
	if err := g.board.CheckInvariant(); err != nil {
		t.Error(err)
	}
}

func TestRotationWithoutMatchRestoresBoard(t *testing.T) {
	g := newGame(t, ModeClassic, smallConfig())
	layBoard(t, g, [][]int{{0, 1}, {2, 3}})
	g.selected = leftTriple
	before := g.Snapshot().Tiles

	r := step(g, core.ActionRotateCCW)
	if !hasEvent(r, core.EventNoMatch) {
		t.Fatalf("expected no-match event, got %v", r.Events)
	}
	if g.moves != 0 {
		t.Errorf("moves = %d, expected 0", g.moves)
	}

	after := g.Snapshot().Tiles
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("tile %d moved: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestBombSpawnsWhenScoreCrossesInterval(t *testing.T) {
	cfg := smallConfig()
	cfg.Bombs.ScoreInterval = 15
	g := newGame(t, ModeClassic, cfg)
	layBoard(t, g, [][]int{{0, 0}, {1, 0}})
	g.selected = leftTriple

	r := step(g, core.ActionRotateCW)
	if !hasEvent(r, core.EventBombSpawn) {
		t.Fatalf("expected bomb spawn, events %v", r.Events)
	}
	if got := g.State().BombsSpawned; got < 1 {
		t.Errorf("bombs spawned = %d, expected at least 1", got)
	}
	for _, ts := range g.Snapshot().Tiles {
		if ts.Bomb && (ts.Counter < cfg.Bombs.CounterMin || ts.Counter > cfg.Bombs.CounterMax) {
			t.Errorf("bomb counter %d outside %d..%d", ts.Counter, cfg.Bombs.CounterMin, cfg.Bombs.CounterMax)
		}
	}
}

func TestZenModeHasNoBombs(t *testing.T) {
	cfg := smallConfig()
	cfg.Bombs.ScoreInterval = 5
	g := newGame(t, ModeZen, cfg)
	layBoard(t, g, [][]int{{0, 0}, {1, 0}})
	g.selected = leftTriple

	step(g, core.ActionRotateCW)
	if got := g.State().BombsSpawned; got != 0 {
		t.Errorf("zen mode spawned %d bombs", got)
	}
	if g.ID() != "hexmatch_zen" {
		t.Errorf("ID() = %q", g.ID())
	}
}

func TestExhaustedBombEndsGame(t *testing.T) {
	cfg := instantConfig()
	cfg.Board.Width = 3
	cfg.Board.Height = 2
	cfg.Bombs.CounterMin = 1
	cfg.Bombs.CounterMax = 1
	g := newGame(t, ModeClassic, cfg)
	layBoard(t, g, [][]int{{0, 0}, {1, 0}, {2, -1}})

	bomb, err := g.board.Place(hexgrid.C(2, 1), hexgrid.Point{}, hexgrid.TileBomb, false)
	if err != nil {
		t.Fatal(err)
	}
	if err := bomb.Place(hexgrid.C(2, 1), g.board.Palette().At(4), hexgrid.TileBomb, 1); err != nil {
		t.Fatal(err)
	}
	if m := g.board.Matches(); len(m) != 0 {
		t.Fatalf("setup has matches: %v", m)
	}
	g.selected = leftTriple

	r := step(g, core.ActionRotateCW)
	if !hasEvent(r, core.EventGameOver) {
		t.Fatalf("expected game over, events %v", r.Events)
	}
	state := g.State()
	if !state.GameOver || state.EndReason != EndReasonBomb {
		t.Errorf("state = %+v, expected bomb game over", state)
	}
	if state.Moves != 1 {
		t.Errorf("moves = %d, expected 1", state.Moves)
	}
}

func TestNoLegalMoveEndsGame(t *testing.T) {
	g := newGame(t, ModeClassic, smallConfig())
	layBoard(t, g, [][]int{{0, 1}, {2, 3}})
	g.endMove()

	if !g.State().GameOver || g.State().EndReason != EndReasonNoMoves {
		t.Errorf("state = %+v, expected no-moves game over", g.State())
	}

	// Input is ignored once the game is over
	step(g, core.ActionRotateCW, core.ActionPause)
	if g.State().Paused {
		t.Error("pause should be ignored after game over")
	}
}

func TestFallAnimationTakesConfiguredTicks(t *testing.T) {
	cfg := config.DefaultHexmatchConfig()
	cfg.Animation.FallTicks = 4
	g := newGame(t, ModeClassic, cfg)

	if g.Snapshot().Phase != PhaseFalling {
		t.Fatalf("phase = %s, expected the opening deal to fall", g.Snapshot().Phase)
	}
	for i := 0; i < 3; i++ {
		step(g)
		if g.Snapshot().Phase != PhaseFalling {
			t.Fatalf("fall ended after %d ticks", i+1)
		}
		for _, a := range g.anims {
			if a.Progress <= 0 || a.Progress >= 1 {
				t.Fatalf("progress %f out of range mid-fall", a.Progress)
			}
		}
	}
	step(g)
	if g.Snapshot().Phase != PhaseIdle {
		t.Errorf("phase = %s, expected idle after the fall", g.Snapshot().Phase)
	}
}

func TestExplosionWaitsForConfiguredTicks(t *testing.T) {
	cfg := smallConfig()
	cfg.Animation.ExplodeTicks = 3
	g := newGame(t, ModeClassic, cfg)
	layBoard(t, g, [][]int{{0, 0}, {1, 0}})
	g.selected = leftTriple

	step(g, core.ActionRotateCW)
	if g.Snapshot().Phase != PhaseExploding || len(g.exploding) != 3 {
		t.Fatalf("phase = %s with %d exploding, expected 3 exploding", g.Snapshot().Phase, len(g.exploding))
	}
	if g.score != 0 {
		t.Errorf("score %d awarded before the explosion finished", g.score)
	}

	step(g)
	step(g)
	step(g)
	if g.score < 15 {
		t.Errorf("score = %d after the explosion, expected at least 15", g.score)
	}
}

func TestPause(t *testing.T) {
	cfg := config.DefaultHexmatchConfig()
	cfg.Animation.FallTicks = 2
	g := newGame(t, ModeClassic, cfg)

	step(g, core.ActionPause)
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	for i := 0; i < 5; i++ {
		step(g)
	}
	if g.Snapshot().Phase != PhaseFalling {
		t.Error("fall advanced while paused")
	}

	step(g, core.ActionPause)
	if g.State().Paused {
		t.Error("expected unpaused")
	}
}

func TestResize(t *testing.T) {
	g := newGame(t, ModeClassic, instantConfig())

	g.Resize(30, 10)
	if g.Snapshot().Phase != PhasePausedSmall || !g.State().Paused {
		t.Error("small screen should pause the game")
	}
	g.Resize(100, 30)
	if g.Snapshot().Phase != PhaseIdle {
		t.Errorf("phase = %s after enlarging", g.Snapshot().Phase)
	}
	if len(g.Snapshot().Tiles) != 72 {
		t.Error("resize must not redeal the board")
	}
}

func TestPaletteMatchesColoursInPlay(t *testing.T) {
	cfg := instantConfig()
	g := newGame(t, ModeClassic, cfg)

	var p registry.Paletted = g
	entries := p.Palette()
	if len(entries) != g.board.Palette().Len() {
		t.Fatalf("Palette() = %d entries, board uses %d colours", len(entries), g.board.Palette().Len())
	}
	for i, e := range entries {
		if e.Hex != g.board.Palette().At(i).Hex {
			t.Errorf("entry %d hex = %q, board colour %q", i, e.Hex, g.board.Palette().At(i).Hex)
		}
		if e.ANSI != cfg.Palette[i].ANSI {
			t.Errorf("entry %d ANSI = %d, want %d", i, e.ANSI, cfg.Palette[i].ANSI)
		}
	}
}
