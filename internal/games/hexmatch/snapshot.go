package hexmatch

import "github.com/vovakirdan/hexarcade/internal/hexgrid"

// Phase is the externally visible stage of the game loop.
type Phase string

const (
	PhaseIdle        Phase = "idle"
	PhaseExploding   Phase = "exploding"
	PhaseFalling     Phase = "falling"
	PhaseGameOver    Phase = "game_over"
	PhasePausedSmall Phase = "paused_small_window"
)

// TileSnapshot is one occupied slot.
type TileSnapshot struct {
	Coord   hexgrid.Coord
	Color   int
	Bomb    bool
	Counter int
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Mode         string
	Phase        Phase
	Score        int
	Moves        int
	Cascade      int
	LiveBombs    int
	BombsSpawned int
	PendingBombs int
	NextBombAt   int
	Selected     hexgrid.Triple
	EndReason    string
	Tiles        []TileSnapshot // In column order, bottom row first
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	phase := PhaseIdle
	switch {
	case g.tooSmall:
		phase = PhasePausedSmall
	case g.phase == phaseOver:
		phase = PhaseGameOver
	case g.phase == phaseExploding:
		phase = PhaseExploding
	case g.phase == phaseFalling:
		phase = PhaseFalling
	}

	grid := g.board.Grid()
	tiles := make([]TileSnapshot, 0, grid.FilledCount())
	for _, c := range grid.AllCoords() {
		t, ok := grid.Get(c)
		if !ok {
			continue
		}
		n, bomb := t.Counter()
		tiles = append(tiles, TileSnapshot{
			Coord:   c,
			Color:   t.Color().Index,
			Bomb:    bomb,
			Counter: n,
		})
	}

	session := g.board.Session()
	return Snapshot{
		Tick:         g.tick,
		Mode:         string(g.mode),
		Phase:        phase,
		Score:        g.score,
		Moves:        g.moves,
		Cascade:      g.cascade,
		LiveBombs:    session.BombCount(),
		BombsSpawned: session.BombsPlaced(),
		PendingBombs: g.pendingBombs,
		NextBombAt:   g.nextBombAt,
		Selected:     g.selected,
		EndReason:    g.endReason,
		Tiles:        tiles,
	}
}
