package hexmatch

import (
	"github.com/vovakirdan/hexarcade/internal/core"
	"github.com/vovakirdan/hexarcade/internal/hexgrid"
)

// tryMove rotates the selected triple one step at a time, up to three
// steps, and stops at the first step that produces a match. Three steps
// bring the tiles back where they started, which is not a move.
func (g *Game) tryMove(clockwise bool) bool {
	if !g.selectionFull() {
		return false
	}

	for step := 0; step < 3; step++ {
		must(g.board.Rotate(g.selected, clockwise))
		if matches := g.board.Matches(); len(matches) > 0 {
			g.moves++
			g.cascade = 0
			g.startExplosion(matches)
			return true
		}
	}

	g.emit(core.EventNoMatch)
	return false
}

// selectionFull reports whether all three selected slots hold tiles.
func (g *Game) selectionFull() bool {
	grid := g.board.Grid()
	for _, c := range g.selected {
		if _, ok := grid.Get(c); !ok {
			return false
		}
	}
	return true
}

func (g *Game) startExplosion(matches []hexgrid.Triple) {
	g.exploding = g.board.MatchedTiles(matches)
	g.phase = phaseExploding
	g.phaseTicks = 0
	g.emit(core.EventMatch)

	if g.cfg.Animation.ExplodeTicks <= 0 {
		g.finishExplosion()
	}
}

// finishExplosion removes the matched tiles, scores them, ticks the bombs
// once per move and starts the fall of everything above the gaps.
func (g *Game) finishExplosion() {
	for _, t := range g.exploding {
		must(g.board.Explode(t))
	}
	g.addScore(len(g.exploding))
	g.exploding = nil

	// Bombs tick once per move: after the first explosion round, so bombs
	// that just exploded or are about to spawn do not count.
	if g.cascade == 0 && g.bombsEnabled() {
		_, err := g.board.DecrementBombs()
		must(err)
	}
	g.cascade++

	anims, err := g.board.Settle()
	must(err)
	anims = append(anims, g.refill()...)
	g.startFall(anims)
}

// addScore awards points for n exploded tiles and queues a bomb for each
// interval boundary the score crosses.
func (g *Game) addScore(n int) {
	perTile := g.cfg.Scoring.PointsPerTile + g.cfg.Scoring.CascadeBonus*g.cascade
	g.score += n * perTile

	if !g.bombsEnabled() {
		return
	}
	for g.score >= g.nextBombAt {
		g.pendingBombs++
		g.nextBombAt += g.bombInterval()
		g.emit(core.EventBombSpawn)
	}
}

// refill places new tiles in every empty slot, without neighbour bias, so
// that refills can cascade. Queued bombs take the first slots filled.
func (g *Game) refill() []hexgrid.FallAnimation {
	grid := g.board.Grid()
	layout := g.board.Layout()

	if g.pendingBombs > 0 {
		lo := g.cfg.Bombs.CounterMin
		hi := g.difficulty.BombCounterMax(lo, g.cfg.Bombs.CounterMax, g.score, g.moves)
		must(g.board.SetBombRange(lo, hi))
	}

	var anims []hexgrid.FallAnimation
	for col := 0; col < grid.W; col++ {
		for k, c := range grid.EmptySlots(col) {
			kind := hexgrid.TileNormal
			if g.pendingBombs > 0 {
				kind = hexgrid.TileBomb
				g.pendingBombs--
			}
			t, err := g.board.Place(c, layout.SpawnPosition(col, grid.H, k), kind, false)
			must(err)
			anims = append(anims, hexgrid.FallAnimation{
				Tile: t,
				From: t.Origin(),
				To:   layout.Position(c),
			})
		}
	}
	return anims
}

// startFall begins animating tiles whose grid position is already committed.
func (g *Game) startFall(anims []hexgrid.FallAnimation) {
	g.anims = anims
	g.phase = phaseFalling
	g.phaseTicks = 0

	if len(anims) == 0 || g.cfg.Animation.FallTicks <= 0 {
		g.fallDone()
	}
}

func (g *Game) advanceFall() {
	for i := range g.anims {
		g.anims[i].Advance(g.phaseTicks, g.cfg.Animation.FallTicks)
	}
	if g.phaseTicks >= g.cfg.Animation.FallTicks {
		g.fallDone()
	}
}

// fallDone cascades into another explosion when the refill matched,
// otherwise it ends the move.
func (g *Game) fallDone() {
	g.anims = nil
	if matches := g.board.Matches(); len(matches) > 0 {
		g.startExplosion(matches)
		return
	}
	g.endMove()
}

// endMove checks the game-over conditions once the board is at rest.
func (g *Game) endMove() {
	must(g.board.CheckInvariant())

	switch {
	case g.board.Session().Exhausted():
		g.finish(EndReasonBomb)
	case !g.board.HasLegalMove():
		g.finish(EndReasonNoMoves)
	default:
		g.phase = phaseIdle
	}
}

func (g *Game) finish(reason string) {
	g.phase = phaseOver
	g.endReason = reason
	g.emit(core.EventGameOver)
}
