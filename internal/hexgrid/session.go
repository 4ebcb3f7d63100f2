package hexgrid

// Session is the per-game bookkeeping the tiles report to: how many bombs are
// live and whether one of them ran out. It has an explicit lifecycle: Reset at
// game start, BombPlaced/BombRemoved as bombs come and go.
type Session struct {
	bombs       int
	bombsPlaced int
	exhausted   *Tile
	listeners   []CounterObserver
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{}
}

// Reset clears all bookkeeping. Listeners stay registered.
func (s *Session) Reset() {
	s.bombs = 0
	s.bombsPlaced = 0
	s.exhausted = nil
}

// OnExhausted registers a listener called when any bomb reaches zero.
func (s *Session) OnExhausted(fn CounterObserver) {
	s.listeners = append(s.listeners, fn)
}

// BombPlaced records a new bomb and subscribes to its counter.
func (s *Session) BombPlaced(t *Tile) error {
	if err := t.Subscribe(s.counterExhausted); err != nil {
		return err
	}
	s.bombs++
	s.bombsPlaced++
	return nil
}

// BombRemoved records that a bomb left the board.
func (s *Session) BombRemoved() {
	if s.bombs > 0 {
		s.bombs--
	}
}

// BombCount returns the number of live bombs.
func (s *Session) BombCount() int {
	return s.bombs
}

// BombsPlaced returns the number of bombs placed since the last Reset.
func (s *Session) BombsPlaced() int {
	return s.bombsPlaced
}

// Exhausted reports whether a bomb counter reached zero.
func (s *Session) Exhausted() bool {
	return s.exhausted != nil
}

// ExhaustedBy returns the bomb that ended the session, if any.
func (s *Session) ExhaustedBy() (*Tile, bool) {
	return s.exhausted, s.exhausted != nil
}

func (s *Session) counterExhausted(t *Tile) {
	if s.exhausted == nil {
		s.exhausted = t
	}
	for _, fn := range s.listeners {
		fn(t)
	}
}
