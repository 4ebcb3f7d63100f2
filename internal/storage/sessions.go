package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SessionRecord is a finished play session.
type SessionRecord struct {
	ID           int64
	SessionID    string
	GameID       string
	Score        int
	Moves        int
	BombsSpawned int
	EndReason    string
	Duration     time.Duration
	CreatedAt    time.Time
}

// NewSessionID returns a fresh random session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// SaveSession records a finished session. An empty SessionID is filled
// with a new UUID; a non-empty one must parse as a UUID.
// Returns the session ID that was stored.
func (s *Store) SaveSession(rec SessionRecord) (string, error) {
	if rec.GameID == "" {
		return "", errors.New("storage: session has no game id")
	}
	if rec.SessionID == "" {
		rec.SessionID = NewSessionID()
	} else if _, err := uuid.Parse(rec.SessionID); err != nil {
		return "", fmt.Errorf("storage: invalid session id %q: %w", rec.SessionID, err)
	}

	_, err := s.db.Exec(
		`INSERT INTO sessions
		 (session_id, game_id, score, moves, bombs_spawned, end_reason, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID,
		rec.GameID,
		rec.Score,
		rec.Moves,
		rec.BombsSpawned,
		rec.EndReason,
		rec.Duration.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save session: %w", err)
	}
	return rec.SessionID, nil
}

// SessionByID retrieves a session by its UUID. Returns nil if none exists.
func (s *Store) SessionByID(sessionID string) (*SessionRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, session_id, game_id, score, moves, bombs_spawned, end_reason, duration_ms, created_at
		 FROM sessions
		 WHERE session_id = ?`,
		sessionID,
	)
	rec, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}
	return rec, nil
}

// RecentSessions retrieves the most recent sessions for a game, newest first.
// An empty gameID lists sessions of every game.
func (s *Store) RecentSessions(gameID string, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, game_id, score, moves, bombs_spawned, end_reason, duration_ms, created_at
		 FROM sessions
		 WHERE ? = '' OR game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// EndReasonCounts returns how many sessions of a game ended for each reason.
func (s *Store) EndReasonCounts(gameID string) (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT end_reason, COUNT(*) FROM sessions WHERE game_id = ? GROUP BY end_reason`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count end reasons: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var reason string
		var n int
		if err := rows.Scan(&reason, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		counts[reason] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return counts, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(r rowScanner) (*SessionRecord, error) {
	var rec SessionRecord
	var durationMs int64
	var createdAt any
	if err := r.Scan(
		&rec.ID,
		&rec.SessionID,
		&rec.GameID,
		&rec.Score,
		&rec.Moves,
		&rec.BombsSpawned,
		&rec.EndReason,
		&durationMs,
		&createdAt,
	); err != nil {
		return nil, err
	}
	rec.Duration = time.Duration(durationMs) * time.Millisecond
	rec.CreatedAt = parseTime(createdAt)
	return &rec, nil
}
