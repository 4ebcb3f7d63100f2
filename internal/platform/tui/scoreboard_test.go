package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hexarcade/internal/registry"
	"github.com/vovakirdan/hexarcade/internal/storage"
)

func scoreboardWithHistory(t *testing.T) ScoreboardModel {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, score := range []int{120, 480} {
		if _, err := store.SaveScore("scripted", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveSession(storage.SessionRecord{
		GameID:    "scripted",
		Score:     480,
		Moves:     17,
		EndReason: "no_moves",
		Duration:  95 * time.Second,
	}); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	m := NewScoreboardModel(store, 100, 30)
	m.games = []registry.GameInfo{{ID: "scripted", Title: "Scripted"}}
	m.gameCursor = 0
	m.loadScores("scripted")
	return m
}

func TestScoreboardLoadsHistory(t *testing.T) {
	m := scoreboardWithHistory(t)

	if len(m.scores) != 2 || m.scores[0].Score != 480 {
		t.Errorf("scores = %+v, want best first", m.scores)
	}
	if len(m.sessions) != 1 {
		t.Fatalf("sessions = %d, want 1", len(m.sessions))
	}
	if m.endReasons["no_moves"] != 1 {
		t.Errorf("endReasons = %v", m.endReasons)
	}
	if line := m.statsLine(); !strings.Contains(line, "No moves 1") {
		t.Errorf("statsLine() = %q", line)
	}
}

func TestScoreboardToggleSessions(t *testing.T) {
	m := scoreboardWithHistory(t)

	if got := len(m.table.Columns()); got != 3 {
		t.Fatalf("score columns = %d, want 3", got)
	}

	next, cmd := m.Update(runeKey('s'))
	if cmd != nil {
		t.Error("toggle should not emit a command")
	}
	m = next.(ScoreboardModel)
	if !m.showRecent {
		t.Fatal("expected sessions view after toggle")
	}
	if got := len(m.table.Columns()); got != 6 {
		t.Fatalf("session columns = %d, want 6", got)
	}
	rows := m.table.Rows()
	if len(rows) != 1 || rows[0][3] != "No moves" || rows[0][4] != "1m35s" {
		t.Errorf("session rows = %v", rows)
	}
	if view := m.View(); !strings.Contains(view, "RECENT GAMES - Scripted") {
		t.Errorf("view title missing, got:\n%s", view)
	}

	next, _ = m.Update(runeKey('s'))
	if next.(ScoreboardModel).showRecent {
		t.Error("second toggle should return to high scores")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := scoreboardWithHistory(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() || cmd == nil {
		t.Error("esc should go back to the menu")
	}

	next, _ = m.Update(runeKey('q'))
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
}
