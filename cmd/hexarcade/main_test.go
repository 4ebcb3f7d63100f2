package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/hexarcade/internal/storage"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListShowsBothModes(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, id := range []string{"hexmatch", "hexmatch_zen"} {
		if !strings.Contains(out, id) {
			t.Errorf("list output missing %q:\n%s", id, out)
		}
	}
}

func TestInvalidLogLevel(t *testing.T) {
	if _, err := execute(t, "list", "--log-level", "loud"); err == nil {
		t.Error("expected an error for an unknown log level")
	}
	flagLogLevel = "info"
}

func TestScoresUnknownGame(t *testing.T) {
	if _, err := execute(t, "scores", "pacman", "--db", filepath.Join(t.TempDir(), "s.db")); err == nil {
		t.Error("expected an error for an unknown game")
	}
}

func TestScoresPrintsSessions(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "s.db")
	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveScore("hexmatch", 75)
	if _, err := store.SaveSession(storage.SessionRecord{GameID: "hexmatch", Score: 75, Moves: 6, EndReason: "no_moves"}); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	store.Close()

	out, err := execute(t, "scores", "hexmatch", "--db", dbPath, "--sessions")
	flagScoresSessions = false
	if err != nil {
		t.Fatalf("scores failed: %v", err)
	}
	for _, want := range []string{"75", "no_moves=1", "Recent sessions"} {
		if !strings.Contains(out, want) {
			t.Errorf("scores output missing %q:\n%s", want, out)
		}
	}
}
