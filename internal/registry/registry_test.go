package registry

import (
	"testing"

	"github.com/vovakirdan/hexarcade/internal/core"
)

type stubGame struct{ id string }

func (s *stubGame) ID() string {
	return s.id
}

func (s *stubGame) Title() string {
	return "Stub " + s.id
}

func (s *stubGame) Description() string {
	return "a stub"
}

func (s *stubGame) Reset(core.RuntimeConfig) {}

func (s *stubGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{}
}

func (s *stubGame) Render(*core.Screen) {}

func (s *stubGame) State() core.GameState {
	return core.GameState{}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("stub_a should exist after Register")
	}
	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID() = %q, expected stub_a", g.ID())
	}

	var found *GameInfo
	for _, info := range List() {
		if info.ID == "stub_a" {
			found = &info
		}
	}
	if found == nil {
		t.Fatal("stub_a missing from List")
	}
	if found.Title != "Stub stub_a" || found.Description != "a stub" {
		t.Errorf("info = %+v", *found)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("Create of unknown id should fail")
	}
}

func TestListSorted(t *testing.T) {
	Register("stub_z", func() Game { return &stubGame{id: "stub_z"} })
	Register("stub_m", func() Game { return &stubGame{id: "stub_m"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List not sorted at %d: %q >= %q", i, list[i-1].ID, list[i].ID)
		}
	}
}
