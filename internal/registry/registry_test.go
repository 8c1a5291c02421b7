package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                             { return g.id }
func (g *stubGame) Title() string                          { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)               {}
func (g *stubGame) Dispatch(core.Event) core.StepResult    { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                    {}
func (g *stubGame) PointerX(int, int, int) (float64, bool) { return 0, false }
func (g *stubGame) State() core.GameState                  { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub"} })
	Register("aa_stub", func() Game { return &stubGame{id: "aa_stub"} })

	if !Exists("zz_stub") || !Exists("aa_stub") {
		t.Fatal("registered games should exist")
	}

	g, err := Create("aa_stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "aa_stub" {
		t.Errorf("Create() returned %q", g.ID())
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %v", list)
		}
	}
	found := false
	for _, info := range list {
		if info.ID == "zz_stub" && info.Title == "Stub zz_stub" {
			found = true
		}
	}
	if !found {
		t.Errorf("List() missing zz_stub title, got %v", list)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does_not_exist")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() error = %v, expected ErrUnknownGame", err)
	}
	if Exists("does_not_exist") {
		t.Error("Exists() should be false for unknown id")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup_stub", func() Game { return &stubGame{id: "dup_stub"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup_stub", func() Game { return &stubGame{id: "dup_stub"} })
}
