package registry

import (
	"testing"

	"github.com/vovakirdan/minis/internal/core"
)

type stubGame struct {
	title string
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame, float64) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

type scoredStub struct {
	stubGame
}

func (g *scoredStub) BindHighScore(core.HighScoreStore) {}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-test-plain", func() Game { return &stubGame{title: "Plain"} })
	Register("zz-test-scored", func() Game { return &scoredStub{stubGame{title: "Scored"}} })

	if !Exists("zz-test-plain") {
		t.Fatal("registered program should exist")
	}
	if Exists("zz-test-missing") {
		t.Error("unregistered program should not exist")
	}

	g, err := Create("zz-test-plain")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Plain" {
		t.Errorf("Title() = %q, expected Plain", g.Title())
	}

	if _, err := Create("zz-test-missing"); err == nil {
		t.Error("Create() of unknown ID should fail")
	}

	infos := map[string]GameInfo{}
	for _, info := range List() {
		infos[info.ID] = info
	}
	if infos["zz-test-plain"].Scored {
		t.Error("plain program should not be marked scored")
	}
	if !infos["zz-test-scored"].Scored {
		t.Error("program with BindHighScore should be marked scored")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-test-dup", func() Game { return &stubGame{} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz-test-dup", func() Game { return &stubGame{} })
}

func TestListSorted(t *testing.T) {
	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
