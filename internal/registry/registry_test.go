package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/rollcube/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterKeepsOrder(t *testing.T) {
	Register("stub_b", func() Game { return stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return stubGame{id: "stub_a"} })

	var ids []string
	for _, info := range List() {
		if info.ID == "stub_a" || info.ID == "stub_b" {
			ids = append(ids, info.ID)
		}
	}
	if len(ids) != 2 || ids[0] != "stub_b" || ids[1] != "stub_a" {
		t.Errorf("List order = %v, expected [stub_b stub_a]", ids)
	}

	g, err := Create("stub_a")
	if err != nil || g.Title() != "Stub stub_a" {
		t.Errorf("Create(stub_a) = %v, %v", g, err)
	}
	if !Exists("stub_b") {
		t.Error("stub_b should exist")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("nope"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("err = %v, expected ErrUnknownGame", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })
}
