package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/badgers-arcade/internal/core"
)

type stubGame struct{ id string }

func (s stubGame) ID() string { return s.id }
func (s stubGame) Title() string { return "Stub" }
func (s stubGame) Reset(core.RuntimeConfig) {}
func (s stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s stubGame) Render(*core.Screen) {}
func (s stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", "Stub A", func(Options) (Game, error) { return stubGame{id: "stub_a"}, nil })

	if !Exists("stub_a") {
		t.Fatal("stub_a should exist after Register")
	}

	g, err := Create("stub_a", Options{})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID() = %q, expected stub_a", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub_a" {
			found = true
			if info.Title != "Stub A" {
				t.Errorf("Title = %q, expected Stub A", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() should include stub_a")
	}
}

func TestCreateErrors(t *testing.T) {
	if _, err := Create("no_such_game", Options{}); err == nil {
		t.Error("Create() of unknown game should fail")
	}

	boom := errors.New("boom")
	Register("stub_err", "Stub Err", func(Options) (Game, error) { return nil, boom })

	_, err := Create("stub_err", Options{})
	if !errors.Is(err, boom) {
		t.Errorf("Create() error = %v, expected to wrap %v", err, boom)
	}
	if err != nil && !strings.Contains(err.Error(), "stub_err") {
		t.Errorf("error should name the game, got %q", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", "Dup", func(Options) (Game, error) { return stubGame{}, nil })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_dup", "Dup", func(Options) (Game, error) { return stubGame{}, nil })
}
