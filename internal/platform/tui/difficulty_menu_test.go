package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/badgers-arcade/internal/config"
)

func pressDifficulty(t *testing.T, m DifficultyModel, keys ...tea.KeyMsg) DifficultyModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		dm, ok := next.(DifficultyModel)
		if !ok {
			t.Fatalf("Update returned %T, expected DifficultyModel", next)
		}
		m = dm
	}
	return m
}

func TestDifficultyModelSelect(t *testing.T) {
	down := tea.KeyMsg{Type: tea.KeyDown}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	tests := []struct {
		name     string
		keys     []tea.KeyMsg
		expected config.DifficultyPreset
	}{
		{"default", []tea.KeyMsg{enter}, config.DifficultyNormal},
		{"hard", []tea.KeyMsg{down, down, enter}, config.DifficultyHard},
		{"fixed", []tea.KeyMsg{down, down, down, down, enter}, config.DifficultyFixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := pressDifficulty(t, NewDifficultyModel("Badgers & Cats", 80, 24, nil), tt.keys...)
			preset, ok := m.Selected()
			if !ok || preset != tt.expected {
				t.Errorf("Selected() = %q, %v, expected %q, true", preset, ok, tt.expected)
			}
		})
	}
}

func TestDifficultyModelBack(t *testing.T) {
	m := pressDifficulty(t, NewDifficultyModel("Snake", 80, 24, nil), tea.KeyMsg{Type: tea.KeyEsc})
	if !m.WantsBack() {
		t.Error("WantsBack() = false after Esc, expected true")
	}
	if _, ok := m.Selected(); ok {
		t.Error("Selected() reported a choice after Esc")
	}
}

func TestDifficultyModelViewMarksFixed(t *testing.T) {
	view := NewDifficultyModel("Snake", 80, 24, nil).View()
	if !strings.Contains(view, "Fixed (speed never changes)") {
		t.Errorf("View() does not describe the fixed preset:\n%s", view)
	}
	if n := strings.Count(view, "speed never changes"); n != 1 {
		t.Errorf("View() marks %d presets as fixed, expected 1", n)
	}
}
