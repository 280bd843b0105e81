package config

import "testing"

func TestParsePreset(t *testing.T) {
	tests := []struct {
		input    string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", "", false},
		{"easy", DifficultyEasy, false},
		{"normal", DifficultyNormal, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePreset(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		name     string
		preset   DifficultyPreset
		speed    SpeedRules
		expected SpeedRules
	}{
		{"none", "", SpeedRules{Initial: 3, Step: 1, Min: 1}, SpeedRules{Initial: 3, Step: 1, Min: 1}},
		{"normal", DifficultyNormal, SpeedRules{Initial: 3, Step: 1, Min: 1}, SpeedRules{Initial: 3, Step: 1, Min: 1}},
		{"easy", DifficultyEasy, SpeedRules{Initial: 3, Step: 1, Min: 1}, SpeedRules{Initial: 2, Step: 1, Min: 1}},
		{"easy at floor", DifficultyEasy, SpeedRules{Initial: 1, Step: 1, Min: 1}, SpeedRules{Initial: 1, Step: 1, Min: 1}},
		{"hard", DifficultyHard, SpeedRules{Initial: 3, Step: 1, Min: 1}, SpeedRules{Initial: 6, Step: 2, Min: 1}},
		{"hard raises max", DifficultyHard, SpeedRules{Initial: 3, Step: 1, Min: 1, Max: 4}, SpeedRules{Initial: 6, Step: 2, Min: 1, Max: 6}},
		{"hard keeps classic constant", DifficultyHard, SpeedRules{Initial: 20, Min: 1}, SpeedRules{Initial: 23, Min: 1}},
		{"fixed", DifficultyFixed, SpeedRules{Initial: 3, Step: 1, Min: 1}, SpeedRules{Initial: 3, Step: 0, Min: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBadgersConfig()
			cfg.Speed = tt.speed
			ApplyPreset(&cfg, tt.preset)
			if cfg.Speed != tt.expected {
				t.Errorf("Speed = %+v, expected %+v", cfg.Speed, tt.expected)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate() after preset = %v", err)
			}
		})
	}

	if !IsFixedPreset(DifficultyFixed) || IsFixedPreset(DifficultyHard) {
		t.Errorf("IsFixedPreset mismatch")
	}
}
