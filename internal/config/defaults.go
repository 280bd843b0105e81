package config

import (
	_ "embed"
)

//go:embed defaults/badgers.yaml
var defaultBadgersYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultBadgersConfig returns the default Badgers & Cats configuration.
func DefaultBadgersConfig() SnakeConfig {
	return SnakeConfig{
		Playfield: Playfield{Width: 640, Height: 400, CellSize: 20},
		Snake: SnakeRules{
			InitialLength:    1,
			ShrinkOnObstacle: 3,
		},
		Speed: SpeedRules{
			Initial: 3,
			Step:    1,
			Min:     1,
			Max:     0,
		},
		Scoring: Scoring{
			Orange:          10,
			Red:             20,
			Green:           30,
			ObstaclePenalty: 200,
			BonusEvery:      5,
			SpecialBonus:    5,
		},
		Collectibles: Collectibles{
			Categories:      []string{CategoryOrange, CategoryRed, CategoryGreen},
			Initial:         1,
			Max:             5,
			SpawnEverySpeed: 5,
			Special:         1,
			Recolor:         true,
		},
		Obstacles: []ObstacleSpawn{
			{Kind: KindBadger, Count: 1, MoveEvery: 10},
			{Kind: KindHoneyBadger, Count: 1, MoveEvery: 4},
		},
		Rules: Rules{
			RespawnAllOnEvent:      true,
			RandomDirectionOnReset: false,
		},
	}
}

// DefaultSnakeConfig returns the default classic snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Playfield: Playfield{Width: 640, Height: 400, CellSize: 20},
		Snake:     SnakeRules{InitialLength: 1},
		Speed:     SpeedRules{Initial: 20, Min: 1},
		Scoring: Scoring{
			Orange:     10,
			Red:        20,
			Green:      30,
			BonusEvery: 5,
		},
		Collectibles: Collectibles{
			Categories: []string{CategoryRed},
			Initial:    1,
			Max:        1,
		},
		Rules: Rules{RandomDirectionOnReset: true},
	}
}

// Default returns the hardcoded configuration for a game ID.
func Default(gameID string) SnakeConfig {
	if gameID == "snake" {
		return DefaultSnakeConfig()
	}
	return DefaultBadgersConfig()
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "badgers":
		return defaultBadgersYAML
	case "snake":
		return defaultSnakeYAML
	default:
		return nil
	}
}
