package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration of a snake variant.
// Search order: customPath -> ~/.badgers/configs/<game>.yaml -> ./configs/<game>.yaml -> embedded default
func Load(gameID, customPath string) (SnakeConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readFile(gameID, customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: invalid %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		if cfg, err := readFile(gameID, path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := Default(gameID)
	if data := GetDefaultYAML(gameID); data != nil {
		var embedded SnakeConfig
		if err := yaml.Unmarshal(data, &embedded); err == nil && embedded.Validate() == nil {
			return embedded, nil
		}
	}
	return cfg, nil // Fallback to hardcoded if embed fails
}

// readFile parses a YAML file on top of the game's defaults,
// so partial files only override the keys they name.
func readFile(gameID, path string) (SnakeConfig, error) {
	cfg := Default(gameID)
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".badgers", "configs", filename)
}

// Validate reports every problem with the configuration.
func (c SnakeConfig) Validate() error {
	var errs []error

	p := c.Playfield
	if p.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("playfield.cell_size must be positive, got %d", p.CellSize))
	} else {
		if p.Width <= 0 || p.Width%p.CellSize != 0 {
			errs = append(errs, fmt.Errorf("playfield.width must be a positive multiple of %d, got %d", p.CellSize, p.Width))
		}
		if p.Height <= 0 || p.Height%p.CellSize != 0 {
			errs = append(errs, fmt.Errorf("playfield.height must be a positive multiple of %d, got %d", p.CellSize, p.Height))
		}
	}

	if c.Snake.InitialLength < 1 {
		errs = append(errs, fmt.Errorf("snake.initial_length must be at least 1, got %d", c.Snake.InitialLength))
	}
	if c.Speed.Min < 1 {
		errs = append(errs, fmt.Errorf("speed.min must be at least 1, got %d", c.Speed.Min))
	}
	if c.Speed.Initial < c.Speed.Min {
		errs = append(errs, fmt.Errorf("speed.initial %d is below speed.min %d", c.Speed.Initial, c.Speed.Min))
	}
	if c.Speed.Max != 0 && c.Speed.Max < c.Speed.Initial {
		errs = append(errs, fmt.Errorf("speed.max %d is below speed.initial %d", c.Speed.Max, c.Speed.Initial))
	}
	if c.Scoring.BonusEvery < 1 {
		errs = append(errs, fmt.Errorf("scoring.bonus_every must be at least 1, got %d", c.Scoring.BonusEvery))
	}

	if len(c.Collectibles.Categories) == 0 {
		errs = append(errs, errors.New("collectibles.categories must not be empty"))
	}
	for _, cat := range c.Collectibles.Categories {
		if !slices.Contains([]string{CategoryOrange, CategoryRed, CategoryGreen}, cat) {
			errs = append(errs, fmt.Errorf("collectibles.categories: unknown category %q", cat))
		}
	}
	if c.Collectibles.Max < c.Collectibles.Initial {
		errs = append(errs, fmt.Errorf("collectibles.max %d is below collectibles.initial %d", c.Collectibles.Max, c.Collectibles.Initial))
	}

	for i, o := range c.Obstacles {
		if o.Kind != KindBadger && o.Kind != KindHoneyBadger {
			errs = append(errs, fmt.Errorf("obstacles[%d]: unknown kind %q", i, o.Kind))
		}
		if o.MoveEvery < 1 {
			errs = append(errs, fmt.Errorf("obstacles[%d].move_every must be at least 1, got %d", i, o.MoveEvery))
		}
	}

	return errors.Join(errs...)
}
