package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/badgers-arcade/internal/platform/tui"
	"github.com/vovakirdan/badgers-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game, then pick a
difficulty. Esc during a game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Esc/B        - Back
  Q            - Quit

Examples:
  badgers menu
  badgers menu --sound
  badgers menu --config ./my-badgers.yaml`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := openLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	sound := openSound(logger)
	if sound != nil {
		defer sound.Cleanup()
	}

	cfg := terminalConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config
		if menuResult.Quit || menuResult.GameID == "" {
			return nil
		}

		info := registry.GameInfo{ID: menuResult.GameID, Title: menuResult.GameID}
		for _, g := range registry.List() {
			if g.ID == menuResult.GameID {
				info = g
			}
		}

		preset, ok, err := tui.RunDifficultySelector(info.Title, cfg)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		game, err := registry.Create(info.ID, registry.Options{ConfigPath: flagConfig, Difficulty: preset})
		if err != nil {
			return fmt.Errorf("error creating game: %w", err)
		}

		opts := tui.Options{Config: cfg, Logger: logger, MenuBack: true}
		if sound != nil {
			opts.Sound = sound
		}
		back, err := tui.Run(game, opts)
		if err != nil {
			return err
		}
		if !back {
			return nil
		}
	}
}
