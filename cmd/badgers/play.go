package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/badgers-arcade/internal/config"
	"github.com/vovakirdan/badgers-arcade/internal/core"
	"github.com/vovakirdan/badgers-arcade/internal/platform/audio"
	"github.com/vovakirdan/badgers-arcade/internal/platform/tui"
	"github.com/vovakirdan/badgers-arcade/internal/platform/window"
	"github.com/vovakirdan/badgers-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWindow     bool
	flagScale      int
	flagSound      bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Steer
  P            - Pause
  Space/Enter  - Continue (after pause or game over)
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a screenshot (terminal only)

Difficulty options:
  easy   - Start one speed step slower
  normal - Use the config as is
  hard   - Start faster and accelerate twice as quickly
  fixed  - Speed never changes

Examples:
  badgers play snake
  badgers play badgers --difficulty hard
  badgers play badgers --window --scale 2
  badgers play badgers --sound
  badgers play badgers --config ./my-badgers.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Open a desktop window instead of using the terminal")
	playCmd.Flags().IntVar(&flagScale, "scale", 1, "Window scale factor (with --window)")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'badgers list' to see available games", gameID)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID, registry.Options{ConfigPath: flagConfig, Difficulty: preset})
	if err != nil {
		return fmt.Errorf("error creating game: %w", err)
	}

	sound := openSound(logger)
	if sound != nil {
		defer sound.Cleanup()
	}

	if flagWindow {
		opts := window.Options{Seed: flagSeed, Scale: flagScale, Logger: logger}
		if sound != nil {
			opts.Sound = sound
		}
		return window.Run(game, opts)
	}

	opts := tui.Options{Config: terminalConfig(), Logger: logger}
	if sound != nil {
		opts.Sound = sound
	}
	_, err = tui.Run(game, opts)
	return err
}

// terminalConfig builds the runtime config from the current terminal size.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}

// openSound starts the speaker when --sound is set. Audio failures are
// logged and the game continues silently.
func openSound(logger *log.Logger) *audio.SoundManager {
	if !flagSound {
		return nil
	}
	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable", "err", err)
		return nil
	}
	return sm
}
