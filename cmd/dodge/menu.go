package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
	"github.com/vovakirdan/tui-dodge/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty, then play",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a difficulty, Enter to play.
Quitting a round returns you to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Q/Esc        - Quit

Examples:
  dodge menu
  dodge menu --fps 30 --log dodge.log`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	if _, _, err := dodge.LoadConfig(); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cfg := runtimeConfig()
	current, _ := config.ParsePreset(flagDifficulty)

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg, current)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}

		// Update config with any size changes
		cfg = menuResult.Config
		if menuResult.Quit {
			return nil
		}

		current = menuResult.Preset
		dodge.SetDifficultyPreset(string(current))
		// A preset can push a custom config out of range
		if _, _, err := dodge.LoadConfig(); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		game, err := registry.Create("dodge")
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}

		// Fresh seed for each round unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		logger.Info("starting", "game", game.ID(), "seed", cfg.Seed, "difficulty", current)
		if err := tui.Run(game, cfg, logger); err != nil {
			logger.Error("game failed", "error", err)
			return fmt.Errorf("running game: %w", err)
		}

		// Loop back to menu
	}
}
