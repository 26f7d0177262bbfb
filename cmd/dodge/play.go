package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
	"github.com/vovakirdan/tui-dodge/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a round",
	Long: `Start playing. The game defaults to dodge.

Controls:
  Arrows/WASD/hjkl  - Move
  Enter/Space       - Start
  P/Esc             - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slower obstacles, gentler spawn rate
  normal - Spawn every 30 ticks, ramping down to 10
  hard   - Fast obstacles from the start
  fixed  - No ramp, stays at the config's initial spawn rate

Examples:
  dodge play
  dodge play --difficulty easy
  dodge play --config ./my-dodge.yaml
  dodge play --seed 7 --fps 30`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "dodge"
	if len(args) == 1 {
		gameID = args[0]
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := runtimeConfig()

	_, src, err := dodge.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger.Debug("config loaded", "source", src)

	game, err := registry.Create(gameID)
	if errors.Is(err, registry.ErrUnknownGame) {
		return fmt.Errorf("%w, run 'dodge list' to see available games", err)
	}
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger.Info("starting", "game", gameID, "seed", cfg.Seed, "fps", cfg.TickRate, "difficulty", flagDifficulty)
	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
