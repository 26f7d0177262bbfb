// Package dodge implements an arcade survival game: a square dodges obstacles
// flying in from every edge of the field while picking up bonus points.
// The score grows by one every tick the player survives.
package dodge

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/registry"
)

// Game adapts a Session to the platform's registry.Game interface.
// It adds the title screen and pause, which the simulation itself does not model.
type Game struct {
	session *Session
	cfg     config.DodgeConfig
	runtime core.RuntimeConfig
	started bool
	paused  bool
	err     error // config error from the last Reset
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names select the config default.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// LoadConfig loads the game config from the configured path, applies the
// difficulty preset and validates the result.
func LoadConfig() (config.DodgeConfig, config.Source, error) {
	cfg, src, err := config.LoadDodge(configPath)
	if err != nil {
		return config.DodgeConfig{}, src, err
	}
	config.ApplyDodgePreset(&cfg, difficultyPreset)
	if err := cfg.Validate(); err != nil {
		return config.DodgeConfig{}, src, fmt.Errorf("dodge: preset %q: %w", difficultyPreset, err)
	}
	return cfg, src, nil
}

// New creates a new Dodge game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dodge"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dodge"
}

// Reset builds a fresh session and returns to the title screen.
// A config that fails to load is reported through Err and the round runs
// on the built-in defaults.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, _, err := LoadConfig()
	g.err = err
	if err != nil {
		cfg = config.DefaultDodgeConfig()
	}

	session, err := NewSession(cfg, rand.New(rand.NewSource(runtime.Seed)))
	if err != nil {
		// cfg is either validated or the built-in defaults
		panic(fmt.Sprintf("dodge: %v", err))
	}

	g.cfg = cfg
	g.session = session
	g.started = false
	g.paused = false
}

// Err returns the config error from the last Reset, if any.
func (g *Game) Err() error {
	return g.err
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.started {
		if in.Has(core.ActionConfirm) {
			g.started = true
			g.session.Start()
		}
		return core.StepResult{State: g.State()}
	}

	if g.session.Over() {
		if in.Has(core.ActionRestart) {
			g.session.Reset()
			g.paused = false
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, a := range core.DirectionActions {
		if d, ok := directionFor(a); ok {
			g.session.SetDirection(d, in.Has(a))
		}
	}
	g.session.Tick()

	return core.StepResult{State: g.State()}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if !g.started {
		drawCenteredMessage(dst, "D O D G E", "Arrows/WASD to move  |  Enter to start")
		return
	}

	RenderSnapshot(dst, g.session.Snapshot())

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.FinalScore(),
		GameOver: g.session.Over(),
		Paused:   g.paused,
		Started:  g.started,
	}
}

// Stats returns key/value pairs describing the round, for logging.
func (g *Game) Stats() []any {
	return []any{
		"score", g.session.Score(),
		"bonus", g.session.BonusScore(),
		"bonus_count", g.session.BonusCount(),
		"final", g.session.FinalScore(),
		"frames", g.session.FrameCount(),
		"interval", g.session.SpawnInterval(),
	}
}

// Session exposes the underlying simulation.
func (g *Game) Session() *Session {
	return g.session
}

// Register the game with the registry
func init() {
	registry.Register("dodge", func() registry.Game {
		return New()
	})
}
