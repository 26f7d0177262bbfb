// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid is returned when a configuration value is out of range.
var ErrInvalid = errors.New("invalid config")

// DodgeConfig contains all configuration for the Dodge game.
// All sizes, positions and speeds are in field units (per tick for speeds).
type DodgeConfig struct {
	Field     DodgeField     `yaml:"field"`
	Player    DodgePlayer    `yaml:"player"`
	Obstacles DodgeObstacles `yaml:"obstacles"`
	Bonus     DodgeBonus     `yaml:"bonus"`
	Spawn     DodgeSpawn     `yaml:"spawn"`
}

// DodgeField defines the play area.
type DodgeField struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DodgePlayer defines the player square.
type DodgePlayer struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"`
}

// DodgeObstacles defines obstacle spawn ranges. Ranges are half-open [min, max).
type DodgeObstacles struct {
	MinSize      float64 `yaml:"min_size"`
	MaxSize      float64 `yaml:"max_size"`
	MinSpeed     float64 `yaml:"min_speed"`     // Inward speed magnitude
	MaxSpeed     float64 `yaml:"max_speed"`     // Inward speed magnitude
	LateralSpeed float64 `yaml:"lateral_speed"` // Sideways speed range is [-lateral, lateral)
}

// DodgeBonus defines bonus point collectibles.
type DodgeBonus struct {
	Size   float64 `yaml:"size"`
	Points int     `yaml:"points"`
}

// DodgeSpawn defines spawn timing and the spawn-rate ramp, all in ticks.
type DodgeSpawn struct {
	InitialInterval int `yaml:"initial_interval"`
	MinInterval     int `yaml:"min_interval"`
	RampEvery       int `yaml:"ramp_every"` // 0 disables the ramp
	RampStep        int `yaml:"ramp_step"`
	BonusEvery      int `yaml:"bonus_every"`
}

// Validate checks that every value is usable by the simulation.
func (c DodgeConfig) Validate() error {
	floats := []struct {
		name string
		v    float64
	}{
		{"field.width", c.Field.Width},
		{"field.height", c.Field.Height},
		{"player.size", c.Player.Size},
		{"player.speed", c.Player.Speed},
		{"obstacles.min_size", c.Obstacles.MinSize},
		{"obstacles.max_size", c.Obstacles.MaxSize},
		{"obstacles.min_speed", c.Obstacles.MinSpeed},
		{"obstacles.max_speed", c.Obstacles.MaxSpeed},
		{"obstacles.lateral_speed", c.Obstacles.LateralSpeed},
		{"bonus.size", c.Bonus.Size},
	}
	for _, f := range floats {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %g", ErrInvalid, f.name, f.v)
		}
	}

	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field must be positive, got %gx%g", ErrInvalid, c.Field.Width, c.Field.Height)
	case c.Player.Size <= 0:
		return fmt.Errorf("%w: player size must be positive, got %g", ErrInvalid, c.Player.Size)
	case c.Player.Size > c.Field.Width || c.Player.Size > c.Field.Height:
		return fmt.Errorf("%w: player size %g does not fit the field", ErrInvalid, c.Player.Size)
	case c.Player.Speed <= 0:
		return fmt.Errorf("%w: player speed must be positive, got %g", ErrInvalid, c.Player.Speed)
	case c.Obstacles.MinSize <= 0 || c.Obstacles.MaxSize < c.Obstacles.MinSize:
		return fmt.Errorf("%w: obstacle size range [%g, %g)", ErrInvalid, c.Obstacles.MinSize, c.Obstacles.MaxSize)
	case c.Obstacles.MinSpeed <= 0 || c.Obstacles.MaxSpeed < c.Obstacles.MinSpeed:
		return fmt.Errorf("%w: obstacle speed range [%g, %g)", ErrInvalid, c.Obstacles.MinSpeed, c.Obstacles.MaxSpeed)
	case c.Obstacles.LateralSpeed < 0:
		return fmt.Errorf("%w: lateral speed must not be negative, got %g", ErrInvalid, c.Obstacles.LateralSpeed)
	case c.Bonus.Size <= 0 || c.Bonus.Size > c.Field.Width || c.Bonus.Size > c.Field.Height:
		return fmt.Errorf("%w: bonus size %g", ErrInvalid, c.Bonus.Size)
	case c.Spawn.MinInterval <= 0 || c.Spawn.InitialInterval < c.Spawn.MinInterval:
		return fmt.Errorf("%w: spawn interval %d with floor %d", ErrInvalid, c.Spawn.InitialInterval, c.Spawn.MinInterval)
	case c.Spawn.RampEvery < 0 || c.Spawn.RampStep < 0:
		return fmt.Errorf("%w: ramp every %d step %d", ErrInvalid, c.Spawn.RampEvery, c.Spawn.RampStep)
	case c.Spawn.BonusEvery <= 0:
		return fmt.Errorf("%w: bonus interval must be positive, got %d", ErrInvalid, c.Spawn.BonusEvery)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a flag value into a preset. The empty string means
// "use the config as loaded" and is returned unchanged.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// Description returns a one-line summary for menus.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyEasy:
		return "Slower obstacles, gentler spawn rate"
	case DifficultyNormal:
		return "Spawn every 30 ticks, ramping to 10"
	case DifficultyHard:
		return "Fast obstacles from the start"
	case DifficultyFixed:
		return "Spawn rate never ramps up"
	default:
		return ""
	}
}
