package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the default Dodge configuration.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Field: DodgeField{
			Width:  800,
			Height: 480,
		},
		Player: DodgePlayer{
			Size:  50,
			Speed: 5,
		},
		Obstacles: DodgeObstacles{
			MinSize:      20,
			MaxSize:      50,
			MinSpeed:     2,
			MaxSpeed:     7,
			LateralSpeed: 5,
		},
		Bonus: DodgeBonus{
			Size:   20,
			Points: 100,
		},
		Spawn: DodgeSpawn{
			InitialInterval: 30,
			MinInterval:     10,
			RampEvery:       600, // 10 seconds at 60fps
			RampStep:        10,
			BonusEvery:      500,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "dodge":
		return defaultDodgeYAML
	default:
		return nil
	}
}
