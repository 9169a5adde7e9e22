package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// Default returns the hardcoded shooter configuration.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			Title:  "Interactive Window",
			Width:  800,
			Height: 600,
			Scale:  1,
		},
		Player: PlayerConfig{
			Size:         40,
			MoveStep:     1.0,
			RotationStep: 0.1,
		},
		Projectile: ProjectileConfig{
			Speed: 5.0,
			Size:  4,
		},
		Target: TargetConfig{
			Size:            20,
			MaxLive:         10,
			SpawnChance:     0.05,
			CollisionRadius: 20,
		},
		Colors: ColorConfig{
			Background: 0x000000,
			Player:     0xFF0000,
			Projectile: 0x00FF00,
			Target:     0x0000FF,
		},
		Runtime: RuntimeSettings{
			TickRate: 60,
			Seed:     0,
		},
		Terminal: TerminalConfig{
			HoldTicks: 8,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
