// Package config provides YAML-based configuration loading for the shooter.
package config

import "github.com/vovakirdan/square-shooter/internal/core"

// Config contains every tunable of the shooter. The defaults reproduce the
// stock 800x600 game exactly.
type Config struct {
	Display    DisplayConfig    `yaml:"display"`
	Player     PlayerConfig     `yaml:"player"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Target     TargetConfig     `yaml:"target"`
	Colors     ColorConfig      `yaml:"colors"`
	Runtime    RuntimeSettings  `yaml:"runtime"`
	Terminal   TerminalConfig   `yaml:"terminal"`
}

// DisplayConfig defines the window and framebuffer.
type DisplayConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Scale  int    `yaml:"scale"` // Window pixels per framebuffer pixel
}

// PlayerConfig defines the player square.
type PlayerConfig struct {
	Size         int     `yaml:"size"`
	MoveStep     float64 `yaml:"move_step"`     // Pixels per tick per held key
	RotationStep float64 `yaml:"rotation_step"` // Radians per tick while rotating
}

// ProjectileConfig defines projectiles.
type ProjectileConfig struct {
	Speed float64 `yaml:"speed"`
	Size  int     `yaml:"size"`
}

// TargetConfig defines target spawning and collision.
type TargetConfig struct {
	Size            int     `yaml:"size"`
	MaxLive         int     `yaml:"max_live"`
	SpawnChance     float64 `yaml:"spawn_chance"`     // Per-tick probability in [0, 1]
	CollisionRadius float64 `yaml:"collision_radius"` // 0 means player.size / 2
}

// ColorConfig holds the palette as 0xRRGGBB values.
type ColorConfig struct {
	Background uint32 `yaml:"background"`
	Player     uint32 `yaml:"player"`
	Projectile uint32 `yaml:"projectile"`
	Target     uint32 `yaml:"target"`
}

// RuntimeSettings controls pacing and randomness.
type RuntimeSettings struct {
	TickRate int   `yaml:"tick_rate"`
	Seed     int64 `yaml:"seed"`
}

// TerminalConfig tunes the terminal surface.
type TerminalConfig struct {
	HoldTicks int `yaml:"hold_ticks"` // Ticks a key stays down after a press event
}

// Radius returns the effective collision radius.
func (c TargetConfig) Radius(playerSize int) float64 {
	if c.CollisionRadius > 0 {
		return c.CollisionRadius
	}
	return float64(playerSize) / 2
}

// RuntimeConfig projects the config onto core.RuntimeConfig.
func (c Config) RuntimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  c.Display.Width,
		ScreenH:  c.Display.Height,
		TickRate: c.Runtime.TickRate,
		Seed:     c.Runtime.Seed,
	}
}
