package core

// RuntimeConfig contains process-level settings passed to surfaces and the
// simulation loop.
type RuntimeConfig struct {
	ScreenW  int   // Framebuffer width in pixels
	ScreenH  int   // Framebuffer height in pixels
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means seed from the clock
}

// DefaultConfig returns a RuntimeConfig with the stock 800x600 display.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  800,
		ScreenH:  600,
		TickRate: 60,
		Seed:     0,
	}
}
