package core

// RuntimeConfig contains configuration passed to the game at initialization.
// It is immutable for the lifetime of a game.
type RuntimeConfig struct {
	ScreenW  int   // Playfield width in pixels
	ScreenH  int   // Playfield height in pixels
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with the standard 800x600 playfield.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  800,
		ScreenH:  600,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Bounds returns the playfield rectangle.
func (c RuntimeConfig) Bounds() Bounds {
	return Bounds{W: c.ScreenW, H: c.ScreenH}
}
