package core

import "time"

// RuntimeConfig contains configuration passed to sessions by a front-end.
// Sessions use it to size the view and for deterministic course generation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic course generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Rate returns the tick rate, falling back to 60 for non-positive values.
func (c RuntimeConfig) Rate() int {
	if c.TickRate <= 0 {
		return 60
	}
	return c.TickRate
}

// TickDuration returns the fixed simulation step length for the scheduler.
func (c RuntimeConfig) TickDuration() time.Duration {
	return time.Second / time.Duration(c.Rate())
}

// TickSeconds returns the fixed simulation step length in seconds,
// the unit the simulation expects for dt.
func (c RuntimeConfig) TickSeconds() float64 {
	return 1.0 / float64(c.Rate())
}
