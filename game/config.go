package game

import "dodgecircles/sim"

// Config holds frontend options
type Config struct {
	// Sim is the simulation configuration
	Sim sim.Config

	// Patterns enables the precomputed pattern cache
	Patterns bool

	// Adaptive lowers the population ceiling when the frame rate drops
	Adaptive bool

	// Profile captures a CPU profile and trace when the frame rate drops
	Profile bool

	// Mute starts with sound off
	Mute bool

	// Volume is the master volume in half-steps of loudness (0 is unchanged)
	Volume float64
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Sim:      sim.DefaultConfig(),
		Patterns: true,
	}
}

// ScreenSize returns the window size in pixels
func (c Config) ScreenSize() (int, int) {
	return c.Sim.ScreenWidth, c.Sim.ScreenHeight
}
