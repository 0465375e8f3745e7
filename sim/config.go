package sim

import (
	"fmt"
	"math"
)

// Config holds simulation configuration
type Config struct {
	// ScreenWidth is the play area width in pixels
	ScreenWidth int

	// ScreenHeight is the play area height in pixels
	ScreenHeight int

	// ScaleX and ScaleY map base-resolution constants onto the screen
	ScaleX float64
	ScaleY float64

	// AvatarHz is the fast step rate
	AvatarHz int

	// WorldHz is the slow step rate
	WorldHz int

	// MaxFrameDelta caps the wall-clock delta fed to the scheduler in one frame
	MaxFrameDelta float64

	// Seed for the simulation random source
	Seed int64

	// MaxObjects is the initial population ceiling
	MaxObjects int

	// ReserveBuffer is subtracted from the ceiling before computing slots
	ReserveBuffer int

	// ParticleCount is the initial particle burst size
	ParticleCount int
}

// NewConfig returns the default configuration for a given screen size
func NewConfig(width, height int) Config {
	return Config{
		ScreenWidth:   width,
		ScreenHeight:  height,
		ScaleX:        float64(width) / BaseWidth,
		ScaleY:        float64(height) / BaseHeight,
		AvatarHz:      AvatarRate,
		WorldHz:       WorldRate,
		MaxFrameDelta: 0.25,
		Seed:          1,
		MaxObjects:    InitialMaxObjects,
		ReserveBuffer: ObjectBuffer,
		ParticleCount: InitialParticleCount,
	}
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return NewConfig(1024, 768)
}

// Validate reports the first invalid field
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("invalid screen size %dx%d", c.ScreenWidth, c.ScreenHeight)
	case c.ScaleX <= 0 || c.ScaleY <= 0:
		return fmt.Errorf("invalid scale %.3fx%.3f", c.ScaleX, c.ScaleY)
	case c.AvatarHz <= 0 || c.WorldHz <= 0:
		return fmt.Errorf("invalid step rates %d/%d", c.AvatarHz, c.WorldHz)
	case c.MaxFrameDelta <= 0:
		return fmt.Errorf("invalid max frame delta %v", c.MaxFrameDelta)
	case c.MaxObjects <= 0:
		return fmt.Errorf("invalid max objects %d", c.MaxObjects)
	case c.ReserveBuffer < 0:
		return fmt.Errorf("invalid reserve buffer %d", c.ReserveBuffer)
	case c.ParticleCount < 0:
		return fmt.Errorf("invalid particle count %d", c.ParticleCount)
	}
	return nil
}

// FastDt returns the avatar step size in seconds
func (c Config) FastDt() float64 {
	return 1.0 / float64(c.AvatarHz)
}

// SlowDt returns the world step size in seconds
func (c Config) SlowDt() float64 {
	return 1.0 / float64(c.WorldHz)
}

// Width returns the screen width as a float
func (c Config) Width() float64 {
	return float64(c.ScreenWidth)
}

// Height returns the screen height as a float
func (c Config) Height() float64 {
	return float64(c.ScreenHeight)
}

// Center returns the middle of the screen
func (c Config) Center() Vec2 {
	return Vec2{X: c.Width() / 2, Y: c.Height() / 2}
}

// Diagonal returns the screen diagonal length
func (c Config) Diagonal() float64 {
	return math.Hypot(c.Width(), c.Height())
}

// AvatarMaxSpeed is a third of the screen diagonal per second
func (c Config) AvatarMaxSpeed() float64 {
	return c.Diagonal() / 3
}
