package sim

import "math"

// AvailableSlots returns how many entities may be spawned right now.
// It never goes below zero.
func AvailableSlots(total, ceiling, reserve int) int {
	return max(0, ceiling-total-reserve)
}

// Budget is the population ceiling and particle burst throttle shared by
// every spawn site. It outlives rounds: Reset on the world leaves it alone.
type Budget struct {
	// Ceiling is the maximum count of live circles, projectiles and particles
	Ceiling int

	// Reserve is headroom kept free below the ceiling
	Reserve int

	// ParticleCount is the burst size for an unsuppressed circle destruction
	ParticleCount int

	initialCeiling       int
	initialParticleCount int
}

// NewBudget creates a budget from the configured limits
func NewBudget(cfg Config) *Budget {
	return &Budget{
		Ceiling:              cfg.MaxObjects,
		Reserve:              cfg.ReserveBuffer,
		ParticleCount:        cfg.ParticleCount,
		initialCeiling:       cfg.MaxObjects,
		initialParticleCount: cfg.ParticleCount,
	}
}

// Available returns the free slots for the given live total
func (b *Budget) Available(total int) int {
	return AvailableSlots(total, b.Ceiling, b.Reserve)
}

// InitialCeiling returns the ceiling the budget started with
func (b *Budget) InitialCeiling() int {
	return b.initialCeiling
}

// TickStats is what an AdaptivePolicy sees once per world tick.
type TickStats struct {
	FPS   float64
	Total int
	Time  float64
}

// AdaptivePolicy may retune the budget once per world tick.
type AdaptivePolicy interface {
	Adjust(b *Budget, stats TickStats)
}

// FrameRatePolicy lowers the ceiling when the measured frame rate stays
// below TargetFPS. It never raises it again.
type FrameRatePolicy struct {
	TargetFPS float64
	Cooldown  float64
	Shrink    float64

	lastAdjust float64
	adjusted   bool
}

// NewFrameRatePolicy returns a policy targeting 60 fps
func NewFrameRatePolicy() *FrameRatePolicy {
	return &FrameRatePolicy{
		TargetFPS: 60,
		Cooldown:  1.0,
		Shrink:    0.8,
	}
}

// Adjust implements AdaptivePolicy
func (p *FrameRatePolicy) Adjust(b *Budget, stats TickStats) {
	if stats.FPS <= 0 || stats.FPS >= p.TargetFPS {
		return
	}
	if p.adjusted && stats.Time-p.lastAdjust < p.Cooldown {
		return
	}

	floor := max(1, b.initialCeiling/10)
	newMax := max(int(math.Floor(float64(stats.Total)*p.Shrink)), floor)
	if newMax >= b.Ceiling {
		return
	}

	ratio := float64(newMax) / float64(b.initialCeiling)
	b.Ceiling = newMax
	b.ParticleCount = max(1, int(float64(b.initialParticleCount)*ratio))
	p.lastAdjust = stats.Time
	p.adjusted = true
}
