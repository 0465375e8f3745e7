package sim

import "image/color"

// ExplosionPattern is a pre-sampled explosion shape.
type ExplosionPattern struct {
	Radius float64
	Curve  []float64
}

// PatternProvider supplies pre-sampled random values. Any method may miss
// (nil slice or false); callers then sample on demand. A nil provider is
// valid everywhere a PatternProvider is accepted.
type PatternProvider interface {
	// VelocityPattern returns up to n direction vectors whose lengths are
	// speed factors around 1, scaled by the caller's base speed
	VelocityPattern(n int) []Vec2

	// SizeForRadius returns a particle size for a source circle radius
	SizeForRadius(radius float64) (float64, bool)

	// Colors returns up to n particle colours
	Colors(n int) []color.NRGBA

	// SplitRatios returns n ratios summing to 1
	SplitRatios(n int) []float64

	// SplitAngles returns n fragment angles
	SplitAngles(n int) []float64

	// ExplosionPattern returns a pre-sampled explosion
	ExplosionPattern() (ExplosionPattern, bool)

	// ExplosionMultiplier returns the explosion radius multiplier
	ExplosionMultiplier() (float64, bool)
}

// Refresher is implemented by providers that top up their tables during play.
type Refresher interface {
	Refresh(dt float64)
}
