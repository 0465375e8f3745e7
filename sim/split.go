package sim

import (
	"math"
	"math/rand"
)

const (
	minSplitShare   = 0.1
	splitShareSlack = 0.8
)

// Split breaks c into 2-6 smaller circles holding 80% of its area.
// Circles at or below twice minRadius vanish without fragments.
func Split(c *Circle, minRadius float64, rng *rand.Rand, patterns PatternProvider) []*Circle {
	if c.Radius <= 2*minRadius {
		return nil
	}

	target := c.Area() * SplitAreaKeep
	minArea := math.Pi * minRadius * minRadius

	n := intRange(rng, MinSplitCount, MaxSplitCount)
	if float64(n)*minArea > target {
		n = max(MinSplitCount, min(int(target/minArea), MaxSplitCount))
	}
	lo := math.Max(minSplitShare, minArea/target)

	ratios := providedRatios(patterns, n, lo)
	if ratios == nil {
		ratios = splitRatios(rng, n, lo)
	}
	var offsets []float64
	if patterns != nil {
		if a := patterns.SplitAngles(n); len(a) == n {
			offsets = a
		}
	}

	base := uniform(rng, 0, twoPi)
	speed := c.Speed * SplitSpeedScale
	fragments := make([]*Circle, 0, n)
	for i := 0; i < n; i++ {
		area := target * ratios[i]
		if area <= 0 {
			area = minArea
		}
		radius := math.Max(math.Sqrt(area/math.Pi), minRadius)

		angle := base + twoPi*float64(i)/float64(n)
		if offsets != nil {
			angle = base + offsets[i]
		}
		dir := FromAngle(angle)
		pos := c.Pos.Add(dir.Scale(c.Radius * SplitDistance))

		fragments = append(fragments, &Circle{
			Pos:    pos,
			Prev:   pos,
			Vel:    dir.Scale(speed),
			Radius: radius,
			Speed:  speed,
			Color:  c.Color,
		})
	}
	return fragments
}

// splitRatios partitions 1.0 into n shares of at least lo each. Every draw
// leaves enough of the remainder for the shares still to come; the last
// share takes what is left. The result is shuffled.
func splitRatios(rng *rand.Rand, n int, lo float64) []float64 {
	ratios := make([]float64, n)
	remaining := 1.0
	for i := 0; i < n-1; i++ {
		pending := float64(n - 1 - i)
		hi := math.Min(remaining*splitShareSlack, remaining-lo*pending)
		ratios[i] = uniform(rng, lo, math.Max(lo, hi))
		remaining -= ratios[i]
	}
	ratios[n-1] = remaining
	rng.Shuffle(n, func(i, j int) { ratios[i], ratios[j] = ratios[j], ratios[i] })
	return ratios
}

// providedRatios returns the provider's ratios when they fit the split,
// nil otherwise.
func providedRatios(patterns PatternProvider, n int, lo float64) []float64 {
	if patterns == nil {
		return nil
	}
	ratios := patterns.SplitRatios(n)
	if len(ratios) != n {
		return nil
	}
	sum := 0.0
	for _, r := range ratios {
		if r < lo-1e-9 {
			return nil
		}
		sum += r
	}
	if math.Abs(sum-1) > 1e-6 {
		return nil
	}
	return ratios
}
