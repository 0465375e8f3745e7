// Package patterns precomputes random tables for particle bursts, splits
// and explosions so the world tick can reuse samples instead of drawing
// fresh ones.
package patterns

import (
	"context"
	"image/color"
	"math"
	"math/rand"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"dodgecircles/sim"
)

// Table sizes
const (
	VelocityPatterns  = 100
	PatternLength     = 20
	SizesPerBand      = 50
	ColorSets         = 30
	SplitPatterns     = 50
	ExplosionPatterns = 30
	Multipliers       = 100
	CurveSamples      = 10

	MaxPatterns  = 200
	TrimPatterns = 150

	refreshInterval = 1.0
)

var _ sim.PatternProvider = (*Cache)(nil)

// Cache is a sim.PatternProvider backed by precomputed tables. Every lookup
// misses until Preload has finished.
type Cache struct {
	scale float64
	seed  int64
	rng   *rand.Rand
	ready atomic.Bool

	velocity    [][]sim.Vec2
	sizes       [3][]float64
	colors      [][]color.NRGBA
	splitRatios map[int][][]float64
	splitAngles map[int][][]float64
	explosions  []sim.ExplosionPattern
	multipliers []float64

	hits         int
	misses       int
	refreshTimer float64
}

// New creates an empty cache for the given configuration
func New(cfg sim.Config, seed int64) *Cache {
	return &Cache{
		scale:       cfg.ScaleX,
		seed:        seed,
		rng:         rand.New(rand.NewSource(seed)),
		splitRatios: make(map[int][][]float64),
		splitAngles: make(map[int][][]float64),
	}
}

// Preload fills every table. Tables are generated in parallel, each with
// its own random source; lookups start hitting once it returns nil.
func (c *Cache) Preload(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	source := func(i int64) *rand.Rand { return rand.New(rand.NewSource(c.seed + i)) }

	g.Go(func() error {
		rng := source(1)
		c.velocity = make([][]sim.Vec2, 0, VelocityPatterns)
		for i := 0; i < VelocityPatterns; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			c.velocity = append(c.velocity, velocityPattern(rng))
		}
		return nil
	})
	g.Go(func() error {
		rng := source(2)
		for band := range c.sizes {
			c.sizes[band] = make([]float64, SizesPerBand)
			for i := range c.sizes[band] {
				c.sizes[band][i] = bandSize(rng, band) * c.scale
			}
		}
		c.colors = make([][]color.NRGBA, 0, ColorSets)
		for i := 0; i < ColorSets; i++ {
			c.colors = append(c.colors, colorSet(rng))
		}
		return ctx.Err()
	})
	g.Go(func() error {
		rng := source(3)
		for n := sim.MinSplitCount; n <= sim.MaxSplitCount; n++ {
			for i := 0; i < SplitPatterns; i++ {
				c.splitRatios[n] = append(c.splitRatios[n], splitRatios(rng, n))
				c.splitAngles[n] = append(c.splitAngles[n], splitAngles(rng, n))
			}
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		return nil
	})
	g.Go(func() error {
		rng := source(4)
		c.explosions = make([]sim.ExplosionPattern, 0, ExplosionPatterns)
		for i := 0; i < ExplosionPatterns; i++ {
			c.explosions = append(c.explosions, explosionPattern(rng, c.scale))
		}
		c.multipliers = make([]float64, 0, Multipliers)
		for i := 0; i < Multipliers; i++ {
			c.multipliers = append(c.multipliers, multiplier(rng))
		}
		return ctx.Err()
	})

	if err := g.Wait(); err != nil {
		return err
	}
	c.ready.Store(true)
	return nil
}

// Ready reports whether Preload has completed
func (c *Cache) Ready() bool {
	return c.ready.Load()
}

// Stats returns the lookup hit and miss counts
func (c *Cache) Stats() (hits, misses int) {
	return c.hits, c.misses
}

func (c *Cache) hit() {
	c.hits++
}

func (c *Cache) miss() {
	c.misses++
}

// VelocityPattern implements sim.PatternProvider
func (c *Cache) VelocityPattern(n int) []sim.Vec2 {
	if !c.Ready() || len(c.velocity) == 0 || n <= 0 {
		c.miss()
		return nil
	}
	c.hit()
	p := c.velocity[c.rng.Intn(len(c.velocity))]
	return p[:min(n, len(p))]
}

// SizeForRadius implements sim.PatternProvider
func (c *Cache) SizeForRadius(radius float64) (float64, bool) {
	if !c.Ready() {
		c.miss()
		return 0, false
	}
	table := c.sizes[sizeBand(radius/c.scale)]
	if len(table) == 0 {
		c.miss()
		return 0, false
	}
	c.hit()
	return table[c.rng.Intn(len(table))], true
}

// Colors implements sim.PatternProvider
func (c *Cache) Colors(n int) []color.NRGBA {
	if !c.Ready() || len(c.colors) == 0 || n <= 0 {
		c.miss()
		return nil
	}
	c.hit()
	set := c.colors[c.rng.Intn(len(c.colors))]
	return set[:min(n, len(set))]
}

// SplitRatios implements sim.PatternProvider
func (c *Cache) SplitRatios(n int) []float64 {
	return c.pick(c.splitRatios, n)
}

// SplitAngles implements sim.PatternProvider
func (c *Cache) SplitAngles(n int) []float64 {
	return c.pick(c.splitAngles, n)
}

// pick checks readiness before touching tables, which Preload may still be
// writing from another goroutine.
func (c *Cache) pick(tables map[int][][]float64, n int) []float64 {
	if !c.Ready() {
		c.miss()
		return nil
	}
	table := tables[n]
	if len(table) == 0 {
		c.miss()
		return nil
	}
	c.hit()
	return table[c.rng.Intn(len(table))]
}

// ExplosionPattern implements sim.PatternProvider
func (c *Cache) ExplosionPattern() (sim.ExplosionPattern, bool) {
	if !c.Ready() || len(c.explosions) == 0 {
		c.miss()
		return sim.ExplosionPattern{}, false
	}
	c.hit()
	return c.explosions[c.rng.Intn(len(c.explosions))], true
}

// ExplosionMultiplier implements sim.PatternProvider
func (c *Cache) ExplosionMultiplier() (float64, bool) {
	if !c.Ready() || len(c.multipliers) == 0 {
		c.miss()
		return 0, false
	}
	c.hit()
	return c.multipliers[c.rng.Intn(len(c.multipliers))], true
}

// Refresh tops up the velocity, colour and multiplier tables once a
// second. Tables that grow past MaxPatterns drop their oldest entries down
// to TrimPatterns.
func (c *Cache) Refresh(dt float64) {
	if !c.Ready() {
		return
	}
	c.refreshTimer += dt
	if c.refreshTimer < refreshInterval {
		return
	}
	c.refreshTimer = 0

	for i := 0; i < 10; i++ {
		c.velocity = append(c.velocity, velocityPattern(c.rng))
		c.multipliers = append(c.multipliers, multiplier(c.rng))
	}
	for i := 0; i < 5; i++ {
		c.colors = append(c.colors, colorSet(c.rng))
	}
	c.velocity = trim(c.velocity)
	c.multipliers = trim(c.multipliers)
	c.colors = trim(c.colors)
}

func trim[T any](table []T) []T {
	if len(table) <= MaxPatterns {
		return table
	}
	return append(table[:0], table[len(table)-TrimPatterns:]...)
}

func velocityPattern(rng *rand.Rand) []sim.Vec2 {
	p := make([]sim.Vec2, PatternLength)
	for i := range p {
		angle := 2*math.Pi*float64(i)/PatternLength + uniform(rng, -0.2, 0.2)
		p[i] = sim.FromAngle(angle).Scale(uniform(rng, 0.7, 1.3))
	}
	rng.Shuffle(len(p), func(i, j int) { p[i], p[j] = p[j], p[i] })
	return p
}

// sizeBand maps an unscaled source radius onto a size table
func sizeBand(radius float64) int {
	switch {
	case radius < 30:
		return 0
	case radius < 50:
		return 1
	default:
		return 2
	}
}

func bandSize(rng *rand.Rand, band int) float64 {
	switch band {
	case 0:
		return uniform(rng, 8, 14)
	case 1:
		return uniform(rng, 12, 20)
	default:
		return uniform(rng, 16, 24)
	}
}

func colorSet(rng *rand.Rand) []color.NRGBA {
	set := make([]color.NRGBA, PatternLength)
	for i := range set {
		set[i] = color.NRGBA{
			R: uint8(rng.Intn(51)),
			G: uint8(100 + rng.Intn(101)),
			B: uint8(200 + rng.Intn(56)),
			A: 255,
		}
	}
	return set
}

// splitRatios partitions 1.0 into n shares of at least 0.1
func splitRatios(rng *rand.Rand, n int) []float64 {
	const lo = 0.1
	ratios := make([]float64, n)
	remaining := 1.0
	for i := 0; i < n-1; i++ {
		hi := math.Min(remaining*0.8, remaining-lo*float64(n-1-i))
		ratios[i] = uniform(rng, lo, math.Max(lo, hi))
		remaining -= ratios[i]
	}
	ratios[n-1] = remaining
	rng.Shuffle(n, func(i, j int) { ratios[i], ratios[j] = ratios[j], ratios[i] })
	return ratios
}

// splitAngles returns evenly spaced offsets with a little jitter
func splitAngles(rng *rand.Rand, n int) []float64 {
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = 2*math.Pi*float64(i)/float64(n) + uniform(rng, -0.1, 0.1)
	}
	return angles
}

func explosionPattern(rng *rand.Rand, scale float64) sim.ExplosionPattern {
	curve := make([]float64, CurveSamples)
	for i := range curve {
		t := float64(i) / float64(CurveSamples-1)
		curve[i] = 1 - t*t
	}
	return sim.ExplosionPattern{
		Radius: multiplier(rng) * sim.MaxRadius * scale,
		Curve:  curve,
	}
}

func multiplier(rng *rand.Rand) float64 {
	return uniform(rng, 3, 7)
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
