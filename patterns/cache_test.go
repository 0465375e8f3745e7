package patterns

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"dodgecircles/sim"
)

func preloaded(t *testing.T) *Cache {
	t.Helper()
	c := New(sim.NewConfig(sim.BaseWidth, sim.BaseHeight), 42)
	if err := c.Preload(context.Background()); err != nil {
		t.Fatalf("Preload: %v", err)
	}
	return c
}

func TestMissesBeforePreload(t *testing.T) {
	c := New(sim.NewConfig(sim.BaseWidth, sim.BaseHeight), 1)
	if c.VelocityPattern(5) != nil || c.Colors(5) != nil || c.SplitRatios(3) != nil {
		t.Error("lookup hit before preload")
	}
	if _, ok := c.ExplosionMultiplier(); ok {
		t.Error("multiplier before preload")
	}
	if hits, misses := c.Stats(); hits != 0 || misses != 4 {
		t.Errorf("stats = %d/%d, want 0/4", hits, misses)
	}
	c.Refresh(5)
	if len(c.velocity) != 0 {
		t.Error("refresh filled an unloaded cache")
	}
}

func TestPreloadFillsTables(t *testing.T) {
	c := preloaded(t)
	if !c.Ready() {
		t.Fatal("not ready after preload")
	}

	if p := c.VelocityPattern(5); len(p) != 5 {
		t.Errorf("velocity pattern len %d", len(p))
	}
	if p := c.VelocityPattern(50); len(p) != PatternLength {
		t.Errorf("oversized request len %d", len(p))
	}
	if cs := c.Colors(3); len(cs) != 3 {
		t.Errorf("colours len %d", len(cs))
	}
	for _, r := range []float64{10, 40, 75} {
		if sz, ok := c.SizeForRadius(r); !ok || sz < 8 || sz > 24 {
			t.Errorf("size for %v = %v %v", r, sz, ok)
		}
	}
	m, ok := c.ExplosionMultiplier()
	if !ok || m < 3 || m > 7 {
		t.Errorf("multiplier = %v %v", m, ok)
	}
	e, ok := c.ExplosionPattern()
	if !ok || len(e.Curve) != CurveSamples || e.Curve[0] != 1 || e.Curve[CurveSamples-1] != 0 {
		t.Errorf("explosion pattern = %+v %v", e, ok)
	}
	if hits, misses := c.Stats(); hits == 0 || misses != 0 {
		t.Errorf("stats = %d/%d", hits, misses)
	}
}

func TestVelocityPatternsCarrySpeedFactors(t *testing.T) {
	c := preloaded(t)
	for _, p := range c.velocity {
		for _, v := range p {
			if l := v.Len(); l < 0.7-1e-12 || l > 1.3+1e-12 {
				t.Fatalf("speed factor %v outside [0.7, 1.3]", l)
			}
		}
	}
}

func TestSplitTablesSumToOne(t *testing.T) {
	c := preloaded(t)
	for n := sim.MinSplitCount; n <= sim.MaxSplitCount; n++ {
		if len(c.splitRatios[n]) != SplitPatterns || len(c.splitAngles[n]) != SplitPatterns {
			t.Fatalf("n=%d: %d ratio and %d angle patterns", n, len(c.splitRatios[n]), len(c.splitAngles[n]))
		}
		for _, ratios := range c.splitRatios[n] {
			sum := 0.0
			for _, r := range ratios {
				if r < 0.1-1e-12 {
					t.Fatalf("n=%d ratio %v", n, r)
				}
				sum += r
			}
			if math.Abs(sum-1) > 1e-12 {
				t.Fatalf("n=%d sum %v", n, sum)
			}
		}
	}
}

func TestRefreshCapsTables(t *testing.T) {
	c := preloaded(t)
	for i := 0; i < 30; i++ {
		c.Refresh(1)
		if len(c.velocity) > MaxPatterns || len(c.multipliers) > MaxPatterns || len(c.colors) > MaxPatterns {
			t.Fatalf("table over cap: %d %d %d", len(c.velocity), len(c.multipliers), len(c.colors))
		}
	}
	if len(c.velocity) < TrimPatterns {
		t.Errorf("velocity table shrank below trim size: %d", len(c.velocity))
	}

	before := len(c.velocity)
	c.Refresh(0.5)
	if len(c.velocity) != before {
		t.Error("refresh ran before its interval")
	}
}

func TestPreloadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := New(sim.NewConfig(sim.BaseWidth, sim.BaseHeight), 1)
	if err := c.Preload(ctx); err == nil {
		t.Fatal("expected an error from a cancelled preload")
	}
	if c.Ready() {
		t.Error("cancelled cache reports ready")
	}
}

func TestCacheDrivesSplits(t *testing.T) {
	c := preloaded(t)
	rng := rand.New(rand.NewSource(5))
	parent := &sim.Circle{Pos: sim.Vec2{X: 400, Y: 300}, Radius: 70, Speed: 100}
	for i := 0; i < 100; i++ {
		frags := sim.Split(parent, sim.MinSplitRadius, rng, c)
		sum := 0.0
		for _, f := range frags {
			if f.Radius < sim.MinSplitRadius {
				t.Fatalf("fragment radius %v", f.Radius)
			}
			sum += f.Area()
		}
		want := 0.8 * parent.Area()
		if math.Abs(sum-want) > want*1e-9 {
			t.Fatalf("fragment area %v, want %v", sum, want)
		}
	}
}
