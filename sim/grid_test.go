package sim

import (
	"math/rand"
	"testing"
)

func bruteForceColliding(circles []*Circle) []bool {
	marked := make([]bool, len(circles))
	for i := range circles {
		for j := i + 1; j < len(circles); j++ {
			if circles[i].Overlaps(circles[j]) {
				marked[i] = true
				marked[j] = true
			}
		}
	}
	return marked
}

func TestCollidingCirclesMatchesBruteForce(t *testing.T) {
	cfg := baseConfig()
	g := NewGrid(cfg.Width(), cfg.Height(), 100, 150)

	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		n := 5 + rng.Intn(80)
		circles := make([]*Circle, n)
		for i := range circles {
			circles[i] = &Circle{
				Pos:    Vec2{uniform(rng, -200, cfg.Width()+200), uniform(rng, -200, cfg.Height()+200)},
				Radius: uniform(rng, 5, 75),
			}
		}

		got := CollidingCircles(circles, g)
		want := bruteForceColliding(circles)
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("seed %d circle %d: grid says %v, brute force %v", seed, i, got[i], want[i])
			}
		}
	}
}

func TestCollidingCirclesTrivial(t *testing.T) {
	g := NewGrid(800, 600, 100, 150)
	if got := CollidingCircles(nil, g); len(got) != 0 {
		t.Errorf("nil circles: %v", got)
	}
	one := []*Circle{{Pos: Vec2{10, 10}, Radius: 20}}
	if got := CollidingCircles(one, g); got[0] {
		t.Errorf("single circle marked")
	}
}

func TestGridCellOfClamps(t *testing.T) {
	g := NewGrid(800, 600, 50, 100)
	if x, y := g.CellOf(Vec2{-1000, -1000}); x != 0 || y != 0 {
		t.Errorf("far top-left -> %d,%d", x, y)
	}
	if x, y := g.CellOf(Vec2{5000, 5000}); x != g.Cols-1 || y != g.Rows-1 {
		t.Errorf("far bottom-right -> %d,%d", x, y)
	}
}
