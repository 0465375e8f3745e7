package sim

import (
	"image/color"
	"math"
	"math/rand"
)

// Circle is an enemy drifting across the play area
type Circle struct {
	ID     uint64
	Pos    Vec2
	Prev   Vec2
	Vel    Vec2
	Radius float64
	Speed  float64
	Color  color.NRGBA
}

// SpawnCircle creates a circle on a random screen edge heading roughly
// toward the centre.
func SpawnCircle(cfg Config, rng *rand.Rand) *Circle {
	radius := float64(intRange(rng, int(MinRadius), MaxSpawnRadius)) * cfg.ScaleX
	speed := uniform(rng, MinCircleSpeed, MaxCircleSpeed) * cfg.ScaleX
	w, h := cfg.Width(), cfg.Height()

	var pos Vec2
	switch rng.Intn(4) {
	case 0: // top
		pos = Vec2{uniform(rng, 0, w), -radius}
	case 1: // right
		pos = Vec2{w + radius, uniform(rng, 0, h)}
	case 2: // bottom
		pos = Vec2{uniform(rng, 0, w), h + radius}
	default: // left
		pos = Vec2{-radius, uniform(rng, 0, h)}
	}

	target := Vec2{uniform(rng, 0, w), uniform(rng, 0, h)}
	target = Lerp(target, cfg.Center(), CenterBias)
	dir := target.Sub(pos).Normalize()

	return &Circle{
		Pos:    pos,
		Prev:   pos,
		Vel:    dir.Scale(speed),
		Radius: radius,
		Speed:  speed,
		Color:  WarmColors[rng.Intn(len(WarmColors))],
	}
}

// Update advances the circle by dt
func (c *Circle) Update(dt float64) {
	c.Prev = c.Pos
	c.Pos = c.Pos.Add(c.Vel.Scale(dt))
}

// OffScreen reports whether the circle has fully left the play area
func (c *Circle) OffScreen(cfg Config) bool {
	m := OffscreenMargin + c.Radius
	return c.Pos.X < -m || c.Pos.X > cfg.Width()+m ||
		c.Pos.Y < -m || c.Pos.Y > cfg.Height()+m
}

// HitsRect reports whether the circle overlaps r
func (c *Circle) HitsRect(r Rect) bool {
	closest := r.ClosestPoint(c.Pos)
	return Distance(closest, c.Pos) < c.Radius
}

// Overlaps reports whether two circles touch
func (c *Circle) Overlaps(o *Circle) bool {
	return Distance(c.Pos, o.Pos) < c.Radius+o.Radius
}

// Area returns the circle area
func (c *Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}
