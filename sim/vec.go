package sim

import (
	"math"
	"math/rand"
)

// Vec2 represents a 2D vector
type Vec2 struct {
	X float64 `msgpack:"x"`
	Y float64 `msgpack:"y"`
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dot returns the dot product
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Len returns the vector length
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Angle returns the heading of v in radians
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// Normalize returns v scaled to unit length; the zero vector stays zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// FromAngle returns the unit vector at angle a
func FromAngle(a float64) Vec2 {
	return Vec2{math.Cos(a), math.Sin(a)}
}

// Distance returns the distance between two points
func Distance(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Lerp blends prev toward cur by alpha
func Lerp(prev, cur Vec2, alpha float64) Vec2 {
	return Vec2{
		X: prev.X + (cur.X-prev.X)*alpha,
		Y: prev.Y + (cur.Y-prev.Y)*alpha,
	}
}

// Rect is an axis aligned rectangle with its origin at the top-left corner
type Rect struct {
	X, Y, W, H float64
}

// Center returns the centre point of the rectangle
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// ClosestPoint returns the point of r nearest to p
func (r Rect) ClosestPoint(p Vec2) Vec2 {
	return Vec2{
		X: clamp(p.X, r.X, r.X+r.W),
		Y: clamp(p.Y, r.Y, r.Y+r.H),
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// uniform draws from [lo, hi); lo > hi draws from (hi, lo].
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// intRange draws an integer from [lo, hi] inclusive.
func intRange(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
