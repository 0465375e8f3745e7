package sim

import (
	"image/color"
	"math"
	"math/rand"
)

// Star is a single background star
type Star struct {
	Pos          Vec2
	Size         float64
	Color        color.NRGBA
	Brightness   float64
	twinkleSpeed float64
	phase        float64
}

// Starfield drifts a fixed set of stars across the screen in one direction
type Starfield struct {
	Stars []Star
	dir   Vec2
	speed float64
	w, h  float64
}

// NewStarfield scatters StarCount stars over the screen
func NewStarfield(cfg Config, rng *rand.Rand) *Starfield {
	sf := &Starfield{
		Stars: make([]Star, StarCount),
		dir:   FromAngle(uniform(rng, 0, twoPi)),
		speed: StarSpeed * cfg.ScaleX,
		w:     cfg.Width(),
		h:     cfg.Height(),
	}
	for i := range sf.Stars {
		sf.Stars[i] = Star{
			Pos:          Vec2{uniform(rng, 0, sf.w), uniform(rng, 0, sf.h)},
			Size:         uniform(rng, StarMinSize, StarMaxSize) * cfg.ScaleX,
			Color:        StarColors[rng.Intn(len(StarColors))],
			twinkleSpeed: uniform(rng, StarMinTwinkle, StarMaxTwinkle),
			phase:        uniform(rng, 0, twoPi),
		}
		sf.Stars[i].Brightness = twinkle(sf.Stars[i].phase)
	}
	return sf
}

// Direction returns the drift direction
func (sf *Starfield) Direction() Vec2 {
	return sf.dir
}

// Update drifts and twinkles the stars, respawning any that left the screen
func (sf *Starfield) Update(dt float64, rng *rand.Rand) {
	step := sf.dir.Scale(sf.speed * dt)
	for i := range sf.Stars {
		s := &sf.Stars[i]
		s.Pos = s.Pos.Add(step)
		s.phase = math.Mod(s.phase+s.twinkleSpeed*dt, twoPi)
		s.Brightness = twinkle(s.phase)

		if s.Pos.X < -s.Size || s.Pos.X > sf.w+s.Size || s.Pos.Y < -s.Size || s.Pos.Y > sf.h+s.Size {
			s.Pos = sf.entryPoint(rng)
		}
	}
}

// entryPoint picks a spot on the edge the stars drift away from
func (sf *Starfield) entryPoint(rng *rand.Rand) Vec2 {
	if math.Abs(sf.dir.X) > math.Abs(sf.dir.Y) {
		x := 0.0
		if sf.dir.X < 0 {
			x = sf.w
		}
		return Vec2{x, uniform(rng, 0, sf.h)}
	}
	y := 0.0
	if sf.dir.Y < 0 {
		y = sf.h
	}
	return Vec2{uniform(rng, 0, sf.w), y}
}

func twinkle(phase float64) float64 {
	return 0.5 + 0.5*math.Sin(phase)
}
