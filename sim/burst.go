package sim

import (
	"image/color"
	"math/rand"
)

// BurstSize returns how many particles a burst at pos may create given the
// free slots, and whether the burst should leave a cloud behind. A burst
// near a live cloud is cut to SuppressedBurst.
func BurstSize(pos Vec2, want, slots int, clouds []ParticleCloud, suppressRadius float64) (int, bool) {
	if slots <= 0 || want <= 0 {
		return 0, false
	}
	for i := range clouds {
		if Distance(pos, clouds[i].Pos) < suppressRadius {
			return min(SuppressedBurst, slots), false
		}
	}
	return min(want, slots), true
}

// CircleDebris builds the particles thrown off by a destroyed circle.
func CircleDebris(cfg Config, rng *rand.Rand, patterns PatternProvider, c *Circle, count int) []Particle {
	if count <= 0 {
		return nil
	}
	s := cfg.ScaleX
	baseSpeed := clamp(c.Radius/(MinRadius*s)*ParticleBaseSpeed*s, ParticleMinSpeed*s, ParticleMaxSpeed*s)
	sizeRatio := clamp(c.Radius/(MaxParticleSourceRadius*s), 0.25, 1)
	defaultSize := (ParticleMinSize + ParticleSizeRange*sizeRatio) * s

	var dirs []Vec2
	var colors []color.NRGBA
	if patterns != nil {
		dirs = patterns.VelocityPattern(count)
		colors = patterns.Colors(count)
	}

	particles := make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		var vel Vec2
		if i < len(dirs) {
			vel = dirs[i].Scale(baseSpeed)
		} else {
			vel = FromAngle(uniform(rng, 0, twoPi)).Scale(baseSpeed * uniform(rng, 0.7, 1.3))
		}

		size := defaultSize
		if patterns != nil {
			if sz, ok := patterns.SizeForRadius(c.Radius); ok && sz > 0 {
				size = sz
			}
		}

		var col color.NRGBA
		if i < len(colors) {
			col = colors[i]
		} else {
			col = coolColor(rng)
		}

		particles = append(particles, Particle{
			Pos:         c.Pos,
			Vel:         vel,
			Persistent:  rng.Float64() < PersistentChance,
			Lifetime:    ParticleLifetime,
			Size:        size,
			InitialSize: size,
			Color:       col,
			Front:       rng.Float64() < 0.5,
		})
	}
	return particles
}

// DeathDebris builds the slow cloud of particles left where the avatar died.
func DeathDebris(cfg Config, rng *rand.Rand, origin Vec2, count int) []Particle {
	if count <= 0 {
		return nil
	}
	s := cfg.ScaleX
	size := DeathParticleSize * s
	particles := make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		speed := uniform(rng, DeathParticleMinSpeed, DeathParticleMaxSpeed) * s
		particles = append(particles, Particle{
			Pos:         origin,
			Vel:         FromAngle(uniform(rng, 0, twoPi)).Scale(speed),
			Persistent:  rng.Float64() < DeathPersistentChance,
			Lifetime:    ParticleLifetime,
			Size:        size,
			InitialSize: size,
			Color:       coolColor(rng),
			Front:       rng.Float64() < 0.5,
		})
	}
	return particles
}

func coolColor(rng *rand.Rand) color.NRGBA {
	return color.NRGBA{
		R: uint8(rng.Intn(51)),
		G: uint8(100 + rng.Intn(101)),
		B: uint8(200 + rng.Intn(56)),
		A: 255,
	}
}
