package sim

import (
	"image/color"
	"math"
)

// Particle is a piece of debris. Persistent particles linger for
// PersistentLifetime seconds and are pushed by explosions; the rest fade
// out after their short lifetime.
type Particle struct {
	Pos         Vec2
	Vel         Vec2
	Persistent  bool
	Lifetime    float64 // seconds left, non-persistent only
	Age         float64 // seconds lived, persistent only
	Size        float64
	InitialSize float64
	shrinkTimer float64
	Color       color.NRGBA
	Front       bool // drawn in front of circles
}

// Update advances the particle by dt
func (p *Particle) Update(dt float64) {
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))

	if !p.Persistent {
		p.Lifetime -= dt
	}

	if p.shrinkTimer < ParticleShrinkTime {
		p.shrinkTimer = math.Min(p.shrinkTimer+dt, ParticleShrinkTime)
		progress := p.shrinkTimer / ParticleShrinkTime
		p.Size = p.InitialSize * (1 - 0.5*progress)
	}

	p.Vel = p.Vel.Scale(ParticleFriction)

	if p.Persistent {
		p.Age += dt
	}
}

// Expired reports whether the particle has run out of time
func (p *Particle) Expired() bool {
	if p.Persistent {
		return p.Age >= PersistentLifetime
	}
	return p.Lifetime <= 0
}

// OffScreen reports whether the particle left the play area
func (p *Particle) OffScreen(cfg Config) bool {
	return p.Pos.X < -OffscreenMargin || p.Pos.X > cfg.Width()+OffscreenMargin ||
		p.Pos.Y < -OffscreenMargin || p.Pos.Y > cfg.Height()+OffscreenMargin
}

// Fade is the remaining opacity fraction of a non-persistent particle
func (p *Particle) Fade() float64 {
	if p.Persistent {
		return 1
	}
	return clamp(p.Lifetime/ParticleLifetime, 0, 1)
}

// ParticleCloud marks a spot where a full burst happened recently.
type ParticleCloud struct {
	Pos      Vec2
	Lifetime float64
}

// Update ages the cloud
func (c *ParticleCloud) Update(dt float64) {
	c.Lifetime -= dt
}

// Expired reports whether the cloud has faded
func (c *ParticleCloud) Expired() bool {
	return c.Lifetime <= 0
}
