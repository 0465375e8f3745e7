package sim

// Explosion is a short lived radial force source. Its strength does not
// decay while it is alive.
type Explosion struct {
	Pos         Vec2
	Radius      float64
	Strength    float64
	Lifetime    float64
	MaxLifetime float64
}

// NewExplosion creates an explosion
func NewExplosion(pos Vec2, radius, strength, lifetime float64) Explosion {
	return Explosion{
		Pos:         pos,
		Radius:      radius,
		Strength:    strength,
		Lifetime:    lifetime,
		MaxLifetime: lifetime,
	}
}

// Update ages the explosion
func (e *Explosion) Update(dt float64) {
	e.Lifetime -= dt
}

// Expired reports whether the explosion is spent
func (e *Explosion) Expired() bool {
	return e.Lifetime <= 0
}

// falloff returns strength scaled by 1-(d/r)^2 and the push direction, or
// false when pos is outside (0, r).
func (e *Explosion) falloff(pos Vec2, radius float64) (float64, Vec2, bool) {
	delta := pos.Sub(e.Pos)
	d := delta.Len()
	if d <= 0 || d >= radius {
		return 0, Vec2{}, false
	}
	ratio := d / radius
	return e.Strength * (1 - ratio*ratio), delta.Scale(1 / d), true
}

// PushParticle applies the explosion to a particle. Only persistent
// particles are moved.
func (e *Explosion) PushParticle(p *Particle) {
	if !p.Persistent {
		return
	}
	force, dir, ok := e.falloff(p.Pos, e.Radius)
	if !ok {
		return
	}
	p.Vel = p.Vel.Add(dir.Scale(force))
}

// PushAvatar applies the widened avatar push and returns the shake it
// should cause, zero when out of reach.
func (e *Explosion) PushAvatar(a *Avatar) float64 {
	force, dir, ok := e.falloff(a.Center(), e.Radius*AvatarPushRadiusScale)
	if !ok {
		return 0
	}
	force *= AvatarPushFactor
	a.Vel = a.Vel.Add(dir.Scale(force))
	a.PushTimer = PushEffectSteps
	return force * AvatarShakeFactor
}

// PushAvatarDirect applies the second, unwidened push to the avatar.
func (e *Explosion) PushAvatarDirect(a *Avatar) {
	force, dir, ok := e.falloff(a.Center(), e.Radius)
	if !ok {
		return
	}
	a.Vel = a.Vel.Add(dir.Scale(force * AvatarDirectFactor))
}
