package sim

// updateExplosions ages explosions and applies the live ones to persistent
// particles and the avatar. It runs before circles move.
func (w *World) updateExplosions(dt float64) {
	kept := w.Explosions[:0]
	for i := range w.Explosions {
		e := w.Explosions[i]
		e.Update(dt)
		if e.Expired() {
			continue
		}

		for j := range w.Particles {
			e.PushParticle(&w.Particles[j])
		}
		if w.present() {
			if shake := e.PushAvatar(w.Avatar); shake > 0 {
				w.Avatar.ApplyShake(shake, w.rng)
			}
			e.PushAvatarDirect(w.Avatar)
		}
		kept = append(kept, e)
	}
	w.Explosions = kept
}

// updateCircles moves circles, drops those that left the screen and checks
// them against the avatar.
func (w *World) updateCircles(dt float64) {
	kept := w.Circles[:0]
	for i, c := range w.Circles {
		c.Update(dt)
		if c.OffScreen(w.cfg) {
			continue
		}
		kept = append(kept, c)
		if w.alive() && c.HitsRect(w.Avatar.Rect) {
			w.culled = i + 1 - len(kept)
			w.killAvatar()
		}
	}
	w.culled = 0
	clear(w.Circles[len(kept):])
	w.Circles = kept
}

// updateProjectiles moves projectiles and resolves hits. A projectile is
// spent on the first circle it touches.
func (w *World) updateProjectiles(dt float64) {
	homingRange := HomingRange * w.cfg.ScaleX
	bonus := ProjectileHitBonus * w.cfg.ScaleX

	kept := w.Projectiles[:0]
	for i, p := range w.Projectiles {
		p.Update(dt, w.Circles, homingRange)
		if p.OffScreen(w.cfg) {
			continue
		}
		if idx := w.firstHit(p, bonus); idx >= 0 {
			// this projectile is spent along with any culled before it
			w.culled = i + 1 - len(kept)
			w.destroyCircle(idx)
			w.hits++
			w.shakeTimer = ScreenShakeDuration
			continue
		}
		kept = append(kept, p)
	}
	w.culled = 0
	clear(w.Projectiles[len(kept):])
	w.Projectiles = kept
}

func (w *World) firstHit(p *Projectile, bonus float64) int {
	for i, c := range w.Circles {
		if p.Hits(c, bonus) {
			return i
		}
	}
	return -1
}

// resolveCirclePairs destroys every circle touching another. Circles hit
// by several others are destroyed once.
func (w *World) resolveCirclePairs() {
	marked := CollidingCircles(w.Circles, w.grid)
	var doomed []*Circle
	for i, hit := range marked {
		if hit {
			doomed = append(doomed, w.Circles[i])
		}
	}
	if len(doomed) == 0 {
		return
	}
	for _, c := range doomed {
		if idx := w.indexOf(c); idx >= 0 {
			w.destroyCircle(idx)
		}
	}
	w.shakeTimer = ScreenShakeDuration
}

func (w *World) indexOf(c *Circle) int {
	for i, o := range w.Circles {
		if o == c {
			return i
		}
	}
	return -1
}

// destroyCircle removes the circle at idx and runs its cascade: fragments,
// particle burst, explosion and cue.
func (w *World) destroyCircle(idx int) {
	c := w.Circles[idx]
	copy(w.Circles[idx:], w.Circles[idx+1:])
	w.Circles[len(w.Circles)-1] = nil
	w.Circles = w.Circles[:len(w.Circles)-1]

	s := w.cfg.ScaleX
	fragments := Split(c, MinSplitRadius*s, w.rng, w.patterns)
	room := AvailableSlots(w.Total(), w.budget.Ceiling, 0)
	for _, f := range fragments[:min(len(fragments), room)] {
		f.ID = w.newID()
		w.Circles = append(w.Circles, f)
	}

	slots := w.budget.Available(w.Total())
	count, leaveCloud := BurstSize(c.Pos, w.budget.ParticleCount, slots, w.Clouds, ParticleCloudRadius*s)
	w.Particles = append(w.Particles, CircleDebris(w.cfg, w.rng, w.patterns, c, count)...)
	if leaveCloud {
		w.Clouds = append(w.Clouds, ParticleCloud{Pos: c.Pos, Lifetime: ParticleCloudLifetime})
	}

	w.Explosions = append(w.Explosions, NewExplosion(c.Pos, w.explosionRadius(c.Radius), c.Radius/ExplosionStrengthDivisor, ExplosionLifetime))
	w.queue.add(ExplosionCue(c.Radius, MaxRadius*s))
	w.shakeTimer = ScreenShakeDuration
}

// explosionRadius prefers the provider's multiplier, then its pre-sampled
// radius, then DefaultExplosionScale.
func (w *World) explosionRadius(r float64) float64 {
	if w.patterns != nil {
		if m, ok := w.patterns.ExplosionMultiplier(); ok && m > 0 {
			return r * m
		}
		if p, ok := w.patterns.ExplosionPattern(); ok && p.Radius > 0 {
			return p.Radius
		}
	}
	return r * DefaultExplosionScale
}

// killAvatar starts the death animation with its burst and explosion. It
// does nothing when the avatar is already dying.
func (w *World) killAvatar() {
	if !w.Avatar.StartDeath() {
		return
	}
	s := w.cfg.ScaleX
	center := w.Avatar.Center()

	slots := w.budget.Available(w.Total())
	count := min(DeathBurstCap, slots, 2*w.budget.ParticleCount)
	w.Particles = append(w.Particles, DeathDebris(w.cfg, w.rng, center, count)...)

	w.Explosions = append(w.Explosions, NewExplosion(center, DeathExplosionRadius*s, DeathExplosionStrength, ExplosionLifetime))
	w.Avatar.ApplyShake(DeathShake, w.rng)
	w.weapon.Release()
	w.queue.add(CueDeath)
}
