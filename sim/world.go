package sim

import (
	"math"
	"math/rand"
)

// World owns every entity of a round and runs the world tick.
type World struct {
	cfg      Config
	budget   *Budget
	rng      *rand.Rand
	patterns PatternProvider
	cues     CueSink
	policy   AdaptivePolicy

	Avatar      *Avatar
	Circles     []*Circle
	Projectiles []*Projectile
	Particles   []Particle
	Clouds      []ParticleCloud
	Explosions  []Explosion
	Stars       *Starfield

	weapon *Weapon
	grid   *Grid
	queue  cueQueue

	pointer    Vec2
	spawnTimer float64
	spawnDelay float64
	shakeTimer int
	hits       int
	clock      float64
	survival   float64
	tick       uint64
	nextID     uint64
	active     bool
	over       bool
	frameRate  float64

	// culled counts entries an in-progress filter has dropped but not yet
	// trimmed from their slice
	culled int
}

// NewWorld creates a world with no avatar in play. Call Reset to start a
// round.
func NewWorld(cfg Config, budget *Budget, rng *rand.Rand) *World {
	w := &World{
		cfg:    cfg,
		budget: budget,
		rng:    rng,
		Stars:  NewStarfield(cfg, rng),
		grid:   NewGrid(cfg.Width(), cfg.Height(), OffscreenMargin+MaxSpawnRadius*cfg.ScaleX, 2*MaxSpawnRadius*cfg.ScaleX),
	}
	w.clear()
	return w
}

// SetPatterns installs a pattern provider; nil disables it
func (w *World) SetPatterns(p PatternProvider) {
	w.patterns = p
}

// SetCueSink installs the sound cue receiver; nil drops cues
func (w *World) SetCueSink(s CueSink) {
	w.cues = s
}

// SetPolicy installs an adaptive budget policy; nil disables it
func (w *World) SetPolicy(p AdaptivePolicy) {
	w.policy = p
}

// SetFrameRate records the measured frame rate for the adaptive policy
func (w *World) SetFrameRate(fps float64) {
	w.frameRate = fps
}

// Reset starts a new round. The budget and the starfield carry over.
func (w *World) Reset() {
	w.clear()
	w.active = true
}

func (w *World) clear() {
	w.Avatar = NewAvatar(w.cfg)
	w.Circles = nil
	w.Projectiles = nil
	w.Particles = nil
	w.Clouds = nil
	w.Explosions = nil
	w.weapon = NewWeapon()
	w.queue = cueQueue{}
	w.pointer = w.cfg.Center()
	w.spawnTimer = 0
	w.spawnDelay = InitialSpawnDelay
	w.shakeTimer = 0
	w.hits = 0
	w.clock = 0
	w.survival = 0
	w.active = false
	w.over = false
}

// Config returns the world configuration
func (w *World) Config() Config {
	return w.cfg
}

// Budget returns the shared population budget
func (w *World) Budget() *Budget {
	return w.budget
}

// Total is the live population counted against the ceiling
func (w *World) Total() int {
	return len(w.Circles) + len(w.Projectiles) + len(w.Particles) - w.culled
}

// Active reports whether an avatar is in play this round
func (w *World) Active() bool {
	return w.active
}

// RoundOver reports whether the avatar's death animation has finished
func (w *World) RoundOver() bool {
	return w.over
}

// Hits returns the number of circles shot this round
func (w *World) Hits() int {
	return w.hits
}

// Survival returns the seconds survived this round
func (w *World) Survival() float64 {
	return w.survival
}

// ShakeTimer returns the remaining screen shake ticks
func (w *World) ShakeTimer() int {
	return w.shakeTimer
}

// present reports whether the avatar is on screen, dying included
func (w *World) present() bool {
	return w.active && !w.over
}

// alive reports whether the avatar can collide and fire
func (w *World) alive() bool {
	return w.present() && w.Avatar.State == Alive
}

func (w *World) newID() uint64 {
	w.nextID++
	return w.nextID
}

// HandleInput applies a frame's discrete input events once.
func (w *World) HandleInput(in Input) {
	w.pointer = in.Pointer
	if !w.alive() {
		if in.FireReleased {
			w.weapon.Release()
		}
		return
	}
	if in.FirePressed {
		w.weapon.Press(w.clock)
	}
	if in.FireReleased {
		w.weapon.Release()
	}
}

// StepAvatar runs one fast step of the avatar with the held direction.
func (w *World) StepAvatar(dt float64, intent Vec2) {
	if !w.present() {
		return
	}
	w.Avatar.Step(dt, intent)
}

// Update runs one world tick.
func (w *World) Update(dt float64) {
	w.tick++
	w.clock += dt
	if w.shakeTimer > 0 {
		w.shakeTimer--
	}

	w.updateExplosions(dt)
	w.updateCircles(dt)

	if w.present() && w.Avatar.UpdateDeath(dt, w.rng) {
		w.over = true
		w.weapon.Release()
	}
	if w.alive() {
		w.survival += dt
	}

	w.updateProjectiles(dt)
	w.updateParticles(dt)
	w.fire(dt)
	w.spawn()
	w.resolveCirclePairs()

	w.updateClouds(dt)
	w.Stars.Update(dt, w.rng)
	if r, ok := w.patterns.(Refresher); ok {
		r.Refresh(dt)
	}
	if w.policy != nil {
		w.policy.Adjust(w.budget, TickStats{FPS: w.frameRate, Total: w.Total(), Time: w.clock})
	}
	w.queue.flush(w.cues)
}

func (w *World) updateParticles(dt float64) {
	kept := w.Particles[:0]
	for i := range w.Particles {
		p := w.Particles[i]
		p.Update(dt)
		if p.Expired() || p.OffScreen(w.cfg) {
			continue
		}
		kept = append(kept, p)
	}
	w.Particles = kept
}

func (w *World) updateClouds(dt float64) {
	kept := w.Clouds[:0]
	for i := range w.Clouds {
		c := w.Clouds[i]
		c.Update(dt)
		if !c.Expired() {
			kept = append(kept, c)
		}
	}
	w.Clouds = kept
}

// fire ticks the weapon and launches a volley toward the pointer
func (w *World) fire(dt float64) {
	if !w.alive() {
		return
	}
	volley, ok := w.weapon.Tick(dt, w.clock)
	if !ok {
		return
	}

	want := ProjectileCounts[UpgradeLevel(w.hits)]
	n := min(want, w.budget.Available(w.Total()))
	if n <= 0 {
		return
	}

	origin := w.Avatar.Center()
	base := w.pointer.Sub(origin).Angle()
	for _, angle := range VolleyAngles(base, n) {
		p := NewProjectile(w.cfg, origin, angle, w.Avatar.Vel, volley.Homing, volley.Color, volley.SizeMultiplier)
		p.ID = w.newID()
		w.Projectiles = append(w.Projectiles, p)
	}
	w.queue.add(volley.Cue)
}

// spawn adds a circle every spawnDelay ticks while the budget allows
func (w *World) spawn() {
	w.spawnTimer++
	if w.spawnTimer < w.spawnDelay {
		return
	}
	w.spawnTimer = 0
	if w.budget.Available(w.Total()) > 0 {
		c := SpawnCircle(w.cfg, w.rng)
		c.ID = w.newID()
		w.Circles = append(w.Circles, c)
	}
	w.spawnDelay = math.Max(MinSpawnDelay, w.spawnDelay-SpawnDelayStep)
}
