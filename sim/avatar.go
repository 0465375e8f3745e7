package sim

import (
	"math"
	"math/rand"
)

// AvatarState is the avatar lifecycle state
type AvatarState int

const (
	Alive AvatarState = iota
	Dying
)

func (s AvatarState) String() string {
	if s == Dying {
		return "dying"
	}
	return "alive"
}

// Avatar is the player controlled square.
type Avatar struct {
	Rect       Rect
	Prev       Rect
	Vel        Vec2
	Shake      Vec2 // display offset only
	State      AvatarState
	DeathTimer float64
	PushTimer  int

	bounds   Rect
	maxSpeed float64
}

// NewAvatar creates an avatar centred on the screen
func NewAvatar(cfg Config) *Avatar {
	w := AvatarSize * cfg.ScaleX
	h := AvatarSize * cfg.ScaleY
	c := cfg.Center()
	r := Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
	return &Avatar{
		Rect:     r,
		Prev:     r,
		bounds:   Rect{W: cfg.Width(), H: cfg.Height()},
		maxSpeed: cfg.AvatarMaxSpeed(),
	}
}

// Center returns the logical centre, ignoring shake
func (a *Avatar) Center() Vec2 {
	return a.Rect.Center()
}

// Dying reports whether the death animation is running
func (a *Avatar) Dying() bool {
	return a.State == Dying
}

// Step runs one fast step. intent is the held direction, each axis in
// [-1, 1]. Input is ignored while dying.
func (a *Avatar) Step(dt float64, intent Vec2) {
	a.Prev = a.Rect
	if a.State == Alive {
		a.move(dt, intent)
	}
	a.decayShake()
	if a.PushTimer > 0 {
		a.PushTimer--
	}
}

func (a *Avatar) move(dt float64, intent Vec2) {
	if intent.X != 0 || intent.Y != 0 {
		desired := intent.Normalize()
		speed := a.Vel.Len()

		turn := 1.0
		if speed > AvatarStopSpeed {
			dot := a.Vel.Scale(1 / speed).Dot(desired)
			turn = math.Pow((1-dot)/2, TurnExponent)
		}
		taper := 1 - speed/a.maxSpeed
		capacity := math.Max(turn, taper)

		a.Vel = a.Vel.Add(desired.Scale(AvatarAccel * capacity * dt))
		if speed := a.Vel.Len(); speed > a.maxSpeed {
			a.Vel = a.Vel.Scale(a.maxSpeed / speed)
		}
	} else {
		// explosion knockback above max speed is left to friction
		a.Vel = a.Vel.Scale(AvatarFriction)
		if math.Abs(a.Vel.X) < AvatarStopSpeed {
			a.Vel.X = 0
		}
		if math.Abs(a.Vel.Y) < AvatarStopSpeed {
			a.Vel.Y = 0
		}
	}

	a.Rect.X += a.Vel.X * dt
	a.Rect.Y += a.Vel.Y * dt
	a.clampToBounds()
}

func (a *Avatar) clampToBounds() {
	a.Rect.X = clamp(a.Rect.X, a.bounds.X, a.bounds.X+a.bounds.W-a.Rect.W)
	a.Rect.Y = clamp(a.Rect.Y, a.bounds.Y, a.bounds.Y+a.bounds.H-a.Rect.H)
}

func (a *Avatar) decayShake() {
	a.Shake = a.Shake.Scale(ShakeDecay)
	if a.Shake.Len() < ShakeSnap {
		a.Shake = Vec2{}
	}
}

// ApplyShake adds a random jolt of up to min(2*force, MaxShake) per axis
func (a *Avatar) ApplyShake(force float64, rng *rand.Rand) {
	m := math.Min(force*2, MaxShake)
	a.Shake.X += uniform(rng, -m, m)
	a.Shake.Y += uniform(rng, -m, m)
}

// StartDeath begins the death animation. It returns false, and changes
// nothing, when the avatar is already dying.
func (a *Avatar) StartDeath() bool {
	if a.State == Dying {
		return false
	}
	a.State = Dying
	a.DeathTimer = DeathDuration
	return true
}

// UpdateDeath advances the death animation and reports when it is over.
func (a *Avatar) UpdateDeath(dt float64, rng *rand.Rand) bool {
	if a.State != Dying {
		return false
	}
	a.DeathTimer -= dt
	m := math.Max(a.DeathTimer, 0) * DeathShakeFactor
	a.Shake = Vec2{uniform(rng, -m, m), uniform(rng, -m, m)}
	return a.DeathTimer <= 0
}

// DisplayRect returns the interpolated rectangle offset by shake
func (a *Avatar) DisplayRect(alpha float64) Rect {
	pos := Lerp(Vec2{a.Prev.X, a.Prev.Y}, Vec2{a.Rect.X, a.Rect.Y}, alpha).Add(a.Shake)
	return Rect{X: pos.X, Y: pos.Y, W: a.Rect.W, H: a.Rect.H}
}
