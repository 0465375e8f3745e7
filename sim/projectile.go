package sim

import (
	"image/color"
	"math"
)

// Projectile is a shot fired by the avatar
type Projectile struct {
	ID     uint64
	Pos    Vec2
	Prev   Vec2
	Vel    Vec2
	Homing float64 // 0 flies straight, 1 snaps onto the target
	Speed  float64 // homing steers toward the target at this speed
	Color  color.NRGBA
	Size   float64
	Angle  float64
}

// NewProjectile fires from origin along angle. The avatar velocity is
// partly inherited: the component across the aim is damped and a fraction
// of the whole is added on top.
func NewProjectile(cfg Config, origin Vec2, angle float64, avatarVel Vec2, homing float64, col color.NRGBA, sizeMultiplier float64) *Projectile {
	aim := FromAngle(angle)
	along := aim.Scale(avatarVel.Dot(aim))
	across := avatarVel.Sub(along)

	vel := aim.Scale(ProjectileSpeed * cfg.ScaleX).
		Sub(across.Scale(PerpendicularDamping)).
		Add(avatarVel.Scale(VelocityInheritance))

	return &Projectile{
		Pos:    origin,
		Prev:   origin,
		Vel:    vel,
		Homing: clamp(homing, 0, 1),
		Speed:  ProjectileSpeed * cfg.ScaleX,
		Color:  col,
		Size:   ProjectileSize * cfg.ScaleX * sizeMultiplier,
		Angle:  vel.Angle(),
	}
}

// Update steers toward the nearest circle within range and moves by dt.
func (p *Projectile) Update(dt float64, circles []*Circle, homingRange float64) {
	p.Prev = p.Pos

	if p.Homing > 0 {
		if target := nearestCircle(p.Pos, circles, homingRange); target != nil {
			desired := target.Pos.Sub(p.Pos).Normalize().Scale(p.Speed)
			p.Vel = p.Vel.Scale(1 - p.Homing).Add(desired.Scale(p.Homing))
		}
	}

	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.Angle = p.Vel.Angle()
}

// Hits reports whether the projectile touches c
func (p *Projectile) Hits(c *Circle, bonus float64) bool {
	return Distance(p.Pos, c.Pos) < c.Radius+bonus
}

// OffScreen reports whether the projectile is more than OffscreenMargin
// outside the play area
func (p *Projectile) OffScreen(cfg Config) bool {
	return p.Pos.X < -OffscreenMargin || p.Pos.X > cfg.Width()+OffscreenMargin ||
		p.Pos.Y < -OffscreenMargin || p.Pos.Y > cfg.Height()+OffscreenMargin
}

func nearestCircle(pos Vec2, circles []*Circle, within float64) *Circle {
	var best *Circle
	bestDist := math.Inf(1)
	for _, c := range circles {
		if d := Distance(pos, c.Pos); d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist >= within {
		return nil
	}
	return best
}
