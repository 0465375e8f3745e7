package sim

import "image/color"

// Frame is everything a renderer needs for one displayed frame. Circle,
// projectile and avatar positions are interpolated between the last two
// logic steps.
type Frame struct {
	Tick        uint64           `msgpack:"tick"`
	Time        float64          `msgpack:"time"`
	Stars       []StarView       `msgpack:"stars"`
	Particles   []ParticleView   `msgpack:"particles"`
	Circles     []CircleView     `msgpack:"circles"`
	Projectiles []ProjectileView `msgpack:"projectiles"`
	Avatar      AvatarView       `msgpack:"avatar"`
	Shake       bool             `msgpack:"shake"`
	Score       float64          `msgpack:"score"`
	Hits        int              `msgpack:"hits"`
	Level       int              `msgpack:"level"`
	NextUpgrade int              `msgpack:"next_upgrade"`
	Population  int              `msgpack:"population"`
	Ceiling     int              `msgpack:"ceiling"`
	Over        bool             `msgpack:"over"`
}

// StarView is a drawable star
type StarView struct {
	Pos        Vec2        `msgpack:"pos"`
	Size       float64     `msgpack:"size"`
	Color      color.NRGBA `msgpack:"color"`
	Brightness float64     `msgpack:"brightness"`
}

// ParticleView is a drawable particle
type ParticleView struct {
	Pos        Vec2        `msgpack:"pos"`
	Size       float64     `msgpack:"size"`
	Color      color.NRGBA `msgpack:"color"`
	Fade       float64     `msgpack:"fade"`
	Front      bool        `msgpack:"front"`
	Persistent bool        `msgpack:"persistent"`
}

// CircleView is a drawable circle
type CircleView struct {
	ID     uint64      `msgpack:"id"`
	Pos    Vec2        `msgpack:"pos"`
	Radius float64     `msgpack:"radius"`
	Color  color.NRGBA `msgpack:"color"`
}

// ProjectileView is a drawable projectile
type ProjectileView struct {
	ID    uint64      `msgpack:"id"`
	Pos   Vec2        `msgpack:"pos"`
	Angle float64     `msgpack:"angle"`
	Size  float64     `msgpack:"size"`
	Color color.NRGBA `msgpack:"color"`
}

// AvatarView is the drawable avatar
type AvatarView struct {
	Visible    bool    `msgpack:"visible"`
	Rect       Rect    `msgpack:"rect"`
	Dying      bool    `msgpack:"dying"`
	DeathTimer float64 `msgpack:"death_timer"`
	Pushed     bool    `msgpack:"pushed"`
}

// Snapshot fills dst for display. fastAlpha blends the avatar, slowAlpha
// blends world entities. dst's slices are reused.
func (w *World) Snapshot(fastAlpha, slowAlpha float64, dst *Frame) *Frame {
	if dst == nil {
		dst = &Frame{}
	}
	dst.Tick = w.tick
	dst.Time = w.clock
	dst.Shake = w.shakeTimer > 0
	dst.Score = w.survival
	dst.Hits = w.hits
	dst.Level = UpgradeLevel(w.hits)
	dst.NextUpgrade = NextUpgrade(w.hits)
	dst.Population = w.Total()
	dst.Ceiling = w.budget.Ceiling
	dst.Over = w.over

	dst.Stars = dst.Stars[:0]
	for _, s := range w.Stars.Stars {
		dst.Stars = append(dst.Stars, StarView{Pos: s.Pos, Size: s.Size, Color: s.Color, Brightness: s.Brightness})
	}

	dst.Particles = dst.Particles[:0]
	for i := range w.Particles {
		p := &w.Particles[i]
		dst.Particles = append(dst.Particles, ParticleView{
			Pos:        p.Pos,
			Size:       p.Size,
			Color:      p.Color,
			Fade:       p.Fade(),
			Front:      p.Front,
			Persistent: p.Persistent,
		})
	}

	dst.Circles = dst.Circles[:0]
	for _, c := range w.Circles {
		dst.Circles = append(dst.Circles, CircleView{
			ID:     c.ID,
			Pos:    Lerp(c.Prev, c.Pos, slowAlpha),
			Radius: c.Radius,
			Color:  c.Color,
		})
	}

	dst.Projectiles = dst.Projectiles[:0]
	for _, p := range w.Projectiles {
		dst.Projectiles = append(dst.Projectiles, ProjectileView{
			ID:    p.ID,
			Pos:   Lerp(p.Prev, p.Pos, slowAlpha),
			Angle: p.Angle,
			Size:  p.Size,
			Color: p.Color,
		})
	}

	dst.Avatar = AvatarView{Visible: w.present()}
	if dst.Avatar.Visible {
		dst.Avatar.Rect = w.Avatar.DisplayRect(fastAlpha)
		dst.Avatar.Dying = w.Avatar.Dying()
		dst.Avatar.DeathTimer = w.Avatar.DeathTimer
		dst.Avatar.Pushed = w.Avatar.PushTimer > 0
	}
	return dst
}
