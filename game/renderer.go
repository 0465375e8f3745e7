package game

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"dodgecircles/sim"
)

const (
	screenShake  = 4.0
	cullMargin   = 100.0
	minDrawSize  = 0.5
	trailLength  = 3.0
	deathBlinkHz = 12.0
)

var (
	backgroundColor = color.RGBA{5, 5, 15, 255}
	pushedColor     = color.NRGBA{255, 200, 120, 255}
	boundsColor     = color.NRGBA{0, 255, 0, 160}
)

// Renderer draws simulation frames
type Renderer struct {
	width, height float64
	scale         float64
	rng           *rand.Rand
	offset        sim.Vec2
}

// NewRenderer creates a renderer for the configured screen
func NewRenderer(cfg sim.Config) *Renderer {
	return &Renderer{
		width:  cfg.Width(),
		height: cfg.Height(),
		scale:  cfg.ScaleX,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Render draws f back to front: stars, back particles, circles,
// projectiles, the avatar and then front particles
func (r *Renderer) Render(screen *ebiten.Image, f *sim.Frame) {
	screen.Fill(backgroundColor)

	r.offset = sim.Vec2{}
	if f.Shake {
		m := screenShake * r.scale
		r.offset = sim.Vec2{X: (r.rng.Float64()*2 - 1) * m, Y: (r.rng.Float64()*2 - 1) * m}
	}

	for i := range f.Stars {
		r.renderStar(screen, &f.Stars[i])
	}
	r.renderParticles(screen, f.Particles, false)
	for i := range f.Circles {
		r.renderCircle(screen, &f.Circles[i])
	}
	for i := range f.Projectiles {
		r.renderProjectile(screen, &f.Projectiles[i])
	}
	r.renderAvatar(screen, &f.Avatar)
	r.renderParticles(screen, f.Particles, true)

	if GetDebugState().ShowBounds {
		r.renderBounds(screen, f)
	}
}

func (r *Renderer) screenPos(p sim.Vec2) (float32, float32) {
	return float32(p.X + r.offset.X), float32(p.Y + r.offset.Y)
}

func (r *Renderer) visible(p sim.Vec2, radius float64) bool {
	m := cullMargin + radius
	return p.X > -m && p.X < r.width+m && p.Y > -m && p.Y < r.height+m
}

func (r *Renderer) renderStar(screen *ebiten.Image, s *sim.StarView) {
	x, y := r.screenPos(s.Pos)
	vector.DrawFilledCircle(screen, x, y, float32(math.Max(s.Size, minDrawSize)), fade(s.Color, s.Brightness), true)
}

func (r *Renderer) renderParticles(screen *ebiten.Image, particles []sim.ParticleView, front bool) {
	for i := range particles {
		p := &particles[i]
		if p.Front != front || !r.visible(p.Pos, p.Size) {
			continue
		}
		x, y := r.screenPos(p.Pos)
		size := float32(math.Max(p.Size/2, minDrawSize))
		vector.DrawFilledCircle(screen, x, y, size, fade(p.Color, p.Fade), false)
	}
}

func (r *Renderer) renderCircle(screen *ebiten.Image, c *sim.CircleView) {
	if !r.visible(c.Pos, c.Radius) {
		return
	}
	x, y := r.screenPos(c.Pos)
	vector.DrawFilledCircle(screen, x, y, float32(c.Radius), c.Color, true)
}

func (r *Renderer) renderProjectile(screen *ebiten.Image, p *sim.ProjectileView) {
	if !r.visible(p.Pos, p.Size) {
		return
	}
	x, y := r.screenPos(p.Pos)
	tail := trailLength * p.Size
	tx := x - float32(math.Cos(p.Angle)*tail)
	ty := y - float32(math.Sin(p.Angle)*tail)
	vector.StrokeLine(screen, tx, ty, x, y, float32(p.Size), p.Color, true)
}

func (r *Renderer) renderAvatar(screen *ebiten.Image, a *sim.AvatarView) {
	if !a.Visible {
		return
	}
	clr := sim.ColorAvatar
	if a.Pushed {
		clr = pushedColor
	}
	if a.Dying {
		// blink faster as the timer runs out
		phase := math.Sin(a.DeathTimer * deathBlinkHz * (2 - a.DeathTimer/sim.DeathDuration))
		clr = fade(clr, 0.5+0.5*phase)
	}
	x, y := r.screenPos(sim.Vec2{X: a.Rect.X, Y: a.Rect.Y})
	vector.DrawFilledRect(screen, x, y, float32(a.Rect.W), float32(a.Rect.H), clr, false)
}

func (r *Renderer) renderBounds(screen *ebiten.Image, f *sim.Frame) {
	for i := range f.Circles {
		c := &f.Circles[i]
		x, y := r.screenPos(c.Pos)
		vector.StrokeCircle(screen, x, y, float32(c.Radius), 1, boundsColor, true)
	}
	if f.Avatar.Visible {
		a := f.Avatar.Rect
		x, y := r.screenPos(sim.Vec2{X: a.X, Y: a.Y})
		vector.StrokeRect(screen, x, y, float32(a.W), float32(a.H), 1, boundsColor, false)
	}
}

// fade scales a colour's alpha by f in [0, 1]
func fade(c color.NRGBA, f float64) color.NRGBA {
	c.A = uint8(float64(c.A) * math.Max(0, math.Min(1, f)))
	return c
}
