package sim

import (
	"math"
	"testing"
)

func TestExplosionPushParticle(t *testing.T) {
	e := NewExplosion(Vec2{0, 0}, 100, 5, ExplosionLifetime)

	tests := []struct {
		name       string
		pos        Vec2
		persistent bool
		moved      bool
	}{
		{"persistent inside", Vec2{50, 0}, true, true},
		{"persistent outside", Vec2{150, 0}, true, false},
		{"persistent on the rim", Vec2{100, 0}, true, false},
		{"persistent at centre", Vec2{0, 0}, true, false},
		{"fading inside", Vec2{50, 0}, false, false},
		{"fading outside", Vec2{150, 0}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Particle{Pos: tt.pos, Persistent: tt.persistent}
			e.PushParticle(&p)
			moved := p.Vel != (Vec2{})
			if moved != tt.moved {
				t.Fatalf("moved = %v, want %v (vel %v)", moved, tt.moved, p.Vel)
			}
		})
	}
}

func TestExplosionFalloff(t *testing.T) {
	e := NewExplosion(Vec2{0, 0}, 100, 5, ExplosionLifetime)
	p := Particle{Pos: Vec2{0, 50}, Persistent: true}
	e.PushParticle(&p)

	want := 5 * (1 - 0.25)
	if math.Abs(p.Vel.Y-want) > 1e-12 || p.Vel.X != 0 {
		t.Errorf("vel = %v, want (0, %v)", p.Vel, want)
	}
}

func TestExplosionPushesAvatarTwice(t *testing.T) {
	cfg := baseConfig()
	a := NewAvatar(cfg)
	c := a.Center()
	e := NewExplosion(Vec2{c.X - 50, c.Y}, 100, 5, ExplosionLifetime)

	shake := e.PushAvatar(a)
	widened := 5 * (1 - math.Pow(50.0/150, 2)) * AvatarPushFactor
	if math.Abs(a.Vel.X-widened) > 1e-9 {
		t.Fatalf("widened push = %v, want %v", a.Vel.X, widened)
	}
	if math.Abs(shake-widened*AvatarShakeFactor) > 1e-9 {
		t.Errorf("shake = %v, want %v", shake, widened*AvatarShakeFactor)
	}
	if a.PushTimer != PushEffectSteps {
		t.Errorf("push timer = %d, want %d", a.PushTimer, PushEffectSteps)
	}

	e.PushAvatarDirect(a)
	direct := 5 * (1 - 0.25) * AvatarDirectFactor
	if math.Abs(a.Vel.X-(widened+direct)) > 1e-9 {
		t.Errorf("combined push = %v, want %v", a.Vel.X, widened+direct)
	}
	if a.Vel.Y != 0 {
		t.Errorf("push leaked into y: %v", a.Vel.Y)
	}
}

func TestExplosionAvatarReach(t *testing.T) {
	cfg := baseConfig()

	// between R and 1.5R only the widened push applies
	a := NewAvatar(cfg)
	c := a.Center()
	e := NewExplosion(Vec2{c.X - 120, c.Y}, 100, 5, ExplosionLifetime)
	if shake := e.PushAvatar(a); shake <= 0 {
		t.Fatalf("expected widened push at 120")
	}
	before := a.Vel
	e.PushAvatarDirect(a)
	if a.Vel != before {
		t.Errorf("direct push reached past the radius")
	}

	// beyond 1.5R nothing
	a = NewAvatar(cfg)
	e = NewExplosion(Vec2{c.X - 200, c.Y}, 100, 5, ExplosionLifetime)
	if shake := e.PushAvatar(a); shake != 0 || a.Vel != (Vec2{}) {
		t.Errorf("push beyond reach: shake %v vel %v", shake, a.Vel)
	}

	// zero distance short-circuits
	a = NewAvatar(cfg)
	e = NewExplosion(a.Center(), 100, 5, ExplosionLifetime)
	e.PushAvatar(a)
	e.PushAvatarDirect(a)
	if a.Vel != (Vec2{}) || math.IsNaN(a.Vel.X) {
		t.Errorf("zero distance push: %v", a.Vel)
	}
}

func TestExplosionExpires(t *testing.T) {
	e := NewExplosion(Vec2{}, 10, 1, 0.5)
	e.Update(0.25)
	if e.Expired() {
		t.Fatal("expired early")
	}
	e.Update(0.25)
	if !e.Expired() {
		t.Fatal("still alive after its lifetime")
	}
	if e.MaxLifetime != 0.5 {
		t.Errorf("max lifetime changed: %v", e.MaxLifetime)
	}
}
