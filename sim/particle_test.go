package sim

import (
	"math"
	"math/rand"
	"testing"
)

func TestParticleLifetimes(t *testing.T) {
	fading := Particle{Lifetime: ParticleLifetime, Size: 10, InitialSize: 10}
	lasting := Particle{Persistent: true, Lifetime: ParticleLifetime, Size: 10, InitialSize: 10}

	for i := 0; i < 21; i++ {
		fading.Update(0.05)
		lasting.Update(0.05)
	}
	if !fading.Expired() {
		t.Errorf("fading particle alive after %v s", 21*0.05)
	}
	if lasting.Expired() {
		t.Fatal("persistent particle expired early")
	}
	if lasting.Lifetime != ParticleLifetime {
		t.Errorf("persistent particle lifetime changed to %v", lasting.Lifetime)
	}

	for lasting.Age < PersistentLifetime-0.01 {
		if lasting.Expired() {
			t.Fatalf("persistent particle expired at age %v", lasting.Age)
		}
		lasting.Update(0.05)
	}
	lasting.Update(0.05)
	if !lasting.Expired() {
		t.Errorf("persistent particle alive at age %v", lasting.Age)
	}
}

func TestParticleShrinksToHalf(t *testing.T) {
	p := Particle{Lifetime: 10, Size: 16, InitialSize: 16}
	p.Update(0.25)
	if math.Abs(p.Size-12) > 1e-9 {
		t.Errorf("size after 0.25s = %v, want 12", p.Size)
	}
	for i := 0; i < 10; i++ {
		p.Update(0.25)
	}
	if p.Size != 8 {
		t.Errorf("size = %v, want 8", p.Size)
	}
}

func TestParticleFriction(t *testing.T) {
	p := Particle{Vel: Vec2{100, 0}, Lifetime: 1, Size: 1, InitialSize: 1}
	p.Update(0.05)
	if math.Abs(p.Pos.X-5) > 1e-12 || math.Abs(p.Vel.X-96) > 1e-12 {
		t.Errorf("pos %v vel %v", p.Pos, p.Vel)
	}
}

func TestCircleDebris(t *testing.T) {
	cfg := baseConfig()
	rng := rand.New(rand.NewSource(1))
	c := testCircle(40)

	particles := CircleDebris(cfg, rng, nil, c, 500)
	if len(particles) != 500 {
		t.Fatalf("got %d particles", len(particles))
	}
	persistent := 0
	for _, p := range particles {
		if p.Pos != c.Pos {
			t.Fatalf("particle born at %v", p.Pos)
		}
		speed := p.Vel.Len()
		base := 40.0 / MinRadius * ParticleBaseSpeed
		if speed < base*0.7-1e-9 || speed > base*1.3+1e-9 {
			t.Fatalf("speed %v outside [%v, %v]", speed, base*0.7, base*1.3)
		}
		if p.Color.R > 50 || p.Color.G < 100 || p.Color.G > 200 || p.Color.B < 200 {
			t.Fatalf("colour %v outside the cool palette", p.Color)
		}
		if p.Persistent {
			persistent++
		}
	}
	if persistent > 40 {
		t.Errorf("%d of 500 persistent, expected about 2%%", persistent)
	}

	if got := CircleDebris(cfg, rng, nil, c, 0); got != nil {
		t.Errorf("zero count produced %d particles", len(got))
	}
}

type velocityPatterns struct {
	nilPatterns
}

func (velocityPatterns) VelocityPattern(n int) []Vec2 {
	return []Vec2{{1, 0}, {0, 1}}
}

func (velocityPatterns) SizeForRadius(float64) (float64, bool) { return 3, true }

func TestCircleDebrisUsesPatternsThenFallsBack(t *testing.T) {
	cfg := baseConfig()
	rng := rand.New(rand.NewSource(2))
	c := testCircle(20)
	particles := CircleDebris(cfg, rng, velocityPatterns{}, c, 4)

	base := ParticleBaseSpeed
	if particles[0].Vel != (Vec2{base, 0}) || particles[1].Vel != (Vec2{0, base}) {
		t.Errorf("pattern velocities not used: %v %v", particles[0].Vel, particles[1].Vel)
	}
	if particles[2].Vel.Len() < base*0.7 {
		t.Errorf("fallback velocity %v", particles[2].Vel)
	}
	for _, p := range particles {
		if p.Size != 3 {
			t.Errorf("size %v, want pattern size 3", p.Size)
		}
	}
}
