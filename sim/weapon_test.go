package sim

import (
	"math"
	"testing"
)

func TestWeaponSingleClickFiresMissile(t *testing.T) {
	w := NewWeapon()
	dt := 1.0 / WorldRate
	w.Press(10)

	v, ok := w.Tick(dt, 10+dt)
	if !ok || v.Cue != CueMissile {
		t.Fatalf("first tick: %+v %v, want missile volley", v, ok)
	}
	if v.Homing != SingleHoming || v.SizeMultiplier != SingleSizeMultiplier {
		t.Errorf("missile volley = %+v", v)
	}

	// the missile is used; holding continues with auto fire
	fired := 0
	for i := 0; i < 40; i++ {
		if v, ok := w.Tick(dt, 10+dt*float64(i+2)); ok {
			if v.Cue != CueShoot {
				t.Fatalf("second missile fired on one press")
			}
			fired++
		}
	}
	if fired == 0 {
		t.Error("holding never auto fired")
	}
}

func TestWeaponRapidClicksSkipMissile(t *testing.T) {
	w := NewWeapon()
	dt := 1.0 / WorldRate
	w.Press(10)
	w.Release()
	w.Press(10.2)
	for i := 0; i < 10; i++ {
		if v, ok := w.Tick(dt, 10.2+dt*float64(i+1)); ok && v.Cue == CueMissile {
			t.Fatal("missile fired on a double click")
		}
	}
}

func TestWeaponRampUp(t *testing.T) {
	w := NewWeapon()
	dt := 1.0 / WorldRate
	w.Press(0)
	for i := 0; i < 40; i++ {
		w.Tick(dt, 1+float64(i)*dt)
	}
	if w.FireDelay() != MinFireDelay {
		t.Errorf("delay after 2s = %v, want %v", w.FireDelay(), MinFireDelay)
	}
	want := 1 + (AutoMaxSizeMultiplier-1)*(1-MinFireDelay/BaseFireDelay)
	if math.Abs(w.SizeMultiplier()-want) > 1e-12 {
		t.Errorf("size multiplier = %v, want %v", w.SizeMultiplier(), want)
	}

	w.Release()
	if w.FireDelay() != BaseFireDelay {
		t.Errorf("release kept delay %v", w.FireDelay())
	}
	if _, ok := w.Tick(dt, 5); ok {
		t.Error("released weapon fired")
	}
}

func TestUpgradeLevels(t *testing.T) {
	tests := []struct {
		hits, level, next int
	}{
		{0, 0, 25},
		{24, 0, 25},
		{25, 1, 125},
		{124, 1, 125},
		{125, 2, -1},
		{1000, 2, -1},
	}
	for _, tt := range tests {
		if got := UpgradeLevel(tt.hits); got != tt.level {
			t.Errorf("UpgradeLevel(%d) = %d, want %d", tt.hits, got, tt.level)
		}
		if got := NextUpgrade(tt.hits); got != tt.next {
			t.Errorf("NextUpgrade(%d) = %d, want %d", tt.hits, got, tt.next)
		}
	}
}

func TestVolleyAnglesSymmetric(t *testing.T) {
	angles := VolleyAngles(1, 5)
	if len(angles) != 5 || angles[2] != 1 {
		t.Fatalf("angles = %v", angles)
	}
	if math.Abs((angles[0]+angles[4])/2-1) > 1e-12 {
		t.Errorf("spread not centred: %v", angles)
	}
	if math.Abs(angles[1]-angles[0]-VolleySpread) > 1e-12 {
		t.Errorf("spread step = %v", angles[1]-angles[0])
	}
}
