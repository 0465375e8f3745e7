package sim

import (
	"image/color"
	"math"
)

// Volley describes one round of projectiles to fire
type Volley struct {
	Homing         float64
	Color          color.NRGBA
	SizeMultiplier float64
	Cue            Cue
}

// Weapon turns fire button presses into volleys. A lone click fires one
// homing missile volley; holding the button fires automatic volleys whose
// delay ramps down over RampUpTime.
type Weapon struct {
	held       bool
	singleUsed bool
	holdTime   float64
	fireDelay  float64 // world ticks between auto volleys
	autoTimer  float64
	lastClick  float64
	clickCount int
}

// NewWeapon creates an idle weapon
func NewWeapon() *Weapon {
	return &Weapon{
		fireDelay: BaseFireDelay,
		lastClick: math.Inf(-1),
	}
}

// Press handles a fire button press at simulated time now
func (w *Weapon) Press(now float64) {
	if now-w.lastClick < RapidClickThreshold {
		w.clickCount++
	} else {
		w.clickCount = 1
	}
	w.lastClick = now

	w.held = true
	w.singleUsed = false
	w.holdTime = 0
	w.autoTimer = 0
	w.fireDelay = BaseFireDelay
}

// Release handles a fire button release
func (w *Weapon) Release() {
	w.held = false
	w.holdTime = 0
	w.fireDelay = BaseFireDelay
}

// Held reports whether the fire button is down
func (w *Weapon) Held() bool {
	return w.held
}

// FireDelay returns the current auto-fire delay in world ticks
func (w *Weapon) FireDelay() float64 {
	return w.fireDelay
}

// SizeMultiplier grows auto-fire projectiles as the fire rate ramps up
func (w *Weapon) SizeMultiplier() float64 {
	return 1 + (AutoMaxSizeMultiplier-1)*(1-w.fireDelay/BaseFireDelay)
}

// Tick advances the weapon by one world tick and returns the volley to
// fire, if any.
func (w *Weapon) Tick(dt, now float64) (Volley, bool) {
	if !w.held {
		return Volley{}, false
	}

	w.holdTime += dt
	ramp := math.Min(1, w.holdTime/RampUpTime)
	w.fireDelay = BaseFireDelay - (BaseFireDelay-MinFireDelay)*ramp

	if w.clickCount == 1 && !w.singleUsed && now-w.lastClick < RapidClickThreshold {
		w.singleUsed = true
		return Volley{
			Homing:         SingleHoming,
			Color:          ColorSingleShot,
			SizeMultiplier: SingleSizeMultiplier,
			Cue:            CueMissile,
		}, true
	}

	w.autoTimer++
	if w.autoTimer >= w.fireDelay {
		w.autoTimer = 0
		return Volley{
			Homing:         AutoHoming,
			Color:          ColorAutoShot,
			SizeMultiplier: w.SizeMultiplier(),
			Cue:            CueShoot,
		}, true
	}
	return Volley{}, false
}

// UpgradeLevel returns the weapon level reached after hits kills
func UpgradeLevel(hits int) int {
	level := 0
	for i, threshold := range UpgradeThresholds {
		if hits >= threshold {
			level = i
		}
	}
	return level
}

// NextUpgrade returns the kill count of the next level, or -1 at the top
func NextUpgrade(hits int) int {
	for _, threshold := range UpgradeThresholds {
		if hits < threshold {
			return threshold
		}
	}
	return -1
}

// VolleyAngles spreads n shots around base
func VolleyAngles(base float64, n int) []float64 {
	angles := make([]float64, n)
	mid := float64(n-1) / 2
	for i := range angles {
		angles[i] = base + (float64(i)-mid)*VolleySpread
	}
	return angles
}
