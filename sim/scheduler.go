package sim

import "math"

// stepEpsilon absorbs rounding in accumulated frame deltas
const stepEpsilon = 1e-9

// StepCounts reports how many steps each rate ran in one Advance
type StepCounts struct {
	Fast int
	Slow int
}

// Scheduler drains wall-clock time into two fixed-step loops: a fast one
// for the avatar and a slow one for the world. Each frame the fast loop
// drains first, then the slow loop.
type Scheduler struct {
	fastDt   float64
	slowDt   float64
	maxDelta float64
	fastAcc  float64
	slowAcc  float64

	frames int
	window float64
	fps    float64
}

// NewScheduler creates a scheduler from the configured rates
func NewScheduler(cfg Config) *Scheduler {
	return &Scheduler{
		fastDt:   cfg.FastDt(),
		slowDt:   cfg.SlowDt(),
		maxDelta: cfg.MaxFrameDelta,
	}
}

// Advance feeds one frame's wall-clock delta and runs the due steps.
func (s *Scheduler) Advance(delta float64, fast, slow func(dt float64)) StepCounts {
	if delta < 0 || math.IsNaN(delta) {
		delta = 0
	}
	s.measure(delta)
	delta = math.Min(delta, s.maxDelta)

	s.fastAcc += delta
	s.slowAcc += delta

	var n StepCounts
	for s.fastAcc >= s.fastDt-stepEpsilon {
		fast(s.fastDt)
		s.fastAcc -= s.fastDt
		n.Fast++
	}
	for s.slowAcc >= s.slowDt-stepEpsilon {
		slow(s.slowDt)
		s.slowAcc -= s.slowDt
		n.Slow++
	}
	return n
}

// Alpha returns the interpolation factors in [0, 1) for both rates
func (s *Scheduler) Alpha() (fast, slow float64) {
	return alpha(s.fastAcc, s.fastDt), alpha(s.slowAcc, s.slowDt)
}

func alpha(acc, dt float64) float64 {
	a := acc / dt
	if a < 0 {
		return 0
	}
	if a >= 1 {
		return math.Nextafter(1, 0)
	}
	return a
}

// FPS returns the frame rate measured over the last full second
func (s *Scheduler) FPS() float64 {
	return s.fps
}

func (s *Scheduler) measure(delta float64) {
	s.frames++
	s.window += delta
	if s.window >= 1 {
		s.fps = float64(s.frames) / s.window
		s.frames = 0
		s.window = 0
	}
}

// Reset drops any pending time
func (s *Scheduler) Reset() {
	s.fastAcc = 0
	s.slowAcc = 0
}
