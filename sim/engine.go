package sim

import "math/rand"

// Engine ties a World to its Scheduler. Frontends feed it wall-clock deltas
// and input and read back frames.
type Engine struct {
	World *World
	sched *Scheduler
	frame Frame
}

// NewEngine creates an engine; the world starts without an avatar in play.
func NewEngine(cfg Config, budget *Budget, rng *rand.Rand) *Engine {
	return &Engine{
		World: NewWorld(cfg, budget, rng),
		sched: NewScheduler(cfg),
	}
}

// Advance applies the frame's input events once, then drains the avatar
// steps and the world ticks that are due.
func (e *Engine) Advance(delta float64, in Input) StepCounts {
	e.World.HandleInput(in)
	n := e.sched.Advance(delta,
		func(dt float64) { e.World.StepAvatar(dt, in.Move) },
		e.World.Update,
	)
	e.World.SetFrameRate(e.sched.FPS())
	return n
}

// Frame returns the interpolated view of the current state. The returned
// frame is reused by the next call.
func (e *Engine) Frame() *Frame {
	fast, slow := e.sched.Alpha()
	return e.World.Snapshot(fast, slow, &e.frame)
}

// FPS returns the measured frame rate
func (e *Engine) FPS() float64 {
	return e.sched.FPS()
}

// Reset starts a new round
func (e *Engine) Reset() {
	e.World.Reset()
	e.sched.Reset()
}
