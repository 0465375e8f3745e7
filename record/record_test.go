package record

import (
	"bytes"
	"math/rand"
	"testing"

	"dodgecircles/sim"
)

func TestRecordEngineFrames(t *testing.T) {
	cfg := sim.NewConfig(sim.BaseWidth, sim.BaseHeight)
	e := sim.NewEngine(cfg, sim.NewBudget(cfg), rand.New(rand.NewSource(1)))
	e.Reset()

	var buf bytes.Buffer
	w := NewWriter(&buf)
	for i := 0; i < 600; i++ {
		e.Advance(1.0/60, sim.Input{Pointer: sim.Vec2{X: 400}})
		if i%60 == 0 {
			if err := w.Write(e.Frame()); err != nil {
				t.Fatalf("Write: %v", err)
			}
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	frames, err := ReadAll(&buf)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(frames) != w.Count() || len(frames) != 10 {
		t.Fatalf("read %d frames, wrote %d", len(frames), w.Count())
	}
	if len(frames[9].Stars) != sim.StarCount {
		t.Errorf("stars = %d", len(frames[9].Stars))
	}
	if frames[9].Tick <= frames[0].Tick {
		t.Errorf("ticks not increasing: %d then %d", frames[0].Tick, frames[9].Tick)
	}
}

func TestSummarize(t *testing.T) {
	frames := []sim.Frame{
		{Time: 1, Population: 10, Circles: make([]sim.CircleView, 3)},
		{Time: 4, Population: 40, Particles: make([]sim.ParticleView, 30), Hits: 5, Score: 2.5},
		{Time: 6, Population: 20, Circles: make([]sim.CircleView, 7), Hits: 9, Score: 3, Over: true},
	}
	s := Summarize(frames)
	want := Summary{Frames: 3, Duration: 5, PeakCircles: 7, PeakParticles: 30, PeakTotal: 40, Hits: 9, Score: 3, Over: true}
	if s != want {
		t.Errorf("Summarize = %+v, want %+v", s, want)
	}
	if (Summarize(nil) != Summary{}) {
		t.Error("empty summary not zero")
	}
}
