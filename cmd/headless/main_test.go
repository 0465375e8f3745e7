package main

import (
	"bytes"
	"math/rand"
	"testing"

	"dodgecircles/record"
	"dodgecircles/sim"
)

func TestRunRecordsFrames(t *testing.T) {
	cfg := sim.NewConfig(sim.BaseWidth, sim.BaseHeight)
	engine := sim.NewEngine(cfg, sim.NewBudget(cfg), rand.New(rand.NewSource(3)))

	var buf bytes.Buffer
	w := record.NewWriter(&buf)
	frames, err := run(engine, 5, 60, 30, w)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	got, err := record.ReadAll(&buf)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	// every 30th frame plus the final one
	if want := (frames+29)/30 + 1; len(got) != want {
		t.Errorf("recorded %d frames, want %d", len(got), want)
	}
	for _, f := range got {
		if f.Population > f.Ceiling {
			t.Fatalf("tick %d: population %d over ceiling %d", f.Tick, f.Population, f.Ceiling)
		}
	}
}

func TestScriptFiresInCycles(t *testing.T) {
	cfg := sim.NewConfig(sim.BaseWidth, sim.BaseHeight)
	w := sim.NewWorld(cfg, sim.NewBudget(cfg), rand.New(rand.NewSource(1)))
	s := &script{fps: 10}

	var presses, releases []int
	for i := 0; i < 40; i++ {
		in := s.next(w)
		if in.FirePressed {
			presses = append(presses, i)
		}
		if in.FireReleased {
			releases = append(releases, i)
		}
		if in.Pointer != cfg.Center() {
			t.Fatalf("frame %d: pointer %v without circles", i, in.Pointer)
		}
	}
	if len(presses) != 2 || presses[0] != 0 || presses[1] != 20 {
		t.Errorf("presses at %v", presses)
	}
	if len(releases) != 2 || releases[0] != 15 || releases[1] != 35 {
		t.Errorf("releases at %v", releases)
	}
}
