package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"time"

	"dodgecircles/patterns"
	"dodgecircles/record"
	"dodgecircles/sim"
)

func main() {
	width := flag.Int("width", sim.BaseWidth, "play area width in pixels")
	height := flag.Int("height", sim.BaseHeight, "play area height in pixels")
	seed := flag.Int64("seed", 1, "random seed")
	maxObjects := flag.Int("max-objects", sim.InitialMaxObjects, "initial population ceiling")
	seconds := flag.Float64("seconds", 60, "simulated seconds to run")
	fps := flag.Int("fps", 60, "frames per simulated second")
	noCache := flag.Bool("no-cache", false, "disable the precomputed pattern cache")
	adaptive := flag.Bool("adaptive", false, "lower the population ceiling when the frame rate drops")
	recordPath := flag.String("record", "", "write frames to this file")
	every := flag.Int("every", 6, "record every Nth frame")
	inspect := flag.String("inspect", "", "print the summary of a recorded file and exit")
	flag.Parse()

	if *inspect != "" {
		if err := inspectFile(*inspect); err != nil {
			log.Fatalf("Failed to inspect %s: %v", *inspect, err)
		}
		return
	}

	cfg := sim.NewConfig(*width, *height)
	cfg.Seed = *seed
	cfg.MaxObjects = *maxObjects
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	if *fps <= 0 || *every <= 0 {
		log.Fatalf("-fps and -every must be positive")
	}

	engine := sim.NewEngine(cfg, sim.NewBudget(cfg), rand.New(rand.NewSource(cfg.Seed)))
	if !*noCache {
		cache := patterns.New(cfg, cfg.Seed)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := cache.Preload(ctx)
		cancel()
		if err != nil {
			log.Fatalf("Failed to preload patterns: %v", err)
		}
		engine.World.SetPatterns(cache)
		defer func() {
			hits, misses := cache.Stats()
			log.Printf("Pattern cache: %d hits, %d misses", hits, misses)
		}()
	}
	if *adaptive {
		engine.World.SetPolicy(sim.NewFrameRatePolicy())
	}

	var w *record.Writer
	if *recordPath != "" {
		f, err := os.Create(*recordPath)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", *recordPath, err)
		}
		defer f.Close()
		w = record.NewWriter(f)
	}

	start := time.Now()
	frames, err := run(engine, *seconds, *fps, *every, w)
	if err != nil {
		log.Fatalf("Run failed: %v", err)
	}
	if w != nil {
		if err := w.Flush(); err != nil {
			log.Fatalf("Failed to write %s: %v", *recordPath, err)
		}
		log.Printf("Recorded %d frames to %s", w.Count(), *recordPath)
	}

	world := engine.World
	log.Printf("Ran %d frames in %v", frames, time.Since(start).Round(time.Millisecond))
	fmt.Printf("survived %.1fs, %d hits, %d objects (ceiling %d), over=%v\n",
		world.Survival(), world.Hits(), world.Total(), world.Budget().Ceiling, world.RoundOver())
}

// run drives the engine at a fixed frame delta until the time is up or the
// round ends, recording every nth frame when w is set
func run(engine *sim.Engine, seconds float64, fps, every int, w *record.Writer) (int, error) {
	engine.Reset()
	dt := 1 / float64(fps)
	total := int(math.Ceil(seconds * float64(fps)))
	s := &script{fps: fps}

	frame := 0
	for ; frame < total && !engine.World.RoundOver(); frame++ {
		engine.Advance(dt, s.next(engine.World))
		if w != nil && frame%every == 0 {
			if err := w.Write(engine.Frame()); err != nil {
				return frame, err
			}
		}
	}
	if w != nil {
		if err := w.Write(engine.Frame()); err != nil {
			return frame, err
		}
	}
	return frame, nil
}

// script steers the avatar in slow loops and fires at the first circle,
// holding the button for a second and a half out of every two
type script struct {
	fps   int
	frame int
}

func (s *script) next(w *sim.World) sim.Input {
	t := float64(s.frame) / float64(s.fps)
	phase := s.frame % (2 * s.fps)
	s.frame++

	angle := t * 0.8
	in := sim.Input{
		Move:         sim.Intent(math.Sin(angle) < -0.3, math.Sin(angle) > 0.3, math.Cos(angle) < -0.3, math.Cos(angle) > 0.3),
		Pointer:      w.Config().Center(),
		FirePressed:  phase == 0,
		FireReleased: phase == s.fps*3/2,
	}
	if len(w.Circles) > 0 {
		in.Pointer = w.Circles[0].Pos
	}
	return in
}

func inspectFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	frames, err := record.ReadAll(f)
	if err != nil {
		return err
	}
	fmt.Println(record.Summarize(frames))
	return nil
}
