package game

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	dropFPS         = 45.0
	profileWarmup   = 3 * time.Second
	captureCooldown = 10 * time.Second
	captureDuration = 5 * time.Second
)

// Profiler captures a CPU profile and an execution trace when the frame
// rate drops
type Profiler struct {
	mu          sync.Mutex
	isProfiling bool
	lastCapture time.Time
	started     time.Time
	profilesDir string
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create profiles dir: %w", err)
	}
	return &Profiler{profilesDir: dir, started: time.Now()}, nil
}

// Observe checks the measured frame rate and starts a capture on a drop.
// Drops during warmup or within the cooldown of the last capture are ignored.
func (p *Profiler) Observe(fps float64, population int) {
	if fps <= 0 || fps >= dropFPS || time.Since(p.started) < profileWarmup {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isProfiling || time.Since(p.lastCapture) < captureCooldown {
		return
	}
	p.isProfiling = true
	p.lastCapture = time.Now()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("frame rate drop (%.0f FPS, %d objects); NumGC=%d HeapAlloc=%d KB",
		fps, population, m.NumGC, m.HeapAlloc/1024)

	baseName := fmt.Sprintf("fps-drop-%s-fps%.0f-objects%d", time.Now().Format("20060102-150405"), fps, population)
	go p.capture(baseName)
}

// IsProfiling returns whether a capture is in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

func (p *Profiler) capture(baseName string) {
	defer func() {
		p.mu.Lock()
		p.isProfiling = false
		p.mu.Unlock()
	}()

	var g errgroup.Group
	g.Go(func() error { return p.captureCPUProfile(baseName) })
	g.Go(func() error { return p.captureTrace(baseName) })
	if err := g.Wait(); err != nil {
		log.Printf("profile capture: %v", err)
		return
	}
	log.Printf("profile saved; view with: go tool pprof -http=:8080 %s",
		filepath.Join(p.profilesDir, baseName+".cpu.prof"))
}

func (p *Profiler) captureCPUProfile(baseName string) error {
	file, err := os.Create(filepath.Join(p.profilesDir, baseName+".cpu.prof"))
	if err != nil {
		return fmt.Errorf("create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("start CPU profile: %w", err)
	}
	time.Sleep(captureDuration)
	pprof.StopCPUProfile()
	return nil
}

func (p *Profiler) captureTrace(baseName string) error {
	file, err := os.Create(filepath.Join(p.profilesDir, baseName+".trace"))
	if err != nil {
		return fmt.Errorf("create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("start trace: %w", err)
	}
	time.Sleep(captureDuration)
	trace.Stop()
	return nil
}
