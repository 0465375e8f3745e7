package game

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"dodgecircles/patterns"
	"dodgecircles/sim"
)

const volumeStep = 0.5

// uiState is the frontend screen
type uiState int

const (
	stateTitle uiState = iota
	statePlaying
	stateGameOver
)

// Game represents the main game state
type Game struct {
	config   Config
	engine   *sim.Engine
	cache    *patterns.Cache
	input    *PlayerInput
	renderer *Renderer
	hud      *HUD
	audio    *Audio
	profiler *Profiler

	state uiState
	best  float64

	// Cancels a pattern preload still running at shutdown
	cancel context.CancelFunc

	// Last update time for delta time calculation
	lastUpdateTime time.Time
}

// NewGame creates a new game instance. The world runs behind the title
// screen until the first round starts.
func NewGame(config Config) (*Game, error) {
	cfg := config.Sim
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	engine := sim.NewEngine(cfg, sim.NewBudget(cfg), rng)

	g := &Game{
		config:         config,
		engine:         engine,
		input:          NewPlayerInput(),
		renderer:       NewRenderer(cfg),
		hud:            NewHUD(config.ScreenSize()),
		audio:          NewAudio(config.Mute, config.Volume),
		cancel:         func() {},
		lastUpdateTime: time.Now(),
	}

	if err := g.audio.Init(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	engine.World.SetCueSink(g.audio)

	if config.Adaptive {
		engine.World.SetPolicy(sim.NewFrameRatePolicy())
	}

	if config.Patterns {
		g.cache = patterns.New(cfg, cfg.Seed)
		engine.World.SetPatterns(g.cache)

		ctx, cancel := context.WithCancel(context.Background())
		g.cancel = cancel
		go func() {
			start := time.Now()
			if err := g.cache.Preload(ctx); err != nil {
				log.Printf("pattern cache: %v", err)
				return
			}
			log.Printf("pattern cache ready in %v", time.Since(start).Round(time.Millisecond))
		}()
	}

	if config.Profile {
		p, err := NewProfiler("profiles")
		if err != nil {
			g.Close()
			return nil, err
		}
		g.profiler = p
	}

	return g, nil
}

// Close releases the audio device and stops any pending preload
func (g *Game) Close() {
	g.cancel()
	g.audio.Close()
}

// Update advances the simulation by the wall-clock time since the last call
func (g *Game) Update() error {
	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now

	g.handleControls(PollControls())

	g.engine.Advance(deltaTime, g.input.Poll())
	g.hud.Update(deltaTime)

	if g.state == statePlaying && g.engine.World.RoundOver() {
		g.state = stateGameOver
		g.best = max(g.best, g.engine.World.Survival())
		log.Printf("round over: %.1fs, %d hits", g.engine.World.Survival(), g.engine.World.Hits())
	}

	if g.profiler != nil {
		g.profiler.Observe(g.engine.FPS(), g.engine.World.Total())
	}
	return nil
}

func (g *Game) handleControls(c Controls) {
	if c.Start && g.state != statePlaying {
		g.engine.Reset()
		g.state = statePlaying
	}
	if c.ToggleMute {
		if g.audio.ToggleMute() {
			g.hud.SetStatus("Sound off")
		} else {
			g.hud.SetStatus("Sound on")
		}
	}
	if c.VolumeUp {
		g.hud.SetStatus(fmt.Sprintf("Volume %+.1f", g.audio.AdjustVolume(volumeStep)))
	}
	if c.VolumeDown {
		g.hud.SetStatus(fmt.Sprintf("Volume %+.1f", g.audio.AdjustVolume(-volumeStep)))
	}
	if c.TogglePerf {
		debugState := GetDebugState()
		debugState.ShowPerf = !debugState.ShowPerf
	}
	if c.ToggleDebug {
		debugState := GetDebugState()
		debugState.ShowBounds = !debugState.ShowBounds
	}
}

// Draw renders the current frame and the overlay for the UI state
func (g *Game) Draw(screen *ebiten.Image) {
	f := g.engine.Frame()
	g.renderer.Render(screen, f)

	switch g.state {
	case stateTitle:
		g.hud.DrawTitle(screen)
	case statePlaying:
		g.hud.DrawScore(screen, f)
	case stateGameOver:
		g.hud.DrawGameOver(screen, f, g.best)
	}

	if GetDebugState().ShowPerf {
		g.hud.DrawPerf(screen, f, g.perfStats())
	}
}

func (g *Game) perfStats() PerfStats {
	stats := PerfStats{FPS: g.engine.FPS(), TPS: ebiten.ActualTPS()}
	if g.cache != nil {
		stats.CacheHits, stats.CacheMisses = g.cache.Stats()
		stats.CacheReady = g.cache.Ready()
	}
	if g.profiler != nil {
		stats.Profiling = g.profiler.IsProfiling()
	}
	return stats
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenSize()
}
