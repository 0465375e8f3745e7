package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"dodgecircles/sim"
)

const (
	lineHeight     = 16
	glyphWidth     = 7
	statusDuration = 1.5
)

var (
	hudColor    = color.NRGBA{220, 220, 220, 255}
	titleColor  = color.NRGBA{255, 255, 120, 255}
	perfColor   = color.NRGBA{120, 255, 120, 255}
	panelColor  = color.NRGBA{0, 0, 0, 160}
	statusColor = color.NRGBA{120, 200, 255, 255}
)

// PerfStats is what the performance overlay shows
type PerfStats struct {
	FPS         float64
	TPS         float64
	CacheHits   int
	CacheMisses int
	CacheReady  bool
	Profiling   bool
}

// HUD draws text over the play area
type HUD struct {
	width, height int
	status        string
	statusTimer   float64
}

// NewHUD creates a HUD for the given screen size
func NewHUD(width, height int) *HUD {
	return &HUD{width: width, height: height}
}

// SetStatus shows a short message for a moment
func (h *HUD) SetStatus(msg string) {
	h.status = msg
	h.statusTimer = statusDuration
}

// Update ages the status message
func (h *HUD) Update(dt float64) {
	if h.statusTimer > 0 {
		h.statusTimer -= dt
	}
}

// DrawScore draws the round stats in the top left corner
func (h *HUD) DrawScore(screen *ebiten.Image, f *sim.Frame) {
	lines := []string{
		fmt.Sprintf("Time: %.1fs", f.Score),
		fmt.Sprintf("Hits: %d", f.Hits),
	}
	if f.NextUpgrade >= 0 {
		lines = append(lines, fmt.Sprintf("Level %d (next at %d)", f.Level+1, f.NextUpgrade))
	} else {
		lines = append(lines, fmt.Sprintf("Level %d (max)", f.Level+1))
	}
	for i, l := range lines {
		text.Draw(screen, l, basicfont.Face7x13, 10, 20+i*lineHeight, hudColor)
	}
	h.drawStatus(screen)
}

// DrawTitle draws the title screen
func (h *HUD) DrawTitle(screen *ebiten.Image) {
	h.drawCentered(screen, []string{
		"DODGE THE CIRCLES",
		"",
		"Move: WASD / arrows",
		"Fire: click (hold for auto fire)",
		"M: sound   +/-: volume   F2: stats",
		"",
		"Press SPACE to start",
	}, titleColor)
	h.drawStatus(screen)
}

// DrawGameOver draws the end of round screen
func (h *HUD) DrawGameOver(screen *ebiten.Image, f *sim.Frame, best float64) {
	h.drawCentered(screen, []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Survived %.1fs with %d hits", f.Score, f.Hits),
		fmt.Sprintf("Best %.1fs", best),
		"",
		"Press SPACE to play again",
	}, titleColor)
	h.drawStatus(screen)
}

// DrawPerf draws the performance overlay in the top right corner
func (h *HUD) DrawPerf(screen *ebiten.Image, f *sim.Frame, stats PerfStats) {
	cache := "off"
	if stats.CacheReady {
		cache = fmt.Sprintf("%d hit / %d miss", stats.CacheHits, stats.CacheMisses)
	} else if stats.CacheHits+stats.CacheMisses > 0 {
		cache = "loading"
	}
	lines := []string{
		fmt.Sprintf("FPS %.0f  TPS %.0f", stats.FPS, stats.TPS),
		fmt.Sprintf("Objects %d / %d", f.Population, f.Ceiling),
		fmt.Sprintf("Circles %d  Shots %d", len(f.Circles), len(f.Projectiles)),
		fmt.Sprintf("Particles %d", len(f.Particles)),
		fmt.Sprintf("Cache %s", cache),
	}
	if stats.Profiling {
		lines = append(lines, "Profiling...")
	}

	w := 0
	for _, l := range lines {
		w = max(w, len(l)*glyphWidth)
	}
	x := h.width - w - 16
	vector.DrawFilledRect(screen, float32(x-6), 4, float32(w+12), float32(len(lines)*lineHeight+8), panelColor, false)
	for i, l := range lines {
		text.Draw(screen, l, basicfont.Face7x13, x, 20+i*lineHeight, perfColor)
	}
}

func (h *HUD) drawCentered(screen *ebiten.Image, lines []string, clr color.Color) {
	top := h.height/2 - len(lines)*lineHeight/2
	for i, l := range lines {
		x := (h.width - len(l)*glyphWidth) / 2
		text.Draw(screen, l, basicfont.Face7x13, x, top+i*lineHeight, clr)
	}
}

func (h *HUD) drawStatus(screen *ebiten.Image) {
	if h.statusTimer <= 0 {
		return
	}
	x := (h.width - len(h.status)*glyphWidth) / 2
	text.Draw(screen, h.status, basicfont.Face7x13, x, h.height-24, statusColor)
}
