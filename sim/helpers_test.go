package sim

import (
	"image/color"
	"math/rand"
)

// nilPatterns misses on every lookup.
type nilPatterns struct{}

func (nilPatterns) VelocityPattern(n int) []Vec2                 { return nil }
func (nilPatterns) SizeForRadius(radius float64) (float64, bool) { return 0, false }
func (nilPatterns) Colors(n int) []color.NRGBA                   { return nil }
func (nilPatterns) SplitRatios(n int) []float64                  { return nil }
func (nilPatterns) SplitAngles(n int) []float64                  { return nil }
func (nilPatterns) ExplosionPattern() (ExplosionPattern, bool)   { return ExplosionPattern{}, false }
func (nilPatterns) ExplosionMultiplier() (float64, bool)         { return 0, false }

// recordingSink remembers every cue it was handed.
type recordingSink struct {
	cues []Cue
}

func (s *recordingSink) Play(c Cue) { s.cues = append(s.cues, c) }

func (s *recordingSink) count(c Cue) int {
	n := 0
	for _, got := range s.cues {
		if got == c {
			n++
		}
	}
	return n
}

func baseConfig() Config {
	return NewConfig(BaseWidth, BaseHeight)
}

func newTestWorld(seed int64) *World {
	cfg := baseConfig()
	return NewWorld(cfg, NewBudget(cfg), rand.New(rand.NewSource(seed)))
}
