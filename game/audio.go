package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"dodgecircles/sim"
)

const (
	sampleRate = beep.SampleRate(44100)

	minVolume = -6.0
	maxVolume = 2.0
)

// tone is one step of a cue
type tone struct {
	freq     float64
	duration time.Duration
}

// cueTones maps each cue onto a short sequence of sine tones
var cueTones = map[sim.Cue][]tone{
	sim.CueShoot:           {{1320, 25 * time.Millisecond}},
	sim.CueMissile:         {{440, 40 * time.Millisecond}, {660, 60 * time.Millisecond}},
	sim.CueExplosionSmall:  {{240, 60 * time.Millisecond}},
	sim.CueExplosionMedium: {{180, 90 * time.Millisecond}, {140, 60 * time.Millisecond}},
	sim.CueExplosionLarge:  {{120, 120 * time.Millisecond}, {90, 120 * time.Millisecond}},
	sim.CueDeath:           {{330, 150 * time.Millisecond}, {220, 150 * time.Millisecond}, {110, 300 * time.Millisecond}},
}

// Audio plays simulation cues through the speaker. It implements
// sim.CueSink; until Init succeeds every cue is dropped.
type Audio struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	initialized bool
}

var _ sim.CueSink = (*Audio)(nil)

// NewAudio creates an audio sink with the given mute state and volume
func NewAudio(muted bool, volume float64) *Audio {
	mixer := &beep.Mixer{}
	return &Audio{
		mixer: mixer,
		master: &effects.Volume{
			Streamer: mixer,
			Base:     2,
			Volume:   clampVolume(volume),
			Silent:   muted,
		},
	}
}

// Init opens the speaker
func (a *Audio) Init() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(a.master)
	a.initialized = true
	return nil
}

// Play queues the tones for c. Unknown cues are ignored.
func (a *Audio) Play(c sim.Cue) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.initialized {
		return
	}
	s, err := cueStreamer(c)
	if err != nil || s == nil {
		return
	}
	speaker.Lock()
	a.mixer.Add(s)
	speaker.Unlock()
}

// ToggleMute flips the mute state and returns the new one
func (a *Audio) ToggleMute() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	speaker.Lock()
	a.master.Silent = !a.master.Silent
	muted := a.master.Silent
	speaker.Unlock()
	return muted
}

// AdjustVolume changes the master volume by delta and returns the result
func (a *Audio) AdjustVolume(delta float64) float64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	speaker.Lock()
	a.master.Volume = clampVolume(a.master.Volume + delta)
	v := a.master.Volume
	speaker.Unlock()
	return v
}

// Muted reports the mute state
func (a *Audio) Muted() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.master.Silent
}

// Close stops playback and releases the speaker
func (a *Audio) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	a.initialized = false
}

// cueStreamer builds a one-shot streamer for c
func cueStreamer(c sim.Cue) (beep.Streamer, error) {
	tones, ok := cueTones[c]
	if !ok {
		return nil, nil
	}
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			return nil, fmt.Errorf("tone %v Hz: %w", t.freq, err)
		}
		parts = append(parts, beep.Take(sampleRate.N(t.duration), sine))
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   -3,
	}, nil
}

func clampVolume(v float64) float64 {
	return max(minVolume, min(maxVolume, v))
}
