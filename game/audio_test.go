package game

import (
	"testing"

	"dodgecircles/sim"
)

func TestCueStreamerLengths(t *testing.T) {
	buf := make([][2]float64, 512)
	for cue, tones := range cueTones {
		s, err := cueStreamer(cue)
		if err != nil || s == nil {
			t.Fatalf("%s: streamer %v, err %v", cue, s, err)
		}
		want := 0
		for _, tn := range tones {
			want += sampleRate.N(tn.duration)
		}
		got := 0
		for {
			n, ok := s.Stream(buf)
			got += n
			if !ok {
				break
			}
			if got > want {
				t.Fatalf("%s: streamed past %d samples", cue, want)
			}
		}
		if got != want {
			t.Errorf("%s: %d samples, want %d", cue, got, want)
		}
	}

	if s, err := cueStreamer("unknown"); s != nil || err != nil {
		t.Errorf("unknown cue gave %v, %v", s, err)
	}
}

func TestClosedAudioDropsCues(t *testing.T) {
	a := NewAudio(false, 0)
	a.Close()
	a.Close()
	a.Play(sim.CueShoot)
	if a.mixer.Len() != 0 {
		t.Errorf("closed audio queued %d streamers", a.mixer.Len())
	}
}

func TestAudioControls(t *testing.T) {
	a := NewAudio(true, 0)
	if !a.Muted() {
		t.Fatal("not muted at start")
	}
	if a.ToggleMute() || a.Muted() {
		t.Error("toggle did not unmute")
	}
	for i := 0; i < 20; i++ {
		a.AdjustVolume(volumeStep)
	}
	if v := a.AdjustVolume(0); v != maxVolume {
		t.Errorf("volume %v, want clamp at %v", v, maxVolume)
	}
	for i := 0; i < 40; i++ {
		a.AdjustVolume(-volumeStep)
	}
	if v := a.AdjustVolume(0); v != minVolume {
		t.Errorf("volume %v, want clamp at %v", v, minVolume)
	}
}
