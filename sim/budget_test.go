package sim

import "testing"

func TestAvailableSlots(t *testing.T) {
	tests := []struct {
		name                    string
		total, ceiling, reserve int
		want                    int
	}{
		{"empty", 0, 100, 20, 80},
		{"reserve eats the rest", 85, 100, 20, 0},
		{"over ceiling", 150, 100, 20, 0},
		{"no reserve", 99, 100, 0, 1},
		{"exactly at reserve", 80, 100, 20, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AvailableSlots(tt.total, tt.ceiling, tt.reserve); got != tt.want {
				t.Errorf("AvailableSlots(%d, %d, %d) = %d, want %d", tt.total, tt.ceiling, tt.reserve, got, tt.want)
			}
		})
	}
}

func TestFrameRatePolicyShrinksCeiling(t *testing.T) {
	cfg := NewConfig(BaseWidth, BaseHeight)
	b := NewBudget(cfg)
	p := NewFrameRatePolicy()

	p.Adjust(b, TickStats{FPS: 30, Total: 1000, Time: 5})
	if b.Ceiling != 800 {
		t.Fatalf("ceiling = %d, want 800", b.Ceiling)
	}
	if b.ParticleCount != 8 {
		t.Errorf("particle count = %d, want 8", b.ParticleCount)
	}

	// inside the cooldown nothing changes
	p.Adjust(b, TickStats{FPS: 30, Total: 500, Time: 5.5})
	if b.Ceiling != 800 {
		t.Errorf("ceiling changed during cooldown: %d", b.Ceiling)
	}

	p.Adjust(b, TickStats{FPS: 30, Total: 10, Time: 7})
	if b.Ceiling != cfg.MaxObjects/10 {
		t.Errorf("ceiling = %d, want floor %d", b.Ceiling, cfg.MaxObjects/10)
	}
}

func TestFrameRatePolicyIgnoresHealthyFrames(t *testing.T) {
	b := NewBudget(NewConfig(BaseWidth, BaseHeight))
	p := NewFrameRatePolicy()
	p.Adjust(b, TickStats{FPS: 60, Total: 1000, Time: 5})
	p.Adjust(b, TickStats{FPS: 0, Total: 1000, Time: 6})
	if b.Ceiling != InitialMaxObjects || b.ParticleCount != InitialParticleCount {
		t.Errorf("budget changed: %+v", b)
	}
}
