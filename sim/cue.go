package sim

// Cue names a sound the frontend should play
type Cue string

const (
	CueShoot           Cue = "shoot"
	CueMissile         Cue = "missile"
	CueExplosionSmall  Cue = "explosion-small"
	CueExplosionMedium Cue = "explosion-medium"
	CueExplosionLarge  Cue = "explosion-large"
	CueDeath           Cue = "death"
)

// CueSink receives sound cues. Play must not block.
type CueSink interface {
	Play(c Cue)
}

// ExplosionCue picks the explosion cue for a circle of the given radius
func ExplosionCue(radius, maxRadius float64) Cue {
	size := radius / maxRadius
	switch {
	case size < 0.33:
		return CueExplosionSmall
	case size < 0.67:
		return CueExplosionMedium
	default:
		return CueExplosionLarge
	}
}

// cueQueue collects a tick's cues. Shots are collapsed to one per tick.
type cueQueue struct {
	pending []Cue
	shoot   bool
	missile bool
}

func (q *cueQueue) add(c Cue) {
	switch c {
	case CueShoot:
		q.shoot = true
	case CueMissile:
		q.missile = true
	default:
		q.pending = append(q.pending, c)
	}
}

func (q *cueQueue) flush(sink CueSink) {
	if sink != nil {
		if q.shoot {
			sink.Play(CueShoot)
		}
		if q.missile {
			sink.Play(CueMissile)
		}
		for _, c := range q.pending {
			sink.Play(c)
		}
	}
	q.pending = q.pending[:0]
	q.shoot = false
	q.missile = false
}
