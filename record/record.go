// Package record stores simulation frames as a stream of msgpack values.
package record

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"dodgecircles/sim"
)

// Writer appends frames to an output stream
type Writer struct {
	buf *bufio.Writer
	enc *msgpack.Encoder
	n   int
}

// NewWriter creates a writer on w
func NewWriter(w io.Writer) *Writer {
	buf := bufio.NewWriter(w)
	return &Writer{buf: buf, enc: msgpack.NewEncoder(buf)}
}

// Write encodes one frame
func (w *Writer) Write(f *sim.Frame) error {
	if err := w.enc.Encode(f); err != nil {
		return fmt.Errorf("encode frame %d: %w", w.n, err)
	}
	w.n++
	return nil
}

// Count returns the number of frames written
func (w *Writer) Count() int {
	return w.n
}

// Flush writes any buffered data
func (w *Writer) Flush() error {
	if err := w.buf.Flush(); err != nil {
		return fmt.Errorf("flush frames: %w", err)
	}
	return nil
}

// ReadAll decodes every frame in r
func ReadAll(r io.Reader) ([]sim.Frame, error) {
	dec := msgpack.NewDecoder(bufio.NewReader(r))
	var frames []sim.Frame
	for {
		var f sim.Frame
		err := dec.Decode(&f)
		if errors.Is(err, io.EOF) {
			return frames, nil
		}
		if err != nil {
			return frames, fmt.Errorf("decode frame %d: %w", len(frames), err)
		}
		frames = append(frames, f)
	}
}

// Summary describes a recording
type Summary struct {
	Frames        int
	Duration      float64
	PeakCircles   int
	PeakParticles int
	PeakTotal     int
	Hits          int
	Score         float64
	Over          bool
}

// Summarize folds frames into a Summary
func Summarize(frames []sim.Frame) Summary {
	var s Summary
	s.Frames = len(frames)
	for i := range frames {
		f := &frames[i]
		s.PeakCircles = max(s.PeakCircles, len(f.Circles))
		s.PeakParticles = max(s.PeakParticles, len(f.Particles))
		s.PeakTotal = max(s.PeakTotal, f.Population)
	}
	if len(frames) > 0 {
		last := &frames[len(frames)-1]
		s.Duration = last.Time - frames[0].Time
		s.Hits = last.Hits
		s.Score = last.Score
		s.Over = last.Over
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%d frames over %.1fs, score %.1fs, %d hits, peak %d circles / %d particles / %d total, over=%v",
		s.Frames, s.Duration, s.Score, s.Hits, s.PeakCircles, s.PeakParticles, s.PeakTotal, s.Over)
}
