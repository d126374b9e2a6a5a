package wave

import (
	"fmt"

	"github.com/faiface/beep"
)

// streamer plays a Buffer through beep, duplicating the mono signal to both channels.
type streamer struct {
	samples []float64
	pos     int
}

// Streamer returns a beep.StreamSeeker over the current samples.
func (b *Buffer) Streamer() beep.StreamSeeker {
	return &streamer{samples: b.samples}
}

// Format describes the buffer for beep consumers.
func (b *Buffer) Format() beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(b.sampleRate),
		NumChannels: 2,
		Precision:   BitDepth / 8,
	}
}

func (s *streamer) Stream(out [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	for n < len(out) && s.pos < len(s.samples) {
		out[n][0] = s.samples[s.pos]
		out[n][1] = s.samples[s.pos]
		n++
		s.pos++
	}
	return n, true
}

func (s *streamer) Err() error    { return nil }
func (s *streamer) Len() int      { return len(s.samples) }
func (s *streamer) Position() int { return s.pos }

func (s *streamer) Seek(p int) error {
	if p < 0 || p > len(s.samples) {
		return fmt.Errorf("seek %d out of range [0, %d]", p, len(s.samples))
	}
	s.pos = p
	return nil
}
