package wave

import (
	"fmt"
	"math"
	"time"
)

// Buffer is a mono sample stream at a fixed sample rate.
type Buffer struct {
	samples    []float64
	sampleRate int
}

// New creates an empty buffer.
func New(sampleRate int) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	return &Buffer{sampleRate: sampleRate}, nil
}

// Append adds a block of samples to the end of the stream.
func (b *Buffer) Append(block ...float64) {
	b.samples = append(b.samples, block...)
}

// Grow reserves room for n more samples.
func (b *Buffer) Grow(n int) {
	if n <= cap(b.samples)-len(b.samples) {
		return
	}
	grown := make([]float64, len(b.samples), len(b.samples)+n)
	copy(grown, b.samples)
	b.samples = grown
}

func (b *Buffer) Samples() []float64 { return b.samples }
func (b *Buffer) SampleRate() int    { return b.sampleRate }
func (b *Buffer) Len() int           { return len(b.samples) }

// Duration is the playback length of the buffer.
func (b *Buffer) Duration() time.Duration {
	return time.Duration(len(b.samples)) * time.Second / time.Duration(b.sampleRate)
}

// RemoveDCBias subtracts the mean from every sample.
func (b *Buffer) RemoveDCBias() error {
	if len(b.samples) == 0 {
		return ErrEmptyBuffer
	}

	var sum float64
	for _, s := range b.samples {
		sum += s
	}
	mean := sum / float64(len(b.samples))

	for i := range b.samples {
		b.samples[i] -= mean
	}
	return nil
}

// Peak returns the largest absolute sample value.
func (b *Buffer) Peak() float64 {
	var peak float64
	for _, s := range b.samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	return peak
}

// NormalizePeak scales the samples so the largest magnitude is exactly 1.
// Polarity is kept.
func (b *Buffer) NormalizePeak() error {
	if len(b.samples) == 0 {
		return ErrEmptyBuffer
	}

	peak := b.Peak()
	if peak == 0 {
		return ErrSilentSignal
	}

	for i := range b.samples {
		b.samples[i] /= peak
	}
	return nil
}
