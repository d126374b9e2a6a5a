package wave

import "errors"

var (
	// ErrEmptyBuffer is returned when post-processing a buffer with no samples.
	ErrEmptyBuffer = errors.New("empty audio buffer")

	// ErrSilentSignal is returned when normalizing an all-zero signal.
	ErrSilentSignal = errors.New("silent signal cannot be normalized")

	// ErrInvalidSampleRate is returned for a sample rate that is not positive.
	ErrInvalidSampleRate = errors.New("invalid sample rate")
)
