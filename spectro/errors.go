package spectro

import "errors"

var (
	// ErrSampleRateTooLow is returned when sampleRate < 2*maxFreq.
	ErrSampleRateTooLow = errors.New("sample rate too low for spectrogram frequency")

	// ErrInvalidMaxFreq is returned when maxFreq is not positive.
	ErrInvalidMaxFreq = errors.New("invalid max spectrogram frequency")
)
