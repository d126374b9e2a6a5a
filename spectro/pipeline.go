package spectro

import (
	"fmt"
	"math"

	"github.com/neurlang/sonograph/raster"
	"github.com/neurlang/sonograph/synth"
	"github.com/neurlang/sonograph/wave"
	"github.com/sirupsen/logrus"
)

// DefaultMaxFreq is the top of the display range of common spectrogram viewers.
const DefaultMaxFreq = 8000

// PaddedHeight returns the raster height after padding, trunc(height * sampleRate / (2*maxFreq)).
func PaddedHeight(height, sampleRate int, maxFreq float64) (int, error) {
	if maxFreq <= 0 || math.IsNaN(maxFreq) || math.IsInf(maxFreq, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidMaxFreq, maxFreq)
	}
	if float64(sampleRate) < 2*maxFreq {
		return 0, fmt.Errorf("%w: %d Hz cannot reach %v Hz", ErrSampleRateTooLow, sampleRate, maxFreq)
	}

	scaling := float64(sampleRate) / (2 * maxFreq)
	padded := int(float64(height) * scaling)
	if padded < height {
		return 0, fmt.Errorf("%w: padded height %d below image height %d", ErrSampleRateTooLow, padded, height)
	}
	return padded, nil
}

// Prepare converts the image and reshapes it for synthesis. It returns the
// prepared raster and the transform length to synthesize it with.
func Prepare(rgba []byte, width, height, sampleRate int, maxFreq float64) (*raster.Raster, int, error) {
	img, err := raster.FromRGBA(rgba, width, height)
	if err != nil {
		return nil, 0, err
	}

	padded, err := PaddedHeight(height, sampleRate, maxFreq)
	if err != nil {
		return nil, 0, err
	}

	if err := img.PadTop(padded - height); err != nil {
		return nil, 0, err
	}
	img.Invert()
	img.Rotate90()
	img.MirrorExtend()

	logrus.WithFields(logrus.Fields{
		"function":      "Prepare",
		"width":         width,
		"height":        height,
		"padded_height": padded,
		"rows":          img.Height(),
		"row_length":    img.Width(),
	}).Debug("Prepared raster for synthesis")

	return img, 2 * padded, nil
}

// ImageToAudio converts a width x height RGBA plane into normalized mono audio.
func ImageToAudio(rgba []byte, width, height, sampleRate int, maxFreq float64) (*wave.Buffer, error) {
	img, size, err := Prepare(rgba, width, height, sampleRate, maxFreq)
	if err != nil {
		return nil, err
	}

	out, err := wave.New(sampleRate)
	if err != nil {
		return nil, err
	}

	s, err := synth.New(size)
	if err != nil {
		return nil, err
	}
	if err := s.Synthesize(img, out); err != nil {
		return nil, fmt.Errorf("synthesize: %w", err)
	}

	if err := out.RemoveDCBias(); err != nil {
		return nil, err
	}
	if err := out.NormalizePeak(); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"function":    "ImageToAudio",
		"samples":     out.Len(),
		"sample_rate": sampleRate,
		"duration":    out.Duration().String(),
	}).Debug("Synthesized audio")

	return out, nil
}
