package spectro

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/neurlang/sonograph/picture"
	"github.com/neurlang/sonograph/raster"
	"github.com/neurlang/sonograph/wave"
	"github.com/sirupsen/logrus"
)

// Encoder represents the configuration for turning images into audio.
type Encoder struct {
	SampleRate int
	MaxFreq    float64

	// Gain applied when quantizing to PCM. Values above 1 wrap around.
	Gain float64

	// Width and Height resample the input image when both are non-zero.
	Width  int
	Height int
}

// NewEncoder creates a new Encoder instance with default values.
func NewEncoder() *Encoder {
	return &Encoder{
		SampleRate: 44100,
		MaxFreq:    DefaultMaxFreq,
		Gain:       1,
	}
}

// Prepare runs the raster stages and returns the raster synthesis would consume.
func (e *Encoder) Prepare(rgba []byte, width, height int) (*raster.Raster, int, error) {
	return Prepare(rgba, width, height, e.SampleRate, e.MaxFreq)
}

// ImageToAudio converts a decoded RGBA plane to normalized audio.
func (e *Encoder) ImageToAudio(rgba []byte, width, height int) (*wave.Buffer, error) {
	return ImageToAudio(rgba, width, height, e.SampleRate, e.MaxFreq)
}

// ImageToWav encodes an already decoded image as a 16-bit WAV stream.
func (e *Encoder) ImageToWav(img image.Image, out io.WriteSeeker) error {
	plane := picture.RGBA(img)
	b := plane.Bounds()

	buf, err := e.ImageToAudio(plane.Pix, b.Dx(), b.Dy())
	if err != nil {
		return err
	}
	return buf.EncodePCM16(out, e.Gain)
}

// ToWavPng reads an image file and writes its sound as a WAV file.
func (e *Encoder) ToWavPng(inputFile, outputFile string) error {
	img, err := picture.Load(inputFile, e.Width, e.Height)
	if err != nil {
		return err
	}
	return e.WriteWav(img, outputFile)
}

// WriteWav encodes an already decoded image into the WAV file outputFile.
// The image is used as is; Width and Height are applied by picture.Load.
func (e *Encoder) WriteWav(img image.Image, outputFile string) error {
	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	if err := e.ImageToWav(img, f); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"function": "Encoder.WriteWav",
		"output":   outputFile,
	}).Info("Wrote spectrogram audio")

	return nil
}
