package analyze

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/mewkiz/flac"
	"github.com/sirupsen/logrus"
)

const pcm16Rescale = float64(1<<16-1) / float64(1<<15-1)

// ReadStreamer drains s and returns its first channel.
func ReadStreamer(s beep.Streamer) ([]float64, error) {
	var out []float64
	var samples = make([][2]float64, 512)
	for {
		n, ok := s.Stream(samples)
		if !ok {
			break
		}
		for i := 0; i < n; i++ {
			out = append(out, samples[i][0])
		}
	}
	return out, s.Err()
}

// LoadWav loads a wav file as mono samples and its sample rate.
func LoadWav(name string) ([]float64, int, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrFileNotLoaded, err)
	}
	defer file.Close()

	stream, format, err := wav.Decode(file)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrFileNotLoaded, err)
	}
	defer stream.Close()

	out, err := ReadStreamer(stream)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrFileNotLoaded, err)
	}
	if len(out) == 0 {
		return nil, 0, ErrFileNotLoaded
	}
	// beep's wav decoder divides 16-bit samples by 1<<16-1, halving them.
	if format.Precision == 2 {
		for i := range out {
			out[i] *= pcm16Rescale
		}
	}
	return out, int(format.SampleRate), nil
}

// LoadFlac loads the first channel of a flac file and its sample rate.
func LoadFlac(name string) ([]float64, int, error) {
	stream, err := flac.ParseFile(name)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrFileNotLoaded, err)
	}
	defer stream.Close()

	scale := float64(int64(1) << (stream.Info.BitsPerSample - 1))

	var out []float64
	for {
		frame, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrFileNotLoaded, err)
		}
		for _, s := range frame.Subframes[0].Samples {
			out = append(out, float64(s)/scale)
		}
	}
	if len(out) == 0 {
		return nil, 0, ErrFileNotLoaded
	}
	return out, int(stream.Info.SampleRate), nil
}

// Load picks the decoder from the file extension.
func Load(name string) ([]float64, int, error) {
	logrus.WithFields(logrus.Fields{
		"function": "Load",
		"file":     name,
	}).Debug("Loading audio")

	switch strings.ToLower(filepath.Ext(name)) {
	case ".flac":
		return LoadFlac(name)
	case ".wav":
		return LoadWav(name)
	}
	return nil, 0, fmt.Errorf("%w: unsupported file type %q", ErrFileNotLoaded, filepath.Ext(name))
}

// ToPng loads a wav or flac file and saves its spectrogram as a PNG image.
func (a *Analyzer) ToPng(inputFile, outputFile string) error {
	buf, sr, err := Load(inputFile)
	if err != nil {
		return err
	}

	s, err := a.Spectrogram(buf, sr)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"function":    "Analyzer.ToPng",
		"frames":      len(s.Frames),
		"bins":        s.Bins(),
		"sample_rate": sr,
		"mel":         s.Mel,
	}).Debug("Computed spectrogram")

	return s.SavePNG(outputFile)
}
