package wave

import (
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	BitDepth = 16
	Channels = 1

	// pcmFormat is the WAVE format tag for integer PCM.
	pcmFormat = 1

	fullScale = 32767
)

// Quantize converts one sample to 16-bit PCM as int16(trunc(gain*s*32767)).
// Values outside the int16 range wrap around instead of being clamped.
func Quantize(s, gain float64) int16 {
	return int16(int64(math.Trunc(gain * s * fullScale)))
}

// PCM16 quantizes every sample with Quantize.
func (b *Buffer) PCM16(gain float64) []int16 {
	out := make([]int16, len(b.samples))
	for i, s := range b.samples {
		out[i] = Quantize(s, gain)
	}
	return out
}

// EncodePCM16 writes the buffer as a mono 16-bit little-endian WAV file.
func (b *Buffer) EncodePCM16(w io.WriteSeeker, gain float64) error {
	pcm := b.PCM16(gain)

	data := make([]int, len(pcm))
	for i, s := range pcm {
		data[i] = int(s)
	}

	enc := wav.NewEncoder(w, b.sampleRate, BitDepth, Channels, pcmFormat)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: Channels,
			SampleRate:  b.sampleRate,
		},
		Data:           data,
		SourceBitDepth: BitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("write pcm: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize wav: %w", err)
	}
	return nil
}
