package wave

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantize(t *testing.T) {
	tests := []struct {
		name   string
		sample float64
		gain   float64
		want   int16
	}{
		{"silence", 0, 1, 0},
		{"full_scale", 1, 1, 32767},
		{"negative_full_scale", -1, 1, -32767},
		{"truncates_positive", 0.5, 1, 16383},
		{"truncates_negative", -0.5, 1, -16383},
		{"gain_scales", 0.25, 2, 16383},
		{"overdrive_wraps", 1.5, 1, -16386},
		{"negative_overdrive_wraps", -1, 1.5, 16386},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Quantize(tt.sample, tt.gain))
		})
	}
}

func TestPCM16(t *testing.T) {
	b := newBuffer(t, 16000, 0, 1, -1, 0.5)
	assert.Equal(t, []int16{0, 16383, -16383, 8191}, b.PCM16(0.5))
}

func TestEncodePCM16RoundTrip(t *testing.T) {
	b := newBuffer(t, 22050, 0, 1, -1, 0.5, -0.25, 0.999)

	path := filepath.Join(t.TempDir(), "out.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, b.EncodePCM16(f, 1))
	require.NoError(t, f.Close())

	in, err := os.Open(path)
	require.NoError(t, err)
	defer in.Close()

	dec := wav.NewDecoder(in)
	require.True(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)

	assert.Equal(t, uint32(22050), dec.SampleRate)
	assert.Equal(t, uint16(16), dec.BitDepth)
	assert.Equal(t, uint16(1), dec.NumChans)

	want := make([]int, 0, b.Len())
	for _, s := range b.PCM16(1) {
		want = append(want, int(s))
	}
	assert.Equal(t, want, buf.Data)
}
