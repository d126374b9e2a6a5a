package synth

import "fmt"
import "github.com/mjibson/go-dsp/fft"
import "github.com/neurlang/sonograph/raster"
import "github.com/neurlang/sonograph/wave"

// Synthesizer runs a fixed-size transform over raster rows.
type Synthesizer struct {
	size int
}

// New creates a Synthesizer whose transform length is size.
func New(size int) (*Synthesizer, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: transform length %d", raster.ErrInvalidDimension, size)
	}
	return &Synthesizer{size: size}, nil
}

// Size is the transform length.
func (s *Synthesizer) Size() int { return s.size }

// Row synthesizes one block of samples from a row of exactly Size() values.
func (s *Synthesizer) Row(row []byte) ([]float64, error) {
	if len(row) != s.size {
		return nil, fmt.Errorf("%w: row of %d for transform length %d", raster.ErrInvalidDimension, len(row), s.size)
	}
	if s.size == 0 {
		return []float64{}, nil
	}

	spectrum := make([]complex128, s.size)
	for i, v := range row {
		spectrum[i] = complex(float64(v), 0)
	}

	coeffs := fft.FFT(spectrum)

	block := make([]float64, s.size)
	for i, c := range coeffs {
		block[i] = real(c)
	}
	return block, nil
}

// Synthesize appends one block per raster row to dst, in row order.
func (s *Synthesizer) Synthesize(r *raster.Raster, dst *wave.Buffer) error {
	if r.Width() != s.size {
		return fmt.Errorf("%w: raster width %d for transform length %d", raster.ErrInvalidDimension, r.Width(), s.size)
	}

	dst.Grow(r.Width() * r.Height())
	for y := 0; y < r.Height(); y++ {
		block, err := s.Row(r.Row(y))
		if err != nil {
			return fmt.Errorf("row %d: %w", y, err)
		}
		dst.Append(block...)
	}
	return nil
}
