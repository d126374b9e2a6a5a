package raster

import (
	"fmt"
	"image"
)

// Raster is a row-major luma buffer.
type Raster struct {
	pix    []byte
	width  int
	height int
}

// New wraps an existing luma buffer. The buffer is not copied.
func New(pix []byte, width, height int) (*Raster, error) {
	if width < 0 || height < 0 || len(pix) != width*height {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrInvalidDimension, len(pix), width, height)
	}
	return &Raster{pix: pix, width: width, height: height}, nil
}

func (r *Raster) Width() int  { return r.width }
func (r *Raster) Height() int { return r.height }

// Pix returns the underlying luma buffer.
func (r *Raster) Pix() []byte { return r.pix }

// Row returns row i as a slice of the underlying buffer.
func (r *Raster) Row(i int) []byte {
	return r.pix[i*r.width : (i+1)*r.width]
}

// At returns the luma at column x, row y.
func (r *Raster) At(x, y int) byte {
	return r.pix[y*r.width+x]
}

// Clone returns a deep copy.
func (r *Raster) Clone() *Raster {
	pix := make([]byte, len(r.pix))
	copy(pix, r.pix)
	return &Raster{pix: pix, width: r.width, height: r.height}
}

// PadTop prepends n white rows.
func (r *Raster) PadTop(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: cannot pad %d rows", ErrInvalidDimension, n)
	}
	padded := make([]byte, n*r.width, n*r.width+len(r.pix))
	for i := range padded {
		padded[i] = 255
	}
	padded = append(padded, r.pix...)

	r.pix = padded
	r.height += n
	return nil
}

// Invert replaces each luma v with 255-v.
func (r *Raster) Invert() {
	for i, v := range r.pix {
		r.pix[i] = 255 - v
	}
}

// Rotate90 rotates the raster 90 degrees clockwise. Row i of the result is
// column i of the source read from the bottom row up.
func (r *Raster) Rotate90() {
	rotated := make([]byte, 0, len(r.pix))
	for i := 0; i < r.width; i++ {
		for j := r.height - 1; j >= 0; j-- {
			rotated = append(rotated, r.pix[r.width*j+i])
		}
	}
	r.width, r.height = r.height, r.width
	r.pix = rotated
}

// MirrorExtend doubles the width by appending each row reversed.
func (r *Raster) MirrorExtend() {
	reflected := make([]byte, 0, 2*len(r.pix))
	for i := 0; i < r.height; i++ {
		row := r.Row(i)
		reflected = append(reflected, row...)
		for k := len(row) - 1; k >= 0; k-- {
			reflected = append(reflected, row[k])
		}
	}
	r.width *= 2
	r.pix = reflected
}

// RGBA expands each luma to an opaque gray RGBA quadruple.
func (r *Raster) RGBA() []byte {
	rgba := make([]byte, 0, 4*len(r.pix))
	for _, luma := range r.pix {
		rgba = append(rgba, luma, luma, luma, 255)
	}
	return rgba
}

// Image returns the raster as an opaque *image.RGBA for previews.
func (r *Raster) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    r.RGBA(),
		Stride: 4 * r.width,
		Rect:   image.Rect(0, 0, r.width, r.height),
	}
}
