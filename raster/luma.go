package raster

import "fmt"

// alphaCutoff is the alpha below which a pixel counts as background.
const alphaCutoff = 10

// Luma converts one RGBA pixel to BT.709 luma, truncated. Near-transparent
// pixels are white. Opaque white maps to 254.
func Luma(r, g, b, a uint8) uint8 {
	if a < alphaCutoff {
		return 255
	}
	// explicit conversions keep each product rounded (no fused multiply-add)
	var luma = float64(float64(r) * 0.2126)
	luma += float64(float64(g) * 0.7152)
	luma += float64(float64(b) * 0.0722)
	return uint8(luma)
}

// FromRGBA builds a Raster from a row-major RGBA plane of width*height pixels.
func FromRGBA(data []byte, width, height int) (*Raster, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes leaves a partial pixel", ErrInvalidInputLength, len(data))
	}
	if len(data)/4 != width*height {
		return nil, fmt.Errorf("%w: %d pixels for %dx%d", ErrInvalidDimension, len(data)/4, width, height)
	}

	grayscale := make([]byte, 0, len(data)/4)
	for i := 0; i < len(data); i += 4 {
		grayscale = append(grayscale, Luma(data[i], data[i+1], data[i+2], data[i+3]))
	}

	return &Raster{pix: grayscale, width: width, height: height}, nil
}
