package raster

import "errors"

var (
	// ErrInvalidInputLength is returned when the RGBA plane ends in a partial pixel.
	ErrInvalidInputLength = errors.New("invalid rgba input length")

	// ErrInvalidDimension is returned for negative sizes or a pixel count that
	// does not match width*height.
	ErrInvalidDimension = errors.New("invalid dimension")
)
