// Package raster provides the single-channel luma buffer the encoder works on.
//
// A Raster is built once from a decoded RGBA plane and then reshaped in place
// before synthesis:
//   - PadTop adds white rows above the image (silence above the picture)
//   - Invert flips luma so dark pixels carry the signal
//   - Rotate90 turns image columns into rows of frequency data
//   - MirrorExtend appends each row reversed, giving an even-symmetric spectrum
//
// Every operation keeps len(Pix()) == Width()*Height().
package raster
