// Package analyze renders audio as a spectrogram image.
//
// It is the viewer side of the encoder: audio from WAV or FLAC files, or
// from any beep.Streamer such as an in-memory wave.Buffer, is run through a
// short-time Fourier transform and drawn as a grayscale PNG. It supports:
//   - linear frequency bins, or re-binning onto a mel scale
//   - min-max normalized 8-bit images with low frequencies at the bottom
//   - exporting magnitudes as IEEE half-precision bits
package analyze
