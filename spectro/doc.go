// Package spectro encodes images as sound whose spectrogram shows the image.
//
// ImageToAudio runs the whole pipeline on a decoded RGBA plane:
//   - luma conversion and top padding, so the image spans 0..maxFreq
//   - inversion, rotation and mirror extension of the raster
//   - one FFT block per image column, concatenated into mono audio
//   - DC bias removal and peak normalization
//
// The Encoder type bundles the parameters and adds file helpers. With the
// default MaxFreq of 8000 Hz the image fills the display range most
// spectrogram viewers open with.
package spectro
