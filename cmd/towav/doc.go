// Command towav converts images (PNG/JPEG) to audio files (WAV) whose
// spectrogram shows the image.
//
// Dark pixels become loud frequencies. Image columns play left to right,
// the bottom row is the lowest frequency and the top row reaches max-freq.
//
// Usage:
//
//	towav <image_file> [flags]
//
// The output WAV file will be named <image_file>.wav unless --out is given.
// --preview writes the raster fed to the synthesizer as a PNG.
package main
