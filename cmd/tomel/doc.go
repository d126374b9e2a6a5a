// Command tomel converts audio files (WAV/FLAC) to spectrogram images (PNG).
//
// It is the counterpart of towav: the spectrogram of a towav output shows
// the source image. With --mel the frequency axis uses the mel scale, which
// is commonly used in speech and audio processing applications.
//
// Usage:
//
//	tomel <audio_file> [flags]
//
// The output PNG file will be named <audio_file>.png unless --out is given.
//
// Supported input formats: .wav, .flac
package main
