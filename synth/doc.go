// Package synth turns rows of luma into blocks of audio samples.
//
// Each row of a prepared raster is read as a zero-phase spectral magnitude
// profile. A forward FFT of the row's full length produces one block of
// time-domain samples, of which the real part is kept. Blocks are
// concatenated in row order with no windowing or overlap.
package synth
