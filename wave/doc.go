// Package wave holds synthesized mono audio and turns it into PCM.
//
// A Buffer is filled block by block, then de-biased and peak normalized once.
// PCM16 and EncodePCM16 quantize with truncation and no clamping, so a gain
// above 1.0 may produce wraparound artifacts. Streamer exposes the samples as
// a beep.StreamSeeker for playback or analysis without touching disk.
package wave
