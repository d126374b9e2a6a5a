package analyze

import "math"

const (
	melBreakFrequencyHertz = 700.0
	melHighFrequencyQ      = 1127.0
)

// MelToHz converts a mel value to hertz.
func MelToHz(value float64) float64 {
	return melBreakFrequencyHertz * (math.Exp(value/melHighFrequencyQ) - 1.0)
}

// HzToMel converts hertz to the mel scale.
func HzToMel(value float64) float64 {
	return melHighFrequencyQ * math.Log(1.0+(value/melBreakFrequencyHertz))
}

// domel averages linear bins into mels bands evenly spaced on the mel scale
// between fmin and fmax. A band narrower than one bin interpolates between
// its neighbours.
func domel(s *Spectrogram, mels int, fmin, fmax float64) [][]float64 {
	bins := s.Bins()
	binHz := float64(s.SampleRate) / float64(2*bins)
	lo := HzToMel(fmin)
	step := (HzToMel(fmax) - lo) / float64(mels)

	out := make([][]float64, len(s.Frames))
	for f, frame := range s.Frames {
		out[f] = make([]float64, mels)
		for m := 0; m < mels; m++ {
			vallo := MelToHz(lo+step*float64(m)) / binHz
			valhi := MelToHz(lo+step*float64(m+1)) / binHz

			inlo := int(math.Ceil(vallo))
			inhi := int(math.Ceil(valhi))
			if inlo < 0 {
				inlo = 0
			}
			if inhi > bins {
				inhi = bins
			}

			if inlo >= inhi {
				out[f][m] = interpolate(frame, (vallo+valhi)/2)
				continue
			}

			var total float64
			for k := inlo; k < inhi; k++ {
				total += frame[k]
			}
			out[f][m] = total / float64(inhi-inlo)
		}
	}
	return out
}

func interpolate(frame []float64, pos float64) float64 {
	if pos <= 0 {
		return frame[0]
	}
	i, mod := math.Modf(pos)
	k := int(i)
	if k >= len(frame)-1 {
		return frame[len(frame)-1]
	}
	return frame[k]*(1-mod) + frame[k+1]*mod
}
