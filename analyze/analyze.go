package analyze

import "errors"
import "fmt"
import "math"
import "math/cmplx"
import "github.com/r9y9/gossp/stft"

// Analyzer represents the configuration for computing spectrograms.
type Analyzer struct {
	// Window is the hop between frames, Resolut the frame and FFT length.
	Window  int
	Resolut int

	Mel      bool
	NumMels  int
	MelFmin  float64
	MelFmax  float64
	YReverse bool
}

// NewAnalyzer creates a new Analyzer instance with default values.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		Window:   256,
		Resolut:  2048,
		NumMels:  160,
		MelFmin:  0,
		MelFmax:  8000,
		YReverse: true,
	}
}

var (
	ErrFileNotLoaded = errors.New("audio not loaded")
	ErrInvalidConfig = errors.New("invalid analyzer configuration")
)

// Spectrogram holds per-frame magnitudes.
type Spectrogram struct {
	Frames     [][]float64
	SampleRate int
	FrameShift int
	Mel        bool
	YReverse   bool
}

// Bins is the number of values per frame.
func (s *Spectrogram) Bins() int {
	if len(s.Frames) == 0 {
		return 0
	}
	return len(s.Frames[0])
}

// BinFreq is the centre frequency of linear bin i.
func (s *Spectrogram) BinFreq(i int) float64 {
	return float64(i) * float64(s.SampleRate) / float64(2*s.Bins())
}

// PeakBin returns the index of the strongest bin in frame f, or -1 if the
// frame has no bins.
func (s *Spectrogram) PeakBin(f int) int {
	if len(s.Frames[f]) == 0 {
		return -1
	}
	var best int
	for i, v := range s.Frames[f] {
		if v > s.Frames[f][best] {
			best = i
		}
	}
	return best
}

// Spectrogram computes the magnitude spectrogram of a mono signal.
func (a *Analyzer) Spectrogram(buf []float64, sampleRate int) (*Spectrogram, error) {
	if len(buf) == 0 {
		return nil, ErrFileNotLoaded
	}
	if a.Window <= 0 || a.Resolut < a.Window || a.Resolut < 2 || sampleRate <= 0 {
		return nil, fmt.Errorf("%w: window %d, resolution %d, sample rate %d",
			ErrInvalidConfig, a.Window, a.Resolut, sampleRate)
	}
	if a.Mel && (a.NumMels <= 0 || a.MelFmin < 0 || a.MelFmax <= a.MelFmin) {
		return nil, fmt.Errorf("%w: %d mels over %g..%g Hz",
			ErrInvalidConfig, a.NumMels, a.MelFmin, a.MelFmax)
	}

	buf = pad(buf, a.Resolut, a.Window)

	spectrum := stft.New(a.Window, a.Resolut).STFT(buf)

	frames := make([][]float64, len(spectrum))
	for i := range spectrum {
		frames[i] = make([]float64, a.Resolut/2)
		for j := range frames[i] {
			frames[i][j] = cmplx.Abs(spectrum[i][j])
		}
	}

	s := &Spectrogram{
		Frames:     frames,
		SampleRate: sampleRate,
		FrameShift: a.Window,
		YReverse:   a.YReverse,
	}
	if a.Mel {
		s.Frames = domel(s, a.NumMels, a.MelFmin, a.MelFmax)
		spectral_normalize(s.Frames)
		s.Mel = true
	}
	return s, nil
}

// pad appends zeros so the signal covers at least one frame and ends on a frame boundary.
func pad(buf []float64, frame, shift int) []float64 {
	n := frame
	if len(buf) > frame {
		n = frame + (len(buf)-frame+shift-1)/shift*shift
	}
	if n == len(buf) {
		return buf
	}
	padded := make([]float64, n)
	copy(padded, buf)
	return padded
}

func spectral_normalize(frames [][]float64) {
	for _, frame := range frames {
		for i, v := range frame {
			if v < 1e-5 {
				v = 1e-5
			}
			frame[i] = math.Log(v)
		}
	}
}
