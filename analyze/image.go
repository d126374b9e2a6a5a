package analyze

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/x448/float16"
)

// Image draws the spectrogram with time on x and frequency on y, min-max
// normalized to 8-bit gray.
func (s *Spectrogram) Image() *image.Gray {
	bins := s.Bins()
	img := image.NewGray(image.Rect(0, 0, len(s.Frames), bins))

	var lo, hi = s.bounds()
	for x, frame := range s.Frames {
		for y, w := range frame {
			var val float64
			if hi > lo {
				val = (w - lo) / (hi - lo)
			}
			col := color.Gray{Y: uint8(int(255 * val))}
			if s.YReverse {
				img.SetGray(x, bins-y-1, col)
			} else {
				img.SetGray(x, y, col)
			}
		}
	}
	return img
}

func (s *Spectrogram) bounds() (lo, hi float64) {
	first := true
	for _, frame := range s.Frames {
		for _, w := range frame {
			if first || w < lo {
				lo = w
			}
			if first || w > hi {
				hi = w
			}
			first = false
		}
	}
	return lo, hi
}

// WritePNG encodes Image() as PNG.
func (s *Spectrogram) WritePNG(w io.Writer) error {
	return png.Encode(w, s.Image())
}

// SavePNG writes the spectrogram image to a file.
func (s *Spectrogram) SavePNG(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	if err := s.WritePNG(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Half returns the magnitudes frame by frame as float16 bit patterns.
func (s *Spectrogram) Half() []uint16 {
	out := make([]uint16, 0, len(s.Frames)*s.Bins())
	for _, frame := range s.Frames {
		for _, w := range frame {
			out = append(out, float16.Fromfloat32(float32(w)).Bits())
		}
	}
	return out
}
