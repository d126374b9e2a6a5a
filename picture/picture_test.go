package picture

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checker(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
			} else {
				img.SetNRGBA(x, y, color.NRGBA{R: 10, G: 20, B: 30, A: 0})
			}
		}
	}
	return img
}

func TestRGBAKeepsStraightAlpha(t *testing.T) {
	src := image.NewRGBA(image.Rect(2, 3, 4, 4))
	src.SetRGBA(2, 3, color.RGBA{R: 100, G: 50, B: 0, A: 255})
	src.SetRGBA(3, 3, color.RGBA{A: 0})

	out := RGBA(src)

	assert.Equal(t, image.Rect(0, 0, 2, 1), out.Rect)
	assert.Equal(t, []byte{100, 50, 0, 255, 0, 0, 0, 0}, out.Pix)
}

func TestRGBAPassesThroughPackedNRGBA(t *testing.T) {
	src := checker(3, 2)
	assert.Same(t, src, RGBA(src))
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checker.png")
	src := checker(4, 3)
	require.NoError(t, SavePNG(path, src))

	img, err := Load(path, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, src.Rect, img.Rect)
	assert.Equal(t, src.Pix, img.Pix)
}

func TestLoadResamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checker.png")
	require.NoError(t, SavePNG(path, checker(8, 8)))

	img, err := Load(path, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())
	assert.Len(t, img.Pix, 4*2*4)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.png"), 0, 0)
	assert.Error(t, err)
}
