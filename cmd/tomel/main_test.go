package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/neurlang/sonograph/picture"
	"github.com/neurlang/sonograph/wave"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTone(t *testing.T, dir string) string {
	t.Helper()
	b, err := wave.New(8000)
	require.NoError(t, err)
	for i := 0; i < 4096; i++ {
		b.Append(0.5 * math.Sin(2*math.Pi*1000*float64(i)/8000))
	}

	path := filepath.Join(dir, "tone.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, b.EncodePCM16(f, 1))
	require.NoError(t, f.Close())
	return path
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	logger := logrus.StandardLogger()
	logOut, formatter, level := logger.Out, logger.Formatter, logger.GetLevel()
	t.Cleanup(func() {
		logger.SetOutput(logOut)
		logger.SetFormatter(formatter)
		logger.SetLevel(level)
	})

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestRenderLinear(t *testing.T) {
	dir := t.TempDir()
	input := writeTone(t, dir)

	require.NoError(t, execute(t, input, "--window", "128", "--resolution", "512"))

	img, err := picture.Load(input+".png", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestRenderMel(t *testing.T) {
	dir := t.TempDir()
	input := writeTone(t, dir)
	output := filepath.Join(dir, "mel.png")

	cfg := filepath.Join(dir, "sonograph.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[analyzer]\nmels = 64\nmel_fmax = 4000.0\n"), 0o644))

	require.NoError(t, execute(t, input, "-c", cfg, "--mel", "-o", output))

	img, err := picture.Load(output, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dy())
}

func TestRenderRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, execute(t, filepath.Join(dir, "missing.wav")))
	assert.Error(t, execute(t, writeTone(t, dir), "--window", "1024", "--resolution", "512"))
}
