package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/neurlang/sonograph/analyze"
	"github.com/neurlang/sonograph/spectro"
	"github.com/pelletier/go-toml/v2"
)

// Encoder contains image-to-audio settings.
type Encoder struct {
	SampleRate int     `toml:"sample_rate"`
	MaxFreq    float64 `toml:"max_freq"`
	Gain       float64 `toml:"gain"`
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
}

// Analyzer contains spectrogram rendering settings.
type Analyzer struct {
	Window     int     `toml:"window"`
	Resolution int     `toml:"resolution"`
	MelScale   bool    `toml:"mel_scale"`
	Mels       int     `toml:"mels"`
	MelFmin    float64 `toml:"mel_fmin"`
	MelFmax    float64 `toml:"mel_fmax"`
	YReverse   bool    `toml:"y_reverse"`
}

// Logging contains log output settings.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config is the full configuration file.
type Config struct {
	Encoder  Encoder  `toml:"encoder"`
	Analyzer Analyzer `toml:"analyzer"`
	Logging  Logging  `toml:"logging"`
}

// Default returns a Config populated with library defaults.
func Default() Config {
	e := spectro.NewEncoder()
	a := analyze.NewAnalyzer()
	return Config{
		Encoder: Encoder{
			SampleRate: e.SampleRate,
			MaxFreq:    e.MaxFreq,
			Gain:       e.Gain,
		},
		Analyzer: Analyzer{
			Window:     a.Window,
			Resolution: a.Resolut,
			MelScale:   a.Mel,
			Mels:       a.NumMels,
			MelFmin:    a.MelFmin,
			MelFmax:    a.MelFmax,
			YReverse:   a.YReverse,
		},
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path over the defaults. An empty path or a missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		file, err := os.Open(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("open config: %w", err)
		default:
			defer file.Close()
			decoder := toml.NewDecoder(file)
			decoder.DisallowUnknownFields()
			if err := decoder.Decode(&cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NewEncoder builds an Encoder from the [encoder] table.
func (c *Config) NewEncoder() *spectro.Encoder {
	e := spectro.NewEncoder()
	e.SampleRate = c.Encoder.SampleRate
	e.MaxFreq = c.Encoder.MaxFreq
	e.Gain = c.Encoder.Gain
	e.Width = c.Encoder.Width
	e.Height = c.Encoder.Height
	return e
}

// NewAnalyzer builds an Analyzer from the [analyzer] table.
func (c *Config) NewAnalyzer() *analyze.Analyzer {
	a := analyze.NewAnalyzer()
	a.Window = c.Analyzer.Window
	a.Resolut = c.Analyzer.Resolution
	a.Mel = c.Analyzer.MelScale
	a.NumMels = c.Analyzer.Mels
	a.MelFmin = c.Analyzer.MelFmin
	a.MelFmax = c.Analyzer.MelFmax
	a.YReverse = c.Analyzer.YReverse
	return a
}
