package config

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateEncoder(); err != nil {
		return err
	}
	if err := c.validateAnalyzer(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateEncoder() error {
	e := c.Encoder
	if e.SampleRate <= 0 {
		return errors.New("encoder.sample_rate must be positive")
	}
	if e.MaxFreq <= 0 {
		return errors.New("encoder.max_freq must be positive")
	}
	if float64(e.SampleRate) < 2*e.MaxFreq {
		return fmt.Errorf("encoder.sample_rate %d must be at least twice encoder.max_freq %v", e.SampleRate, e.MaxFreq)
	}
	if e.Gain <= 0 {
		return errors.New("encoder.gain must be positive")
	}
	if e.Width < 0 || e.Height < 0 {
		return errors.New("encoder.width and encoder.height must not be negative")
	}
	return nil
}

func (c *Config) validateAnalyzer() error {
	a := c.Analyzer
	if a.Window <= 0 {
		return errors.New("analyzer.window must be positive")
	}
	if a.Resolution < a.Window {
		return errors.New("analyzer.resolution must be at least analyzer.window")
	}
	if a.Resolution < 2 {
		return errors.New("analyzer.resolution must be at least 2")
	}
	if a.Mels <= 0 {
		return errors.New("analyzer.mels must be positive")
	}
	if a.MelFmin < 0 || a.MelFmax <= a.MelFmin {
		return errors.New("analyzer.mel_fmax must be greater than analyzer.mel_fmin, which must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch c.Logging.Format {
	case "text", "json":
		return nil
	}
	return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
}
