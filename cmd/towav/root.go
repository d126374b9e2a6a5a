package main

import (
	"github.com/neurlang/sonograph/config"
	"github.com/neurlang/sonograph/internal/logging"
	"github.com/neurlang/sonograph/picture"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	output     string
	preview    string
	logLevel   string

	sampleRate int
	maxFreq    float64
	gain       float64
	width      int
	height     int
}

func newRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "towav <image_file>",
		Short:         "Encode an image as audio that draws it on a spectrogram",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Configuration file path")
	flags.StringVarP(&opts.output, "out", "o", "", "Output WAV file (default <image_file>.wav)")
	flags.StringVar(&opts.preview, "preview", "", "Write the prepared raster as a PNG")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (overrides config)")
	flags.IntVar(&opts.sampleRate, "sample-rate", 0, "Output sample rate in Hz")
	flags.Float64Var(&opts.maxFreq, "max-freq", 0, "Frequency at the top of the image in Hz")
	flags.Float64Var(&opts.gain, "gain", 0, "PCM gain; above 1 wraps around")
	flags.IntVar(&opts.width, "width", 0, "Resample the image to this width")
	flags.IntVar(&opts.height, "height", 0, "Resample the image to this height")

	return cmd
}

func run(cmd *cobra.Command, opts *options, input string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("sample-rate") {
		cfg.Encoder.SampleRate = opts.sampleRate
	}
	if flags.Changed("max-freq") {
		cfg.Encoder.MaxFreq = opts.maxFreq
	}
	if flags.Changed("gain") {
		cfg.Encoder.Gain = opts.gain
	}
	if flags.Changed("width") {
		cfg.Encoder.Width = opts.width
	}
	if flags.Changed("height") {
		cfg.Encoder.Height = opts.height
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := logging.Setup(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format); err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = input + ".wav"
	}

	e := cfg.NewEncoder()

	img, err := picture.Load(input, e.Width, e.Height)
	if err != nil {
		return err
	}

	if opts.preview != "" {
		b := img.Bounds()
		r, _, err := e.Prepare(img.Pix, b.Dx(), b.Dy())
		if err != nil {
			return err
		}
		if err := picture.SavePNG(opts.preview, r.Image()); err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"function": "run",
			"preview":  opts.preview,
			"rows":     r.Height(),
			"width":    r.Width(),
		}).Info("Wrote raster preview")
	}

	return e.WriteWav(img, output)
}
