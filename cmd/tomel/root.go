package main

import (
	"github.com/neurlang/sonograph/config"
	"github.com/neurlang/sonograph/internal/logging"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	output     string
	logLevel   string

	mel        bool
	window     int
	resolution int
}

func newRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "tomel <audio_file>",
		Short:         "Render the spectrogram of a WAV or FLAC file as PNG",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Configuration file path")
	flags.StringVarP(&opts.output, "out", "o", "", "Output PNG file (default <audio_file>.png)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (overrides config)")
	flags.BoolVar(&opts.mel, "mel", false, "Use a mel frequency axis")
	flags.IntVar(&opts.window, "window", 0, "Hop between frames in samples")
	flags.IntVar(&opts.resolution, "resolution", 0, "Frame and FFT length in samples")

	return cmd
}

func run(cmd *cobra.Command, opts *options, input string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("mel") {
		cfg.Analyzer.MelScale = opts.mel
	}
	if flags.Changed("window") {
		cfg.Analyzer.Window = opts.window
	}
	if flags.Changed("resolution") {
		cfg.Analyzer.Resolution = opts.resolution
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
		output = input + ".png"
	}

	return cfg.NewAnalyzer().ToPng(input, output)
}
