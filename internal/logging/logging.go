// Package logging configures the logrus standard logger for the commands.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Setup sets the level and formatter of the standard logger and directs it to w.
func Setup(w io.Writer, level, format string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	switch format {
	case "", "text":
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	logrus.SetOutput(w)
	logrus.SetLevel(lvl)
	return nil
}
