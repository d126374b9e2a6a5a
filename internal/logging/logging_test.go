package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreLogger puts the standard logger back as it was once t finishes.
func restoreLogger(t *testing.T) {
	t.Helper()
	logger := logrus.StandardLogger()
	out, formatter, level := logger.Out, logger.Formatter, logger.GetLevel()
	t.Cleanup(func() {
		logger.SetOutput(out)
		logger.SetFormatter(formatter)
		logger.SetLevel(level)
	})
}

func TestSetupJSON(t *testing.T) {
	restoreLogger(t)

	var buf bytes.Buffer
	require.NoError(t, Setup(&buf, "debug", "json"))

	logrus.WithFields(logrus.Fields{"function": "TestSetupJSON"}).Debug("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "TestSetupJSON", entry["function"])
	assert.Equal(t, "debug", entry["level"])
}

func TestSetupLevelFilters(t *testing.T) {
	restoreLogger(t)

	var buf bytes.Buffer
	require.NoError(t, Setup(&buf, "warn", "text"))

	logrus.Info("quiet")
	assert.Empty(t, buf.String())

	logrus.Warn("loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestSetupErrors(t *testing.T) {
	restoreLogger(t)

	var buf bytes.Buffer
	assert.Error(t, Setup(&buf, "chatty", "text"))
	assert.Error(t, Setup(&buf, "info", "xml"))
}

func TestSetupLeavesNoTrace(t *testing.T) {
	logger := logrus.StandardLogger()
	out, formatter, level := logger.Out, logger.Formatter, logger.GetLevel()

	t.Run("setup", func(t *testing.T) {
		restoreLogger(t)
		var buf bytes.Buffer
		require.NoError(t, Setup(&buf, "trace", "json"))
		assert.Same(t, &buf, logger.Out)
	})

	assert.Equal(t, out, logger.Out)
	assert.Equal(t, formatter, logger.Formatter)
	assert.Equal(t, level, logger.GetLevel())
}
