package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogrusLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLogrusLogger(LogrusConfig{
		EnableConsole: true,
		Level:         logrus.InfoLevel,
		Console:       &buf,
	})
	require.NoError(t, err)

	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	l.Warn("warned")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown 2")
	assert.Contains(t, buf.String(), "warned")
}

func TestLogrusLogger_Structured(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLogrusLogger(LogrusConfig{
		EnableConsole: true,
		Structured:    true,
		Level:         logrus.DebugLevel,
		Console:       &buf,
	})
	require.NoError(t, err)

	l.Debugf("comparing %q", "1.0")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, `comparing "1.0"`, entry["msg"])
	assert.Equal(t, "debug", entry["level"])
}

func TestLogrusLogger_File(t *testing.T) {
	location := filepath.Join(t.TempDir(), "app.log")
	l, err := NewLogrusLogger(LogrusConfig{
		EnableFile:   true,
		Level:        logrus.ErrorLevel,
		FileLocation: location,
	})
	require.NoError(t, err)

	l.Error("to the file")

	contents, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "to the file")
}

func TestLogrusLogger_BadFile(t *testing.T) {
	_, err := NewLogrusLogger(LogrusConfig{
		EnableFile:   true,
		FileLocation: filepath.Join(t.TempDir(), "missing", "dir", "app.log"),
	})
	assert.Error(t, err)
}

func TestLogrusLogger_Disabled(t *testing.T) {
	l, err := NewLogrusLogger(LogrusConfig{Level: logrus.TraceLevel})
	require.NoError(t, err)
	assert.NotNil(t, l.Output)
	l.Error("nowhere")
}
