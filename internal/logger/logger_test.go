package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultsToWarnText(t *testing.T) {
	var out bytes.Buffer
	logger := New(Options{}, &out)

	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "msg=shown")
	assert.Contains(t, out.String(), "k=v")
}

func TestNewJSONFormat(t *testing.T) {
	var out bytes.Buffer
	logger := New(Options{Level: "debug", Format: "json"}, &out)

	logger.Debug("hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "DEBUG", record["level"])
}

func TestNewFallsBackOnInvalidOptions(t *testing.T) {
	tests := []struct {
		name    string
		options Options
		want    string
	}{
		{name: "level", options: Options{Level: "loud"}, want: "could not parse logger level"},
		{name: "format", options: Options{Format: "xml"}, want: "could not parse logger format"},
		{name: "file", options: Options{File: filepath.Join("missing-dir", "nested", "cb.log")}, want: "could not open logger file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			New(tt.options, &out)
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cb.log")
	logger := New(Options{Level: "info", File: path}, &bytes.Buffer{})

	logger.Info("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}
