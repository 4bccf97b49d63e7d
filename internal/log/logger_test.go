package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gateway/config"

	"github.com/stretchr/testify/require"
)

func TestNewLogger_SplitsStreams(t *testing.T) {
	var stdout, stderr bytes.Buffer
	conf := &config.Configuration{App: config.App{Name: "gateway", Version: "1.0.0"}, Log: config.Log{Level: "info"}}

	logger, err := newLogger(conf, &stdout, &stderr)
	require.NoError(t, err)

	logger.Info("hello")
	logger.Warn("careful")
	require.NoError(t, logger.Sync())

	require.Contains(t, stdout.String(), `"message":"hello"`)
	require.NotContains(t, stdout.String(), "careful")
	require.Contains(t, stderr.String(), `"message":"careful"`)

	lines := strings.Split(strings.TrimSpace(stderr.String()), "\n")
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	require.Equal(t, "warn", entry["level"])
	require.Equal(t, "gateway", entry["service"])
	require.Contains(t, entry, "ts")
}

func TestNewLogger_LevelThreshold(t *testing.T) {
	var stdout, stderr bytes.Buffer
	conf := &config.Configuration{Log: config.Log{Level: "WARN"}}

	logger, err := newLogger(conf, &stdout, &stderr)
	require.NoError(t, err)

	logger.Info("dropped")
	require.NoError(t, logger.Sync())
	require.NotContains(t, stdout.String(), "dropped")
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := newLogger(&config.Configuration{Log: config.Log{Level: "loud"}}, &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
}
