package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shipwright/internal/config"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("info"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLogLevel("error"))
	assert.Equal(t, slog.LevelDebug, parseLogLevel("loud"))
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, config.LoggingConfig{Level: "info", Format: "json"})
	l.Debug("hidden")
	l.Info("ship generated", "rooms", 26)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "ship generated", rec["msg"])
	assert.EqualValues(t, 26, rec["rooms"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, config.LoggingConfig{Level: "warn", Format: "text"})
	l.Info("hidden")
	l.Warn("room floor not met")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=\"room floor not met\"")
}

func TestInit_RequiresConfig(t *testing.T) {
	saved := config.GlobalConfig
	t.Cleanup(func() { config.GlobalConfig = saved })

	config.GlobalConfig = nil
	assert.Panics(t, Init)

	defer slog.SetDefault(slog.Default())
	config.GlobalConfig = &config.Config{Logging: config.LoggingConfig{Level: "error", Format: "text"}}
	assert.NotPanics(t, Init)
}
