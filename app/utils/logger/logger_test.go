package logger

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{"debug level", "debug", false},
		{"info level", "info", false},
		{"warn level", "warn", false},
		{"warning alias", "warning", false},
		{"error level", "error", false},
		{"uppercase level", "INFO", false},
		{"invalid level", "verbose", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.level)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, logger)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, logger)
			}
		})
	}
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	logger.Info("hello", "key", "value")

	output := buf.String()
	assert.Contains(t, output, "hello")
	assert.Contains(t, output, "user-sync-service")
	assert.Contains(t, output, "value")
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewWithWriter("warn", &buf)
	require.NoError(t, err)

	logger.Info("should be filtered")
	logger.Warn("should appear")

	output := buf.String()
	assert.NotContains(t, output, "should be filtered")
	assert.Contains(t, output, "should appear")
}

func TestWithHelpers(t *testing.T) {
	var buf bytes.Buffer
	base, err := NewWithWriter("debug", &buf)
	require.NoError(t, err)

	WithComponent(base, "saga").Info("component log")
	assert.Contains(t, buf.String(), "saga")

	buf.Reset()
	WithOperation(base, "op-42").Info("operation log")
	assert.Contains(t, buf.String(), "op-42")

	buf.Reset()
	SagaLogger(base).Info("saga log")
	assert.Contains(t, buf.String(), "saga")
}

func TestLogDuration(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	LogDuration(logger, time.Now().Add(-50*time.Millisecond), "create_user", "operation_id", "op-1")

	output := buf.String()
	assert.Contains(t, output, "create_user")
	assert.Contains(t, output, "duration_ms")
	assert.Contains(t, output, "op-1")
}

func TestParseLogLevel(t *testing.T) {
	level, err := parseLogLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	_, err = parseLogLevel("nope")
	assert.Error(t, err)
}
