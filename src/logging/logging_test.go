package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{"INFO", LogLevelInfo},
		{"warning", LogLevelWarn},
		{"Warn", LogLevelWarn},
		{"error", LogLevelError},
		{"none", LogLevelOff},
		{" off ", LogLevelOff},
		{"garbage", LogLevelInfo},
		{"", LogLevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, ParseLogLevel(tt.input))
		})
	}
}

func TestLogLevelString(t *testing.T) {
	require.Equal(t, "DEBUG", LogLevelDebug.String())
	require.Equal(t, "OFF", LogLevelOff.String())
	require.Equal(t, "UNKNOWN", LogLevel(42).String())
}

func TestConsoleLoggerFiltersByLevel(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger := NewConsoleLoggerWithOutput(LogLevelInfo, &stdout, &stderr)
	logger.SetTimeFormat("")

	logger.Debug("debug message")
	logger.Info("info message", "key", "circle")
	logger.Warn("warn message")
	logger.Error("error message")

	require.NotContains(t, stdout.String(), "debug message")
	require.Contains(t, stdout.String(), "INFO [gopher-shapes] info message | key=circle")
	require.Contains(t, stderr.String(), "warn message")
	require.Contains(t, stderr.String(), "error message")

	require.False(t, logger.IsDebugEnabled())
	require.True(t, logger.IsInfoEnabled())

	logger.SetLevel(LogLevelDebug)
	logger.Debug("now visible")
	require.Contains(t, stdout.String(), "now visible")
}

func TestConsoleLoggerTimestamp(t *testing.T) {
	var stdout bytes.Buffer
	logger := NewConsoleLoggerWithOutput(LogLevelInfo, &stdout, &stdout)
	logger.SetTimeFormat("2006")

	logger.Info("stamped")
	require.True(t, strings.HasPrefix(stdout.String(), "["), "expected timestamp prefix, got %q", stdout.String())
}

func TestFormatKeyValues(t *testing.T) {
	require.Equal(t, "", FormatKeyValues(nil))
	require.Equal(t, "a=1 b=two", FormatKeyValues([]interface{}{"a", 1, "b", "two"}))
	require.Equal(t, "a=1", FormatKeyValues([]interface{}{"a", 1, "dangling"}))
}

func TestOrNoOp(t *testing.T) {
	l := OrNoOp(nil)
	require.IsType(t, &NoOpLogger{}, l)
	require.False(t, l.IsDebugEnabled())

	console := NewConsoleLogger(LogLevelOff)
	require.Same(t, console, OrNoOp(console))
}
