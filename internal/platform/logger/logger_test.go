package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "Warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := logger.ParseLevel(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.New(config.ServerConfig{LogLevel: "warn", LogFormat: "json"}, &buf)
	require.NoError(t, err)

	l.Info("dropped")
	l.Warn("kept", "task_id", 42)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "info record should be filtered at warn level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.EqualValues(t, 42, entry["task_id"])
}

func TestNewTextLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.New(config.ServerConfig{LogLevel: "info", LogFormat: "text"}, &buf)
	require.NoError(t, err)

	l.Info("hello", "component", "test")
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "component=test")
}

func TestNewRejectsBadSettings(t *testing.T) {
	_, err := logger.New(config.ServerConfig{LogLevel: "loud"}, &bytes.Buffer{})
	assert.Error(t, err)

	_, err = logger.New(config.ServerConfig{LogLevel: "info", LogFormat: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestContextLogger(t *testing.T) {
	l, buf := logger.NewTestLogger()
	fallback := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	t.Run("no logger in context", func(t *testing.T) {
		assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))
		assert.Same(t, slog.Default(), logger.FromContext(context.Background()))
	})

	t.Run("logger in context", func(t *testing.T) {
		ctx := logger.WithLogger(context.Background(), l.With("trace_id", "abc"))
		logger.FromContextOrDefault(ctx, fallback).Info("from context")

		entries := buf.Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, "abc", entries[0]["trace_id"])
		assert.Equal(t, "from context", entries[0]["msg"])
	})
}
