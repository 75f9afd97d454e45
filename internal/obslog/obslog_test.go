package obslog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limenime/limeass/internal/obslog"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := obslog.ParseLevel(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := obslog.ParseLevel("nonsense")
	assert.ErrorIs(t, err, obslog.ErrUnknownLogLevel)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, f := range obslog.AllFormatStrings() {
		got, err := obslog.ParseFormat(f)
		require.NoError(t, err)
		assert.Equal(t, obslog.Format(f), got)
	}

	_, err := obslog.ParseFormat("yaml")
	assert.ErrorIs(t, err, obslog.ErrUnknownLogFormat)
}

func TestNewHandlerFromStringsWritesJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler, err := obslog.NewHandlerFromStrings(&buf, "info", "json")
	require.NoError(t, err)

	logger := slog.New(handler)
	logger.Info("hello")

	assert.Contains(t, buf.String(), `"msg":"hello"`)
}

func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := obslog.DefaultFlags().NewConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "text", cfg.Format)
}
