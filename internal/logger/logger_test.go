package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := JSON(&buf, slog.LevelInfo)
	log.Info("verified", "slices", 9)

	out := buf.String()
	assert.Contains(t, out, `"msg":"verified"`)
	assert.Contains(t, out, `"slices":9`)
	assert.Contains(t, out, `"level":"INFO"`)
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := Text(&buf, slog.LevelWarn)
	log.Info("hidden")
	log.Debug("hidden too")
	assert.Zero(t, buf.Len())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestWithAndGroup(t *testing.T) {
	var buf bytes.Buffer
	log := Text(&buf, slog.LevelInfo).With("fixture", "LogSoftmax").WithGroup("result")
	log.Info("done", "dim", 1)

	out := buf.String()
	assert.Contains(t, out, "fixture=LogSoftmax")
	assert.Contains(t, out, "result.dim=1")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestNewFormat(t *testing.T) {
	var buf bytes.Buffer

	log, err := NewFormat(&buf, "debug", "json")
	require.NoError(t, err)
	log.Debug("x")
	assert.Contains(t, buf.String(), `"level":"DEBUG"`)

	_, err = NewFormat(&buf, "info", "pretty")
	assert.Error(t, err)

	_, err = NewFormat(&buf, "loud", "text")
	assert.Error(t, err)
}

func TestContext(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))

	var buf bytes.Buffer
	log := Text(&buf, slog.LevelInfo)
	ctx := WithContext(context.Background(), log)
	assert.Same(t, log, FromContext(ctx))
}
