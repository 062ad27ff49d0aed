package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crate/internal/adapters/logger"
)

func newTestHandler(t *testing.T, level slog.Level) (*logger.PrettyHandler, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	h := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: level})
	return h, buf
}

func TestPrettyHandler_Enabled(t *testing.T) {
	h, _ := newTestHandler(t, slog.LevelInfo)

	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestPrettyHandler_Attrs(t *testing.T) {
	h, buf := newTestHandler(t, slog.LevelInfo)
	lg := slog.New(h)

	lg.Info("resolving", "collection", "abc123", "seeds", 4)
	assert.Equal(t, "resolving collection=abc123 seeds=4\n", buf.String())
}

func TestPrettyHandler_WithAttrsAndGroup(t *testing.T) {
	h, buf := newTestHandler(t, slog.LevelInfo)
	lg := slog.New(h).WithGroup("bundle").With("name", "winter-pack")

	lg.Info("assembled")
	assert.Equal(t, "assembled bundle.name=winter-pack\n", buf.String())
}

func TestPrettyHandler_LevelPrefixes(t *testing.T) {
	h, buf := newTestHandler(t, slog.LevelDebug)
	lg := slog.New(h)

	lg.Warn("disk almost full")
	require.Equal(t, "! disk almost full\n", buf.String())

	buf.Reset()
	lg.Error("write failed")
	require.Equal(t, "✗ write failed\n", buf.String())

	buf.Reset()
	lg.Debug("verbose detail")
	require.Equal(t, "verbose detail\n", buf.String())
}
