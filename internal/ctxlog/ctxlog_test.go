package ctxlog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecstorm/internal/ctxlog"
)

func TestFromContext_Fallback(t *testing.T) {
	require.Same(t, slog.Default(), ctxlog.FromContext(context.Background()))
}

func TestWithLogger_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := ctxlog.New("debug", "json", &buf)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	ctxlog.FromContext(ctx).Debug("hello", "lanes", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "hello", rec["msg"])
	require.Equal(t, "DEBUG", rec["level"])
	require.EqualValues(t, 3, rec["lanes"])
}

func TestNew_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := ctxlog.New("warn", "text", &buf)
	logger.Info("dropped")
	require.Empty(t, buf.String())
	logger.Warn("kept")
	require.Contains(t, buf.String(), "msg=kept")
}
