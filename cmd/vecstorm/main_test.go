package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecstorm/internal/config"
)

func TestRun_ShouldExit(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &out, []string{"-h"}, map[string]string{}))
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_BadFlag(t *testing.T) {
	err := run(context.Background(), &bytes.Buffer{}, []string{"-batch", "0"}, map[string]string{})
	var exitErr *config.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.Code)
}

func TestRun_Environment(t *testing.T) {
	var out bytes.Buffer
	environ := map[string]string{
		"VECSTORM_BUILTIN": "grid",
		"VECSTORM_BATCH":   "16",
		"VECSTORM_STEPS":   "30",
		"VECSTORM_CHART":   filepath.Join(t.TempDir(), "grid.html"),
	}
	require.NoError(t, run(context.Background(), &out, nil, environ))
	require.Contains(t, out.String(), "model:       grid")
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := run(ctx, &bytes.Buffer{}, []string{"-builtin", "chain"}, map[string]string{})
	require.ErrorIs(t, err, context.Canceled)
}
