package config_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecstorm/internal/config"
)

func TestParse_Defaults(t *testing.T) {
	cfg, exit, err := config.Parse(nil, &bytes.Buffer{}, map[string]string{})
	require.NoError(t, err)
	require.False(t, exit)
	require.Equal(t, "grid", cfg.Builtin)
	require.Equal(t, 64, cfg.Batch)
	require.Equal(t, 200, cfg.Steps)
	require.Equal(t, uint64(1), cfg.Seed)
	require.Equal(t, 1, cfg.Workers)
	require.Equal(t, "uniform", cfg.Policy)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "text", cfg.LogFormat)
	require.Empty(t, cfg.Vars)
}

func TestParse_EnvThenFlags(t *testing.T) {
	environ := map[string]string{
		"VECSTORM_BATCH":      "8",
		"VECSTORM_SEED":       "99",
		"VECSTORM_VARS":       "slip=0.2,size=4",
		"VECSTORM_LOG_FORMAT": "JSON",
	}
	cfg, _, err := config.Parse([]string{"-batch", "16", "-var", "size=5", "model.hcl"}, &bytes.Buffer{}, environ)
	require.NoError(t, err)
	require.Equal(t, 16, cfg.Batch, "flag wins over env")
	require.Equal(t, uint64(99), cfg.Seed)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, "model.hcl", cfg.ModelPath)
	require.Equal(t, map[string]string{"slip": "0.2", "size": "5"}, cfg.Vars)
}

func TestParse_Help(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := config.Parse([]string{"-h"}, &out, map[string]string{})
	require.NoError(t, err)
	require.True(t, exit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "vecstorm [options]")
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"unknown flag", []string{"-nope"}, nil},
		{"batch", []string{"-batch", "0"}, nil},
		{"workers", []string{"-workers", "0"}, nil},
		{"steps", []string{"-steps", "0"}, nil},
		{"log level", []string{"-log-level", "loud"}, nil},
		{"builtin", []string{"-builtin", "maze"}, nil},
		{"policy", []string{"-policy", "greedy"}, nil},
		{"var", []string{"-var", "novalue"}, nil},
		{"env", nil, map[string]string{"VECSTORM_BATCH": "many"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			environ := tc.env
			if environ == nil {
				environ = map[string]string{}
			}
			_, _, err := config.Parse(tc.args, &bytes.Buffer{}, environ)
			var exitErr *config.ExitError
			require.ErrorAs(t, err, &exitErr)
			require.Equal(t, 2, exitErr.Code)
		})
	}
}
