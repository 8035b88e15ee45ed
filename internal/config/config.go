// Package config resolves the vecstorm command configuration: environment
// defaults first (VECSTORM_* variables), then command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Builtin model names accepted by -builtin.
const (
	BuiltinGrid   = "grid"
	BuiltinChain  = "chain"
	BuiltinRandom = "random"
)

// Config holds every knob of a rollout run.
type Config struct {
	ModelPath string            `env:"VECSTORM_MODEL"`
	Builtin   string            `env:"VECSTORM_BUILTIN" envDefault:"grid"`
	Vars      map[string]string `env:"VECSTORM_VARS" envKeyValSeparator:"="`

	Batch    int    `env:"VECSTORM_BATCH" envDefault:"64"`
	Steps    int    `env:"VECSTORM_STEPS" envDefault:"200"`
	Seed     uint64 `env:"VECSTORM_SEED" envDefault:"1"`
	Workers  int    `env:"VECSTORM_WORKERS" envDefault:"1"`
	MaxSteps int    `env:"VECSTORM_MAX_STEPS" envDefault:"0"`
	Policy   string `env:"VECSTORM_POLICY" envDefault:"uniform"`

	DBPath    string `env:"VECSTORM_DB"`
	ChartPath string `env:"VECSTORM_CHART"`
	Smooth    int    `env:"VECSTORM_SMOOTH" envDefault:"10"`

	LogLevel  string `env:"VECSTORM_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"VECSTORM_LOG_FORMAT" envDefault:"text"`
}

// ExitError carries the process exit code for a configuration failure.
type ExitError struct {
	Code    int
	Message string
}

// Error implements error.
func (e *ExitError) Error() string {
	return e.Message
}

// usage is printed by -h and on flag errors.
const usage = `
vecstorm - batched MDP rollouts.

Usage:
  vecstorm [options] [MODEL.hcl]

Without a model file a builtin model (-builtin) is simulated.
Every option also reads a VECSTORM_* environment variable; a .env file in the
working directory is loaded first.

Options:
`

// Parse resolves the configuration. environ overrides the process environment
// when non-nil. It returns (nil, true, nil) when help was requested and an
// *ExitError with code 2 for invalid input.
func Parse(args []string, output io.Writer, environ map[string]string) (*Config, bool, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("parse env: %v", err)}
	}
	if cfg.Vars == nil {
		cfg.Vars = map[string]string{}
	}

	fs := flag.NewFlagSet("vecstorm", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, usage)
		fs.PrintDefaults()
	}

	fs.StringVar(&cfg.ModelPath, "model", cfg.ModelPath, "Path to an HCL model file.")
	fs.StringVar(&cfg.Builtin, "builtin", cfg.Builtin, "Builtin model when no file is given: 'grid', 'chain' or 'random'.")
	fs.Func("var", "Model variable as key=value (repeatable).", func(s string) error {
		k, v, ok := strings.Cut(s, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return fmt.Errorf("want key=value, got %q", s)
		}
		cfg.Vars[strings.TrimSpace(k)] = v
		return nil
	})
	fs.IntVar(&cfg.Batch, "batch", cfg.Batch, "Number of parallel lanes.")
	fs.IntVar(&cfg.Steps, "steps", cfg.Steps, "Number of batched steps.")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Root random seed.")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Parallel lane workers.")
	fs.IntVar(&cfg.MaxSteps, "max-steps", cfg.MaxSteps, "Override the model episode cap (0 keeps the model's).")
	fs.StringVar(&cfg.Policy, "policy", cfg.Policy, "Policy: 'uniform' or 'const:<action>'.")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite file for run and episode records (empty disables).")
	fs.StringVar(&cfg.ChartPath, "chart", cfg.ChartPath, "HTML file for the episode return chart (empty disables).")
	fs.IntVar(&cfg.Smooth, "smooth", cfg.Smooth, "Moving-average window of the chart.")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Logging level: 'debug', 'info', 'warn' or 'error'.")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log output format: 'text' or 'json'.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if cfg.ModelPath == "" && fs.NArg() > 0 {
		cfg.ModelPath = fs.Arg(0)
	}

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return &cfg, false, nil
}

// Validate checks ranges and enumerations and normalizes case.
func (c *Config) Validate() error {
	c.LogFormat = strings.ToLower(c.LogFormat)
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return errors.New("invalid log-format: must be 'text' or 'json'")
	}
	c.LogLevel = strings.ToLower(c.LogLevel)
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	if c.ModelPath == "" {
		switch c.Builtin {
		case BuiltinGrid, BuiltinChain, BuiltinRandom:
		default:
			return fmt.Errorf("invalid builtin %q: must be 'grid', 'chain' or 'random'", c.Builtin)
		}
	}
	if c.Batch < 1 {
		return fmt.Errorf("invalid batch %d: must be >= 1", c.Batch)
	}
	if c.Steps < 1 {
		return fmt.Errorf("invalid steps %d: must be >= 1", c.Steps)
	}
	if c.Workers < 1 {
		return fmt.Errorf("invalid workers %d: must be >= 1", c.Workers)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("invalid max-steps %d: must be >= 0", c.MaxSteps)
	}
	if c.Smooth < 1 {
		return fmt.Errorf("invalid smooth %d: must be >= 1", c.Smooth)
	}
	if c.Policy != "uniform" && !strings.HasPrefix(c.Policy, "const:") {
		return fmt.Errorf("invalid policy %q: must be 'uniform' or 'const:<action>'", c.Policy)
	}

	return nil
}
