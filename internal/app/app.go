package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/vecstorm/internal/config"
	"github.com/katalvlaran/vecstorm/internal/ctxlog"
	"github.com/katalvlaran/vecstorm/reach"
	"github.com/katalvlaran/vecstorm/report"
	"github.com/katalvlaran/vecstorm/rngkey"
	"github.com/katalvlaran/vecstorm/rollout"
	"github.com/katalvlaran/vecstorm/sim"
	"github.com/katalvlaran/vecstorm/store/sqlite"
)

// App holds the configuration and long-lived dependencies of a command run.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    *config.Config
	sims   *sim.Cache
}

// Result is what a Run produced.
type Result struct {
	ModelName string
	ModelID   string
	RunID     string // empty without a database
	Reach     *reach.Report
	Summary   *rollout.Summary
}

// New returns an App logging to outW with its own logger.
func New(outW io.Writer, cfg *config.Config) *App {
	logger := ctxlog.New(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		cfg:    cfg,
		sims:   sim.NewCache(sim.WithWorkers(cfg.Workers)),
	}
}

// Run executes one rollout as configured. When the rollout itself fails the
// stored run is marked aborted and the partial Result is returned with the
// error.
func (a *App) Run(ctx context.Context) (*Result, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	m, name, err := a.loadModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load model: %w", err)
	}
	res := &Result{ModelName: name, ModelID: m.ID().String()}
	a.logger.Info("Model ready.",
		"model", name,
		"id", res.ModelID,
		"vertices", m.NumVertices(),
		"actions", m.NumActions(),
		"edges", m.Transitions().NNZ(),
		"max_steps", m.MaxSteps(),
		"random_init", m.RandomInit(),
	)

	if res.Reach, err = reach.Analyze(ctx, m); err != nil {
		return nil, fmt.Errorf("reachability analysis failed: %w", err)
	}
	if n := len(res.Reach.Unreachable); n > 0 {
		a.logger.Warn("Some vertices cannot be reached.", "count", n)
	}
	if n := len(res.Reach.DeadEnds); n > 0 {
		a.logger.Warn("Reachable dead ends; episodes there only end by truncation.", "count", n, "vertices", res.Reach.DeadEnds)
	}
	if !res.Reach.SinkReachable {
		a.logger.Warn("No sink is reachable; every episode will be truncated.")
	}

	policy, err := rollout.ParsePolicy(a.cfg.Policy, m)
	if err != nil {
		return nil, err
	}

	var sink rollout.Sink
	var store *sqlite.Store
	if a.cfg.DBPath != "" {
		if store, err = sqlite.Open(a.cfg.DBPath); err != nil {
			return nil, fmt.Errorf("failed to open run store: %w", err)
		}
		defer store.Close()
		run, err := store.CreateRun(ctx, sqlite.Run{
			ModelID:   res.ModelID,
			ModelName: name,
			Batch:     a.cfg.Batch,
			Steps:     a.cfg.Steps,
			Seed:      a.cfg.Seed,
			Workers:   a.cfg.Workers,
			Policy:    a.cfg.Policy,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create run: %w", err)
		}
		res.RunID = run.ID
		sink = store.Sink(run.ID)
		a.logger.Debug("Recording episodes.", "db", a.cfg.DBPath, "run", run.ID)
	}

	res.Summary, err = rollout.Run(ctx, a.sims.Get(m), rollout.Config{
		Batch:  a.cfg.Batch,
		Steps:  a.cfg.Steps,
		Key:    rngkey.New(a.cfg.Seed),
		Policy: policy,
	}, sink)
	if err != nil {
		if store != nil {
			// The run context may already be cancelled.
			if aerr := store.AbortRun(context.WithoutCancel(ctx), res.RunID, res.Summary, err); aerr != nil {
				a.logger.Error("Failed to mark run aborted.", "run", res.RunID, "error", aerr)
			}
		}
		return res, fmt.Errorf("rollout failed: %w", err)
	}
	if store != nil {
		if err := store.FinishRun(ctx, res.RunID, res.Summary); err != nil {
			return nil, fmt.Errorf("failed to finish run: %w", err)
		}
	}

	if a.cfg.ChartPath != "" {
		if err := a.writeChart(name, res.Summary); err != nil {
			return nil, err
		}
	}

	a.printSummary(res)
	a.logger.Debug("App.Run method finished.")

	return res, nil
}

// writeChart renders raw and smoothed returns; a run with no finished episode
// produces no chart.
func (a *App) writeChart(name string, sum *rollout.Summary) error {
	if len(sum.Returns) == 0 {
		a.logger.Warn("No finished episodes, chart skipped.", "chart", a.cfg.ChartPath)
		return nil
	}
	err := report.WriteFile(a.cfg.ChartPath, fmt.Sprintf("%s episode returns", name),
		report.Series{Name: "return", Values: sum.Returns},
		report.Series{Name: fmt.Sprintf("moving average (%d)", a.cfg.Smooth), Values: report.Smooth(sum.Returns, a.cfg.Smooth)},
	)
	if err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	a.logger.Info("Chart written.", "path", a.cfg.ChartPath)

	return nil
}

func (a *App) printSummary(res *Result) {
	s := res.Summary
	fmt.Fprintf(a.outW, "model:       %s (%s)\n", res.ModelName, res.ModelID)
	if res.RunID != "" {
		fmt.Fprintf(a.outW, "run:         %s\n", res.RunID)
	}
	fmt.Fprintf(a.outW, "episodes:    %d (%d in progress)\n", s.Episodes, s.Incomplete)
	fmt.Fprintf(a.outW, "lane steps:  %d\n", s.TotalSteps)
	fmt.Fprintf(a.outW, "mean return: %.4f\n", s.MeanReturn)
	fmt.Fprintf(a.outW, "mean length: %.2f\n", s.MeanLength)
}
