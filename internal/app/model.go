package app

import (
	"context"
	"fmt"

	"github.com/katalvlaran/vecstorm/builder"
	"github.com/katalvlaran/vecstorm/internal/config"
	"github.com/katalvlaran/vecstorm/internal/ctxlog"
	"github.com/katalvlaran/vecstorm/loader"
	"github.com/katalvlaran/vecstorm/mdp"
)

// Builtin model shapes.
const (
	gridRows, gridCols, gridSlip = 4, 4, 0.1
	chainLength                  = 8
	randomVertices, randomFanOut = 32, 3
	randomActions, randomSteps   = 4, 50
)

// loadModel returns the model named by the config and its display name.
func (a *App) loadModel(ctx context.Context) (*mdp.Model, string, error) {
	logger := ctxlog.FromContext(ctx)
	if a.cfg.ModelPath != "" {
		vars := make(map[string]any, len(a.cfg.Vars))
		for k, v := range a.cfg.Vars {
			vars[k] = v
		}
		opts := []loader.Option{loader.WithVariables(vars)}
		if a.cfg.MaxSteps > 0 {
			opts = append(opts, loader.WithModelOptions(mdp.WithMaxSteps(a.cfg.MaxSteps)))
		}
		m, meta, err := loader.LoadFile(ctx, a.cfg.ModelPath, opts...)
		if err != nil {
			return nil, "", err
		}
		return m, meta.Name, nil
	}

	if len(a.cfg.Vars) > 0 {
		logger.Warn("Model variables are ignored by builtin models.", "builtin", a.cfg.Builtin)
	}
	var (
		m   *mdp.Model
		err error
	)
	switch a.cfg.Builtin {
	case config.BuiltinGrid:
		m, err = builder.BuildModel([]builder.BuilderOption{builder.WithStepReward(-0.01)},
			builder.GridWorld(gridRows, gridCols, gridSlip))
	case config.BuiltinChain:
		m, err = builder.BuildModel(nil, builder.Chain(chainLength))
	case config.BuiltinRandom:
		m, err = builder.BuildModel([]builder.BuilderOption{
			builder.WithSeed(a.cfg.Seed),
			builder.WithUniformWeight(0.1, 1),
			builder.WithRandomInit(true),
			builder.WithMaxSteps(randomSteps),
		}, builder.RandomSparse(randomVertices, randomActions, randomFanOut))
	default:
		return nil, "", fmt.Errorf("unknown builtin %q", a.cfg.Builtin)
	}
	if err != nil {
		return nil, "", fmt.Errorf("build %s model: %w", a.cfg.Builtin, err)
	}
	if a.cfg.MaxSteps > 0 {
		if m, err = m.WithMaxSteps(a.cfg.MaxSteps); err != nil {
			return nil, "", fmt.Errorf("override max steps: %w", err)
		}
	}

	return m, a.cfg.Builtin, nil
}
