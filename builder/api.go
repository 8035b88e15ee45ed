// SPDX-License-Identifier: MIT
// Package: vecstorm/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildModel(bopts, cons...). Creates a Draft, resolves
//     cfg, runs cons in order, then emits the model.
//   - Model families are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical models.
//
// AI-Hints (practical):
//   - Compose constructors that share an action set (e.g. two Chains) to get
//     disconnected components in one model.
//   - Use WithSeed(...) to freeze stochastic paths (RandomSparse, random weights).

package builder

import (
	"fmt"

	"github.com/katalvlaran/vecstorm/mdp"
)

// Constructor applies a deterministic Draft mutation using the resolved
// builderConfig. Constructors MUST validate parameters early, return sentinel
// errors (no panics), and preserve determinism for the same config.
type Constructor func(d *Draft, cfg builderConfig) error

// BuildModel creates an empty Draft, resolves the builder configuration from
// bopts, applies all constructors in order and returns the model with the
// configured episode cap and start policy.
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is against
//     builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildModel(bopts []BuilderOption, cons ...Constructor) (*mdp.Model, error) {
	d, cfg, err := buildDraft(bopts, cons...)
	if err != nil {
		return nil, err
	}
	m, err := d.Model(mdp.WithMaxSteps(cfg.maxSteps), mdp.WithRandomInit(cfg.randomInit))
	if err != nil {
		return nil, fmt.Errorf("BuildModel: %w", err)
	}

	return m, nil
}

// BuildDraft is BuildModel without the final emission: it returns the Draft
// so callers can add vertices or edges before calling Model.
func BuildDraft(bopts []BuilderOption, cons ...Constructor) (*Draft, error) {
	d, _, err := buildDraft(bopts, cons...)
	return d, err
}

func buildDraft(bopts []BuilderOption, cons ...Constructor) (*Draft, builderConfig, error) {
	d := NewDraft()
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, cfg, fmt.Errorf("BuildModel: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, cfg, fmt.Errorf("BuildModel: %w", err)
		}
	}

	return d, cfg, nil
}
