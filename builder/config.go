// SPDX-License-Identifier: MIT
// Package: vecstorm/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • idFn        = DefaultIDFn         ("0","1","2",...)
//   • rng         = nil                 (pure/deterministic unless seeded)
//   • weightFn    = DefaultWeightFn     (uniform transition weights)
//   • rewardFn    = ConstantWeightFn(0) (no step reward)
//   • goalReward  = DefaultGoalReward
//   • maxSteps    = DefaultMaxSteps
//   • randomInit  = false
//
// AI-Hints:
//   • Set WithSeed for reproducible RandomSparse fixtures.
//   • Override WithIDScheme for human-readable state labels.

package builder

import "math/rand/v2"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	idFn       IDFn       // vertex index -> state label
	rng        *rand.Rand // nil means "no randomness"
	weightFn   WeightFn   // transition weight per emitted edge
	rewardFn   WeightFn   // reward per non-goal edge
	goalReward float64    // reward per edge entering a goal
	maxSteps   int        // episode cap passed to mdp.New
	randomInit bool       // uniform random start vertex
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:       DefaultIDFn,
		weightFn:   DefaultWeightFn,
		rewardFn:   ConstantWeightFn(0),
		goalReward: DefaultGoalReward,
		maxSteps:   DefaultMaxSteps,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// reward returns the reward of an edge that enters dest.
func (c builderConfig) reward(goal bool) float64 {
	if goal {
		return c.goalReward
	}

	return c.rewardFn(c.rng)
}
