// SPDX-License-Identifier: MIT
// Package: vecstorm/builder
//
// options.go: functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//
// AI-Hints:
//   • Prefer WithSeed for reproducible stochastic builders (RandomSparse).
//   • WithRewardFn affects non-goal edges only; WithGoalReward covers goals.

package builder

import (
	"math"
	"math/rand/v2"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before model construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the state label generator: idx -> string.
// A nil scheme is ignored (the current scheme stays).
func WithIDScheme(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new PCG-backed *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewPCG(seed, seed^0x5bd1e995))
	}
}

// WithWeightFn overrides the per-edge transition weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithRewardFn overrides the reward of edges that do not enter a goal.
// Panics on nil.
func WithRewardFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithRewardFn(nil)")
	}
	return func(c *builderConfig) {
		c.rewardFn = fn
	}
}

// WithGoalReward sets the reward of edges entering a goal. Panics on NaN/Inf.
func WithGoalReward(r float64) BuilderOption {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		panic("builder: WithGoalReward(non-finite)")
	}
	return func(c *builderConfig) {
		c.goalReward = r
	}
}

// WithMaxSteps sets the episode cap of the built model. Panics if n < 1.
func WithMaxSteps(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithMaxSteps(n<1)")
	}
	return func(c *builderConfig) {
		c.maxSteps = n
	}
}

// WithRandomInit selects uniform random start vertices.
func WithRandomInit(random bool) BuilderOption {
	return func(c *builderConfig) {
		c.randomInit = random
	}
}
