// Package builder provides the transition weight and reward distributions
// used by model families.
package builder

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// DefaultEdgeWeight is the transition weight assigned to each edge when no
// custom WeightFn is provided. Equal weights give a uniform outcome draw.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight (or reward) given an optional *rand.Rand.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns the constant DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields the provided value.
// Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// ConstantRewardFn returns a WeightFn yielding value, which may be negative
// (a per-step cost). Panics on NaN/Inf.
func ConstantRewardFn(value float64) WeightFn {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantRewardFn: value must be finite, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if min < 0 or max < min.
// If rng is nil, yields DefaultEdgeWeight to maintain deterministic fallback.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// NormalWeightFn returns a WeightFn sampling from N(mean, stddev), clipped at 0.
// Panics if stddev < 0. If rng is nil, yields DefaultEdgeWeight.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %f", stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return math.Max(0, rng.NormFloat64()*stddev+mean)
	}
}

// ExponentialWeightFn returns a WeightFn sampling from an exponential
// distribution with rate λ (mean 1/λ). Panics if rate ≤ 0.
// If rng is nil, yields DefaultEdgeWeight.
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %f", rate))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return rng.ExpFloat64() / rate
	}
}

// WithConstantWeight sets a fixed transition weight via ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets transition weights ∼ U[min,max) via UniformWeightFn.
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithStepReward sets a constant reward (or cost, if negative) on non-goal edges.
func WithStepReward(r float64) BuilderOption {
	return WithRewardFn(ConstantRewardFn(r))
}
