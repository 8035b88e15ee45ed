// SPDX-License-Identifier: MIT
package builder_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecstorm/builder"
)

// TestOptionPanics verifies that option and distribution constructors panic
// on meaningless parameters.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
	}{
		{"WithRand_nil", func() { builder.WithRand(nil) }},
		{"WithWeightFn_nil", func() { builder.WithWeightFn(nil) }},
		{"WithRewardFn_nil", func() { builder.WithRewardFn(nil) }},
		{"WithMaxSteps_zero", func() { builder.WithMaxSteps(0) }},
		{"WithGoalReward_nan", func() { builder.WithGoalReward(math.NaN()) }},
		{"ConstantWeightFn_negative", func() { builder.ConstantWeightFn(-1) }},
		{"ConstantRewardFn_inf", func() { builder.ConstantRewardFn(math.Inf(-1)) }},
		{"UniformWeightFn_maxLessThanMin", func() { builder.UniformWeightFn(5, 4) }},
		{"NormalWeightFn_stddevNegative", func() { builder.NormalWeightFn(0, -0.1) }},
		{"ExponentialWeightFn_zeroRate", func() { builder.ExponentialWeightFn(0) }},
		{"HexIDFn_negative", func() { builder.HexIDFn(-1) }},
		{"ExcelColumnIDFn_negative", func() { builder.ExcelColumnIDFn(-1) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Panics(t, tc.fn)
		})
	}
}

func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(42, 42))

	require.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	require.Equal(t, 2.5, builder.ConstantWeightFn(2.5)(rng))
	require.Equal(t, -3.0, builder.ConstantRewardFn(-3)(nil))
	require.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(2, 3)(nil))
	require.Equal(t, builder.DefaultEdgeWeight, builder.NormalWeightFn(5, 1)(nil))
	require.Equal(t, builder.DefaultEdgeWeight, builder.ExponentialWeightFn(1)(nil))

	for i := 0; i < 100; i++ {
		u := builder.UniformWeightFn(2, 3)(rng)
		require.GreaterOrEqual(t, u, 2.0)
		require.Less(t, u, 3.0)
		require.GreaterOrEqual(t, builder.NormalWeightFn(0, 1)(rng), 0.0)
		require.GreaterOrEqual(t, builder.ExponentialWeightFn(2)(rng), 0.0)
	}
}

func TestIDFns(t *testing.T) {
	t.Parallel()
	require.Equal(t, "42", builder.DefaultIDFn(42))
	require.Equal(t, "A", builder.ExcelColumnIDFn(0))
	require.Equal(t, "AB", builder.ExcelColumnIDFn(27))
	require.Equal(t, "ff", builder.HexIDFn(255))
	require.Equal(t, "v3", builder.SymbolNumberIDFn("v")(3))
}

func TestWithIDScheme_NilIgnored(t *testing.T) {
	m, err := builder.BuildModel([]builder.BuilderOption{builder.WithHexIDs(), builder.WithIDScheme(nil)}, builder.Chain(12))
	require.NoError(t, err)
	require.Equal(t, "b", m.StateLabels()[11])
}
