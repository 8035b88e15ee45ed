// SPDX-License-Identifier: MIT
package sim_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecstorm/mdp"
	"github.com/katalvlaran/vecstorm/sparse"
)

// edge is a fixture row: (vertex, action) -> dest with weight and reward.
type edge struct {
	v, a, dest int
	w, r       float64
}

// buildModel assembles aligned stores from edges and wraps them in a model.
func buildModel(t testing.TB, spec mdp.Spec, n, actions int, edges []edge, opts ...mdp.Option) *mdp.Model {
	t.Helper()
	tb, rb := sparse.NewBuilder(n, actions), sparse.NewBuilder(n, actions)
	for _, e := range edges {
		require.NoError(t, tb.Add(e.v, e.a, e.dest, e.w))
		require.NoError(t, rb.Add(e.v, e.a, e.dest, e.r))
	}
	var err error
	spec.Transitions, err = tb.Build()
	require.NoError(t, err)
	spec.Rewards, err = rb.Build()
	require.NoError(t, err)

	m, err := mdp.New(spec, opts...)
	require.NoError(t, err)

	return m
}

// threeVertex is the canonical example:
//
//	0 --a0--> 1 (reward 5), 0 --a1--> 2 (sink, reward 0), 1 --a0--> 1.
func threeVertex(t testing.TB, maxSteps int) *mdp.Model {
	return buildModel(t, mdp.Spec{
		MaxSteps:     maxSteps,
		Observations: [][]float64{{0, 0}, {1, 0}, {0, 1}},
		Sinks:        []bool{false, false, true},
		Metalabels:   [][]bool{{false}, {false}, {true}},
	}, 3, 2, []edge{
		{0, 0, 1, 1, 5},
		{0, 1, 2, 1, 0},
		{1, 0, 1, 1, 0},
	})
}

// randomModel builds a dense-ish random model with random initialization,
// one sink and per-edge distinct rewards.
func randomModel(t testing.TB, n, actions, fanOut int, seed uint64) *mdp.Model {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	var edges []edge
	for v := 0; v < n-1; v++ {
		for a := 0; a < actions; a++ {
			for k := 0; k < fanOut; k++ {
				edges = append(edges, edge{v, a, r.IntN(n), 0.1 + r.Float64(), float64(len(edges))})
			}
		}
	}
	sinks := make([]bool, n)
	sinks[n-1] = true

	return buildModel(t, mdp.Spec{MaxSteps: 7, RandomInit: true, Sinks: sinks}, n, actions, edges)
}
