// SPDX-License-Identifier: MIT
// Package builder_test contains functional tests for the Draft and the model
// families, verifying shapes, edges, sinks and determinism.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecstorm/builder"
	"github.com/katalvlaran/vecstorm/mdp"
)

// outcome is one emitted edge as seen through the model stores.
type outcome struct {
	to     int
	weight float64
	reward float64
}

// row returns the outcomes of (v, a) in store order.
func row(m *mdp.Model, v, a int) []outcome {
	tr, rw := m.Transitions(), m.Rewards()
	lo, hi := tr.RowRange(v, a)
	var out []outcome
	for i := lo; i < hi; i++ {
		out = append(out, outcome{tr.Destination(i), tr.Weight(i), rw.Weight(i)})
	}

	return out
}

func TestDraft_Model(t *testing.T) {
	d := builder.NewDraft("stay", "go")
	d.SetLabels("goal")
	s := d.AddVertex(builder.VertexSpec{Label: "start", Observation: []float64{0}})
	g := d.AddVertex(builder.VertexSpec{Label: "end", Observation: []float64{1}, Sink: true, Labels: []string{"goal"}, Value: 2})

	require.NoError(t, d.AddEdge(s, 1, g, 1, 10))
	require.NoError(t, d.AddEdge(s, 0, s, 3, -1))
	require.NoError(t, d.AllowAction(g, 0, true))

	idx, ok := d.Lookup("end")
	require.True(t, ok)
	require.Equal(t, g, idx)
	a, ok := d.Action("go")
	require.True(t, ok)
	require.Equal(t, 1, a)

	m, err := d.Model(mdp.WithMaxSteps(5))
	require.NoError(t, err)
	require.Equal(t, 2, m.NumVertices())
	require.Equal(t, 5, m.MaxSteps())
	require.Equal(t, []outcome{{s, 3, -1}}, row(m, s, 0))
	require.Equal(t, []outcome{{g, 1, 10}}, row(m, s, 1))
	require.True(t, m.IsSink(g))
	require.Equal(t, []bool{true}, m.Metalabel(g))
	require.Equal(t, []bool{true, true}, m.Allowed(s))
	require.Equal(t, []bool{true, false}, m.Allowed(g), "explicit override on top of derived mask")
	require.Equal(t, []string{"start", "end"}, m.StateLabels())
	require.Equal(t, []float64{0, 2}, m.StateValues())
}

func TestDraft_Errors(t *testing.T) {
	d := builder.NewDraft("a")
	v := d.AddVertex(builder.VertexSpec{})

	require.ErrorIs(t, d.AddEdge(v, 0, 5, 1, 0), builder.ErrUnknownVertex)
	require.ErrorIs(t, d.AddEdge(-1, 0, v, 1, 0), builder.ErrUnknownVertex)
	require.ErrorIs(t, d.AddEdge(v, 1, v, 1, 0), builder.ErrUnknownAction)
	require.ErrorIs(t, d.AddEdge(v, 0, v, -1, 0), builder.ErrInvalidWeight)
	require.ErrorIs(t, d.AllowAction(v, 3, true), builder.ErrUnknownAction)
	require.ErrorIs(t, d.SetInitial(2), builder.ErrUnknownVertex)

	_, err := builder.NewDraft("a").Model()
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	bad := builder.NewDraft("a")
	bad.AddVertex(builder.VertexSpec{Labels: []string{"nope"}})
	_, err = bad.Model()
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	mixed := builder.NewDraft("a")
	mixed.AddVertex(builder.VertexSpec{Observation: []float64{1}})
	mixed.AddVertex(builder.VertexSpec{Observation: []float64{1, 2}})
	require.NoError(t, mixed.AddEdge(0, 0, 1, 1, 0))
	_, err = mixed.Model()
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	require.ErrorIs(t, err, mdp.ErrShape)
}

func TestChain(t *testing.T) {
	m, err := builder.BuildModel([]builder.BuilderOption{builder.WithStepReward(-1), builder.WithMaxSteps(9)}, builder.Chain(4))
	require.NoError(t, err)

	require.Equal(t, 4, m.NumVertices())
	require.Equal(t, []string{"left", "right"}, m.ActionLabels())
	require.Equal(t, 9, m.MaxSteps())
	require.True(t, m.IsSink(3))
	require.Equal(t, []outcome{{0, 1, -1}}, row(m, 0, 0), "left at the start stays")
	require.Equal(t, []outcome{{1, 1, -1}}, row(m, 0, 1))
	require.Equal(t, []outcome{{3, 1, builder.DefaultGoalReward}}, row(m, 2, 1))
	require.Empty(t, row(m, 3, 0))
	require.Equal(t, []float64{2}, m.Observation(2))
	require.Equal(t, []string{"0", "1", "2", "3"}, m.StateLabels())

	_, err = builder.BuildModel(nil, builder.Chain(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestChain_Composed(t *testing.T) {
	m, err := builder.BuildModel([]builder.BuilderOption{builder.WithSymbNumb("s")}, builder.Chain(2), builder.Chain(3))
	require.NoError(t, err)
	require.Equal(t, 5, m.NumVertices())
	require.Equal(t, []string{"s0", "s1", "s2", "s3", "s4"}, m.StateLabels())
	require.True(t, m.IsSink(1))
	require.True(t, m.IsSink(4))
	require.Equal(t, []outcome{{2, 1, 0}}, row(m, 2, 0), "second chain stays within its own vertices")

	_, err = builder.BuildModel(nil, builder.Chain(2), builder.GridWorld(2, 2, 0))
	require.ErrorIs(t, err, builder.ErrActionMismatch)
}

func TestGridWorld(t *testing.T) {
	m, err := builder.BuildModel(nil, builder.GridWorld(2, 3, 0.25))
	require.NoError(t, err)

	require.Equal(t, 6, m.NumVertices())
	require.Equal(t, []string{"up", "down", "left", "right"}, m.ActionLabels())
	require.Equal(t, []string{"row", "col"}, m.ObservationLabels())
	require.Equal(t, 2, m.MaxOutcomes())

	// (0,0): up hits the wall, right slips
	require.Equal(t, []outcome{{0, 1, 0}}, row(m, 0, 0))
	require.Equal(t, []outcome{{1, 0.75, 0}, {0, 0.25, 0}}, row(m, 0, 3))
	// (1,1) -> right enters the goal (1,2)
	require.Equal(t, []outcome{{5, 0.75, 1}, {4, 0.25, 0}}, row(m, 4, 3))
	require.True(t, m.IsSink(5))
	require.Equal(t, []float64{1, 2}, m.Observation(5))
	require.Equal(t, "1,2", m.StateLabels()[5])
	require.Equal(t, []bool{false, false, false, false}, m.Allowed(5))

	det, err := builder.BuildModel(nil, builder.GridWorld(1, 2, 0))
	require.NoError(t, err)
	require.Equal(t, 1, det.MaxOutcomes())

	_, err = builder.BuildModel(nil, builder.GridWorld(1, 1, 0))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.BuildModel(nil, builder.GridWorld(2, 2, 1))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)
}

func TestRandomSparse(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(0.5, 2), builder.WithRandomInit(true)}
	m, err := builder.BuildModel(opts, builder.RandomSparse(10, 3, 4))
	require.NoError(t, err)

	require.Equal(t, 10, m.NumVertices())
	require.Equal(t, []string{"a0", "a1", "a2"}, m.ActionLabels())
	require.True(t, m.RandomInit())
	require.Equal(t, 4, m.MaxOutcomes())
	for v := 0; v < 9; v++ {
		for a := 0; a < 3; a++ {
			out := row(m, v, a)
			require.Len(t, out, 4)
			seen := map[int]bool{}
			for _, o := range out {
				require.False(t, seen[o.to], "destinations are distinct")
				seen[o.to] = true
				require.GreaterOrEqual(t, o.weight, 0.5)
				require.Less(t, o.weight, 2.0)
			}
		}
	}

	again, err := builder.BuildModel([]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(0.5, 2), builder.WithRandomInit(true)}, builder.RandomSparse(10, 3, 4))
	require.NoError(t, err)
	require.Equal(t, m.ID(), again.ID(), "same seed, same model")

	other, err := builder.BuildModel([]builder.BuilderOption{builder.WithSeed(8)}, builder.RandomSparse(10, 3, 4))
	require.NoError(t, err)
	require.NotEqual(t, m.ID(), other.ID())

	_, err = builder.BuildModel(nil, builder.RandomSparse(10, 3, 4))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.BuildModel([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(3, 1, 4))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestBuildModel_NilConstructor(t *testing.T) {
	_, err := builder.BuildModel(nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuildDraft_Extend(t *testing.T) {
	d, err := builder.BuildDraft(nil, builder.Chain(2))
	require.NoError(t, err)
	extra := d.AddVertex(builder.VertexSpec{Label: "detour", Observation: []float64{9}})
	require.NoError(t, d.AddEdge(0, 0, extra, 1, 0))
	require.NoError(t, d.AddEdge(extra, 1, 1, 1, 1))

	m, err := d.Model()
	require.NoError(t, err)
	require.Equal(t, 3, m.NumVertices())
	require.Equal(t, builder.DefaultMaxSteps, m.MaxSteps())
	require.Equal(t, []outcome{{0, 1, 0}, {2, 1, 0}}, row(m, 0, 0))
}
