// SPDX-License-Identifier: MIT
package sparse_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecstorm/sparse"
)

// TestNew_Validation covers each structural sentinel of New.
func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name     string
		v, a     int
		rowStart []int
		weight   []float64
		dest     []int
		want     error
	}{
		{"bad shape", 0, 1, []int{0}, nil, nil, sparse.ErrBadShape},
		{"short offsets", 2, 1, []int{0, 1}, []float64{1}, []int{0}, sparse.ErrBadOffsets},
		{"nonzero start", 1, 1, []int{1, 1}, nil, nil, sparse.ErrBadOffsets},
		{"decreasing", 2, 1, []int{0, 2, 1}, []float64{1}, []int{0}, sparse.ErrBadOffsets},
		{"length mismatch", 1, 1, []int{0, 2}, []float64{1}, []int{0, 0}, sparse.ErrLengthMismatch},
		{"dest range", 1, 1, []int{0, 1}, []float64{1}, []int{3}, sparse.ErrOutOfRange},
		{"nan", 1, 1, []int{0, 1}, []float64{math.NaN()}, []int{0}, sparse.ErrNaNInf},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sparse.New(tc.v, tc.a, tc.rowStart, tc.weight, tc.dest)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestNew_RowRange checks offsets are read back per (vertex, action).
func TestNew_RowRange(t *testing.T) {
	// 2 vertices × 2 actions; rows: (0,0)=[0,2) (0,1)=[2,2) (1,0)=[2,3) (1,1)=[3,3)
	s, err := sparse.New(2, 2, []int{0, 2, 2, 3, 3}, []float64{0.25, 0.75, 1}, []int{0, 1, 0})
	require.NoError(t, err)

	lo, hi := s.RowRange(0, 0)
	require.Equal(t, [2]int{0, 2}, [2]int{lo, hi})
	require.Equal(t, 0, s.RowLen(0, 1))
	require.Equal(t, 1, s.RowLen(1, 0))
	require.Equal(t, 2, s.MaxFanOut())
	require.Equal(t, 3, s.NNZ())
	require.Equal(t, 4, s.Rows())
	require.Equal(t, 1, s.Destination(1))
	require.InDelta(t, 0.75, s.Weight(1), 0)
	require.ErrorIs(t, s.CheckRow(2, 0), sparse.ErrOutOfRange)
	require.NoError(t, s.CheckRow(1, 1))
}

// TestNew_CopiesInput ensures caller mutation does not leak into the store.
func TestNew_CopiesInput(t *testing.T) {
	w := []float64{1}
	s, err := sparse.New(1, 1, []int{0, 1}, w, []int{0})
	require.NoError(t, err)
	w[0] = 42
	require.InDelta(t, 1.0, s.Weight(0), 0)
}

// TestBuilder_StableGrouping verifies rows are grouped while keeping insertion order.
func TestBuilder_StableGrouping(t *testing.T) {
	b := sparse.NewBuilder(3, 2)
	require.NoError(t, b.Add(2, 1, 0, 0.5))
	require.NoError(t, b.Add(0, 0, 1, 0.1))
	require.NoError(t, b.Add(2, 1, 1, 0.3))
	require.NoError(t, b.Add(0, 0, 2, 0.2))
	require.Equal(t, 4, b.Len())

	s, err := b.Build()
	require.NoError(t, err)

	lo, hi := s.RowRange(0, 0)
	require.Equal(t, 2, hi-lo)
	require.Equal(t, []int{1, 2}, []int{s.Destination(lo), s.Destination(lo + 1)})

	lo, hi = s.RowRange(2, 1)
	require.Equal(t, 2, hi-lo)
	require.Equal(t, []float64{0.5, 0.3}, []float64{s.Weight(lo), s.Weight(lo + 1)})
}

// TestBuilder_Errors covers Add/Build validation.
func TestBuilder_Errors(t *testing.T) {
	b := sparse.NewBuilder(2, 1)
	require.ErrorIs(t, b.Add(2, 0, 0, 1), sparse.ErrOutOfRange)
	require.ErrorIs(t, b.Add(0, 1, 0, 1), sparse.ErrOutOfRange)
	require.ErrorIs(t, b.Add(0, 0, 5, 1), sparse.ErrOutOfRange)
	require.ErrorIs(t, b.Add(0, 0, 0, math.Inf(1)), sparse.ErrNaNInf)

	_, err := sparse.NewBuilder(0, 3).Build()
	require.ErrorIs(t, err, sparse.ErrBadShape)
}

// TestSameLayout aligns two builders fed the same row sequence.
func TestSameLayout(t *testing.T) {
	tb, rb := sparse.NewBuilder(2, 1), sparse.NewBuilder(2, 1)
	for _, e := range [][2]int{{1, 0}, {0, 1}, {1, 1}} {
		require.NoError(t, tb.Add(e[0], 0, e[1], 1))
		require.NoError(t, rb.Add(e[0], 0, e[1], 7))
	}
	ts, err := tb.Build()
	require.NoError(t, err)
	rs, err := rb.Build()
	require.NoError(t, err)
	require.NoError(t, sparse.SameLayout(ts, rs))

	short := sparse.NewBuilder(2, 1)
	require.NoError(t, short.Add(0, 0, 0, 1))
	ss, err := short.Build()
	require.NoError(t, err)
	require.ErrorIs(t, sparse.SameLayout(ts, ss), sparse.ErrLayoutMismatch)
	require.ErrorIs(t, sparse.SameLayout(ts, nil), sparse.ErrNilStore)

	other, err := sparse.NewBuilder(3, 1).Build()
	require.NoError(t, err)
	require.ErrorIs(t, sparse.SameLayout(ts, other), sparse.ErrLayoutMismatch)
}

// TestValidateFanOut rejects rows wider than the limit.
func TestValidateFanOut(t *testing.T) {
	b := sparse.NewBuilder(1, 1)
	for i := 0; i < 3; i++ {
		require.NoError(t, b.Add(0, 0, 0, 1))
	}
	s, err := b.Build()
	require.NoError(t, err)
	require.NoError(t, sparse.ValidateFanOut(s, 3))
	require.ErrorIs(t, sparse.ValidateFanOut(s, 2), sparse.ErrRowTooWide)
}
