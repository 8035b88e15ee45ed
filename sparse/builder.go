// SPDX-License-Identifier: MIT
// Package sparse: incremental Store construction.
//
// Determinism:
//   - Edges are grouped by row with a stable counting sort, so edges of one row
//     keep their insertion order.
//   - Two Builders fed the same (vertex, action) sequence produce stores with
//     identical offsets, which is how transition and reward stores stay aligned.

package sparse

import (
	"fmt"
	"math"
)

// entry is one pending edge.
type entry struct {
	row    int
	dest   int
	weight float64
}

// Builder accumulates edges in any row order and emits a Store.
// A Builder is not safe for concurrent use.
type Builder struct {
	vertices int
	actions  int
	entries  []entry
}

// NewBuilder returns a Builder for a vertices×actions row shape.
// Shape is validated in Build, so a zero Builder fails there with ErrBadShape.
func NewBuilder(vertices, actions int) *Builder {
	return &Builder{vertices: vertices, actions: actions}
}

// Add appends edge (vertex, action) -> dest with the given weight.
// Complexity: amortized O(1).
func (b *Builder) Add(vertex, action, dest int, weight float64) error {
	if vertex < 0 || vertex >= b.vertices || action < 0 || action >= b.actions {
		return sparseErrorf("Builder.Add", fmt.Errorf("row (%d,%d): %w", vertex, action, ErrOutOfRange))
	}
	if dest < 0 || dest >= b.vertices {
		return sparseErrorf("Builder.Add", fmt.Errorf("destination %d: %w", dest, ErrOutOfRange))
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return sparseErrorf("Builder.Add", ErrNaNInf)
	}
	b.entries = append(b.entries, entry{row: vertex*b.actions + action, dest: dest, weight: weight})

	return nil
}

// Len returns the number of edges added so far.
func (b *Builder) Len() int { return len(b.entries) }

// Build groups the edges by row and returns the Store.
// Stage 1 (Validate): shape.
// Stage 2 (Count): per-row histogram -> prefix sums.
// Stage 3 (Scatter): stable placement by row.
// Complexity: O(R + E) time, O(R + E) memory.
func (b *Builder) Build() (*Store, error) {
	if b.vertices <= 0 || b.actions <= 0 {
		return nil, sparseErrorf("Builder.Build", fmt.Errorf("vertices=%d actions=%d: %w", b.vertices, b.actions, ErrBadShape))
	}
	rows := b.vertices * b.actions
	rowStart := make([]int, rows+1)
	for _, e := range b.entries {
		rowStart[e.row+1]++
	}
	for r := 0; r < rows; r++ {
		rowStart[r+1] += rowStart[r]
	}

	nnz := len(b.entries)
	weight := make([]float64, nnz)
	dest := make([]int, nnz)
	next := make([]int, rows)
	copy(next, rowStart[:rows])
	for _, e := range b.entries {
		i := next[e.row]
		weight[i] = e.weight
		dest[i] = e.dest
		next[e.row]++
	}

	return &Store{
		vertices: b.vertices,
		actions:  b.actions,
		rowStart: rowStart,
		weight:   weight,
		dest:     dest,
	}, nil
}
