// SPDX-License-Identifier: MIT
// Package sparse: Store, the read-only compressed row storage.
//
// Layout:
//   - rowStart has vertices*actions+1 entries; rowStart[0] == 0 and the sequence
//     is non-decreasing; rowStart[last] == len(weight) == len(destination).
//   - Accessors do NOT bounds-check: they sit on the sampling hot path and the
//     indices they receive come from RowRange of a validated store.

package sparse

import (
	"fmt"
	"math"
)

// Store is a compressed sparse row relation (vertex, action) -> edges.
type Store struct {
	vertices int       // number of source vertices
	actions  int       // number of actions per vertex
	rowStart []int     // len == vertices*actions+1
	weight   []float64 // edge weights, len == nnz
	dest     []int     // edge destinations, len == nnz
}

// New validates and wraps the given arrays into a Store. The slices are copied,
// so later mutation by the caller cannot leak into the store.
// Stage 1 (Validate): shape, offsets, lengths, destinations, finiteness.
// Stage 2 (Finalize): defensive copies.
// Complexity: O(R + E).
func New(vertices, actions int, rowStart []int, weight []float64, destination []int) (*Store, error) {
	if err := validateArrays(vertices, actions, rowStart, weight, destination); err != nil {
		return nil, sparseErrorf("New", err)
	}

	return &Store{
		vertices: vertices,
		actions:  actions,
		rowStart: append([]int(nil), rowStart...),
		weight:   append([]float64(nil), weight...),
		dest:     append([]int(nil), destination...),
	}, nil
}

// validateArrays performs every structural check New relies on.
func validateArrays(vertices, actions int, rowStart []int, weight []float64, destination []int) error {
	if vertices <= 0 || actions <= 0 {
		return fmt.Errorf("vertices=%d actions=%d: %w", vertices, actions, ErrBadShape)
	}
	rows := vertices * actions
	if len(rowStart) != rows+1 || rowStart[0] != 0 {
		return fmt.Errorf("len(rowStart)=%d want %d: %w", len(rowStart), rows+1, ErrBadOffsets)
	}
	for r := 0; r < rows; r++ {
		if rowStart[r+1] < rowStart[r] {
			return fmt.Errorf("row %d: offsets decrease (%d > %d): %w", r, rowStart[r], rowStart[r+1], ErrBadOffsets)
		}
	}
	nnz := rowStart[rows]
	if len(weight) != nnz || len(destination) != nnz {
		return fmt.Errorf("nnz=%d len(weight)=%d len(destination)=%d: %w",
			nnz, len(weight), len(destination), ErrLengthMismatch)
	}
	for i := 0; i < nnz; i++ {
		if destination[i] < 0 || destination[i] >= vertices {
			return fmt.Errorf("edge %d: destination %d: %w", i, destination[i], ErrOutOfRange)
		}
		if math.IsNaN(weight[i]) || math.IsInf(weight[i], 0) {
			return fmt.Errorf("edge %d: %w", i, ErrNaNInf)
		}
	}

	return nil
}

// Vertices returns the number of source vertices.
func (s *Store) Vertices() int { return s.vertices }

// Actions returns the number of actions per vertex.
func (s *Store) Actions() int { return s.actions }

// Rows returns vertices*actions.
func (s *Store) Rows() int { return s.vertices * s.actions }

// NNZ returns the number of stored edges.
func (s *Store) NNZ() int { return len(s.weight) }

// RowRange returns the half-open edge interval [lo, hi) of row (vertex, action).
// Preconditions (unchecked): 0 <= vertex < Vertices(), 0 <= action < Actions().
// Complexity: O(1).
func (s *Store) RowRange(vertex, action int) (lo, hi int) {
	r := vertex*s.actions + action

	return s.rowStart[r], s.rowStart[r+1]
}

// RowLen returns the number of edges in row (vertex, action).
func (s *Store) RowLen(vertex, action int) int {
	lo, hi := s.RowRange(vertex, action)

	return hi - lo
}

// Weight returns the weight of edge i. Unchecked.
func (s *Store) Weight(i int) float64 { return s.weight[i] }

// Destination returns the destination vertex of edge i. Unchecked.
func (s *Store) Destination(i int) int { return s.dest[i] }

// MaxFanOut returns the widest row length (0 for an empty store).
// Complexity: O(R).
func (s *Store) MaxFanOut() int {
	var best int
	for r := 0; r < s.Rows(); r++ {
		if n := s.rowStart[r+1] - s.rowStart[r]; n > best {
			best = n
		}
	}

	return best
}

// CheckRow reports ErrOutOfRange when (vertex, action) is outside the shape.
// Boundary helper for callers that want validation; RowRange never checks.
func (s *Store) CheckRow(vertex, action int) error {
	if vertex < 0 || vertex >= s.vertices || action < 0 || action >= s.actions {
		return sparseErrorf("CheckRow", fmt.Errorf("(%d,%d): %w", vertex, action, ErrOutOfRange))
	}

	return nil
}

// Offsets returns a copy of the row offset table.
func (s *Store) Offsets() []int {
	return append([]int(nil), s.rowStart...)
}

// Weights returns a copy of the weight array.
func (s *Store) Weights() []float64 {
	return append([]float64(nil), s.weight...)
}

// Destinations returns a copy of the destination array.
func (s *Store) Destinations() []int {
	return append([]int(nil), s.dest...)
}
