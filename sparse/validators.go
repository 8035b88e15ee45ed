// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Cross-store checks shared by model construction.
//   - Return wrapped sentinels so call sites can match with errors.Is.

package sparse

import "fmt"

// SameLayout ensures a and b share one index space: same shape, same edge
// count and identical row offsets. Edge index i then means the same
// (vertex, action, position) in both stores.
// Complexity: O(R).
func SameLayout(a, b *Store) error {
	if a == nil || b == nil {
		return sparseErrorf("SameLayout", ErrNilStore)
	}
	if a.vertices != b.vertices || a.actions != b.actions {
		return sparseErrorf("SameLayout", fmt.Errorf("shape %dx%d vs %dx%d: %w",
			a.vertices, a.actions, b.vertices, b.actions, ErrLayoutMismatch))
	}
	if a.NNZ() != b.NNZ() {
		return sparseErrorf("SameLayout", fmt.Errorf("nnz %d vs %d: %w", a.NNZ(), b.NNZ(), ErrLayoutMismatch))
	}
	for r := range a.rowStart {
		if a.rowStart[r] != b.rowStart[r] {
			return sparseErrorf("SameLayout", fmt.Errorf("offset %d: %d vs %d: %w",
				r, a.rowStart[r], b.rowStart[r], ErrLayoutMismatch))
		}
	}

	return nil
}

// ValidateFanOut ensures no row is wider than limit.
// Complexity: O(R).
func ValidateFanOut(s *Store, limit int) error {
	if s == nil {
		return sparseErrorf("ValidateFanOut", ErrNilStore)
	}
	for v := 0; v < s.vertices; v++ {
		for a := 0; a < s.actions; a++ {
			if n := s.RowLen(v, a); n > limit {
				return sparseErrorf("ValidateFanOut", fmt.Errorf("row (%d,%d) has %d edges > %d: %w",
					v, a, n, limit, ErrRowTooWide))
			}
		}
	}

	return nil
}
