// SPDX-License-Identifier: MIT
// Package sim: single-lane transition sampling.

package sim

import "github.com/katalvlaran/vecstorm/rngkey"

// sample draws the next vertex for (v, a) from the fixed-width window
// [lo, lo+maxOutcomes) of the row, masking indices >= hi.
//
// The draw is categorical over the non-negative weights in the window,
// normalized by their sum. It returns the destination and the sampled edge
// index; an empty or all-zero window returns (v, -1) so the lane stays put.
// Complexity: O(maxOutcomes).
func (s *Simulator) sample(v, a int, key rngkey.Key) (next, edge int) {
	lo, hi := s.transitions.RowRange(v, a)
	if end := lo + s.maxOutcomes; end < hi {
		hi = end
	}

	var total float64
	last := -1
	for i := lo; i < hi; i++ {
		if w := s.transitions.Weight(i); w > 0 {
			total += w
			last = i
		}
	}
	if last < 0 {
		return v, -1
	}

	u := key.Float64() * total
	var acc float64
	for i := lo; i < hi; i++ {
		w := s.transitions.Weight(i)
		if w <= 0 {
			continue
		}
		acc += w
		if u < acc {
			return s.transitions.Destination(i), i
		}
	}

	// Rounding left u at or above the final partial sum.
	return s.transitions.Destination(last), last
}
