// SPDX-License-Identifier: MIT
// Package sim: start-vertex selection.

package sim

import "github.com/katalvlaran/vecstorm/rngkey"

// initLanes returns n start vertices. With a fixed start every entry is the
// initial vertex and key is unused; otherwise vertex i is drawn uniformly from
// key.Fold(i), so the result is independent of n for a shared prefix.
func (s *Simulator) initLanes(n int, key rngkey.Key) []int {
	out := make([]int, n)
	if !s.randomInit {
		for i := range out {
			out[i] = s.initial
		}
		return out
	}
	for i := range out {
		out[i] = int(key.Fold(uint64(i)).Float64() * float64(s.vertices))
		if out[i] >= s.vertices { // guard the u -> 1 rounding edge
			out[i] = s.vertices - 1
		}
	}

	return out
}
