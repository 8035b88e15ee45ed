// SPDX-License-Identifier: MIT
package sim

import "github.com/katalvlaran/vecstorm/rngkey"

// Sample exposes the single-lane sampler to external tests.
func (s *Simulator) Sample(v, a int, key rngkey.Key) (next, edge int) {
	return s.sample(v, a, key)
}

// InitLanes exposes start-vertex selection to external tests.
func (s *Simulator) InitLanes(n int, key rngkey.Key) []int {
	return s.initLanes(n, key)
}
