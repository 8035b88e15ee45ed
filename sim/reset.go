// SPDX-License-Identifier: MIT
// Package sim: batch reset.

package sim

import (
	"fmt"

	"github.com/katalvlaran/vecstorm/rngkey"
)

// Reset starts a fresh episode on every lane. Only the batch size of prior is
// used; vertices and step counters are replaced. Start vertices are the
// model's initial vertex, or uniform draws from key when the model uses random
// initialization.
//
// The returned allowed masks are the model masks of the start vertices
// (never relaxed).
// Complexity: O(batch * (obsDim + actions + metaDim)).
func (s *Simulator) Reset(prior State, key rngkey.Key) (ResetResult, error) {
	n := prior.Len()
	if n == 0 {
		return ResetResult{}, fmt.Errorf("Reset: %w", ErrEmptyBatch)
	}

	verts := s.initLanes(n, key)
	res := ResetResult{
		State:          State{Vertices: verts, Steps: make([]int, n), Pending: make([]bool, n)},
		Observations:   make([][]float64, n),
		AllowedActions: make([][]bool, n),
		Metalabels:     make([][]bool, n),
	}
	s.forLanes(n, func(i int) {
		v := verts[i]
		res.Observations[i] = s.observation(v)
		res.AllowedActions[i] = s.allowed(v, false)
		res.Metalabels[i] = s.metalabel(v)
	})

	return res, nil
}
