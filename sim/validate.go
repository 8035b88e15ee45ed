// SPDX-License-Identifier: MIT
// Package sim: boundary validation for Reset and Step.

package sim

import "fmt"

// checkState verifies batch shape and per-lane ranges.
func (s *Simulator) checkState(method string, st State) error {
	n := st.Len()
	if n == 0 {
		return fmt.Errorf("%s: %w", method, ErrEmptyBatch)
	}
	if len(st.Steps) != n {
		return fmt.Errorf("%s: vertices=%d steps=%d: %w", method, n, len(st.Steps), ErrShapeMismatch)
	}
	if st.Pending != nil && len(st.Pending) != n {
		return fmt.Errorf("%s: vertices=%d pending=%d: %w", method, n, len(st.Pending), ErrShapeMismatch)
	}
	for i, v := range st.Vertices {
		if v < 0 || v >= s.vertices {
			return fmt.Errorf("%s: lane %d vertex=%d vertices=%d: %w", method, i, v, s.vertices, ErrVertexOutOfRange)
		}
	}
	for i, k := range st.Steps {
		if k < 0 || k > s.maxSteps {
			return fmt.Errorf("%s: lane %d steps=%d maxSteps=%d: %w", method, i, k, s.maxSteps, ErrStepsOutOfRange)
		}
	}

	return nil
}

// checkActions verifies the action slice against the batch. Lanes awaiting a
// reset ignore their action and are not checked.
func (s *Simulator) checkActions(st State, actions []int) error {
	if len(actions) != st.Len() {
		return fmt.Errorf("Step: lanes=%d actions=%d: %w", st.Len(), len(actions), ErrShapeMismatch)
	}
	for i, a := range actions {
		if s.awaitingReset(st, i) {
			continue
		}
		if a < 0 || a >= s.actions {
			return fmt.Errorf("Step: lane %d action=%d actions=%d: %w", i, a, s.actions, ErrActionOutOfRange)
		}
	}

	return nil
}

// awaitingReset reports whether lane i's previous step ended its episode.
func (s *Simulator) awaitingReset(st State, i int) bool {
	return st.pending(i) || s.model.IsSink(st.Vertices[i])
}
