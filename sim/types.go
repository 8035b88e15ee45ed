// SPDX-License-Identifier: MIT
// Package sim: batch state and result bundles.

package sim

// State is the per-lane mutable-by-replacement data of a batch.
//
// Vertices[i] is lane i's current vertex and Steps[i] its elapsed steps in the
// current episode. Pending[i] is true when the previous Step reported done for
// lane i and the reset has not happened yet; a nil Pending means "none pending".
// Lanes sitting on a sink vertex are always treated as pending.
type State struct {
	Vertices []int
	Steps    []int
	Pending  []bool
}

// NewState returns a zeroed State of the given batch size. Only its shape
// matters to Reset.
func NewState(batch int) State {
	return State{
		Vertices: make([]int, batch),
		Steps:    make([]int, batch),
		Pending:  make([]bool, batch),
	}
}

// Len returns the batch size.
func (s State) Len() int { return len(s.Vertices) }

// Clone returns a deep copy of s.
func (s State) Clone() State {
	c := State{
		Vertices: append([]int(nil), s.Vertices...),
		Steps:    append([]int(nil), s.Steps...),
	}
	if s.Pending != nil {
		c.Pending = append([]bool(nil), s.Pending...)
	}

	return c
}

// pending reports whether lane i carries a pending reset flag.
func (s State) pending(i int) bool {
	return s.Pending != nil && s.Pending[i]
}

// ResetResult is returned by Reset. All slices have the batch length; rows are
// copies owned by the caller.
type ResetResult struct {
	State          State
	Observations   [][]float64
	AllowedActions [][]bool
	Metalabels     [][]bool
}

// StepResult is returned by Step. All slices have the batch length; rows are
// copies owned by the caller.
//
// Done is the final flag after the auto-reset override. Truncated is the
// candidate truncation flag computed before the override, so a lane that was
// reset on this call may report Truncated=true with Done=false.
type StepResult struct {
	State          State
	Observations   [][]float64
	Rewards        []float64
	Done           []bool
	AllowedActions [][]bool
	Metalabels     [][]bool
	Truncated      []bool
}

// newStepResult allocates every per-lane slice of a StepResult.
func newStepResult(n int) StepResult {
	return StepResult{
		State:          NewState(n),
		Observations:   make([][]float64, n),
		Rewards:        make([]float64, n),
		Done:           make([]bool, n),
		AllowedActions: make([][]bool, n),
		Metalabels:     make([][]bool, n),
		Truncated:      make([]bool, n),
	}
}
