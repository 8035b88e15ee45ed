// SPDX-License-Identifier: MIT
// Package mdp: sentinel errors. Wrap with "%w" at call sites; match with errors.Is.

package mdp

import "errors"

var (
	// ErrNilStore indicates a missing transition or reward store.
	ErrNilStore = errors.New("mdp: transition or reward store is nil")

	// ErrRewardLayout indicates that rewards do not share the transition index space.
	ErrRewardLayout = errors.New("mdp: reward store layout differs from transitions")

	// ErrShape indicates a per-vertex array of the wrong length or width.
	ErrShape = errors.New("mdp: per-vertex data has wrong shape")

	// ErrInitialVertex indicates an initial vertex outside [0, vertexCount).
	ErrInitialVertex = errors.New("mdp: initial vertex out of range")

	// ErrMaxSteps indicates maxSteps < 1.
	ErrMaxSteps = errors.New("mdp: maxSteps must be >= 1")

	// ErrMaxOutcomes indicates maxOutcomes < 1.
	ErrMaxOutcomes = errors.New("mdp: maxOutcomes must be >= 1")

	// ErrFanOut indicates a row wider than maxOutcomes; sampling would drop mass.
	ErrFanOut = errors.New("mdp: row fan-out exceeds maxOutcomes")
)
