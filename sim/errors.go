// SPDX-License-Identifier: MIT
// Package sim: sentinel errors.
// Every specific sentinel wraps ErrInvalidArgument, so callers may branch on
// the umbrella kind or on the precise cause with errors.Is.

package sim

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the umbrella kind for caller contract violations.
var ErrInvalidArgument = errors.New("sim: invalid argument")

var (
	// ErrEmptyBatch indicates a batch of size 0.
	ErrEmptyBatch = fmt.Errorf("%w: empty batch", ErrInvalidArgument)

	// ErrShapeMismatch indicates per-lane slices of different lengths.
	ErrShapeMismatch = fmt.Errorf("%w: per-lane length mismatch", ErrInvalidArgument)

	// ErrVertexOutOfRange indicates a lane vertex outside [0, vertexCount).
	ErrVertexOutOfRange = fmt.Errorf("%w: vertex out of range", ErrInvalidArgument)

	// ErrStepsOutOfRange indicates a lane step counter outside [0, maxSteps].
	ErrStepsOutOfRange = fmt.Errorf("%w: steps out of range", ErrInvalidArgument)

	// ErrActionOutOfRange indicates an action id outside [0, actions).
	ErrActionOutOfRange = fmt.Errorf("%w: action out of range", ErrInvalidArgument)
)
