// SPDX-License-Identifier: MIT
// Package rollout drives a sim.Simulator with a policy and aggregates the
// episodes it produces.
package rollout

import "errors"

var (
	// ErrInvalidConfig indicates a non-positive batch or step count, or a nil
	// policy.
	ErrInvalidConfig = errors.New("rollout: invalid config")

	// ErrBadPolicy indicates a policy spec that cannot be parsed or names an
	// action the model does not have.
	ErrBadPolicy = errors.New("rollout: bad policy")
)
