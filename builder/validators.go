// Package builder provides validation helpers to enforce parameter contracts
// in Constructor factories and Draft methods.
package builder

import (
	"fmt"
	"math"
)

// validateMin ensures that got ≥ min, wrapping ErrTooFewVertices otherwise.
// Complexity: O(1).
func validateMin(method, what string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, what, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateSlip enforces p ∈ [MinProbability, MaxProbability).
func validateSlip(method string, p float64) error {
	if math.IsNaN(p) || p < MinProbability || p >= MaxProbability {
		return fmt.Errorf("%s: slip=%g not in [%.1f,%.1f): %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// validateWeight rejects negative or non-finite transition weights.
func validateWeight(method string, w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return fmt.Errorf("%s: weight=%g: %w", method, w, ErrInvalidWeight)
	}

	return nil
}

// validateReward rejects non-finite rewards.
func validateReward(method string, r float64) error {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return fmt.Errorf("%s: reward=%g: %w", method, r, ErrInvalidWeight)
	}

	return nil
}
