// SPDX-License-Identifier: MIT
// Package: vecstorm/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`; sentinels carry no parameters.
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, fan-out)
// is smaller than the allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside its documented interval
// (GridWorld slip must lie in [0,1)).
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// RNG in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownVertex indicates a vertex index that the Draft does not hold.
var ErrUnknownVertex = errors.New("builder: unknown vertex")

// ErrUnknownAction indicates an action index outside the Draft's action set.
var ErrUnknownAction = errors.New("builder: unknown action")

// ErrInvalidWeight indicates a negative, NaN or infinite transition weight, or
// a non-finite reward.
var ErrInvalidWeight = errors.New("builder: invalid weight")

// ErrActionMismatch indicates that composed constructors disagree on the
// action set of the shared Draft.
var ErrActionMismatch = errors.New("builder: action set mismatch")

// ErrConstructFailed indicates that a Draft could not be turned into a model
// (empty draft, nil constructor, or a model-level validation failure).
var ErrConstructFailed = errors.New("builder: construction failed")
