// SPDX-License-Identifier: MIT
// Package: mdp
//
// options.go: functional options for New.
//
// Contract:
//   - Options override the scalar fields of Spec after it is copied.
//   - Option constructors panic on meaningless values (negative steps, ...);
//     New itself only returns errors.

package mdp

// Option customizes model construction.
type Option func(*options)

// options holds resolved overrides; nil pointer means "keep Spec value".
type options struct {
	maxSteps      *int
	randomInit    *bool
	initialVertex *int
	maxOutcomes   *int
	truncateRows  bool
}

// WithMaxSteps overrides the episode length cap. Panics if n < 1.
func WithMaxSteps(n int) Option {
	if n < 1 {
		panic("mdp: WithMaxSteps(n<1)")
	}
	return func(o *options) {
		o.maxSteps = &n
	}
}

// WithRandomInit overrides the random-initialization flag.
func WithRandomInit(random bool) Option {
	return func(o *options) {
		o.randomInit = &random
	}
}

// WithInitialVertex overrides the fixed start vertex. Panics if v < 0;
// the upper bound is checked by New.
func WithInitialVertex(v int) Option {
	if v < 0 {
		panic("mdp: WithInitialVertex(v<0)")
	}
	return func(o *options) {
		o.initialVertex = &v
	}
}

// WithMaxOutcomes overrides the sampling row window. Panics if k < 1.
func WithMaxOutcomes(k int) Option {
	if k < 1 {
		panic("mdp: WithMaxOutcomes(k<1)")
	}
	return func(o *options) {
		o.maxOutcomes = &k
	}
}

// AllowTruncatedRows disables the fan-out check. Rows wider than maxOutcomes
// then lose the probability mass of edges beyond the window at sampling time.
func AllowTruncatedRows() Option {
	return func(o *options) {
		o.truncateRows = true
	}
}
