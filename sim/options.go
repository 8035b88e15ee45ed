// SPDX-License-Identifier: MIT
// Package sim: functional options for New and NewCache.

package sim

// Option configures a Simulator.
type Option func(*config)

// config holds the resolved knobs.
type config struct {
	workers   int  // parallel lane chunks; 1 = sequential
	unchecked bool // skip boundary validation
}

// defaultConfig returns sequential execution with validation on.
func defaultConfig() config {
	return config{workers: 1}
}

// WithWorkers evaluates lanes in up to n parallel chunks. Panics if n < 1.
// Results are identical for every n.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("sim: WithWorkers(n<1)")
	}
	return func(c *config) {
		c.workers = n
	}
}

// WithUnchecked disables the O(batch) boundary validation in Reset and Step.
// Invalid input then produces undefined results instead of an error.
func WithUnchecked() Option {
	return func(c *config) {
		c.unchecked = true
	}
}
