// SPDX-License-Identifier: MIT
// Package sim: Simulator construction.

package sim

import (
	"github.com/katalvlaran/vecstorm/mdp"
	"github.com/katalvlaran/vecstorm/sparse"
)

// Simulator runs batches of lanes over one immutable model.
// It caches the structural constants of the model so the per-lane loops read
// only plain fields.
type Simulator struct {
	model *mdp.Model
	cfg   config

	transitions *sparse.Store
	rewards     *sparse.Store

	vertices    int
	actions     int
	maxOutcomes int
	maxSteps    int
	randomInit  bool
	initial     int

	allTrue []bool // shared template for the relaxed mask, never handed out
}

// New builds a Simulator for m. Panics if m is nil, as with any constructor
// given a meaningless argument.
func New(m *mdp.Model, opts ...Option) *Simulator {
	if m == nil {
		panic("sim: New(nil model)")
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	allTrue := make([]bool, m.NumActions())
	for i := range allTrue {
		allTrue[i] = true
	}

	return &Simulator{
		model:       m,
		cfg:         cfg,
		transitions: m.Transitions(),
		rewards:     m.Rewards(),
		vertices:    m.NumVertices(),
		actions:     m.NumActions(),
		maxOutcomes: m.MaxOutcomes(),
		maxSteps:    m.MaxSteps(),
		randomInit:  m.RandomInit(),
		initial:     m.InitialVertex(),
		allTrue:     allTrue,
	}
}

// Model returns the simulated model.
func (s *Simulator) Model() *mdp.Model { return s.model }

// Workers returns the configured parallelism.
func (s *Simulator) Workers() int { return s.cfg.workers }

// observation returns a caller-owned copy of v's observation row.
func (s *Simulator) observation(v int) []float64 {
	return append([]float64(nil), s.model.Observation(v)...)
}

// metalabel returns a caller-owned copy of v's metalabel row.
func (s *Simulator) metalabel(v int) []bool {
	return append([]bool(nil), s.model.Metalabel(v)...)
}

// allowed returns a caller-owned copy of v's allowed mask, or an all-true
// mask when relax is set.
func (s *Simulator) allowed(v int, relax bool) []bool {
	if relax {
		return append([]bool(nil), s.allTrue...)
	}

	return append([]bool(nil), s.model.Allowed(v)...)
}
