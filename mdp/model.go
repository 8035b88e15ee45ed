// SPDX-License-Identifier: MIT
// Package mdp: Model construction and read-only accessors.
//
// Storage:
//   - Per-vertex vectors are flattened row-major (vertex-major) into one slice
//     each: obs[v*obsDim : (v+1)*obsDim], allowed[v*actions : ...], meta[v*metaDim : ...].
//   - Slice-returning accessors hand out views into that storage; callers must
//     treat them as read-only (sim copies before returning results to users).

package mdp

import (
	"fmt"

	"github.com/katalvlaran/vecstorm/sparse"
)

// Spec is the caller-facing description consumed by New. Zero-length optional
// slices are allowed where noted.
type Spec struct {
	InitialVertex int  // fixed start vertex when RandomInit is false
	MaxOutcomes   int  // sampling window; 0 derives it from the widest transition row
	MaxSteps      int  // episode cap before truncation, >= 1
	RandomInit    bool // uniform random start vertex per episode

	Transitions *sparse.Store // (vertex, action) -> next vertex, weights = probabilities
	Rewards     *sparse.Store // same layout as Transitions, weights = rewards

	Observations   [][]float64 // optional; vertexCount rows of equal width
	Sinks          []bool      // optional; vertexCount flags
	AllowedActions [][]bool    // optional; vertexCount rows of width actions; nil derives "row non-empty"
	Metalabels     [][]bool    // optional; vertexCount rows of equal width

	ActionLabels      []string // optional display names, len == actions
	ObservationLabels []string // optional display names, len == observation width
	Labels            []string // optional metalabel column names, len == metalabel width

	StateValues []float64 // optional pass-through, len == vertexCount
	StateLabels []string  // optional pass-through, len == vertexCount
}

// Model is an immutable, validated MDP.
type Model struct {
	id ID

	initialVertex int
	maxOutcomes   int
	maxSteps      int
	randomInit    bool

	transitions *sparse.Store
	rewards     *sparse.Store

	vertices int
	actions  int
	obsDim   int
	metaDim  int

	obs     []float64
	sinks   []bool
	allowed []bool
	meta    []bool

	actionLabels      []string
	observationLabels []string
	labels            []string
	stateValues       []float64
	stateLabels       []string
}

// New validates spec, applies opts and returns the immutable Model.
// Stage 1 (Resolve): apply option overrides to a copy of the scalars.
// Stage 2 (Validate): stores, alignment, per-vertex shapes, scalars, fan-out.
// Stage 3 (Finalize): flatten per-vertex data and compute the content ID.
// Complexity: O(R + E + V*(obsDim+actions+metaDim)).
func New(spec Spec, opts ...Option) (*Model, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxSteps != nil {
		spec.MaxSteps = *o.maxSteps
	}
	if o.randomInit != nil {
		spec.RandomInit = *o.randomInit
	}
	if o.initialVertex != nil {
		spec.InitialVertex = *o.initialVertex
	}
	if o.maxOutcomes != nil {
		spec.MaxOutcomes = *o.maxOutcomes
	}

	if spec.Transitions == nil || spec.Rewards == nil {
		return nil, fmt.Errorf("New: %w", ErrNilStore)
	}
	if err := sparse.SameLayout(spec.Transitions, spec.Rewards); err != nil {
		return nil, fmt.Errorf("New: %w: %w", ErrRewardLayout, err)
	}

	n, a := spec.Transitions.Vertices(), spec.Transitions.Actions()
	m := &Model{
		initialVertex: spec.InitialVertex,
		maxOutcomes:   spec.MaxOutcomes,
		maxSteps:      spec.MaxSteps,
		randomInit:    spec.RandomInit,
		transitions:   spec.Transitions,
		rewards:       spec.Rewards,
		vertices:      n,
		actions:       a,
	}

	if m.initialVertex < 0 || m.initialVertex >= n {
		return nil, fmt.Errorf("New: initial=%d vertices=%d: %w", m.initialVertex, n, ErrInitialVertex)
	}
	if m.maxSteps < 1 {
		return nil, fmt.Errorf("New: maxSteps=%d: %w", m.maxSteps, ErrMaxSteps)
	}
	if m.maxOutcomes == 0 {
		m.maxOutcomes = spec.Transitions.MaxFanOut()
	}
	if m.maxOutcomes < 1 {
		return nil, fmt.Errorf("New: maxOutcomes=%d: %w", m.maxOutcomes, ErrMaxOutcomes)
	}
	if !o.truncateRows {
		if err := sparse.ValidateFanOut(spec.Transitions, m.maxOutcomes); err != nil {
			return nil, fmt.Errorf("New: %w: %w", ErrFanOut, err)
		}
	}

	var err error
	if m.obs, m.obsDim, err = flattenFloats(spec.Observations, n); err != nil {
		return nil, fmt.Errorf("New: observations: %w", err)
	}
	if m.meta, m.metaDim, err = flattenBools(spec.Metalabels, n, -1); err != nil {
		return nil, fmt.Errorf("New: metalabels: %w", err)
	}
	if spec.AllowedActions == nil {
		m.allowed = deriveAllowed(spec.Transitions)
	} else if m.allowed, _, err = flattenBools(spec.AllowedActions, n, a); err != nil {
		return nil, fmt.Errorf("New: allowed actions: %w", err)
	}

	m.sinks = make([]bool, n)
	if spec.Sinks != nil {
		if len(spec.Sinks) != n {
			return nil, fmt.Errorf("New: len(sinks)=%d want %d: %w", len(spec.Sinks), n, ErrShape)
		}
		copy(m.sinks, spec.Sinks)
	}

	if err = checkLen("action labels", len(spec.ActionLabels), a); err != nil {
		return nil, err
	}
	if err = checkLen("observation labels", len(spec.ObservationLabels), m.obsDim); err != nil {
		return nil, err
	}
	if err = checkLen("labels", len(spec.Labels), m.metaDim); err != nil {
		return nil, err
	}
	if err = checkLen("state values", len(spec.StateValues), n); err != nil {
		return nil, err
	}
	if err = checkLen("state labels", len(spec.StateLabels), n); err != nil {
		return nil, err
	}
	m.actionLabels = append([]string(nil), spec.ActionLabels...)
	m.observationLabels = append([]string(nil), spec.ObservationLabels...)
	m.labels = append([]string(nil), spec.Labels...)
	m.stateValues = append([]float64(nil), spec.StateValues...)
	m.stateLabels = append([]string(nil), spec.StateLabels...)

	m.id = fingerprint(m)

	return m, nil
}

// checkLen accepts an absent optional slice (0) or an exact length.
func checkLen(what string, got, want int) error {
	if got != 0 && got != want {
		return fmt.Errorf("New: len(%s)=%d want %d: %w", what, got, want, ErrShape)
	}

	return nil
}

// flattenFloats packs rows of equal width; nil/empty input yields width 0.
func flattenFloats(rows [][]float64, n int) ([]float64, int, error) {
	if len(rows) == 0 {
		return nil, 0, nil
	}
	if len(rows) != n {
		return nil, 0, fmt.Errorf("len=%d want %d: %w", len(rows), n, ErrShape)
	}
	width := len(rows[0])
	flat := make([]float64, 0, n*width)
	for v, row := range rows {
		if len(row) != width {
			return nil, 0, fmt.Errorf("vertex %d: width %d want %d: %w", v, len(row), width, ErrShape)
		}
		flat = append(flat, row...)
	}

	return flat, width, nil
}

// flattenBools packs rows of equal width. want < 0 accepts any common width
// and also accepts nil input as width 0.
func flattenBools(rows [][]bool, n, want int) ([]bool, int, error) {
	if len(rows) == 0 && want < 0 {
		return nil, 0, nil
	}
	if len(rows) != n {
		return nil, 0, fmt.Errorf("len=%d want %d: %w", len(rows), n, ErrShape)
	}
	width := want
	if width < 0 {
		width = len(rows[0])
	}
	flat := make([]bool, 0, n*width)
	for v, row := range rows {
		if len(row) != width {
			return nil, 0, fmt.Errorf("vertex %d: width %d want %d: %w", v, len(row), width, ErrShape)
		}
		flat = append(flat, row...)
	}

	return flat, width, nil
}

// deriveAllowed marks an action allowed iff its row has at least one edge.
func deriveAllowed(t *sparse.Store) []bool {
	n, a := t.Vertices(), t.Actions()
	allowed := make([]bool, n*a)
	for v := 0; v < n; v++ {
		for act := 0; act < a; act++ {
			allowed[v*a+act] = t.RowLen(v, act) > 0
		}
	}

	return allowed
}

// WithMaxSteps returns a copy of m with a different episode cap and a new ID.
// Per-vertex storage is shared with m; both models stay immutable.
func (m *Model) WithMaxSteps(n int) (*Model, error) {
	if n < 1 {
		return nil, fmt.Errorf("WithMaxSteps: maxSteps=%d: %w", n, ErrMaxSteps)
	}
	c := *m
	c.maxSteps = n
	c.id = fingerprint(&c)

	return &c, nil
}

// ID returns the content identity of the model.
func (m *Model) ID() ID { return m.id }

// NumVertices returns the vertex count.
func (m *Model) NumVertices() int { return m.vertices }

// NumActions returns the size of the action space.
func (m *Model) NumActions() int { return m.actions }

// ObservationDim returns the observation vector width.
func (m *Model) ObservationDim() int { return m.obsDim }

// MetalabelDim returns the metalabel vector width.
func (m *Model) MetalabelDim() int { return m.metaDim }

// InitialVertex returns the fixed start vertex.
func (m *Model) InitialVertex() int { return m.initialVertex }

// MaxOutcomes returns the sampling row window width.
func (m *Model) MaxOutcomes() int { return m.maxOutcomes }

// MaxSteps returns the episode length cap.
func (m *Model) MaxSteps() int { return m.maxSteps }

// RandomInit reports whether episodes start at a uniformly random vertex.
func (m *Model) RandomInit() bool { return m.randomInit }

// Transitions returns the transition store.
func (m *Model) Transitions() *sparse.Store { return m.transitions }

// Rewards returns the reward store (same layout as Transitions).
func (m *Model) Rewards() *sparse.Store { return m.rewards }

// IsSink reports whether v is terminal. Unchecked.
func (m *Model) IsSink(v int) bool { return m.sinks[v] }

// Observation returns a read-only view of v's observation vector.
func (m *Model) Observation(v int) []float64 {
	return m.obs[v*m.obsDim : (v+1)*m.obsDim]
}

// Allowed returns a read-only view of v's allowed-action mask.
func (m *Model) Allowed(v int) []bool {
	return m.allowed[v*m.actions : (v+1)*m.actions]
}

// Metalabel returns a read-only view of v's metalabel vector.
func (m *Model) Metalabel(v int) []bool {
	return m.meta[v*m.metaDim : (v+1)*m.metaDim]
}

// ActionLabels returns a copy of the action display names.
func (m *Model) ActionLabels() []string { return append([]string(nil), m.actionLabels...) }

// ObservationLabels returns a copy of the observation column names.
func (m *Model) ObservationLabels() []string { return append([]string(nil), m.observationLabels...) }

// Labels returns a copy of the metalabel column names.
func (m *Model) Labels() []string { return append([]string(nil), m.labels...) }

// StateValues returns a copy of the pass-through per-state values.
func (m *Model) StateValues() []float64 { return append([]float64(nil), m.stateValues...) }

// StateLabels returns a copy of the pass-through per-state labels.
func (m *Model) StateLabels() []string { return append([]string(nil), m.stateLabels...) }
