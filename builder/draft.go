// SPDX-License-Identifier: MIT
// Package: vecstorm/builder
//
// draft.go: Draft, an incremental model under construction.
//
// Contract:
//   • Vertices are dense indices in insertion order; labels are optional and
//     may be looked up with Lookup.
//   • Edges are stored once and emitted into BOTH sparse stores by Model, so
//     the transition/reward index alignment holds by construction.
//   • The allowed mask of (v, a) defaults to "row has at least one edge";
//     AllowAction overrides single entries.
//   • Draft is not safe for concurrent mutation.
//
// Complexity:
//   • AddVertex/AddEdge: amortized O(1).
//   • Model: O(V*(obsDim+actions+metaDim) + E).

package builder

import (
	"fmt"

	"github.com/katalvlaran/vecstorm/mdp"
	"github.com/katalvlaran/vecstorm/sparse"
)

// VertexSpec describes one vertex of a Draft.
type VertexSpec struct {
	Label       string    // optional state name
	Observation []float64 // all vertices must agree on the width (0 = none)
	Sink        bool      // terminal vertex
	Labels      []string  // metalabel columns set on this vertex
	Value       float64   // opaque pass-through state value
}

// draftEdge is one (from, action) -> to outcome.
type draftEdge struct {
	from, action, to int
	weight, reward   float64
}

// allowKey addresses one entry of the allowed mask.
type allowKey struct{ vertex, action int }

// Draft accumulates vertices and edges for one model.
type Draft struct {
	actionLabels      []string
	observationLabels []string
	labels            []string

	vertices []VertexSpec
	byLabel  map[string]int
	edges    []draftEdge
	allow    map[allowKey]bool
	initial  int
}

// NewDraft returns an empty Draft with the given action names.
func NewDraft(actionLabels ...string) *Draft {
	return &Draft{
		actionLabels: append([]string(nil), actionLabels...),
		byLabel:      make(map[string]int),
		allow:        make(map[allowKey]bool),
	}
}

// NumActions returns the size of the action set.
func (d *Draft) NumActions() int { return len(d.actionLabels) }

// NumVertices returns the number of vertices added so far.
func (d *Draft) NumVertices() int { return len(d.vertices) }

// NumEdges returns the number of edges added so far.
func (d *Draft) NumEdges() int { return len(d.edges) }

// ActionLabels returns a copy of the action names.
func (d *Draft) ActionLabels() []string { return append([]string(nil), d.actionLabels...) }

// Action returns the index of the named action.
func (d *Draft) Action(name string) (int, bool) {
	for i, a := range d.actionLabels {
		if a == name {
			return i, true
		}
	}

	return -1, false
}

// SetObservationLabels sets the display names of the observation columns.
func (d *Draft) SetObservationLabels(names ...string) {
	d.observationLabels = append([]string(nil), names...)
}

// SetLabels declares the metalabel columns. VertexSpec.Labels entries must
// name one of them.
func (d *Draft) SetLabels(names ...string) {
	d.labels = append([]string(nil), names...)
}

// ensureActions sets the action set of an empty-action Draft, or verifies
// that an existing set matches.
func (d *Draft) ensureActions(method string, names ...string) error {
	if len(d.actionLabels) == 0 {
		d.actionLabels = append([]string(nil), names...)
		return nil
	}
	if len(d.actionLabels) != len(names) {
		return fmt.Errorf("%s: have %v, want %v: %w", method, d.actionLabels, names, ErrActionMismatch)
	}
	for i := range names {
		if d.actionLabels[i] != names[i] {
			return fmt.Errorf("%s: have %v, want %v: %w", method, d.actionLabels, names, ErrActionMismatch)
		}
	}

	return nil
}

// ensureLabel adds a metalabel column if it is not declared yet.
func (d *Draft) ensureLabel(name string) {
	for _, l := range d.labels {
		if l == name {
			return
		}
	}
	d.labels = append(d.labels, name)
}

// AddVertex appends a vertex and returns its index. A non-empty label
// registers the vertex for Lookup; the first vertex with a label wins.
func (d *Draft) AddVertex(spec VertexSpec) int {
	idx := len(d.vertices)
	spec.Observation = append([]float64(nil), spec.Observation...)
	spec.Labels = append([]string(nil), spec.Labels...)
	d.vertices = append(d.vertices, spec)
	if spec.Label != "" {
		if _, dup := d.byLabel[spec.Label]; !dup {
			d.byLabel[spec.Label] = idx
		}
	}

	return idx
}

// Lookup returns the index of the vertex labelled name.
func (d *Draft) Lookup(name string) (int, bool) {
	idx, ok := d.byLabel[name]
	return idx, ok
}

// AddEdge adds the outcome (from, action) -> to with a transition weight and
// a reward. Weights need not be normalized; zero weights are kept but never
// sampled.
func (d *Draft) AddEdge(from, action, to int, weight, reward float64) error {
	const method = MethodDraft + ".AddEdge"
	if err := d.checkVertex(method, from); err != nil {
		return err
	}
	if err := d.checkVertex(method, to); err != nil {
		return err
	}
	if err := d.checkAction(method, action); err != nil {
		return err
	}
	if err := validateWeight(method, weight); err != nil {
		return err
	}
	if err := validateReward(method, reward); err != nil {
		return err
	}
	d.edges = append(d.edges, draftEdge{from: from, action: action, to: to, weight: weight, reward: reward})

	return nil
}

// AllowAction overrides the allowed-mask entry of (vertex, action).
func (d *Draft) AllowAction(vertex, action int, allowed bool) error {
	const method = MethodDraft + ".AllowAction"
	if err := d.checkVertex(method, vertex); err != nil {
		return err
	}
	if err := d.checkAction(method, action); err != nil {
		return err
	}
	d.allow[allowKey{vertex, action}] = allowed

	return nil
}

// SetInitial selects the fixed start vertex (default 0).
func (d *Draft) SetInitial(vertex int) error {
	if err := d.checkVertex(MethodDraft+".SetInitial", vertex); err != nil {
		return err
	}
	d.initial = vertex

	return nil
}

func (d *Draft) checkVertex(method string, v int) error {
	if v < 0 || v >= len(d.vertices) {
		return fmt.Errorf("%s: vertex %d of %d: %w", method, v, len(d.vertices), ErrUnknownVertex)
	}

	return nil
}

func (d *Draft) checkAction(method string, a int) error {
	if a < 0 || a >= len(d.actionLabels) {
		return fmt.Errorf("%s: action %d of %d: %w", method, a, len(d.actionLabels), ErrUnknownAction)
	}

	return nil
}

// Model validates the draft and returns the immutable model. opts are applied
// by mdp.New on top of the draft's own settings (initial vertex,
// DefaultMaxSteps).
// Stage 1 (Validate): non-empty vertex and action sets, metalabel names.
// Stage 2 (Stores): one pass over the edges into two sparse builders.
// Stage 3 (Per-vertex): observations, sinks, metalabels, allowed overrides.
func (d *Draft) Model(opts ...mdp.Option) (*mdp.Model, error) {
	const method = MethodDraft + ".Model"
	n, a := len(d.vertices), len(d.actionLabels)
	if n == 0 || a == 0 {
		return nil, fmt.Errorf("%s: vertices=%d actions=%d: %w", method, n, a, ErrConstructFailed)
	}

	labelCol := make(map[string]int, len(d.labels))
	for i, l := range d.labels {
		labelCol[l] = i
	}

	tb, rb := sparse.NewBuilder(n, a), sparse.NewBuilder(n, a)
	for _, e := range d.edges {
		if err := tb.Add(e.from, e.action, e.to, e.weight); err != nil {
			return nil, fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
		}
		if err := rb.Add(e.from, e.action, e.to, e.reward); err != nil {
			return nil, fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
		}
	}
	transitions, err := tb.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}
	rewards, err := rb.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}

	spec := mdp.Spec{
		InitialVertex:     d.initial,
		MaxSteps:          DefaultMaxSteps,
		Transitions:       transitions,
		Rewards:           rewards,
		Sinks:             make([]bool, n),
		ActionLabels:      d.ActionLabels(),
		ObservationLabels: append([]string(nil), d.observationLabels...),
		Labels:            append([]string(nil), d.labels...),
		StateValues:       make([]float64, n),
		StateLabels:       make([]string, n),
	}

	hasObs := false
	for _, v := range d.vertices {
		if len(v.Observation) > 0 {
			hasObs = true
			break
		}
	}
	if hasObs {
		spec.Observations = make([][]float64, n)
	}
	if len(d.labels) > 0 {
		spec.Metalabels = make([][]bool, n)
	}
	for i, v := range d.vertices {
		spec.Sinks[i] = v.Sink
		spec.StateValues[i] = v.Value
		spec.StateLabels[i] = v.Label
		if hasObs {
			spec.Observations[i] = v.Observation
		}
		if spec.Metalabels != nil {
			spec.Metalabels[i] = make([]bool, len(d.labels))
		}
		for _, l := range v.Labels {
			col, ok := labelCol[l]
			if !ok {
				return nil, fmt.Errorf("%s: vertex %d: undeclared label %q: %w", method, i, l, ErrConstructFailed)
			}
			spec.Metalabels[i][col] = true
		}
	}

	if len(d.allow) > 0 {
		spec.AllowedActions = make([][]bool, n)
		for v := 0; v < n; v++ {
			row := make([]bool, a)
			for act := 0; act < a; act++ {
				row[act] = transitions.RowLen(v, act) > 0
			}
			spec.AllowedActions[v] = row
		}
		for k, allowed := range d.allow {
			spec.AllowedActions[k.vertex][k.action] = allowed
		}
	}

	m, err := mdp.New(spec, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}

	return m, nil
}
