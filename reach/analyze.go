package reach

import (
	"context"

	"github.com/katalvlaran/vecstorm/mdp"
)

// Report summarizes reachability from the model's start distribution: the
// initial vertex, or every vertex when the model uses random initialization.
type Report struct {
	Reachable     []int // ascending
	Unreachable   []int // ascending
	DeadEnds      []int // reachable non-sink vertices with no usable outgoing edge
	SinkReachable bool  // some sink can be reached
}

// Analyze runs one multi-source traversal from every possible start vertex
// and classifies every vertex.
// Complexity: O(V + E).
func Analyze(ctx context.Context, m *mdp.Model) (*Report, error) {
	if m == nil {
		return nil, ErrModelNil
	}
	n := m.NumVertices()
	o := DefaultOptions()
	WithContext(ctx)(&o)
	w := newWalker(m, o)
	if m.RandomInit() {
		for v := 0; v < n; v++ {
			w.enqueue(v, 0, -1)
		}
	} else {
		w.enqueue(m.InitialVertex(), 0, -1)
	}
	if err := w.loop(); err != nil {
		return nil, err
	}

	rep := &Report{}
	for v := 0; v < n; v++ {
		if w.res.Depth[v] < 0 {
			rep.Unreachable = append(rep.Unreachable, v)
			continue
		}
		rep.Reachable = append(rep.Reachable, v)
		if m.IsSink(v) {
			rep.SinkReachable = true
			continue
		}
		if !hasExit(m, v) {
			rep.DeadEnds = append(rep.DeadEnds, v)
		}
	}

	return rep, nil
}

// hasExit reports whether some allowed action at v has a positive-weight edge.
func hasExit(m *mdp.Model, v int) bool {
	tr := m.Transitions()
	allowed := m.Allowed(v)
	for a := 0; a < m.NumActions(); a++ {
		if !allowed[a] {
			continue
		}
		lo, hi := window(m, v, a)
		for i := lo; i < hi; i++ {
			if tr.Weight(i) > 0 {
				return true
			}
		}
	}

	return false
}
