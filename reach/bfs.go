// Package reach explores the transition graph of an mdp.Model.
//
// An edge v -> w exists when some action a is allowed at v (unless the mask is
// ignored) and row (v, a) holds an outcome with positive weight leading to w.
// Sinks are visited but never expanded: an episode ends there. Only the first
// MaxOutcomes edges of a row count, matching what sampling can draw.
//
// BFS returns shortest transition counts, parent links and visit order;
// Analyze summarizes reachability from the model's start distribution.
package reach

import (
	"context"

	"github.com/katalvlaran/vecstorm/mdp"
)

// walker encapsulates mutable BFS state.
type walker struct {
	model *mdp.Model
	opts  Options
	ctx   context.Context
	queue []int
	res   *Result
}

// BFS runs breadth-first search on m from start, applying any number of
// functional Options.
// Returns ErrModelNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation, or
// any user-supplied hook error.
// Complexity: O(V + E) time, O(V) space.
func BFS(m *mdp.Model, start int, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrModelNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start < 0 || start >= m.NumVertices() {
		return nil, ErrStartVertexNotFound
	}

	w := newWalker(m, o)
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// newWalker allocates the result arrays with every vertex unreached.
func newWalker(m *mdp.Model, o Options) *walker {
	n := m.NumVertices()
	w := &walker{
		model: m,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	return w
}

// enqueue marks v visited at depth d and records its parent.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v := w.queue[0]
		w.queue = w.queue[1:]
		d := w.res.Depth[v]
		w.res.Order = append(w.res.Order, v)
		if err := w.opts.OnVisit(v, d); err != nil {
			return err
		}
		if w.model.IsSink(v) {
			continue
		}
		if w.opts.MaxDepth > 0 && d >= w.opts.MaxDepth {
			continue
		}
		w.expand(v, d)
	}

	return nil
}

// expand enqueues every unvisited successor of v in action, then edge order.
func (w *walker) expand(v, d int) {
	tr := w.model.Transitions()
	allowed := w.model.Allowed(v)
	for a := 0; a < w.model.NumActions(); a++ {
		if !w.opts.IgnoreMask && !allowed[a] {
			continue
		}
		lo, hi := window(w.model, v, a)
		for i := lo; i < hi; i++ {
			if tr.Weight(i) <= 0 {
				continue
			}
			next := tr.Destination(i)
			if w.res.Depth[next] < 0 {
				w.enqueue(next, d+1, v)
			}
		}
	}
}

// window returns the edges of row (v, a) the sampler can draw: at most
// MaxOutcomes from the row start.
func window(m *mdp.Model, v, a int) (lo, hi int) {
	lo, hi = m.Transitions().RowRange(v, a)

	return lo, min(hi, lo+m.MaxOutcomes())
}
