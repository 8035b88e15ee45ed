// SPDX-License-Identifier: MIT

package reach

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for traversal.
var (
	// ErrModelNil is returned if a nil model pointer is passed.
	ErrModelNil = errors.New("reach: model is nil")

	// ErrStartVertexNotFound is returned when the start index is out of range.
	ErrStartVertexNotFound = errors.New("reach: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("reach: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(vertex, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// IgnoreMask follows every row with edges, not only the allowed ones.
	IgnoreMask bool

	err error
}

// DefaultOptions returns Options with a background context, no depth limit,
// mask-respecting edges and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(int, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(vertex, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithIgnoreMask follows rows regardless of the allowed-action mask.
func WithIgnoreMask() Option {
	return func(o *Options) {
		o.IgnoreMask = true
	}
}

// Result holds the outcome of a traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: per-vertex distance (in transitions) from the start, -1 if unreached.
//   - Parent: per-vertex predecessor in the BFS tree, -1 for the start and
//     unreached vertices.
type Result struct {
	Order  []int
	Depth  []int
	Parent []int
}

// Reached reports whether v was visited.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0
}

// PathTo reconstructs the vertex path from the start vertex to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("reach: no path to %d", dest)
	}
	path := []int{}
	for cur := dest; cur >= 0; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
