// SPDX-License-Identifier: MIT

package rollout

import (
	"context"
	"fmt"

	"github.com/katalvlaran/vecstorm/internal/ctxlog"
	"github.com/katalvlaran/vecstorm/rngkey"
	"github.com/katalvlaran/vecstorm/sim"
)

// Config parameterizes Run.
type Config struct {
	Batch  int        // lanes
	Steps  int        // Step calls after the initial Reset
	Key    rngkey.Key // root key; the whole run is a function of it
	Policy Policy
}

// Episode is one finished episode of one lane.
type Episode struct {
	Lane        int
	Index       int // per-lane episode counter, from 0
	Length      int // transitions taken
	Return      float64
	Truncated   bool // ended by the step cap rather than a sink
	FinalVertex int
}

// Sink receives the episodes finished by each Step call, in lane order.
type Sink interface {
	Record(ctx context.Context, episodes []Episode) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, episodes []Episode) error

// Record calls f.
func (f SinkFunc) Record(ctx context.Context, episodes []Episode) error { return f(ctx, episodes) }

// Summary aggregates a run. Episodes still in progress when the run ends
// are counted in Incomplete only.
type Summary struct {
	Episodes   int
	Incomplete int
	TotalSteps int       // lane transitions, reset calls excluded
	MeanReturn float64   // over finished episodes
	MeanLength float64   // over finished episodes
	Returns    []float64 // finished episode returns, in completion order
}

// Run resets a batch once, then calls Step cfg.Steps times with actions from
// cfg.Policy, reporting finished episodes to sink (which may be nil).
//
// A lane awaiting its auto-reset contributes neither length nor return on that
// call. Keys: cfg.Key splits into (reset, loop); call t uses loop.Fold(t),
// split again into (policy, step).
//
// Returns ErrInvalidConfig, any simulator or sink error, or ctx.Err() if ctx
// is cancelled between steps; the partial Summary accompanies a ctx error.
func Run(ctx context.Context, s *sim.Simulator, cfg Config, sink Sink) (*Summary, error) {
	if s == nil || cfg.Batch < 1 || cfg.Steps < 1 || cfg.Policy == nil {
		return nil, fmt.Errorf("Run: batch=%d steps=%d policy=%v: %w", cfg.Batch, cfg.Steps, cfg.Policy != nil, ErrInvalidConfig)
	}
	logger := ctxlog.FromContext(ctx)
	model := s.Model()

	resetKey, loopKey := cfg.Key.Split()
	rr, err := s.Reset(sim.NewState(cfg.Batch), resetKey)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	st, allowed := rr.State, rr.AllowedActions

	var (
		returns = make([]float64, cfg.Batch)
		lengths = make([]int, cfg.Batch)
		index   = make([]int, cfg.Batch)
		sum     = &Summary{}
		total   float64
		totLen  int
	)
	finish := func() *Summary {
		for i := range lengths {
			if lengths[i] > 0 {
				sum.Incomplete++
			}
		}
		if sum.Episodes > 0 {
			sum.MeanReturn = total / float64(sum.Episodes)
			sum.MeanLength = float64(totLen) / float64(sum.Episodes)
		}

		return sum
	}

	logger.Info("Rollout started.", "batch", cfg.Batch, "steps", cfg.Steps, "model", model.ID().String(), "key", cfg.Key.String())
	for t := 0; t < cfg.Steps; t++ {
		if err := ctx.Err(); err != nil {
			return finish(), err
		}

		policyKey, stepKey := loopKey.Fold(uint64(t)).Split()
		actions := cfg.Policy.Act(allowed, policyKey)
		out, err := s.Step(st, actions, stepKey)
		if err != nil {
			return nil, fmt.Errorf("Run: step %d: %w", t, err)
		}

		var done []Episode
		for i := 0; i < cfg.Batch; i++ {
			if st.Pending[i] || model.IsSink(st.Vertices[i]) {
				continue
			}
			sum.TotalSteps++
			lengths[i]++
			returns[i] += out.Rewards[i]
			if !out.Done[i] {
				continue
			}
			next := out.State.Vertices[i]
			ep := Episode{
				Lane:        i,
				Index:       index[i],
				Length:      lengths[i],
				Return:      returns[i],
				Truncated:   out.Truncated[i] && !model.IsSink(next),
				FinalVertex: next,
			}
			done = append(done, ep)
			sum.Episodes++
			sum.Returns = append(sum.Returns, ep.Return)
			total += ep.Return
			totLen += ep.Length
			index[i]++
			lengths[i], returns[i] = 0, 0
		}
		if len(done) > 0 && sink != nil {
			if err := sink.Record(ctx, done); err != nil {
				return nil, fmt.Errorf("Run: step %d: record: %w", t, err)
			}
		}

		st, allowed = out.State, out.AllowedActions
	}

	finish()
	logger.Info("Rollout finished.",
		"episodes", sum.Episodes,
		"incomplete", sum.Incomplete,
		"lane_steps", sum.TotalSteps,
		"mean_return", sum.MeanReturn,
		"mean_length", sum.MeanLength,
	)

	return sum, nil
}
