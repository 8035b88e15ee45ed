// SPDX-License-Identifier: MIT
// Package sim: one batched transition with delayed auto-reset.

package sim

import "github.com/katalvlaran/vecstorm/rngkey"

// Step advances every lane by one transition.
//
// Per lane i with vertex v, counter k and action a:
//  1. awaiting = Pending[i] || sink(v).
//  2. awaiting lanes take a fresh start vertex, reward 0, done=false, steps 0;
//     a is ignored and no sampling key is consumed.
//  3. other lanes sample (next, edge) from row (v, a) with key.Fold(i) of the
//     sampling stream; reward is the reward store weight at edge (0 if none).
//  4. truncated = k+1 >= maxSteps; done = sink(next) || truncated; a done lane
//     reports steps 0, otherwise k+1.
//  5. observation and metalabel are read at the final vertex; the allowed mask
//     is all-true when done, else the vertex mask.
//
// Randomness: key splits into (sampling, reset). Lane results depend only on
// the lane index and key, never on batch chunking or worker count.
// Complexity: O(batch * (maxOutcomes + obsDim + actions + metaDim)).
func (s *Simulator) Step(st State, actions []int, key rngkey.Key) (StepResult, error) {
	if !s.cfg.unchecked {
		if err := s.checkState("Step", st); err != nil {
			return StepResult{}, err
		}
		if err := s.checkActions(st, actions); err != nil {
			return StepResult{}, err
		}
	}

	n := st.Len()
	sampleKey, resetKey := key.Split()
	resetVerts := s.initLanes(n, resetKey)
	out := newStepResult(n)

	s.forLanes(n, func(i int) {
		v := st.Vertices[i]
		steps := st.Steps[i] + 1
		truncated := steps >= s.maxSteps

		var (
			next   int
			reward float64
			done   bool
		)
		if s.awaitingReset(st, i) {
			next = resetVerts[i]
			steps = 0
		} else {
			var edge int
			next, edge = s.sample(v, actions[i], sampleKey.Fold(uint64(i)))
			if edge >= 0 {
				reward = s.rewards.Weight(edge)
			}
			done = s.model.IsSink(next) || truncated
			if done {
				steps = 0
			}
		}

		out.State.Vertices[i] = next
		out.State.Steps[i] = steps
		out.State.Pending[i] = done
		out.Rewards[i] = reward
		out.Done[i] = done
		out.Truncated[i] = truncated
		out.Observations[i] = s.observation(next)
		out.AllowedActions[i] = s.allowed(next, done)
		out.Metalabels[i] = s.metalabel(next)
	})

	return out, nil
}
