// SPDX-License-Identifier: MIT
// Package: vecstorm/builder
//
// impl_chain.go - implementation of Chain(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Actions are {"left","right"}; composing with a different action set
//     fails with ErrActionMismatch.
//   - Adds vertices via cfg.idFn in ascending index order; vertex n-1 is the
//     goal (sink, "goal" metalabel) and has no outgoing edges.
//   - right: i -> i+1; left: i -> max(i-1, 0). One outcome per row.
//   - Observation of vertex i is [i].
//   - Rewards: cfg.goalReward on edges entering the goal, cfg.rewardFn otherwise.
//
// Complexity:
//   - Time: O(n) vertices + O(2n) edges.
//
// Determinism:
//   - Deterministic labels via cfg.idFn and edge emission order by increasing i.

package builder

import "fmt"

// Chain returns a Constructor that builds a left/right walk towards a goal.
func Chain(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if err := validateMin(MethodChain, "n", n, MinChainNodes); err != nil {
			return err
		}
		if err := d.ensureActions(MethodChain, "left", "right"); err != nil {
			return err
		}
		d.ensureLabel(GoalLabel)

		base := d.NumVertices()
		goal := base + n - 1
		for i := 0; i < n; i++ {
			spec := VertexSpec{
				Label:       cfg.idFn(base + i),
				Observation: []float64{float64(i)},
				Value:       float64(i) / float64(n-1),
			}
			if base+i == goal {
				spec.Sink = true
				spec.Labels = []string{GoalLabel}
			}
			d.AddVertex(spec)
		}

		const left, right = 0, 1
		for i := base; i < goal; i++ {
			prev := max(i-1, base)
			if err := d.AddEdge(i, left, prev, cfg.weightFn(cfg.rng), cfg.reward(false)); err != nil {
				return fmt.Errorf("%s: %w", MethodChain, err)
			}
			if err := d.AddEdge(i, right, i+1, cfg.weightFn(cfg.rng), cfg.reward(i+1 == goal)); err != nil {
				return fmt.Errorf("%s: %w", MethodChain, err)
			}
		}

		return nil
	}
}
