// SPDX-License-Identifier: MIT
// Package: vecstorm/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, actions, fanOut).
//
// Canonical model:
//   - n vertices, actions "a0".."a{k-1}"; vertex n-1 is the goal (sink).
//   - Every (vertex, action) row of a non-goal vertex gets exactly fanOut
//     distinct destinations drawn without replacement, with weights from
//     cfg.weightFn (uniform by default).
//   - Observation of vertex i is [i / (n-1)].
//
// Contract:
//   - n ≥ 2, actions ≥ 1, 1 ≤ fanOut ≤ n (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Rewards: cfg.goalReward on edges entering the goal, cfg.rewardFn otherwise.
//
// Complexity:
//   - Time: O(n*actions*n) for the per-row permutations.
//
// Determinism:
//   - Stable order: vertex asc, action asc, permutation order; deterministic
//     for a fixed seed.

package builder

import (
	"fmt"
	"strconv"
)

// RandomSparse returns a Constructor that samples a random model with a fixed
// fan-out per row.
func RandomSparse(n, actions, fanOut int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, "n", n, MinRandomVertices); err != nil {
			return err
		}
		if err := validateMin(MethodRandomSparse, "actions", actions, 1); err != nil {
			return err
		}
		if err := validateMin(MethodRandomSparse, "fanOut", fanOut, 1); err != nil {
			return err
		}
		if err := validateMin(MethodRandomSparse, "n", n, fanOut); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		names := make([]string, actions)
		for i := range names {
			names[i] = "a" + strconv.Itoa(i)
		}
		if err := d.ensureActions(MethodRandomSparse, names...); err != nil {
			return err
		}
		d.ensureLabel(GoalLabel)

		base := d.NumVertices()
		goal := base + n - 1
		for i := 0; i < n; i++ {
			spec := VertexSpec{
				Label:       cfg.idFn(base + i),
				Observation: []float64{float64(i) / float64(n-1)},
			}
			if base+i == goal {
				spec.Sink = true
				spec.Labels = []string{GoalLabel}
			}
			d.AddVertex(spec)
		}

		rng := cfg.rng
		for v := base; v < goal; v++ {
			for a := 0; a < actions; a++ {
				perm := rng.Perm(n)
				for _, k := range perm[:fanOut] {
					to := base + k
					if err := d.AddEdge(v, a, to, cfg.weightFn(rng), cfg.reward(to == goal)); err != nil {
						return fmt.Errorf("%s: %w", MethodRandomSparse, err)
					}
				}
			}
		}

		return nil
	}
}
