// SPDX-License-Identifier: MIT
// Package: vecstorm/builder
//
// impl_grid.go: implementation of GridWorld(rows, cols, slip) constructor.
//
// Canonical model:
//   • rows×cols cells, 4 actions {"up","down","left","right"}.
//   • State labels use a fixed, documented scheme "r,c" (row-major order).
//     This is a deliberate exception to cfg.idFn to keep coordinates explicit.
//   • The bottom-right cell is the goal (sink, "goal" metalabel).
//   • A move into a wall leaves the agent in place. Otherwise the intended
//     move succeeds with probability 1-slip and the agent stays with
//     probability slip (two outcomes per row).
//   • Observation of cell (r,c) is [r, c].
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 and rows*cols ≥ 2 (else ErrTooFewVertices).
//   • 0 ≤ slip < 1 (else ErrInvalidProbability).
//   • Rewards: cfg.goalReward on edges entering the goal, cfg.rewardFn otherwise.
//
// Complexity:
//   • Time: O(rows*cols) vertices + O(8*rows*cols) edges.
//
// Determinism:
//   • Stable vertex order: row-major. Stable edge order: per cell, actions in
//     declaration order, intended outcome before the slip outcome.

package builder

import "fmt"

// File-local constants: ID format and action deltas (no magic literals).
const gridIDFmt = "%d,%d"

var gridMoves = [4]struct {
	name   string
	dr, dc int
}{
	{"up", -1, 0},
	{"down", 1, 0},
	{"left", 0, -1},
	{"right", 0, 1},
}

// GridWorld returns a Constructor that builds a slippery rows×cols grid world.
func GridWorld(rows, cols int, slip float64) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim || rows*cols < 2 {
			return fmt.Errorf("%s: rows=%d, cols=%d (each ≥ %d, at least 2 cells): %w",
				MethodGridWorld, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		if err := validateSlip(MethodGridWorld, slip); err != nil {
			return err
		}
		names := make([]string, len(gridMoves))
		for i, mv := range gridMoves {
			names[i] = mv.name
		}
		if err := d.ensureActions(MethodGridWorld, names...); err != nil {
			return err
		}
		d.ensureLabel(GoalLabel)
		if len(d.observationLabels) == 0 {
			d.SetObservationLabels("row", "col")
		}

		base := d.NumVertices()
		cell := func(r, c int) int { return base + r*cols + c }
		goal := cell(rows-1, cols-1)

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				spec := VertexSpec{
					Label:       fmt.Sprintf(gridIDFmt, r, c),
					Observation: []float64{float64(r), float64(c)},
					Value:       -float64((rows - 1 - r) + (cols - 1 - c)),
				}
				if cell(r, c) == goal {
					spec.Sink = true
					spec.Labels = []string{GoalLabel}
				}
				d.AddVertex(spec)
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				from := cell(r, c)
				if from == goal {
					continue
				}
				for a, mv := range gridMoves {
					nr, nc := r+mv.dr, c+mv.dc
					to := from
					if nr >= 0 && nr < rows && nc >= 0 && nc < cols {
						to = cell(nr, nc)
					}
					if to == from || slip == 0 {
						if err := d.AddEdge(from, a, to, 1, cfg.reward(to == goal)); err != nil {
							return fmt.Errorf("%s: %w", MethodGridWorld, err)
						}
						continue
					}
					if err := d.AddEdge(from, a, to, 1-slip, cfg.reward(to == goal)); err != nil {
						return fmt.Errorf("%s: %w", MethodGridWorld, err)
					}
					if err := d.AddEdge(from, a, from, slip, cfg.reward(false)); err != nil {
						return fmt.Errorf("%s: %w", MethodGridWorld, err)
					}
				}
			}
		}

		return nil
	}
}
