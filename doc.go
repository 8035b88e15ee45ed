// Package vecstorm is a batched simulator for sparse Markov Decision
// Processes: thousands of independent episodes advanced in lock-step, with
// every random draw derived from an explicit key.
//
// 🚀 What is inside?
//
//	• Sparse rows: compressed (vertex, action) -> outcomes storage
//	• Models: immutable MDPs with content-hash identity
//	• Simulation: batched Reset / Step with delayed auto-reset
//	• Building: Draft assembly, grid/chain/random families, HCL model files
//	• Analysis: breadth-first reachability and dead-end detection
//	• Rollouts: policies, episode aggregation, SQLite records, HTML charts
//
// Under the hood the work is split into small packages:
//
//	sparse/       - CSR rows keyed by (vertex, action), builder & validators
//	rngkey/       - splittable random keys (no ambient RNG state)
//	mdp/          - the Model, its options and identity
//	sim/          - Simulator, lane parallelism and the simulator cache
//	builder/      - Draft plus Chain, GridWorld, RandomSparse constructors
//	loader/       - HCL model files -> mdp.Model
//	reach/        - BFS over allowed transitions, reachability reports
//	rollout/      - policies and the rollout driver
//	store/sqlite/ - run and episode persistence
//	report/       - go-echarts return curves
//
// Quick example, a 1x2 corridor whose right cell is the goal:
//
//	[start] ──right──▶ [goal]
//
//	m, _ := builder.BuildModel(nil, builder.Chain(2))
//	s := sim.New(m)
//	r, _ := s.Reset(sim.NewState(4), rngkey.New(1))
//	out, _ := s.Step(r.State, []int{1, 1, 1, 1}, rngkey.New(2))
//	// out.Done == [true true true true], out.Rewards == [1 1 1 1]
//
// The vecstorm command (cmd/vecstorm) runs rollouts from the shell.
package vecstorm
