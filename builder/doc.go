// Package builder assembles mdp.Model values from named vertices and edges,
// and ships deterministic model families for tests, examples and the CLI.
//
// The package offers the following key components:
//
//   - Draft: an incremental model under construction.
//     – AddVertex / AddEdge / AllowAction / SetInitial.
//     – Model(opts...) emits aligned transition and reward stores from ONE
//     edge list, so the shared edge index is correct by construction.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID scheme, weight and reward functions,
//     episode cap and start policy.
//   - State label schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – ExcelColumnIDFn:   Excel‐style columns ("A","Z","AA",…).
//     – HexIDFn:           lowercase hexadecimal ("0","a","ff",…).
//     – SymbolNumberIDFn:  prefix + decimal ("s0","s1",…).
//   - Transition weight and reward distributions (WeightFn implementations):
//     – DefaultWeightFn, ConstantWeightFn, UniformWeightFn, NormalWeightFn,
//     ExponentialWeightFn.
//   - Model families (Constructor implementations):
//     – Chain(n):                 walk left/right towards a goal at the end.
//     – GridWorld(rows,cols,slip): 4-action grid with slippery moves.
//     – RandomSparse(n,a,fanOut):  random fixed fan-out rows, one sink.
//
// Guarantees:
//
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Structured runtime errors (sentinels wrapped with %w) for invalid build
//     parameters; constructors never panic.
//   - Determinism: same inputs, options and seed ⇒ identical models (and
//     therefore identical model IDs).
//
// See individual function documentation for detailed contracts and complexity.
package builder
