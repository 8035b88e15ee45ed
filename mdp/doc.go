// Package mdp defines the immutable Markov Decision Process model simulated by sim.
//
// A Model bundles:
//
//   - transitions: sparse.Store over (vertex, action) -> next vertex, weights are
//     unnormalized probabilities.
//   - rewards: sparse.Store with the SAME row layout; rewards.Weight(i) is the
//     reward of transition edge i.
//   - per-vertex observation vectors, sink flags, allowed-action masks and
//     metalabel vectors.
//   - scalars: initial vertex, row window width (maxOutcomes), episode cap
//     (maxSteps) and the random-initialization flag.
//   - display-only names (actions, observation columns, metalabel columns) and
//     pass-through annotations (state values, state labels).
//
// Models are validated once in New and never mutated; every accessor returns
// either a scalar, a copy, or a read-only view documented as such. A Model is
// safe for any number of concurrent readers.
//
// Identity:
//
//	ID() is an xxhash content hash over everything the simulator reads plus the
//	pass-through annotations. Two models with equal contents share an ID, which
//	is what sim.Cache keys compiled simulators on. There is no global counter.
//
// Errors (sentinel):
//
//   - ErrNilStore       transitions or rewards missing.
//   - ErrRewardLayout   reward store does not share the transition index space.
//   - ErrShape          per-vertex arrays of wrong length or width.
//   - ErrInitialVertex  initial vertex out of range.
//   - ErrMaxSteps       maxSteps < 1.
//   - ErrMaxOutcomes    maxOutcomes < 1 after derivation.
//   - ErrFanOut         a row wider than maxOutcomes (unless AllowTruncatedRows).
package mdp
