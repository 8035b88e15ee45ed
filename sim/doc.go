// Package sim is the batched transition engine: it simulates many independent
// lanes of one mdp.Model in lockstep.
//
// Overview:
//
//   - Reset draws fresh start vertices for every lane of a batch.
//   - Step samples one transition per lane from the sparse row window of
//     (vertex, action), reads the reward at the SAME edge index, counts steps,
//     truncates at maxSteps and performs the delayed auto-reset.
//
// Auto-reset protocol:
//
//	Step reports done=true exactly once, on the call whose transition entered a
//	sink or whose step counter reached maxSteps. The NEXT call for that lane
//	ignores the supplied action, places the lane on a fresh start vertex and
//	returns reward 0, done=false and steps 0. A caller can therefore drive a
//	fixed-size batch forever without ever calling Reset again.
//
// Randomness:
//
//	Every draw is a pure function of an explicit rngkey.Key. Step splits its key
//	into a sampling stream and a reset stream; lane i samples with
//	sampling.Fold(i), so results never depend on lane order, batch chunking or
//	worker count.
//
// Concurrency:
//
//	A Simulator is immutable and safe for concurrent use. States are values:
//	each call returns freshly allocated slices and never writes to its inputs.
//	WithWorkers(n) evaluates lanes in n parallel chunks; output is identical for
//	every n.
//
// Errors:
//
//	Boundary validation wraps ErrInvalidArgument (ErrEmptyBatch,
//	ErrShapeMismatch, ErrVertexOutOfRange, ErrStepsOutOfRange,
//	ErrActionOutOfRange). WithUnchecked() skips it; the algorithm itself never
//	branches on invalid input, which then yields undefined results.
//	Actions outside the allowed mask of a vertex are never checked.
package sim
