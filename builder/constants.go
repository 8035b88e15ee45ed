// Package builder defines shared constants used by the model families,
// ensuring consistent defaults and validation across constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodChain is the canonical name for the Chain constructor.
	MethodChain = "Chain"
	// MethodGridWorld is the canonical name for the GridWorld constructor.
	MethodGridWorld = "GridWorld"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodDraft is the canonical prefix for Draft method errors.
	MethodDraft = "Draft"
)

//-----------------------------------------------------------------------------
// Minimum sizes
//-----------------------------------------------------------------------------

// MinChainNodes is the smallest meaningful chain: one start plus one goal.
const MinChainNodes = 2

// MinGridDim is the smallest allowed dimension (rows or cols) for GridWorld.
// A 1×1 grid is a lone goal cell and therefore rejected; see GridWorld.
const MinGridDim = 1

// MinRandomVertices is the smallest RandomSparse model: one live vertex and the sink.
const MinRandomVertices = 2

//-----------------------------------------------------------------------------
// Defaults
//-----------------------------------------------------------------------------

// DefaultMaxSteps is the episode cap of built models unless WithMaxSteps is set.
const DefaultMaxSteps = 100

// DefaultGoalReward is paid on every transition entering a goal (sink) vertex.
const DefaultGoalReward = 1.0

// GoalLabel is the metalabel column name marking goal vertices.
const GoalLabel = "goal"

// MinProbability and MaxProbability bound probability parameters.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
