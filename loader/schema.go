// SPDX-License-Identifier: MIT

package loader

// hclFile is the top-level structure of a model file for decoding.
type hclFile struct {
	Models []*hclModel `hcl:"model,block"`
}

type hclModel struct {
	Name              string      `hcl:"name,label"`
	Actions           []string    `hcl:"actions"`
	Initial           *string     `hcl:"initial,optional"`
	MaxSteps          *int        `hcl:"max_steps,optional"`
	RandomInit        *bool       `hcl:"random_init,optional"`
	MaxOutcomes       *int        `hcl:"max_outcomes,optional"`
	ObservationLabels []string    `hcl:"observation_labels,optional"`
	Labels            []string    `hcl:"labels,optional"`
	States            []*hclState `hcl:"state,block"`
}

type hclState struct {
	Name        string       `hcl:"name,label"`
	Observation []float64    `hcl:"observation,optional"`
	Sink        bool         `hcl:"sink,optional"`
	Labels      []string     `hcl:"labels,optional"`
	Value       float64      `hcl:"value,optional"`
	Forbid      []string     `hcl:"forbid,optional"`
	Actions     []*hclAction `hcl:"action,block"`
}

type hclAction struct {
	Name     string        `hcl:"name,label"`
	Outcomes []*hclOutcome `hcl:"outcome,block"`
}

type hclOutcome struct {
	To     string   `hcl:"to,label"`
	Weight *float64 `hcl:"weight,optional"`
	Reward float64  `hcl:"reward,optional"`
}
