// SPDX-License-Identifier: MIT
package sim_test

import (
	"fmt"

	"github.com/katalvlaran/vecstorm/mdp"
	"github.com/katalvlaran/vecstorm/rngkey"
	"github.com/katalvlaran/vecstorm/sim"
	"github.com/katalvlaran/vecstorm/sparse"
)

// ExampleSimulator_Step shows the one-call delay between reaching a sink and
// the automatic reset of the lane.
func ExampleSimulator_Step() {
	// 0 --go--> 1 (sink, reward 1)
	tb, rb := sparse.NewBuilder(2, 1), sparse.NewBuilder(2, 1)
	_ = tb.Add(0, 0, 1, 1)
	_ = rb.Add(0, 0, 1, 1)
	tr, _ := tb.Build()
	rw, _ := rb.Build()

	m, err := mdp.New(mdp.Spec{MaxSteps: 10, Transitions: tr, Rewards: rw, Sinks: []bool{false, true}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	s := sim.New(m)
	root := rngkey.New(1)

	res, _ := s.Reset(sim.NewState(1), root.Fold(0))
	st := res.State
	for call := 1; call <= 3; call++ {
		out, _ := s.Step(st, []int{0}, root.Fold(uint64(call)))
		fmt.Printf("vertex=%d reward=%g done=%v\n", out.State.Vertices[0], out.Rewards[0], out.Done[0])
		st = out.State
	}
	// Output:
	// vertex=1 reward=1 done=true
	// vertex=0 reward=0 done=false
	// vertex=1 reward=1 done=true
}
