// SPDX-License-Identifier: MIT
package builder_test

import (
	"fmt"

	"github.com/katalvlaran/vecstorm/builder"
)

// ExampleGridWorld builds a 3×3 slippery grid and prints its shape.
func ExampleGridWorld() {
	m, err := builder.BuildModel(
		[]builder.BuilderOption{builder.WithStepReward(-0.1), builder.WithMaxSteps(50)},
		builder.GridWorld(3, 3, 0.2),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m.NumVertices(), m.NumActions(), m.MaxOutcomes(), m.MaxSteps())
	fmt.Println(m.ActionLabels())
	// Output:
	// 9 4 2 50
	// [up down left right]
}
