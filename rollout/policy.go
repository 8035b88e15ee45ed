// SPDX-License-Identifier: MIT

package rollout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/vecstorm/mdp"
	"github.com/katalvlaran/vecstorm/rngkey"
)

// Policy chooses one action per lane from the lanes' allowed masks.
// Implementations must be deterministic in key.
type Policy interface {
	Act(allowed [][]bool, key rngkey.Key) []int
}

// PolicyFunc adapts a function to Policy.
type PolicyFunc func(allowed [][]bool, key rngkey.Key) []int

// Act calls f.
func (f PolicyFunc) Act(allowed [][]bool, key rngkey.Key) []int { return f(allowed, key) }

// Uniform picks uniformly among each lane's allowed actions using key.Fold(i)
// for lane i; a lane with no allowed action gets action 0.
func Uniform() Policy {
	return PolicyFunc(func(allowed [][]bool, key rngkey.Key) []int {
		out := make([]int, len(allowed))
		for i, mask := range allowed {
			count := 0
			for _, ok := range mask {
				if ok {
					count++
				}
			}
			if count == 0 {
				continue
			}
			pick := int(key.Fold(uint64(i)).Float64() * float64(count))
			if pick >= count {
				pick = count - 1
			}
			for a, ok := range mask {
				if !ok {
					continue
				}
				if pick == 0 {
					out[i] = a
					break
				}
				pick--
			}
		}

		return out
	})
}

// Constant always plays action a. Panics if a < 0.
func Constant(a int) Policy {
	if a < 0 {
		panic("rollout: Constant(a<0)")
	}
	return PolicyFunc(func(allowed [][]bool, _ rngkey.Key) []int {
		out := make([]int, len(allowed))
		for i := range out {
			out[i] = a
		}

		return out
	})
}

// ParsePolicy resolves "uniform" or "const:<action>" against m, where
// <action> is an action index or label.
func ParsePolicy(spec string, m *mdp.Model) (Policy, error) {
	if spec == "uniform" {
		return Uniform(), nil
	}
	name, ok := strings.CutPrefix(spec, "const:")
	if !ok || name == "" {
		return nil, fmt.Errorf("ParsePolicy: %q: %w", spec, ErrBadPolicy)
	}
	if a, err := strconv.Atoi(name); err == nil {
		if a < 0 || a >= m.NumActions() {
			return nil, fmt.Errorf("ParsePolicy: action %d not in [0,%d): %w", a, m.NumActions(), ErrBadPolicy)
		}
		return Constant(a), nil
	}
	for a, label := range m.ActionLabels() {
		if label == name {
			return Constant(a), nil
		}
	}

	return nil, fmt.Errorf("ParsePolicy: unknown action %q: %w", name, ErrBadPolicy)
}
