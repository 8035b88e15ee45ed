// SPDX-License-Identifier: MIT
package loader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecstorm/builder"
	"github.com/katalvlaran/vecstorm/loader"
	"github.com/katalvlaran/vecstorm/mdp"
)

var corridorVars = map[string]any{"slip": 0.25, "prize": 10}

func TestLoadFile_Corridor(t *testing.T) {
	m, meta, err := loader.LoadFile(context.Background(), filepath.Join("testdata", "corridor.hcl"), loader.WithVariables(corridorVars))
	require.NoError(t, err)

	require.Equal(t, "corridor", meta.Name)
	require.Equal(t, []string{"start", "middle", "goal"}, meta.StateNames)
	require.Equal(t, 3, m.NumVertices())
	require.Equal(t, []string{"left", "right"}, m.ActionLabels())
	require.Equal(t, 12, m.MaxSteps())
	require.Equal(t, 0, m.InitialVertex())
	require.Equal(t, 2, m.MaxOutcomes())
	require.Equal(t, []string{"pos"}, m.ObservationLabels())
	require.Equal(t, []string{"goal"}, m.Labels())
	require.Equal(t, []float64{1}, m.Observation(1))
	require.True(t, m.IsSink(2))
	require.Equal(t, []bool{true}, m.Metalabel(2))
	require.Equal(t, []bool{false}, m.Metalabel(0))
	require.Equal(t, []float64{0, 0.5, 0}, m.StateValues())

	tr, rw := m.Transitions(), m.Rewards()
	lo, hi := tr.RowRange(1, 1)
	require.Equal(t, 2, hi-lo)
	require.Equal(t, 2, tr.Destination(lo))
	require.InDelta(t, 0.75, tr.Weight(lo), 1e-12)
	require.Equal(t, 10.0, rw.Weight(lo))
	require.Equal(t, 0, tr.Destination(lo+1))
	require.InDelta(t, 0.25, tr.Weight(lo+1), 1e-12)
	require.Equal(t, -1.0, rw.Weight(lo+1))

	lo, hi = tr.RowRange(0, 1)
	require.Equal(t, 1, hi-lo)
	require.Equal(t, 1.0, tr.Weight(lo), "weight defaults to 1")
	require.Equal(t, 0.0, rw.Weight(lo), "reward defaults to 0")
}

func TestLoad_StringVariables(t *testing.T) {
	src, err := os.ReadFile(filepath.Join("testdata", "corridor.hcl"))
	require.NoError(t, err)

	m, _, err := loader.Load(context.Background(), src, "corridor.hcl",
		loader.WithVariables(map[string]any{"slip": "0.25", "prize": "10"}))
	require.NoError(t, err)

	typed, _, err := loader.Load(context.Background(), src, "corridor.hcl", loader.WithVariables(corridorVars))
	require.NoError(t, err)
	require.Equal(t, typed.ID(), m.ID(), "command-line strings convert to the same numbers")
}

func TestLoad_ModelOptionsOverrideFile(t *testing.T) {
	m, _, err := loader.LoadFile(context.Background(), filepath.Join("testdata", "corridor.hcl"),
		loader.WithVariables(corridorVars),
		loader.WithModelOptions(mdp.WithMaxSteps(3), mdp.WithRandomInit(true)))
	require.NoError(t, err)
	require.Equal(t, 3, m.MaxSteps())
	require.True(t, m.RandomInit())
}

func TestLoad_Forbid(t *testing.T) {
	src := `
model "m" {
  actions = ["a", "b"]
  labels  = ["x"]
  state "s" {
    forbid = ["b"]
    action "a" {
      outcome "t" {}
    }
    action "b" {
      outcome "t" {}
    }
  }
  state "t" {
    sink = true
  }
}
`
	m, _, err := loader.Load(context.Background(), []byte(src), "forbid.hcl")
	require.NoError(t, err)
	require.Equal(t, []bool{true, false}, m.Allowed(0))
	require.Equal(t, builder.DefaultMaxSteps, m.MaxSteps())
	require.Equal(t, []bool{false}, m.Metalabel(1))
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"syntax", `model "m" {`, loader.ErrParse},
		{"unknown attribute", `model "m" {
  actions = ["a"]
  colour  = "red"
}`, loader.ErrDecode},
		{"no model", `# empty`, loader.ErrDecode},
		{"two models", `model "a" {
  actions = ["x"]
}
model "b" {
  actions = ["x"]
}`, loader.ErrDecode},
		{"unset variable", `model "m" {
  actions = ["a"]
  state "s" {
    value = var.missing
  }
}`, loader.ErrDecode},
		{"no states", `model "m" {
  actions = ["a"]
}`, loader.ErrModel},
		{"duplicate state", `model "m" {
  actions = ["a"]
  state "s" {}
  state "s" {}
}`, loader.ErrModel},
		{"duplicate action", `model "m" {
  actions = ["a", "a"]
  state "s" {}
}`, loader.ErrModel},
		{"unknown action", `model "m" {
  actions = ["a"]
  state "s" {
    action "jump" {
      outcome "s" {}
    }
  }
}`, loader.ErrModel},
		{"unknown destination", `model "m" {
  actions = ["a"]
  state "s" {
    action "a" {
      outcome "nowhere" {}
    }
  }
}`, loader.ErrModel},
		{"negative weight", `model "m" {
  actions = ["a"]
  state "s" {
    action "a" {
      outcome "s" {
        weight = -1
      }
    }
  }
}`, loader.ErrModel},
		{"unknown initial", `model "m" {
  actions = ["a"]
  initial = "nope"
  state "s" {
    action "a" {
      outcome "s" {}
    }
  }
}`, loader.ErrModel},
		{"zero max steps", `model "m" {
  actions   = ["a"]
  max_steps = 0
  state "s" {
    action "a" {
      outcome "s" {}
    }
  }
}`, loader.ErrModel},
		{"no edges", `model "m" {
  actions = ["a"]
  state "s" {}
}`, loader.ErrModel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := loader.Load(context.Background(), []byte(tc.src), tc.name+".hcl")
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, _, err := loader.LoadFile(context.Background(), filepath.Join(t.TempDir(), "absent.hcl"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
