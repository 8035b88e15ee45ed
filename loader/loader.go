// SPDX-License-Identifier: MIT

package loader

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/vecstorm/builder"
	"github.com/katalvlaran/vecstorm/internal/ctxlog"
	"github.com/katalvlaran/vecstorm/mdp"
)

// Meta carries the names a model file gives to things the model indexes.
type Meta struct {
	Name       string
	StateNames []string // by vertex index
}

// LoadFile reads path and loads the model it describes. See Load.
func LoadFile(ctx context.Context, path string, opts ...Option) (*mdp.Model, *Meta, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("LoadFile: %w", err)
	}

	return Load(ctx, src, path, opts...)
}

// Load parses src as an HCL model file; filename is used in diagnostics only.
// States become vertices in file order.
func Load(ctx context.Context, src []byte, filename string, opts ...Option) (*mdp.Model, *Meta, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading model file.", "path", filename, "bytes", len(src))

	cfg := loadConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	evalCtx, err := buildEvalContext(cfg.vars)
	if err != nil {
		return nil, nil, fmt.Errorf("Load: %s: %w: %w", filename, ErrDecode, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, nil, fmt.Errorf("Load: %w: %w", ErrParse, diags)
	}

	var parsed hclFile
	if diags = gohcl.DecodeBody(file.Body, evalCtx, &parsed); diags.HasErrors() {
		return nil, nil, fmt.Errorf("Load: %w: %w", ErrDecode, diags)
	}
	if len(parsed.Models) != 1 {
		return nil, nil, fmt.Errorf("Load: %s: want exactly one model block, got %d: %w", filename, len(parsed.Models), ErrDecode)
	}

	hm := parsed.Models[0]
	d, meta, err := draftFrom(hm)
	if err != nil {
		return nil, nil, fmt.Errorf("Load: %s: model %q: %w", filename, hm.Name, err)
	}

	mopts := make([]mdp.Option, 0, 3+len(cfg.mdpOpts))
	if hm.MaxSteps != nil {
		if *hm.MaxSteps < 1 {
			return nil, nil, fmt.Errorf("Load: %s: max_steps=%d: %w", filename, *hm.MaxSteps, ErrModel)
		}
		mopts = append(mopts, mdp.WithMaxSteps(*hm.MaxSteps))
	}
	if hm.RandomInit != nil {
		mopts = append(mopts, mdp.WithRandomInit(*hm.RandomInit))
	}
	if hm.MaxOutcomes != nil {
		if *hm.MaxOutcomes < 1 {
			return nil, nil, fmt.Errorf("Load: %s: max_outcomes=%d: %w", filename, *hm.MaxOutcomes, ErrModel)
		}
		mopts = append(mopts, mdp.WithMaxOutcomes(*hm.MaxOutcomes))
	}
	mopts = append(mopts, cfg.mdpOpts...)

	m, err := d.Model(mopts...)
	if err != nil {
		return nil, nil, fmt.Errorf("Load: %s: model %q: %w: %w", filename, hm.Name, ErrModel, err)
	}

	logger.Debug("Loaded model.",
		"path", filename,
		"model", meta.Name,
		"vertices", m.NumVertices(),
		"actions", m.NumActions(),
		"edges", m.Transitions().NNZ(),
		"id", m.ID().String(),
	)

	return m, meta, nil
}

// draftFrom assembles the decoded model into a builder.Draft: vertices first,
// so outcomes may point at states declared later in the file.
func draftFrom(hm *hclModel) (*builder.Draft, *Meta, error) {
	if len(hm.Actions) == 0 {
		return nil, nil, fmt.Errorf("no actions: %w", ErrModel)
	}
	if len(hm.States) == 0 {
		return nil, nil, fmt.Errorf("no states: %w", ErrModel)
	}

	if len(uniq(hm.Actions)) != len(hm.Actions) {
		return nil, nil, fmt.Errorf("duplicate action in %v: %w", hm.Actions, ErrModel)
	}
	d := builder.NewDraft(hm.Actions...)
	d.SetObservationLabels(hm.ObservationLabels...)
	labels := hm.Labels
	if labels == nil {
		// undeclared columns come from the states, in order of first use
		for _, st := range hm.States {
			labels = append(labels, st.Labels...)
		}
		labels = uniq(labels)
	}
	d.SetLabels(labels...)

	meta := &Meta{Name: hm.Name, StateNames: make([]string, 0, len(hm.States))}
	for _, st := range hm.States {
		if _, dup := d.Lookup(st.Name); dup {
			return nil, nil, fmt.Errorf("duplicate state %q: %w", st.Name, ErrModel)
		}
		d.AddVertex(builder.VertexSpec{
			Label:       st.Name,
			Observation: st.Observation,
			Sink:        st.Sink,
			Labels:      st.Labels,
			Value:       st.Value,
		})
		meta.StateNames = append(meta.StateNames, st.Name)
	}

	for v, st := range hm.States {
		for _, ha := range st.Actions {
			a, ok := d.Action(ha.Name)
			if !ok {
				return nil, nil, fmt.Errorf("state %q: unknown action %q: %w", st.Name, ha.Name, ErrModel)
			}
			for _, o := range ha.Outcomes {
				to, ok := d.Lookup(o.To)
				if !ok {
					return nil, nil, fmt.Errorf("state %q action %q: unknown outcome state %q: %w", st.Name, ha.Name, o.To, ErrModel)
				}
				w := builder.DefaultEdgeWeight
				if o.Weight != nil {
					w = *o.Weight
				}
				if err := d.AddEdge(v, a, to, w, o.Reward); err != nil {
					return nil, nil, fmt.Errorf("state %q action %q: %w: %w", st.Name, ha.Name, ErrModel, err)
				}
			}
		}
		for _, name := range st.Forbid {
			a, ok := d.Action(name)
			if !ok {
				return nil, nil, fmt.Errorf("state %q: forbid names unknown action %q: %w", st.Name, name, ErrModel)
			}
			if err := d.AllowAction(v, a, false); err != nil {
				return nil, nil, fmt.Errorf("state %q: %w: %w", st.Name, ErrModel, err)
			}
		}
	}

	if hm.Initial != nil {
		v, ok := d.Lookup(*hm.Initial)
		if !ok {
			return nil, nil, fmt.Errorf("unknown initial state %q: %w", *hm.Initial, ErrModel)
		}
		if err := d.SetInitial(v); err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrModel, err)
		}
	}

	return d, meta, nil
}

// buildEvalContext exposes vars as the var object. A nil or empty map still
// yields a context, so a stray var reference reports an unknown attribute
// rather than an unknown variable.
func buildEvalContext(vars map[string]any) (*hcl.EvalContext, error) {
	names := make([]string, 0, len(vars))
	for k := range vars {
		names = append(names, k)
	}
	sort.Strings(names)

	obj := make(map[string]cty.Value, len(vars))
	for _, k := range names {
		val, err := toCty(vars[k])
		if err != nil {
			return nil, fmt.Errorf("var.%s: %w", k, err)
		}
		obj[k] = val
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"var": cty.ObjectVal(obj)},
	}, nil
}

// toCty converts a Go value to cty, inferring the type for composite values.
func toCty(v any) (cty.Value, error) {
	switch x := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case cty.Value:
		return x, nil
	case string:
		return cty.StringVal(x), nil
	case bool:
		return cty.BoolVal(x), nil
	case int:
		return cty.NumberIntVal(int64(x)), nil
	case int64:
		return cty.NumberIntVal(x), nil
	case uint64:
		return cty.NumberUIntVal(x), nil
	case float64:
		return cty.NumberFloatVal(x), nil
	}
	ty, err := gocty.ImpliedType(v)
	if err != nil {
		return cty.NilVal, err
	}

	return gocty.ToCtyValue(v, ty)
}

// uniq drops repeated strings, keeping first occurrences in order.
func uniq(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}

	return out
}
