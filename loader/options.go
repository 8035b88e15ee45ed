// SPDX-License-Identifier: MIT

package loader

import "github.com/katalvlaran/vecstorm/mdp"

// Option customizes a Load call.
type Option func(*loadConfig)

type loadConfig struct {
	vars    map[string]any
	mdpOpts []mdp.Option
}

// WithVariables makes vars available to expressions as var.<name>. Values may
// be strings, bools, ints, floats, or anything go-cty can infer a type for.
// Strings convert to numbers or bools where an attribute needs one, so raw
// command-line values can be passed unchanged. Later calls merge over earlier
// ones.
func WithVariables(vars map[string]any) Option {
	return func(c *loadConfig) {
		if c.vars == nil {
			c.vars = make(map[string]any, len(vars))
		}
		for k, v := range vars {
			c.vars[k] = v
		}
	}
}

// WithModelOptions appends mdp options applied after the file's own settings,
// so they take precedence.
func WithModelOptions(opts ...mdp.Option) Option {
	return func(c *loadConfig) {
		c.mdpOpts = append(c.mdpOpts, opts...)
	}
}
