// Package app wires the vecstorm command: it loads or builds a model, checks
// its reachability, runs a batched rollout, and records the results.
package app
