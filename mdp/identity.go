// SPDX-License-Identifier: MIT
// Package mdp: content identity.
//
// Hash order is fixed: scalars, shape, transition offsets/weights/destinations,
// reward weights, per-vertex data, then labels. Changing the order changes
// every ID, which only matters for persisted IDs (store/sqlite keeps them as
// opaque text).

package mdp

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// ID identifies a model by content.
type ID uint64

// String renders the ID as 16 hex digits.
func (id ID) String() string {
	return fmt.Sprintf("%016x", uint64(id))
}

// hasher wraps an xxhash digest with fixed-width little-endian writers.
type hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

func (h *hasher) putInt(v int) {
	binary.LittleEndian.PutUint64(h.buf[:], uint64(int64(v)))
	_, _ = h.d.Write(h.buf[:])
}

func (h *hasher) putFloat(v float64) {
	binary.LittleEndian.PutUint64(h.buf[:], math.Float64bits(v))
	_, _ = h.d.Write(h.buf[:])
}

func (h *hasher) putBool(v bool) {
	if v {
		h.putInt(1)
		return
	}
	h.putInt(0)
}

func (h *hasher) putString(s string) {
	h.putInt(len(s))
	_, _ = h.d.WriteString(s)
}

// fingerprint hashes every field of m except the id itself.
func fingerprint(m *Model) ID {
	h := &hasher{d: xxhash.New()}

	h.putInt(m.initialVertex)
	h.putInt(m.maxOutcomes)
	h.putInt(m.maxSteps)
	h.putBool(m.randomInit)
	h.putInt(m.vertices)
	h.putInt(m.actions)
	h.putInt(m.obsDim)
	h.putInt(m.metaDim)

	for _, off := range m.transitions.Offsets() {
		h.putInt(off)
	}
	for i := 0; i < m.transitions.NNZ(); i++ {
		h.putFloat(m.transitions.Weight(i))
		h.putInt(m.transitions.Destination(i))
		h.putFloat(m.rewards.Weight(i))
	}

	for _, x := range m.obs {
		h.putFloat(x)
	}
	for _, b := range m.sinks {
		h.putBool(b)
	}
	for _, b := range m.allowed {
		h.putBool(b)
	}
	for _, b := range m.meta {
		h.putBool(b)
	}

	for _, group := range [][]string{m.actionLabels, m.observationLabels, m.labels, m.stateLabels} {
		h.putInt(len(group))
		for _, s := range group {
			h.putString(s)
		}
	}
	h.putInt(len(m.stateValues))
	for _, x := range m.stateValues {
		h.putFloat(x)
	}

	return ID(h.d.Sum64())
}
