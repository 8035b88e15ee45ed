// SPDX-License-Identifier: MIT

// Package rngkey provides explicit, splittable random keys.
//
// A Key is a plain 128-bit value. Every random draw in vecstorm is a pure
// function of a Key: there is no ambient RNG state. Independent draws require
// splitting a key into disjoint sub-keys first, across calls and across lanes.
//
// Guarantees:
//
//   - Reproducibility: the same root key and the same sequence of Split/SplitN/
//     Fold calls yields the same keys and therefore the same draws.
//   - Independence: sub-keys are derived by hashing (key, index, tag) with
//     xxhash, so sibling keys do not share state.
//   - No ordering requirement: SplitN(n)[i] depends only on the parent and i,
//     never on how many siblings were consumed before it.
//
// Usage:
//
//	root := rngkey.New(42)
//	stepKey, next := root.Split()
//	lanes := stepKey.SplitN(batch)
//	r := lanes[3].Rand() // one consumer per key
package rngkey

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// Derivation tags keep the hi and lo words of a child independent.
const (
	tagHi  byte = 0x01
	tagLo  byte = 0x02
	tagNew byte = 0x7f
)

// Key is an immutable random key. The zero Key is valid (equivalent to a fixed seed).
type Key struct {
	hi, lo uint64
}

// New derives a root key from a 64-bit seed.
func New(seed uint64) Key {
	return derive(Key{}, seed, tagNew)
}

// derive hashes (parent, index, tag) into a child key.
func derive(parent Key, index uint64, tag byte) Key {
	var buf [26]byte
	binary.LittleEndian.PutUint64(buf[0:8], parent.hi)
	binary.LittleEndian.PutUint64(buf[8:16], parent.lo)
	binary.LittleEndian.PutUint64(buf[16:24], index)
	buf[24] = tag

	buf[25] = tagHi
	hi := xxhash.Sum64(buf[:])
	buf[25] = tagLo
	lo := xxhash.Sum64(buf[:])

	return Key{hi: hi, lo: lo}
}

// Fold derives the child key number i. Fold(i) == SplitN(n)[i] for any n > i.
func (k Key) Fold(i uint64) Key {
	return derive(k, i, 0)
}

// Split returns two independent children.
func (k Key) Split() (Key, Key) {
	return k.Fold(0), k.Fold(1)
}

// SplitN returns n independent children. n <= 0 yields nil.
// Complexity: O(n).
func (k Key) SplitN(n int) []Key {
	if n <= 0 {
		return nil
	}
	out := make([]Key, n)
	for i := range out {
		out[i] = k.Fold(uint64(i))
	}

	return out
}

// Rand returns a PCG generator seeded from the key. Each call returns a fresh
// generator at the same starting point, so a key should feed one consumer.
func (k Key) Rand() *rand.Rand {
	return rand.New(rand.NewPCG(k.hi, k.lo))
}

// Float64 returns one uniform draw in [0, 1) built from the top 53 bits of the
// key's first PCG output, without allocating a rand.Rand.
func (k Key) Float64() float64 {
	p := rand.NewPCG(k.hi, k.lo)

	return float64(p.Uint64()>>11) / (1 << 53)
}

// Uint64s exposes the raw key words (serialization, logging).
func (k Key) Uint64s() (hi, lo uint64) {
	return k.hi, k.lo
}

// FromUint64s rebuilds a key from raw words.
func FromUint64s(hi, lo uint64) Key {
	return Key{hi: hi, lo: lo}
}

// String renders the key as 32 hex digits.
func (k Key) String() string {
	return fmt.Sprintf("%016x%016x", k.hi, k.lo)
}
