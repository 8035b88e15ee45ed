// Package builder provides the state label schemes used by model families.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a state label from its zero‐based vertex index.
// It must be a pure, deterministic function: given the same idx, it always returns the same string.
// Panics in implementations indicate programmer error in configuration.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Never panics.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn returns the “Excel‐style” column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// Complexity: O(k) time where k ≈ log₍₂₆₎(idx).
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// HexIDFn returns the lowercase hexadecimal representation of idx,
// e.g. 0→"0", 10→"a", 255→"ff".
// Panics if idx < 0.
func HexIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 16)
}

// SymbolNumberIDFn returns prefix + decimal index, e.g. "s0", "s1", ...
// Panics if idx < 0.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

// WithHexIDs sets the ID scheme to HexIDFn.
func WithHexIDs() BuilderOption {
	return WithIDScheme(HexIDFn)
}
