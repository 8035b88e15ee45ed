// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Every message is prefixed with "sparse: ..." for easy grepping. Call sites
// attach context with fmt.Errorf("Method: ...: %w", ErrX); callers match with
// errors.Is.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when the requested row shape is invalid (vertices<=0 or actions<=0).
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrBadOffsets indicates a malformed row offset table.
	ErrBadOffsets = errors.New("sparse: invalid row offsets")

	// ErrLengthMismatch indicates that the value arrays disagree with the offsets.
	ErrLengthMismatch = errors.New("sparse: value array length mismatch")

	// ErrOutOfRange indicates a vertex, action or destination outside the store shape.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrNaNInf signals a NaN or ±Inf weight.
	ErrNaNInf = errors.New("sparse: NaN or Inf weight")

	// ErrLayoutMismatch indicates that two stores do not share one index space.
	ErrLayoutMismatch = errors.New("sparse: row layout mismatch")

	// ErrRowTooWide indicates a row with more edges than the allowed fan-out.
	ErrRowTooWide = errors.New("sparse: row exceeds fan-out limit")

	// ErrNilStore indicates that a nil *Store was passed.
	ErrNilStore = errors.New("sparse: nil store")
)

// sparseErrorf wraps err with a method tag.
func sparseErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
