// SPDX-License-Identifier: MIT

package loader

import "errors"

var (
	// ErrParse indicates HCL syntax errors.
	ErrParse = errors.New("loader: parse failed")

	// ErrDecode indicates the file does not match the model schema or a
	// variable could not be converted.
	ErrDecode = errors.New("loader: decode failed")

	// ErrModel indicates a well-formed file describing an invalid model:
	// duplicate or unknown states, unknown actions, bad weights.
	ErrModel = errors.New("loader: invalid model")
)
