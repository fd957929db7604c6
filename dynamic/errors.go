// SPDX-License-Identifier: MIT
// Package dynamic: sentinel error set, matched by callers via errors.Is.

package dynamic

import "errors"

var (
	// ErrBadShape is returned when a builder is created with a negative
	// dimension.
	ErrBadShape = errors.New("dynamic: invalid shape")

	// ErrOutOfRange indicates a row or column index outside the builder
	// bounds.
	ErrOutOfRange = errors.New("dynamic: index out of range")
)
