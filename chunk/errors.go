// SPDX-License-Identifier: MIT
// Package chunk: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// chunk package. All operations return these sentinels and tests check
// them via errors.Is. No operation panics on user-triggered conditions.

package chunk

import "errors"

// Every message is prefixed with "chunk: ..." for consistency and to allow
// easy grepping across logs. Context (method name, offending indices) is
// added at detection sites with fmt.Errorf("Ctx: %w", ErrX); callers still
// match via errors.Is.

var (
	// ErrOutOfRange indicates that a logical row or column index is
	// outside the pattern bounds. The wrapped message carries the index
	// and the violated bound.
	ErrOutOfRange = errors.New("chunk: index out of range")

	// ErrDimensionMismatch indicates that an auxiliary array does not
	// match the pattern dimensions (e.g. len(rowLengths) != rows).
	ErrDimensionMismatch = errors.New("chunk: dimension mismatch")

	// ErrBadChunkSize is returned when a chunk size below 1 is requested,
	// or when an operation that divides by the chunk size runs on a
	// pattern that never received one.
	ErrBadChunkSize = errors.New("chunk: chunk size must be >= 1")

	// ErrBadShape is returned for negative dimensions.
	ErrBadShape = errors.New("chunk: invalid shape")

	// ErrNonSquare signals that a square-only operation (Symmetrize) was
	// invoked on a rectangular pattern.
	ErrNonSquare = errors.New("chunk: pattern is not square")

	// ErrNotEmpty is returned when duplicating a pattern that is already
	// sized: a populated pattern is expensive to copy, so duplication is
	// legal only as alias-then-fill from the unsized 0×0 state.
	ErrNotEmpty = errors.New("chunk: source pattern is not empty")

	// ErrNilCoarse indicates that a nil Coarse collaborator was supplied.
	ErrNilCoarse = errors.New("chunk: coarse structure is nil")

	// ErrNilSource indicates that a nil bulk-construction source was
	// supplied to a CopyFrom builder.
	ErrNilSource = errors.New("chunk: source is nil")

	// ErrFormat indicates a malformed block payload on read: a wrong
	// delimiter byte or a failing stream. After ErrFormat the pattern is
	// in an indeterminate state and must be discarded.
	ErrFormat = errors.New("chunk: malformed block format")

	// ErrNotImplemented marks the intentionally unsupported printing
	// paths on the chunked surface.
	ErrNotImplemented = errors.New("chunk: operation not implemented")
)
