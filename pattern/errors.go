// SPDX-License-Identifier: MIT
// Package pattern: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// pattern package. All operations return these sentinels and tests check
// them via errors.Is. Panics are reserved for programmer errors in private
// helpers (there are none today).

package pattern

import "errors"

// Every message is prefixed with "pattern: ..." for consistency and to
// allow easy grepping across logs. Context is added at detection sites
// with fmt.Errorf("Ctx: %w", ErrX); callers still match via errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (negative dimensions, or a negative per-row capacity).
	ErrBadShape = errors.New("pattern: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside the
	// valid bounds of the pattern.
	ErrOutOfRange = errors.New("pattern: index out of range")

	// ErrDimensionMismatch indicates that an auxiliary array does not
	// match the pattern dimensions (e.g. len(rowLengths) != rows).
	ErrDimensionMismatch = errors.New("pattern: dimension mismatch")

	// ErrNonSquare signals that a square-only operation (Symmetrize) was
	// invoked on a rectangular pattern.
	ErrNonSquare = errors.New("pattern: pattern is not square")

	// ErrCompressed signals a structural mutation attempted after
	// Compress. Re-adding an entry that is already present stays a no-op;
	// everything else requires a fresh Reinit.
	ErrCompressed = errors.New("pattern: pattern is already compressed")

	// ErrNotCompressed signals an operation that requires the finalized
	// CSR layout (BlockWrite) on a pattern still in its building phase.
	ErrNotCompressed = errors.New("pattern: pattern is not compressed")

	// ErrNotEmpty is returned when copying from a pattern that already
	// holds allocated state; duplication is legal only for unsized
	// patterns (alias-then-fill discipline).
	ErrNotEmpty = errors.New("pattern: source pattern is not empty")

	// ErrFormat indicates a malformed block payload on read: a wrong
	// delimiter byte, a truncated stream, or inconsistent counts.
	ErrFormat = errors.New("pattern: malformed block format")
)
