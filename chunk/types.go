// SPDX-License-Identifier: MIT

// Package chunk: collaborator and source capability interfaces.
// This file contains ONLY the interfaces the chunked pattern consumes: the
// coarse sparsity structure it delegates to, and the three kinds of input
// sources the bulk builders read from. Keeping them as small capability
// sets makes the chunking logic independently testable against trivial
// in-memory doubles.

package chunk

import (
	"io"
	"iter"
)

// Coarse is the sparsity structure the chunked pattern delegates to, with
// all indices expressed in chunk units. pattern.Pattern is the stock
// implementation; anything satisfying this set works.
//
// Contract notes:
//   - Add must be idempotent (inserting a present entry is a no-op).
//   - Compress finalizes a batch of insertions; compressing twice is a
//     no-op.
//   - BlockWrite/BlockRead must be exact inverses, and BlockRead must not
//     consume bytes past its own payload (the chunked format embeds it).
type Coarse interface {
	// Reinit discards current content and prepares a rows × cols
	// structure with the given per-row entry capacities. When
	// optimizeDiag is set on a square structure, diagonal capacity is
	// pre-allocated.
	Reinit(rows, cols int, rowLengths []int, optimizeDiag bool) error

	// Add records entry (i, j); idempotent.
	Add(i, j int) error

	// Exists reports whether entry (i, j) is recorded.
	Exists(i, j int) (bool, error)

	// Compress finalizes the structure for querying and serialization.
	Compress()

	// Symmetrize ensures (i, j) present implies (j, i) present.
	Symmetrize() error

	// Bandwidth returns the maximum |i-j| over recorded entries.
	Bandwidth() int

	// Empty reports whether no entry has been recorded.
	Empty() bool

	// MaxEntriesPerRow returns the largest per-row entry count.
	MaxEntriesPerRow() int

	// MemoryConsumption estimates the structure's size in bytes.
	MemoryConsumption() int

	// BlockWrite serializes the structure to w.
	BlockWrite(w io.Writer) error

	// BlockRead replaces the structure with a payload read from r.
	BlockRead(r io.Reader) error

	// Rows returns the number of (chunk) rows.
	Rows() int

	// Cols returns the number of (chunk) columns.
	Cols() int
}

// IndexedSource is a compressed sparsity input with ordered positional
// column access. RowLength(i) reports the number of entries in row i and
// ColumnNumber(i, k) returns the k-th of them in ascending order; the
// builder only asks for k in [0, RowLength(i)).
type IndexedSource interface {
	Rows() int
	Cols() int
	RowLength(i int) int
	ColumnNumber(i, k int) int
}

// SetSource is a compressed sparsity input whose rows are visited with a
// forward iterator: unspecified order, every recorded column exactly once.
type SetSource interface {
	Rows() int
	Cols() int
	RowLength(i int) int
	Columns(i int) iter.Seq[int]
}

// DenseSource is a dense data source consumed purely structurally: an
// entry exists at (i, j) iff NonZero(i, j) — the element compares unequal
// to the additive identity of its type. dense.Dense satisfies this for any
// numeric element type.
type DenseSource interface {
	Rows() int
	Cols() int
	NonZero(i, j int) bool
}
