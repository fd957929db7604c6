// SPDX-License-Identifier: MIT

// Package dynamic provides incremental sparsity builders: unordered,
// idempotent collection of (row, column) entries without a preallocated
// capacity, intended as bulk-construction sources for chunk.ChunkPattern.
//
// Two representations cover the two access styles downstream consumers
// need:
//
//   - Pattern keeps each row as a sorted slice, giving ordered positional
//     access (RowLength + ColumnNumber). It satisfies chunk.IndexedSource.
//   - SetPattern keeps each row as a set, giving a single-pass forward
//     iterator in unspecified order (Columns). It satisfies
//     chunk.SetSource and trades ordered access for cheaper insertion of
//     scattered entries.
//
// Both builders are plain in-memory values with no compression step: they
// are always queryable and always mutable.
package dynamic
