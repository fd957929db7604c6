// SPDX-License-Identifier: MIT

// Package pattern implements a compressed, single-granularity sparsity
// pattern: for an m×n matrix it records which (row, column) positions may
// hold a structurally nonzero value, without storing any numeric data.
//
// A Pattern moves through a two-phase lifecycle:
//
//   - Building: after Reinit, entries are collected with Add into per-row
//     sorted column sets. Insertions are idempotent and unordered.
//   - Compressed: Compress flattens the rows into a CSR-style layout
//     (rowptr/colnums) with fast membership queries and a stable binary
//     block format (BlockWrite/BlockRead).
//
// Pattern satisfies the chunk.Coarse capability set and is the stock
// collaborator behind chunk.ChunkPattern, but it is also usable on its own
// wherever plain connectivity bookkeeping is needed.
//
// All user-facing failures are reported through the package sentinel
// errors (ErrOutOfRange, ErrCompressed, ...) and matched via errors.Is;
// no exported operation panics.
package pattern
