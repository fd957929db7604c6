// SPDX-License-Identifier: MIT

// Package chunk implements a chunked sparsity pattern: the structural
// (connectivity) layer of an m×n sparse matrix, stored at a coarser
// granularity to exploit block structure.
//
// A ChunkPattern divides the logical index space into square chunks of a
// fixed size and records, per chunk row, which chunk columns hold at least
// one logical nonzero. The coarse bookkeeping is delegated to a Coarse
// collaborator (pattern.Pattern by default, or any interface-conforming
// implementation — including test doubles).
//
// The coarse structure is a conservative over-approximation: once any
// logical entry inside a chunk is added, the entire chunk is treated as
// structurally present. Vector-valued problems, where several scalar
// degrees of freedom share identical connectivity, pay almost nothing for
// this and gain far smaller index bookkeeping — that space/time trade-off
// is the point of the design.
//
// Construction paths:
//
//   - Reinit (uniform or per-row capacities) followed by Add calls and a
//     final Compress, or
//   - one of the bulk CopyFrom builders (explicit row lengths with a
//     caller-driven fill, an ordered IndexedSource, an unordered
//     SetSource, or a DenseSource), which run the same two-pass protocol
//     and converge on an identical coarse structure for logically
//     equivalent input.
//
// A compressed, finalized pattern is safe for concurrent reads; every
// mutator requires exclusive access. All failures are synchronous sentinel
// errors (errors.go) matched via errors.Is; no operation panics, retries
// or recovers internally.
package chunk
