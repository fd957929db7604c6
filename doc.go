// Package sparsity is an in-memory structural layer for sparse matrices:
// it records which entries of an m×n matrix may be structurally nonzero,
// without storing any numeric data.
//
// 🚀 What is sparsity?
//
//	A small, deterministic library for connectivity bookkeeping in
//	finite-element-style assembly pipelines:
//		• Chunked patterns: track sparsity at block granularity to exploit
//		  vector-valued problems where neighboring rows share connectivity
//		• Compressed patterns: CSR-style storage with fast membership
//		  queries and a stable binary block format
//		• Incremental builders: unordered, idempotent entry collection
//		  with ordered or set-like row access
//		• Dense sources: generic row-major matrices consumed purely
//		  through their nonzero structure
//
// ✨ Why choose sparsity?
//
//   - Predictable failures – sentinel errors everywhere, no panics
//   - Exact persistence – block write/read are strict inverses
//   - Pluggable internals – the coarse structure behind a chunked
//     pattern is an interface, trivially mockable in tests
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under four subpackages:
//
//	chunk/   — chunked sparsity pattern over a coarse chunk grid
//	pattern/ — compressed single-granularity pattern (CSR-style)
//	dynamic/ — incremental builders used as bulk-construction sources
//	dense/   — generic dense matrices as structural data sources
//
// Quick example, a 10×10 pattern with chunk size 4: after adding entries
// (0,0), (0,5) and (9,9), the whole 4×4 chunk around each entry reports
// present — (1,1) and (0,7) exist, (5,5) does not. That conservative
// over-approximation is the deliberate space/time trade-off of chunked
// tracking.
//
// Dive into the package docs for lifecycle rules (Reinit → Add →
// Compress) and the bulk CopyFrom construction paths.
//
//	go get github.com/katalvlaran/sparsity
package sparsity
