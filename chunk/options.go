// SPDX-License-Identifier: MIT

// Package chunk: functional configuration for initialization.
// This file defines the Option type, the documented defaults (constants),
// the WithX constructors, and the internal gatherOptions resolver that
// applies setters over the defaults (last-writer-wins).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.

package chunk

// DefaultOptimizeDiag controls diagonal chunk pre-allocation. true mirrors
// the common finite-element case: square patterns almost always carry
// their diagonal, so reserving it up front avoids regrows during assembly.
const DefaultOptimizeDiag = true

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options stores the effective configuration after applying Option
// setters. Unexported to prevent external mutation.
type options struct {
	optimizeDiag bool // DefaultOptimizeDiag
}

// WithOptimizeDiag requests diagonal chunk pre-allocation on square
// patterns (the default). Rectangular patterns ignore the flag.
func WithOptimizeDiag() Option {
	return func(o *options) { o.optimizeDiag = true }
}

// WithNoOptimizeDiag disables diagonal chunk pre-allocation. Use for
// square patterns whose diagonal is known to stay structurally empty.
func WithNoOptimizeDiag() Option {
	return func(o *options) { o.optimizeDiag = false }
}

// gatherOptions applies user-provided setters on top of the documented
// defaults. Last-writer-wins; stable for a given setter sequence.
func gatherOptions(user ...Option) options {
	o := options{
		optimizeDiag: DefaultOptimizeDiag,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
