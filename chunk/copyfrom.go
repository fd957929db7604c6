// SPDX-License-Identifier: MIT

// Package chunk - bulk construction (CopyFrom builders).
//
// All four builders run the same two-pass protocol:
//
//  1. compute, per logical row, the number of structurally nonzero
//     columns;
//  2. ReinitRowLengths with those counts;
//  3. re-walk the source inserting every logical (row, col) pair via Add;
//  4. Compress.
//
// The builders differ only in how the source is walked, so logically
// equivalent inputs produce an identical coarse structure regardless of
// which builder ran — a correctness property the tests pin down, not a
// convenience.

package chunk

import "fmt"

// CopyFromRowLengths is the caller-driven building block behind the other
// builders: it reinitializes the pattern with explicit per-row counts,
// hands the caller a bounds-checked add function to perform the insertion
// loop, and compresses. A nil fill leaves the pattern empty but sized.
//
// Errors: any Reinit failure; any error returned by fill (wrapped, with
// insertion errors propagating through the supplied add).
func (p *ChunkPattern) CopyFromRowLengths(rows, cols, chunkSize int, rowLengths []int,
	fill func(add func(i, j int) error) error, opts ...Option) error {
	if err := p.ReinitRowLengths(rows, cols, chunkSize, rowLengths, opts...); err != nil {
		return err
	}
	if fill != nil {
		if err := fill(p.Add); err != nil {
			return fmt.Errorf("ChunkPattern.CopyFromRowLengths: fill: %w", err)
		}
	}
	p.Compress()

	return nil
}

// CopyFromIndexed rebuilds the pattern from a compressed source with
// ordered positional column access.
//
// Complexity: O(nnz) source accesses on top of the reinitialization.
func (p *ChunkPattern) CopyFromIndexed(src IndexedSource, chunkSize int, opts ...Option) error {
	if src == nil {
		return fmt.Errorf("ChunkPattern.CopyFromIndexed: %w", ErrNilSource)
	}

	// Pass 1: per-row entry counts.
	rowLengths := make([]int, src.Rows())
	for row := range rowLengths {
		rowLengths[row] = src.RowLength(row)
	}
	if err := p.ReinitRowLengths(src.Rows(), src.Cols(), chunkSize, rowLengths, opts...); err != nil {
		return err
	}

	// Pass 2: insert every recorded position.
	for row := range rowLengths {
		for k := 0; k < rowLengths[row]; k++ {
			if err := p.Add(row, src.ColumnNumber(row, k)); err != nil {
				return fmt.Errorf("ChunkPattern.CopyFromIndexed: row %d: %w", row, err)
			}
		}
	}
	p.Compress()

	return nil
}

// CopyFromSets rebuilds the pattern from a compressed source whose rows
// are visited with forward iterators in unspecified but exhaustive order.
func (p *ChunkPattern) CopyFromSets(src SetSource, chunkSize int, opts ...Option) error {
	if src == nil {
		return fmt.Errorf("ChunkPattern.CopyFromSets: %w", ErrNilSource)
	}

	// Pass 1: per-row entry counts.
	rowLengths := make([]int, src.Rows())
	for row := range rowLengths {
		rowLengths[row] = src.RowLength(row)
	}
	if err := p.ReinitRowLengths(src.Rows(), src.Cols(), chunkSize, rowLengths, opts...); err != nil {
		return err
	}

	// Pass 2: insert every yielded position.
	for row := range rowLengths {
		for col := range src.Columns(row) {
			if err := p.Add(row, col); err != nil {
				return fmt.Errorf("ChunkPattern.CopyFromSets: row %d: %w", row, err)
			}
		}
	}
	p.Compress()

	return nil
}

// CopyFromDense rebuilds the pattern from a dense source: a logical entry
// exists iff the element differs from the additive identity of its type.
//
// Complexity: O(rows·cols) element probes — both passes scan the full
// dense extent.
func (p *ChunkPattern) CopyFromDense(src DenseSource, chunkSize int, opts ...Option) error {
	if src == nil {
		return fmt.Errorf("ChunkPattern.CopyFromDense: %w", ErrNilSource)
	}
	rows, cols := src.Rows(), src.Cols()

	// Pass 1: count structural nonzeros per row.
	rowLengths := make([]int, rows)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if src.NonZero(i, j) {
				rowLengths[i]++
			}
		}
	}
	if err := p.ReinitRowLengths(rows, cols, chunkSize, rowLengths, opts...); err != nil {
		return err
	}

	// Pass 2: insert every structural nonzero.
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if src.NonZero(i, j) {
				if err := p.Add(i, j); err != nil {
					return fmt.Errorf("ChunkPattern.CopyFromDense: row %d: %w", i, err)
				}
			}
		}
	}
	p.Compress()

	return nil
}
