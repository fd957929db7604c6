// SPDX-License-Identifier: MIT

// Package dynamic - incremental sparsity builders.
//
// Pattern stores rows as sorted slices (ordered positional access);
// SetPattern stores rows as sets (unordered single-pass iteration). Both
// accept entries in any order, deduplicate silently, and never require a
// finalization step.

package dynamic

import (
	"fmt"
	"iter"
	"slices"
)

// dynamicErrorf wraps a sentinel with method context and the offending
// indices.
func dynamicErrorf(typ, method string, i, j int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", typ, method, i, j, err)
}

// checkShape validates builder dimensions at construction time.
func checkShape(typ string, rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("%s.New(%d,%d): %w", typ, rows, cols, ErrBadShape)
	}

	return nil
}

// checkIndex validates an entry against the builder bounds.
func checkIndex(typ, method string, i, j, rows, cols int) error {
	if i < 0 || i >= rows || j < 0 || j >= cols {
		return dynamicErrorf(typ, method, i, j, ErrOutOfRange)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Pattern: sorted-row builder with ordered access.
// ---------------------------------------------------------------------------

// Pattern collects structural entries into per-row sorted column slices.
// Insertion is O(log k + k) per entry for a row with k entries; positional
// access is O(1).
type Pattern struct {
	rows, cols int
	rowset     [][]int // per-row sorted, deduplicated columns
}

// New returns an empty rows × cols builder.
func New(rows, cols int) (*Pattern, error) {
	if err := checkShape("Pattern", rows, cols); err != nil {
		return nil, err
	}

	return &Pattern{rows: rows, cols: cols, rowset: make([][]int, rows)}, nil
}

// Rows returns the number of rows.
func (p *Pattern) Rows() int { return p.rows }

// Cols returns the number of columns.
func (p *Pattern) Cols() int { return p.cols }

// Add records the entry (i, j); duplicates are ignored.
func (p *Pattern) Add(i, j int) error {
	if err := checkIndex("Pattern", "Add", i, j, p.rows, p.cols); err != nil {
		return err
	}
	pos, present := slices.BinarySearch(p.rowset[i], j)
	if present {
		return nil // idempotent
	}
	p.rowset[i] = slices.Insert(p.rowset[i], pos, j)

	return nil
}

// Exists reports whether (i, j) has been recorded.
func (p *Pattern) Exists(i, j int) (bool, error) {
	if err := checkIndex("Pattern", "Exists", i, j, p.rows, p.cols); err != nil {
		return false, err
	}
	_, present := slices.BinarySearch(p.rowset[i], j)

	return present, nil
}

// RowLength returns the number of entries recorded in row i, or 0 for an
// out-of-range row.
func (p *Pattern) RowLength(i int) int {
	if i < 0 || i >= p.rows {
		return 0
	}

	return len(p.rowset[i])
}

// ColumnNumber returns the k-th (ascending) column of row i, or -1 when
// the position does not exist. Consumers are expected to stay within
// [0, RowLength(i)).
func (p *Pattern) ColumnNumber(i, k int) int {
	if i < 0 || i >= p.rows || k < 0 || k >= len(p.rowset[i]) {
		return -1
	}

	return p.rowset[i][k]
}

// NonzeroCount returns the total number of recorded entries.
func (p *Pattern) NonzeroCount() int {
	n := 0
	for i := range p.rowset {
		n += len(p.rowset[i])
	}

	return n
}

// ---------------------------------------------------------------------------
// SetPattern: set-backed builder with unordered iteration.
// ---------------------------------------------------------------------------

// SetPattern collects structural entries into per-row sets. Insertion is
// amortized O(1); iteration order within a row is unspecified but visits
// every recorded column exactly once.
type SetPattern struct {
	rows, cols int
	rowset     []map[int]struct{}
}

// NewSet returns an empty rows × cols set-backed builder.
func NewSet(rows, cols int) (*SetPattern, error) {
	if err := checkShape("SetPattern", rows, cols); err != nil {
		return nil, err
	}

	return &SetPattern{rows: rows, cols: cols, rowset: make([]map[int]struct{}, rows)}, nil
}

// Rows returns the number of rows.
func (p *SetPattern) Rows() int { return p.rows }

// Cols returns the number of columns.
func (p *SetPattern) Cols() int { return p.cols }

// Add records the entry (i, j); duplicates are ignored.
func (p *SetPattern) Add(i, j int) error {
	if err := checkIndex("SetPattern", "Add", i, j, p.rows, p.cols); err != nil {
		return err
	}
	if p.rowset[i] == nil {
		p.rowset[i] = make(map[int]struct{})
	}
	p.rowset[i][j] = struct{}{}

	return nil
}

// Exists reports whether (i, j) has been recorded.
func (p *SetPattern) Exists(i, j int) (bool, error) {
	if err := checkIndex("SetPattern", "Exists", i, j, p.rows, p.cols); err != nil {
		return false, err
	}
	_, present := p.rowset[i][j]

	return present, nil
}

// RowLength returns the number of entries recorded in row i, or 0 for an
// out-of-range row.
func (p *SetPattern) RowLength(i int) int {
	if i < 0 || i >= p.rows {
		return 0
	}

	return len(p.rowset[i])
}

// Columns returns a single-pass iterator over the recorded columns of
// row i. The order is unspecified; every column is yielded exactly once.
// An out-of-range row yields nothing.
func (p *SetPattern) Columns(i int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if i < 0 || i >= p.rows {
			return
		}
		for j := range p.rowset[i] {
			if !yield(j) {
				return
			}
		}
	}
}

// NonzeroCount returns the total number of recorded entries.
func (p *SetPattern) NonzeroCount() int {
	n := 0
	for i := range p.rowset {
		n += len(p.rowset[i])
	}

	return n
}
