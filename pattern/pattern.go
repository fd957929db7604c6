// SPDX-License-Identifier: MIT

// Package pattern - compressed sparsity storage & lifecycle.
//
// Purpose:
//   - Collect structural entries into per-row sorted column sets (building
//     phase) and flatten them into a CSR layout on Compress.
//   - Guarantee safety at the public surface: mutators and queries return
//     sentinel errors instead of panicking.
//   - Keep deterministic iteration (rows ascending, columns sorted) so
//     that downstream consumers and the block format are reproducible.

package pattern

import (
	"fmt"
	"slices"
)

// patternFixedBytes approximates the in-memory size of the fixed Pattern
// fields (dimensions, flags, slice headers) for MemoryConsumption.
const patternFixedBytes = 4*8 + 2 + 3*3*8

// intBytes is the storage cost of one index in rowptr/colnums/building.
const intBytes = 8

// patternErrorf wraps a sentinel with method context and offending indices.
func patternErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Pattern.%s(%d,%d): %w", method, row, col, err)
}

// Pattern is a single-granularity sparsity pattern over rows × cols.
//
//   - Before Compress, entries live in building: one sorted, deduplicated
//     column slice per row, each pre-sized to the capacity requested via
//     Reinit (plus one slot when diagonal optimization is on).
//   - After Compress, entries live in rowptr/colnums: colnums[rowptr[i]:
//     rowptr[i+1]] is the sorted column set of row i.
//
// The zero value (and New) is the unsized 0×0 state: Empty reports true,
// every indexed operation fails with ErrOutOfRange, and the pattern may be
// used as a copy source (NewFrom).
type Pattern struct {
	rows, cols int     // logical dimensions; both zero in the unsized state
	compressed bool    // true once Compress has flattened the rows
	diag       bool    // reserve a diagonal slot per row (square patterns)
	building   [][]int // building phase: per-row sorted column sets
	rowptr     []int   // compressed phase: len rows+1, row boundaries
	colnums    []int   // compressed phase: concatenated sorted columns
}

// New returns an unsized (0×0) Pattern. Call Reinit before use.
func New() *Pattern {
	return &Pattern{}
}

// NewSized returns a Pattern initialized for rows × cols with a uniform
// per-row capacity. Equivalent to New followed by Reinit with a uniform
// rowLengths slice.
func NewSized(rows, cols, maxPerRow int, optimizeDiag bool) (*Pattern, error) {
	p := New()
	if err := p.ReinitUniform(rows, cols, maxPerRow, optimizeDiag); err != nil {
		return nil, err
	}

	return p, nil
}

// NewFrom duplicates src. Duplication is legal only while src is still in
// the unsized 0×0 state: a populated pattern is expensive to copy and doing
// so silently would hide that cost, so sized sources fail with ErrNotEmpty.
func NewFrom(src *Pattern) (*Pattern, error) {
	if src == nil {
		return nil, fmt.Errorf("Pattern.NewFrom: %w", ErrBadShape)
	}
	if src.rows != 0 || src.cols != 0 {
		return nil, fmt.Errorf("Pattern.NewFrom: %w", ErrNotEmpty)
	}

	return New(), nil
}

// Reinit discards all current content and prepares the pattern for
// rows × cols with an explicit per-row entry capacity.
//
// Implementation:
//   - Stage 1: validate shape, rowLengths length, and capacity signs.
//   - Stage 2: reset to the unsized state when either dimension is zero.
//   - Stage 3: allocate per-row column sets with the requested capacity;
//     when optimizeDiag is set on a square pattern, one extra slot per row
//     is reserved so the diagonal entry never forces a regrow.
//
// Errors:
//   - ErrBadShape: negative dimension or negative capacity entry.
//   - ErrDimensionMismatch: len(rowLengths) != rows (for rows > 0).
//
// Complexity: O(rows) allocations; no entry is recorded.
func (p *Pattern) Reinit(rows, cols int, rowLengths []int, optimizeDiag bool) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("Pattern.Reinit(%d,%d): %w", rows, cols, ErrBadShape)
	}
	// A pattern with no rows or no columns degenerates to the unsized state.
	if rows == 0 || cols == 0 {
		p.reset()
		return nil
	}
	if len(rowLengths) != rows {
		return fmt.Errorf("Pattern.Reinit: rowLengths has %d entries, want %d: %w",
			len(rowLengths), rows, ErrDimensionMismatch)
	}

	p.rows = rows
	p.cols = cols
	p.compressed = false
	p.diag = optimizeDiag && rows == cols
	p.rowptr = nil
	p.colnums = nil
	p.building = make([][]int, rows)
	var capacity int
	for i := 0; i < rows; i++ {
		if rowLengths[i] < 0 {
			p.reset()
			return fmt.Errorf("Pattern.Reinit: rowLengths[%d] is negative: %w", i, ErrBadShape)
		}
		capacity = rowLengths[i]
		if p.diag {
			capacity++ // diagonal slot reserved up front
		}
		p.building[i] = make([]int, 0, capacity)
	}

	return nil
}

// ReinitUniform is Reinit with the same capacity applied to every row.
func (p *Pattern) ReinitUniform(rows, cols, maxPerRow int, optimizeDiag bool) error {
	if rows < 0 || cols < 0 || maxPerRow < 0 {
		return fmt.Errorf("Pattern.ReinitUniform(%d,%d): %w", rows, cols, ErrBadShape)
	}
	rowLengths := make([]int, rows)
	for i := range rowLengths {
		rowLengths[i] = maxPerRow
	}

	return p.Reinit(rows, cols, rowLengths, optimizeDiag)
}

// reset returns the pattern to the unsized 0×0 state.
func (p *Pattern) reset() {
	p.rows, p.cols = 0, 0
	p.compressed = false
	p.diag = false
	p.building = nil
	p.rowptr = nil
	p.colnums = nil
}

// Add records the structural entry (i, j). Adding an entry twice has the
// same effect as adding it once.
//
// Errors:
//   - ErrOutOfRange: i or j outside the pattern bounds (carries both the
//     index and the bound in the message).
//   - ErrCompressed: (i, j) is a new entry and the pattern has already
//     been compressed; re-adding a present entry remains a no-op.
//
// Complexity: O(log k + k) for a row with k entries (binary search plus
// sorted insert).
func (p *Pattern) Add(i, j int) error {
	if err := p.checkIndex("Add", i, j); err != nil {
		return err
	}
	if p.compressed {
		// The CSR layout is immutable; tolerate only idempotent re-adds.
		row := p.colnums[p.rowptr[i]:p.rowptr[i+1]]
		if _, present := slices.BinarySearch(row, j); present {
			return nil
		}

		return patternErrorf("Add", i, j, ErrCompressed)
	}

	pos, present := slices.BinarySearch(p.building[i], j)
	if present {
		return nil // idempotent
	}
	p.building[i] = slices.Insert(p.building[i], pos, j)

	return nil
}

// Exists reports whether the structural entry (i, j) has been recorded.
// Valid in both the building and the compressed phase.
func (p *Pattern) Exists(i, j int) (bool, error) {
	if err := p.checkIndex("Exists", i, j); err != nil {
		return false, err
	}
	if p.compressed {
		_, present := slices.BinarySearch(p.colnums[p.rowptr[i]:p.rowptr[i+1]], j)
		return present, nil
	}
	_, present := slices.BinarySearch(p.building[i], j)

	return present, nil
}

// Compress finalizes the pattern: the per-row sets are flattened into the
// CSR layout and further structural growth is rejected. Compressing an
// already-compressed (or unsized) pattern is a no-op.
//
// Complexity: O(nnz) — rows are already sorted and deduplicated.
func (p *Pattern) Compress() {
	if p.compressed || p.rows == 0 {
		return
	}

	nnz := 0
	for i := range p.building {
		nnz += len(p.building[i])
	}
	p.rowptr = make([]int, p.rows+1)
	p.colnums = make([]int, 0, nnz)
	for i := range p.building {
		p.rowptr[i] = len(p.colnums)
		p.colnums = append(p.colnums, p.building[i]...)
	}
	p.rowptr[p.rows] = len(p.colnums)
	p.building = nil
	p.compressed = true
}

// Symmetrize ensures that for every recorded (i, j) the transposed entry
// (j, i) is recorded as well. Only square patterns can be symmetrized, and
// only while still in the building phase.
//
// Errors:
//   - ErrNonSquare: rows != cols.
//   - ErrCompressed: called after Compress.
//
// Complexity: O(nnz · log k) for sorted transpose inserts.
func (p *Pattern) Symmetrize() error {
	if p.rows != p.cols {
		return fmt.Errorf("Pattern.Symmetrize: %dx%d: %w", p.rows, p.cols, ErrNonSquare)
	}
	if p.compressed {
		return fmt.Errorf("Pattern.Symmetrize: %w", ErrCompressed)
	}
	var err error
	for i := range p.building {
		// Row i is never mutated while ranged: Add(j, i) touches row j, and
		// the only j targeting row i is the diagonal, which is idempotent.
		for _, j := range p.building[i] {
			if err = p.Add(j, i); err != nil {
				return err
			}
		}
	}

	return nil
}

// Rows returns the number of logical rows (0 when unsized).
func (p *Pattern) Rows() int { return p.rows }

// Cols returns the number of logical columns (0 when unsized).
func (p *Pattern) Cols() int { return p.cols }

// Compressed reports whether Compress has finalized the pattern.
func (p *Pattern) Compressed() bool { return p.compressed }

// Empty reports whether the pattern holds no recorded entries. A freshly
// reinitialized pattern is empty until the first Add; so is the unsized
// state.
func (p *Pattern) Empty() bool {
	return p.NonzeroCount() == 0
}

// NonzeroCount returns the number of recorded structural entries.
func (p *Pattern) NonzeroCount() int {
	if p.compressed {
		return len(p.colnums)
	}
	n := 0
	for i := range p.building {
		n += len(p.building[i])
	}

	return n
}

// RowLength returns the number of recorded entries in row i.
func (p *Pattern) RowLength(i int) (int, error) {
	if i < 0 || i >= p.rows {
		return 0, patternErrorf("RowLength", i, 0, ErrOutOfRange)
	}
	if p.compressed {
		return p.rowptr[i+1] - p.rowptr[i], nil
	}

	return len(p.building[i]), nil
}

// ColumnNumber returns the k-th (ascending) recorded column of row i.
func (p *Pattern) ColumnNumber(i, k int) (int, error) {
	length, err := p.RowLength(i)
	if err != nil {
		return 0, err
	}
	if k < 0 || k >= length {
		return 0, patternErrorf("ColumnNumber", i, k, ErrOutOfRange)
	}
	if p.compressed {
		return p.colnums[p.rowptr[i]+k], nil
	}

	return p.building[i][k], nil
}

// MaxEntriesPerRow returns the largest per-row entry count currently
// recorded.
func (p *Pattern) MaxEntriesPerRow() int {
	maxLen := 0
	if p.compressed {
		for i := 0; i < p.rows; i++ {
			if l := p.rowptr[i+1] - p.rowptr[i]; l > maxLen {
				maxLen = l
			}
		}

		return maxLen
	}
	for i := range p.building {
		if len(p.building[i]) > maxLen {
			maxLen = len(p.building[i])
		}
	}

	return maxLen
}

// Bandwidth returns the maximum |i-j| over all recorded entries, or 0 for
// an empty pattern.
func (p *Pattern) Bandwidth() int {
	band := 0
	update := func(i, j int) {
		d := i - j
		if d < 0 {
			d = -d
		}
		if d > band {
			band = d
		}
	}
	if p.compressed {
		for i := 0; i < p.rows; i++ {
			for _, j := range p.colnums[p.rowptr[i]:p.rowptr[i+1]] {
				update(i, j)
			}
		}

		return band
	}
	for i := range p.building {
		for _, j := range p.building[i] {
			update(i, j)
		}
	}

	return band
}

// MemoryConsumption estimates the number of bytes held by the pattern,
// fixed fields included.
func (p *Pattern) MemoryConsumption() int {
	bytes := patternFixedBytes
	bytes += cap(p.rowptr) * intBytes
	bytes += cap(p.colnums) * intBytes
	for i := range p.building {
		bytes += cap(p.building[i]) * intBytes
	}

	return bytes
}

// checkIndex validates (i, j) against the pattern bounds.
func (p *Pattern) checkIndex(method string, i, j int) error {
	if i < 0 || i >= p.rows {
		return fmt.Errorf("Pattern.%s: row %d outside [0,%d): %w", method, i, p.rows, ErrOutOfRange)
	}
	if j < 0 || j >= p.cols {
		return fmt.Errorf("Pattern.%s: column %d outside [0,%d): %w", method, j, p.cols, ErrOutOfRange)
	}

	return nil
}
