// SPDX-License-Identifier: MIT

// Package chunk - chunked pattern lifecycle, mutation and queries.
//
// Purpose:
//   - Own the logical dimensions and the chunk size, and keep them
//     consistent with the coarse chunk grid held by the Coarse
//     collaborator.
//   - Translate every logical (i, j) operation into the covering chunk
//     (i/chunkSize, j/chunkSize).
//   - Guarantee safety at the public surface: mutators and queries return
//     sentinel errors instead of panicking.

package chunk

import (
	"fmt"

	"github.com/katalvlaran/sparsity/pattern"
)

// chunkFixedBytes approximates the in-memory size of the fixed
// ChunkPattern fields (three ints plus the interface header) for
// MemoryConsumption.
const chunkFixedBytes = 3*8 + 16

// Compile-time check: the stock collaborator satisfies the capability set.
var _ Coarse = (*pattern.Pattern)(nil)

// chunkErrorf wraps a sentinel with method context and offending indices.
func chunkErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("ChunkPattern.%s(%d,%d): %w", method, i, j, err)
}

// ChunkPattern is a sparsity pattern over rows × cols logical positions,
// tracked at chunkSize × chunkSize granularity.
//
// Invariant: a logical entry (i, j) with 0 ≤ i < rows, 0 ≤ j < cols is
// considered possibly nonzero iff the coarse structure records chunk
// (i/chunkSize, j/chunkSize). The unsized state has rows == cols == 0; a
// sized pattern has both dimensions positive and chunkSize ≥ 1.
type ChunkPattern struct {
	rows, cols int    // logical dimensions; both zero in the unsized state
	chunkSize  int    // granularity of coarse tracking; fixed per lifetime
	coarse     Coarse // chunk-grid bookkeeping collaborator
}

// New returns an unsized (0×0) ChunkPattern backed by the stock
// pattern.Pattern coarse structure. Call Reinit (or a CopyFrom builder)
// before use.
func New() *ChunkPattern {
	return &ChunkPattern{coarse: pattern.New()}
}

// NewWithCoarse returns an unsized ChunkPattern delegating to the given
// coarse structure. The collaborator is adopted as-is; any content it
// holds is discarded by the first Reinit.
func NewWithCoarse(c Coarse) (*ChunkPattern, error) {
	if c == nil {
		return nil, fmt.Errorf("ChunkPattern.NewWithCoarse: %w", ErrNilCoarse)
	}

	return &ChunkPattern{coarse: c}, nil
}

// NewSized returns a ChunkPattern initialized for rows × cols with a
// uniform per-row entry capacity.
func NewSized(rows, cols, chunkSize, maxPerRow int, opts ...Option) (*ChunkPattern, error) {
	p := New()
	if err := p.Reinit(rows, cols, chunkSize, maxPerRow, opts...); err != nil {
		return nil, err
	}

	return p, nil
}

// NewSquare returns an n × n ChunkPattern with diagonal chunks
// pre-allocated, the common shape for finite-element system matrices.
func NewSquare(n, chunkSize, maxPerRow int) (*ChunkPattern, error) {
	return NewSized(n, n, chunkSize, maxPerRow, WithOptimizeDiag())
}

// NewFrom duplicates src. Duplication is legal only while src is still in
// the unsized 0×0 state — a populated pattern is expensive to copy, and
// copying one silently would hide that cost. Sized sources fail with
// ErrNotEmpty; the caller's correct move is alias-then-fill.
func NewFrom(src *ChunkPattern) (*ChunkPattern, error) {
	if src == nil {
		return nil, fmt.Errorf("ChunkPattern.NewFrom: %w", ErrNilSource)
	}
	if src.rows != 0 || src.cols != 0 {
		return nil, fmt.Errorf("ChunkPattern.NewFrom: %dx%d source: %w", src.rows, src.cols, ErrNotEmpty)
	}

	return &ChunkPattern{chunkSize: src.chunkSize, coarse: pattern.New()}, nil
}

// chunkGridDim returns the number of chunks covering dim logical indices.
//
// The formula (dim + chunkSize) / chunkSize rounds up and, when dim is an
// exact multiple of chunkSize, reserves one extra trailing chunk beyond
// the standard ceiling. That trailing chunk never receives entries (Add
// bounds-checks against the logical dimensions), so it costs one empty
// coarse row/column slot; it is kept because the bandwidth and capacity
// numbers derived from the grid, and block files exchanged with existing
// layouts, all assume it.
func chunkGridDim(dim, chunkSize int) int {
	return (dim + chunkSize) / chunkSize
}

// Reinit discards all current content and prepares the pattern for
// rows × cols logical positions with a uniform per-row maximum entry
// count. Convenience sugar over ReinitRowLengths.
func (p *ChunkPattern) Reinit(rows, cols, chunkSize, maxPerRow int, opts ...Option) error {
	if rows < 0 || maxPerRow < 0 {
		return fmt.Errorf("ChunkPattern.Reinit(%d,%d): %w", rows, cols, ErrBadShape)
	}
	rowLengths := make([]int, rows)
	for i := range rowLengths {
		rowLengths[i] = maxPerRow
	}

	return p.ReinitRowLengths(rows, cols, chunkSize, rowLengths, opts...)
}

// ReinitRowLengths discards all current content and prepares the pattern
// for rows × cols logical positions with an explicit per-row maximum
// entry count.
//
// Implementation:
//   - Stage 1: validate chunk size, shape and rowLengths length.
//   - Stage 2: derive the chunk grid (chunkGridDim per dimension).
//   - Stage 3: fold the logical row lengths into per-chunk-row capacities.
//     All logical rows inside a chunk row share one coarse row, so its
//     capacity need only bound the worst logical row inside it: the fold
//     takes the maximum, not the sum.
//   - Stage 4: reinitialize the coarse structure on the chunk grid.
//
// Errors:
//   - ErrBadChunkSize: chunkSize < 1.
//   - ErrBadShape: negative dimension or negative row length.
//   - ErrDimensionMismatch: len(rowLengths) != rows (for rows > 0).
//
// Complexity: O(rows) plus the coarse allocation.
func (p *ChunkPattern) ReinitRowLengths(rows, cols, chunkSize int, rowLengths []int, opts ...Option) error {
	if chunkSize < 1 {
		return fmt.Errorf("ChunkPattern.ReinitRowLengths: chunk size %d: %w", chunkSize, ErrBadChunkSize)
	}
	if rows < 0 || cols < 0 {
		return fmt.Errorf("ChunkPattern.ReinitRowLengths(%d,%d): %w", rows, cols, ErrBadShape)
	}
	o := gatherOptions(opts...)

	// A pattern with no rows or no columns degenerates to the unsized
	// state; the chunk size is still recorded for a later BlockRead.
	if rows == 0 || cols == 0 {
		p.rows, p.cols = 0, 0
		p.chunkSize = chunkSize

		return p.coarse.Reinit(0, 0, nil, o.optimizeDiag)
	}
	if len(rowLengths) != rows {
		return fmt.Errorf("ChunkPattern.ReinitRowLengths: rowLengths has %d entries, want %d: %w",
			len(rowLengths), rows, ErrDimensionMismatch)
	}

	p.rows = rows
	p.cols = cols
	p.chunkSize = chunkSize

	mChunks := chunkGridDim(rows, chunkSize)
	nChunks := chunkGridDim(cols, chunkSize)

	// Fold logical row lengths into per-chunk-row capacities (maximum).
	chunkRowLengths := make([]int, mChunks)
	for i := 0; i < rows; i++ {
		if rowLengths[i] < 0 {
			return fmt.Errorf("ChunkPattern.ReinitRowLengths: rowLengths[%d] is negative: %w", i, ErrBadShape)
		}
		if rowLengths[i] > chunkRowLengths[i/chunkSize] {
			chunkRowLengths[i/chunkSize] = rowLengths[i]
		}
	}

	if err := p.coarse.Reinit(mChunks, nChunks, chunkRowLengths, o.optimizeDiag); err != nil {
		return fmt.Errorf("ChunkPattern.ReinitRowLengths: coarse: %w", err)
	}

	return nil
}

// Add records the logical entry (i, j) by inserting its covering chunk
// into the coarse structure. Adding an entry whose chunk is already
// present is a no-op, so Add is idempotent at both granularities.
//
// Errors:
//   - ErrOutOfRange: i ≥ rows or j ≥ cols (or negative), with the
//     offending values in the message.
func (p *ChunkPattern) Add(i, j int) error {
	if err := p.checkIndex("Add", i, j); err != nil {
		return err
	}
	if err := p.coarse.Add(i/p.chunkSize, j/p.chunkSize); err != nil {
		return chunkErrorf("Add", i, j, err)
	}

	return nil
}

// Exists reports whether the logical entry (i, j) may be structurally
// nonzero, i.e. whether its covering chunk is recorded. Because tracking
// is chunk-granular, Exists answers true for every position sharing a
// chunk with a previously added entry.
func (p *ChunkPattern) Exists(i, j int) (bool, error) {
	if err := p.checkIndex("Exists", i, j); err != nil {
		return false, err
	}
	ok, err := p.coarse.Exists(i/p.chunkSize, j/p.chunkSize)
	if err != nil {
		return false, chunkErrorf("Exists", i, j, err)
	}

	return ok, nil
}

// Compress finalizes the coarse structure after a batch of insertions.
// Must run before the pattern is used to size a matrix or serialized;
// compressing an already-compressed pattern is a no-op.
func (p *ChunkPattern) Compress() {
	p.coarse.Compress()
}

// Symmetrize forces the coarse structure to be symmetric: chunk (r, c)
// present implies chunk (c, r) present.
//
// Limitation (accepted, not a bug): when rows is not a multiple of
// chunkSize, the chunk grid can be square while the logical pattern's
// fringe is not, so logical symmetry is approximated rather than
// guaranteed in the final partial chunks.
//
// Errors:
//   - ErrNonSquare: rows != cols.
//   - Any coarse failure (e.g. symmetrizing after compression), wrapped.
func (p *ChunkPattern) Symmetrize() error {
	if p.rows != p.cols {
		return fmt.Errorf("ChunkPattern.Symmetrize: %dx%d: %w", p.rows, p.cols, ErrNonSquare)
	}
	if err := p.coarse.Symmetrize(); err != nil {
		return fmt.Errorf("ChunkPattern.Symmetrize: coarse: %w", err)
	}

	return nil
}

// Bandwidth returns an upper bound on the logical bandwidth: a coarse
// bandwidth of b chunks can place the outermost nonzero b full chunk
// widths away plus up to chunkSize-1 extra offset inside the boundary
// chunks. The bound is clamped to max(rows, cols), the widest distance a
// real entry can achieve.
func (p *ChunkPattern) Bandwidth() int {
	if p.chunkSize < 1 {
		return 0 // unsized pattern without a chunk size yet
	}
	band := p.coarse.Bandwidth()*p.chunkSize + (p.chunkSize - 1)
	if limit := max(p.rows, p.cols); band > limit {
		band = limit
	}

	return band
}

// Empty reports whether the coarse structure holds no recorded chunks.
func (p *ChunkPattern) Empty() bool {
	return p.coarse.Empty()
}

// MaxEntriesPerRow returns an upper bound on the number of entries in any
// logical row: the coarse per-row maximum times the chunk size. The bound
// is not exact because partially-filled boundary chunks count at full
// width.
func (p *ChunkPattern) MaxEntriesPerRow() int {
	return p.coarse.MaxEntriesPerRow() * p.chunkSize
}

// MemoryConsumption estimates the bytes held by the pattern: the fixed
// fields plus the coarse structure's own reported consumption.
func (p *ChunkPattern) MemoryConsumption() int {
	return chunkFixedBytes + p.coarse.MemoryConsumption()
}

// Rows returns the number of logical rows (0 when unsized).
func (p *ChunkPattern) Rows() int { return p.rows }

// Cols returns the number of logical columns (0 when unsized).
func (p *ChunkPattern) Cols() int { return p.cols }

// ChunkSize returns the chunk granularity (0 before the first Reinit).
func (p *ChunkPattern) ChunkSize() int { return p.chunkSize }

// checkIndex validates the logical position (i, j) against the bounds.
func (p *ChunkPattern) checkIndex(method string, i, j int) error {
	if i < 0 || i >= p.rows {
		return fmt.Errorf("ChunkPattern.%s: row %d outside [0,%d): %w", method, i, p.rows, ErrOutOfRange)
	}
	if j < 0 || j >= p.cols {
		return fmt.Errorf("ChunkPattern.%s: column %d outside [0,%d): %w", method, j, p.cols, ErrOutOfRange)
	}

	return nil
}
