// Package chunk_test: an in-memory recording Coarse double used to verify
// delegation (grid sizing, capacity folding, index translation) without
// involving the stock pattern.Pattern collaborator.
package chunk_test

import (
	"io"

	"github.com/katalvlaran/sparsity/chunk"
	"github.com/katalvlaran/sparsity/dense"
	"github.com/katalvlaran/sparsity/dynamic"
)

// Compile-time checks: the shipped sources satisfy the chunk interfaces.
var (
	_ chunk.Coarse        = (*recordingCoarse)(nil)
	_ chunk.IndexedSource = (*dynamic.Pattern)(nil)
	_ chunk.SetSource     = (*dynamic.SetPattern)(nil)
	_ chunk.DenseSource   = (*dense.Dense[float64])(nil)
	_ chunk.DenseSource   = (*dense.Dense[int32])(nil)
)

// recordingCoarse records every call the chunked pattern makes.
type recordingCoarse struct {
	rows, cols    int
	rowLengths    []int
	optimizeDiag  bool
	added         map[[2]int]bool
	compressCalls int
	symmetrized   bool
}

func newRecordingCoarse() *recordingCoarse {
	return &recordingCoarse{added: map[[2]int]bool{}}
}

func (c *recordingCoarse) Reinit(rows, cols int, rowLengths []int, optimizeDiag bool) error {
	c.rows, c.cols = rows, cols
	c.rowLengths = append([]int(nil), rowLengths...)
	c.optimizeDiag = optimizeDiag
	c.added = map[[2]int]bool{}
	c.compressCalls = 0
	c.symmetrized = false

	return nil
}

func (c *recordingCoarse) Add(i, j int) error {
	c.added[[2]int{i, j}] = true
	return nil
}

func (c *recordingCoarse) Exists(i, j int) (bool, error) {
	return c.added[[2]int{i, j}], nil
}

func (c *recordingCoarse) Compress() { c.compressCalls++ }

func (c *recordingCoarse) Symmetrize() error {
	c.symmetrized = true
	for pos := range c.added {
		c.added[[2]int{pos[1], pos[0]}] = true
	}

	return nil
}

func (c *recordingCoarse) Bandwidth() int {
	band := 0
	for pos := range c.added {
		d := pos[0] - pos[1]
		if d < 0 {
			d = -d
		}
		if d > band {
			band = d
		}
	}

	return band
}

func (c *recordingCoarse) Empty() bool { return len(c.added) == 0 }

func (c *recordingCoarse) MaxEntriesPerRow() int {
	counts := map[int]int{}
	maxLen := 0
	for pos := range c.added {
		counts[pos[0]]++
		if counts[pos[0]] > maxLen {
			maxLen = counts[pos[0]]
		}
	}

	return maxLen
}

func (c *recordingCoarse) MemoryConsumption() int { return len(c.added) * 16 }

func (c *recordingCoarse) BlockWrite(io.Writer) error { return nil }

func (c *recordingCoarse) BlockRead(io.Reader) error { return nil }

func (c *recordingCoarse) Rows() int { return c.rows }

func (c *recordingCoarse) Cols() int { return c.cols }
