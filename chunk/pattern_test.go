// Package chunk_test contains unit tests for the chunked sparsity pattern:
// initialization, index translation, mutation, queries and the derived
// structural measures.
package chunk_test

import (
	"testing"

	"github.com/katalvlaran/sparsity/chunk"
	"github.com/stretchr/testify/require"
)

// TestReinitDelegatesChunkGrid verifies the chunk grid handed to the
// coarse collaborator: (dim + chunkSize) / chunkSize per dimension, so a
// 10x10 pattern with chunk size 4 runs on a 3x3 grid.
func TestReinitDelegatesChunkGrid(t *testing.T) {
	coarse := newRecordingCoarse()
	p, err := chunk.NewWithCoarse(coarse)
	require.NoError(t, err)

	require.NoError(t, p.Reinit(10, 10, 4, 3))
	require.Equal(t, 3, coarse.rows)
	require.Equal(t, 3, coarse.cols)
	require.Equal(t, []int{3, 3, 3}, coarse.rowLengths) // uniform capacity folds through

	// An exact multiple reserves one extra trailing chunk row/column.
	require.NoError(t, p.Reinit(8, 8, 4, 2))
	require.Equal(t, 3, coarse.rows) // (8+4)/4, not ceil(8/4)=2
	require.Equal(t, 3, coarse.cols)
}

// TestReinitFoldsCapacitiesWithMax verifies the per-chunk-row capacity is
// the maximum of its constituent logical rows, never the sum.
func TestReinitFoldsCapacitiesWithMax(t *testing.T) {
	coarse := newRecordingCoarse()
	p, err := chunk.NewWithCoarse(coarse)
	require.NoError(t, err)

	require.NoError(t, p.ReinitRowLengths(4, 6, 2, []int{1, 5, 2, 3}))
	// Chunk row 0 covers logical rows {0,1}: max(1,5)=5. Chunk row 1
	// covers {2,3}: max(2,3)=3. The trailing reserved chunk row stays 0.
	require.Equal(t, []int{5, 3, 0}, coarse.rowLengths)
}

// TestReinitOptionsReachCoarse verifies the diagonal flag propagates and
// defaults to on.
func TestReinitOptionsReachCoarse(t *testing.T) {
	coarse := newRecordingCoarse()
	p, err := chunk.NewWithCoarse(coarse)
	require.NoError(t, err)

	require.NoError(t, p.Reinit(4, 4, 2, 1))
	require.True(t, coarse.optimizeDiag) // DefaultOptimizeDiag

	require.NoError(t, p.Reinit(4, 4, 2, 1, chunk.WithNoOptimizeDiag()))
	require.False(t, coarse.optimizeDiag)
}

// TestReinitValidation covers the precondition failures.
func TestReinitValidation(t *testing.T) {
	p := chunk.New()

	require.ErrorIs(t, p.Reinit(4, 4, 0, 1), chunk.ErrBadChunkSize)  // chunk size < 1
	require.ErrorIs(t, p.Reinit(-1, 4, 2, 1), chunk.ErrBadShape)     // negative rows
	require.ErrorIs(t, p.Reinit(4, -1, 2, 1), chunk.ErrBadShape)     // negative cols
	require.ErrorIs(t, p.Reinit(4, 4, 2, -1), chunk.ErrBadShape)     // negative capacity
	err := p.ReinitRowLengths(4, 4, 2, []int{1, 2}) // two lengths for four rows
	require.ErrorIs(t, err, chunk.ErrDimensionMismatch)
}

// TestNilCoarseRejected verifies collaborator injection validation.
func TestNilCoarseRejected(t *testing.T) {
	_, err := chunk.NewWithCoarse(nil)
	require.ErrorIs(t, err, chunk.ErrNilCoarse)
}

// TestEmptyAfterReinit: initialization alone records nothing — Empty holds
// and every position is structurally absent.
func TestEmptyAfterReinit(t *testing.T) {
	p, err := chunk.NewSized(10, 7, 3, 4)
	require.NoError(t, err)

	require.True(t, p.Empty())
	for i := 0; i < 10; i++ {
		for j := 0; j < 7; j++ {
			ok, existsErr := p.Exists(i, j)
			require.NoError(t, existsErr)
			require.False(t, ok)
		}
	}
}

// TestAddTranslatesToChunks verifies the index translation i/c, j/c.
func TestAddTranslatesToChunks(t *testing.T) {
	coarse := newRecordingCoarse()
	p, err := chunk.NewWithCoarse(coarse)
	require.NoError(t, err)
	require.NoError(t, p.Reinit(12, 12, 4, 3))

	require.NoError(t, p.Add(5, 11))
	require.True(t, coarse.added[[2]int{1, 2}]) // 5/4=1, 11/4=2
	require.Len(t, coarse.added, 1)
}

// TestAddIdempotence: adding twice equals adding once.
func TestAddIdempotence(t *testing.T) {
	p, err := chunk.NewSized(8, 8, 3, 4)
	require.NoError(t, err)

	require.NoError(t, p.Add(1, 2))
	require.NoError(t, p.Add(1, 2))

	ok, err := p.Exists(1, 2)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 3, p.MaxEntriesPerRow()) // one chunk * chunkSize
}

// TestChunkCoarsening: all positions sharing a chunk with an added entry
// report present.
func TestChunkCoarsening(t *testing.T) {
	const c = 4
	p, err := chunk.NewSized(10, 10, c, 5)
	require.NoError(t, err)

	require.NoError(t, p.Add(1, 5)) // chunk (0,1)
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			ok, existsErr := p.Exists(i, j)
			require.NoError(t, existsErr)
			require.Equal(t, i/c == 0 && j/c == 1, ok, "position (%d,%d)", i, j)
		}
	}
}

// TestBoundary: the extreme valid position succeeds, one-past fails.
func TestBoundary(t *testing.T) {
	p, err := chunk.NewSized(10, 10, 4, 5)
	require.NoError(t, err)

	require.NoError(t, p.Add(9, 9)) // add(rows-1, cols-1) succeeds

	require.ErrorIs(t, p.Add(10, 0), chunk.ErrOutOfRange) // add(rows, 0)
	require.ErrorIs(t, p.Add(0, 10), chunk.ErrOutOfRange) // add(0, cols)
	require.ErrorIs(t, p.Add(-1, 0), chunk.ErrOutOfRange)
	_, err = p.Exists(10, 0)
	require.ErrorIs(t, err, chunk.ErrOutOfRange)
}

// TestAssemblyScenario pins a representative assembly scenario: m=n=10,
// chunk size 4, entries (0,0), (0,5), (9,9) on the 3x3 chunk grid.
func TestAssemblyScenario(t *testing.T) {
	p, err := chunk.NewSized(10, 10, 4, 3)
	require.NoError(t, err)

	for _, pos := range [][2]int{{0, 0}, {0, 5}, {9, 9}} {
		require.NoError(t, p.Add(pos[0], pos[1]))
	}
	p.Compress()

	// Chunks present: (0,0), (0,1), (2,2).
	ok, err := p.Exists(1, 1) // shares chunk (0,0)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = p.Exists(0, 7) // shares chunk (0,1)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = p.Exists(5, 5) // chunk (1,1) was never added
	require.NoError(t, err)
	require.False(t, ok)

	// Coarse bandwidth is 1 (chunk (0,1)): 1*4 + 3 = 7, under the clamp.
	require.Equal(t, 7, p.Bandwidth())
}

// TestBandwidthClamp: the chunk-inflated bound never exceeds max(m,n).
func TestBandwidthClamp(t *testing.T) {
	p, err := chunk.NewSized(10, 10, 4, 3)
	require.NoError(t, err)

	require.NoError(t, p.Add(0, 9)) // chunk (0,2): coarse bandwidth 2
	p.Compress()

	// 2*4 + 3 = 11 would overshoot a 10x10 pattern.
	require.Equal(t, 10, p.Bandwidth())
}

// TestSymmetrize verifies chunk-level symmetry and the square-only guard.
func TestSymmetrize(t *testing.T) {
	const n, c = 12, 4 // multiple of the chunk size: grid symmetry is exact
	p, err := chunk.NewSized(n, n, c, 6)
	require.NoError(t, err)

	require.NoError(t, p.Add(1, 9)) // chunk (0,2)
	require.NoError(t, p.Symmetrize())
	p.Compress()

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			ok, existsErr := p.Exists(i, j)
			require.NoError(t, existsErr)
			if ok {
				mirror, mirrorErr := p.Exists(j, i)
				require.NoError(t, mirrorErr)
				require.True(t, mirror, "entry (%d,%d) lacks its transpose", i, j)
			}
		}
	}

	rect, err := chunk.NewSized(10, 12, 4, 3)
	require.NoError(t, err)
	require.ErrorIs(t, rect.Symmetrize(), chunk.ErrNonSquare)
}

// TestSymmetrizeDelegates verifies the square check happens on logical
// dimensions before the coarse call.
func TestSymmetrizeDelegates(t *testing.T) {
	coarse := newRecordingCoarse()
	p, err := chunk.NewWithCoarse(coarse)
	require.NoError(t, err)
	require.NoError(t, p.Reinit(8, 8, 4, 2))

	require.NoError(t, p.Symmetrize())
	require.True(t, coarse.symmetrized)

	// 10x11 with chunk size 4 yields a square 3x3 chunk grid, but the
	// logical pattern is rectangular and must still be rejected.
	require.NoError(t, p.Reinit(10, 11, 4, 2))
	require.ErrorIs(t, p.Symmetrize(), chunk.ErrNonSquare)
}

// TestMaxEntriesPerRowScales verifies the coarse value times chunk size.
func TestMaxEntriesPerRowScales(t *testing.T) {
	p, err := chunk.NewSized(10, 10, 4, 5)
	require.NoError(t, err)
	require.NoError(t, p.Add(0, 0)) // chunk (0,0)
	require.NoError(t, p.Add(0, 5)) // chunk (0,1): row 0 holds two chunks

	require.Equal(t, 2*4, p.MaxEntriesPerRow())
}

// TestCompressDelegates verifies Compress reaches the collaborator and
// stays idempotent.
func TestCompressDelegates(t *testing.T) {
	coarse := newRecordingCoarse()
	p, err := chunk.NewWithCoarse(coarse)
	require.NoError(t, err)
	require.NoError(t, p.Reinit(4, 4, 2, 2))

	p.Compress()
	p.Compress()
	require.Equal(t, 2, coarse.compressCalls) // delegation is unconditional
}

// TestNewFromRequiresUnsizedSource enforces the copy-only-when-empty rule.
func TestNewFromRequiresUnsizedSource(t *testing.T) {
	fresh := chunk.New()
	dup, err := chunk.NewFrom(fresh)
	require.NoError(t, err)
	require.Equal(t, 0, dup.Rows())

	sized, err := chunk.NewSized(4, 4, 2, 2)
	require.NoError(t, err)
	_, err = chunk.NewFrom(sized)
	require.ErrorIs(t, err, chunk.ErrNotEmpty)

	_, err = chunk.NewFrom(nil)
	require.ErrorIs(t, err, chunk.ErrNilSource)
}

// TestAccessors covers the trivial geometry accessors.
func TestAccessors(t *testing.T) {
	p, err := chunk.NewSized(9, 7, 3, 2)
	require.NoError(t, err)

	require.Equal(t, 9, p.Rows())
	require.Equal(t, 7, p.Cols())
	require.Equal(t, 3, p.ChunkSize())
	require.Greater(t, p.MemoryConsumption(), 0)
}

// TestNewSquare verifies the square convenience constructor.
func TestNewSquare(t *testing.T) {
	p, err := chunk.NewSquare(8, 4, 3)
	require.NoError(t, err)

	require.Equal(t, 8, p.Rows())
	require.Equal(t, 8, p.Cols())
	require.True(t, p.Empty())
}
