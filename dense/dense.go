// SPDX-License-Identifier: MIT

// Package dense provides a generic row-major dense matrix used as a
// structural data source: besides element access it answers the single
// question sparsity builders care about — whether an element differs from
// the additive identity of its type (NonZero).
//
// Dense stores elements in a flat slice for cache friendliness, with the
// explicit index formula i*cols + j. Accessors return sentinel errors
// instead of panicking.
package dense

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDimensions indicates that requested matrix dimensions are
// non-positive.
var ErrInvalidDimensions = errors.New("dense: dimensions must be > 0")

// ErrIndexOutOfBounds indicates that a row or column index is outside the
// valid range.
var ErrIndexOutOfBounds = errors.New("dense: index out of bounds")

// Number constrains Dense elements to types with an additive identity and
// exact equality: all integer kinds, floats and complex numbers.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of T values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense[T Number] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// New creates an r×c Dense matrix initialized to the additive identity.
// Complexity: O(r*c) time and memory.
func New[T Number](rows, cols int) (*Dense[T], error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	// Return initialized Dense with a zeroed flat slice
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense[T]) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
func (m *Dense[T]) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns
// ErrIndexOutOfBounds. Complexity: O(1).
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// NonZero reports whether the element at (row, col) differs from the
// additive identity of T. Out-of-range positions report false, so the
// method is safe to call from structural scans without an error path.
func (m *Dense[T]) NonZero(row, col int) bool {
	idx, err := m.indexOf("NonZero", row, col)
	if err != nil {
		return false
	}
	var zero T

	return m.data[idx] != zero
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense[T]) Clone() *Dense[T] {
	copyData := make([]T, len(m.data))
	copy(copyData, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
func (m *Dense[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString("[") // open row
		for j := 0; j < m.c; j++ {
			// compute flat index directly for performance
			fmt.Fprintf(&b, "%v", m.data[i*m.c+j])
			if j < m.c-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n") // close row
	}

	return b.String()
}
