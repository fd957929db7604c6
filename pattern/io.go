// SPDX-License-Identifier: MIT

// Package pattern - binary block persistence.
//
// The block format is a sequence of bracket-delimited decimal fields:
//
//	[rows cols nnz diag][rowptr...][colnums...]
//
// where rowptr holds rows+1 values and colnums holds nnz values; an
// unsized pattern serializes as "[0 0 0 0][][]". The format is written
// only for compressed patterns, so BlockRead always reproduces a
// compressed pattern and BlockRead(BlockWrite(p)) is an exact inverse.
//
// Reading consumes the stream one byte at a time and never looks past the
// final ']' of its own payload, so a pattern payload can be embedded in an
// enclosing block format (see chunk.BlockWrite).

package pattern

import (
	"fmt"
	"io"
)

// BlockWrite serializes the compressed pattern to w.
//
// Errors:
//   - ErrNotCompressed: the pattern is sized but Compress was not called.
//   - Any error reported by w, wrapped with context.
func (p *Pattern) BlockWrite(w io.Writer) error {
	if p.rows != 0 && !p.compressed {
		return fmt.Errorf("Pattern.BlockWrite: %w", ErrNotCompressed)
	}
	diag := 0
	if p.diag {
		diag = 1
	}
	if _, err := fmt.Fprintf(w, "[%d %d %d %d]", p.rows, p.cols, len(p.colnums), diag); err != nil {
		return fmt.Errorf("Pattern.BlockWrite: header: %w", err)
	}
	if err := writeInts(w, p.rowptr); err != nil {
		return fmt.Errorf("Pattern.BlockWrite: rowptr: %w", err)
	}
	if err := writeInts(w, p.colnums); err != nil {
		return fmt.Errorf("Pattern.BlockWrite: colnums: %w", err)
	}

	return nil
}

// BlockRead replaces the pattern content with the payload read from r.
// The payload must have been produced by BlockWrite. On failure the
// pattern is left in an indeterminate state and must be discarded or
// reinitialized.
//
// Errors:
//   - ErrFormat: wrong delimiter, truncated stream, or inconsistent
//     counts (also wraps any underlying read error).
func (p *Pattern) BlockRead(r io.Reader) error {
	s := byteScanner{r: r}

	// Header: [rows cols nnz diag]
	if err := s.expect('['); err != nil {
		return fmt.Errorf("Pattern.BlockRead: header: %w", err)
	}
	var rows, cols, nnz, diag int
	var err error
	if rows, err = s.readInt(' '); err != nil {
		return fmt.Errorf("Pattern.BlockRead: rows: %w", err)
	}
	if cols, err = s.readInt(' '); err != nil {
		return fmt.Errorf("Pattern.BlockRead: cols: %w", err)
	}
	if nnz, err = s.readInt(' '); err != nil {
		return fmt.Errorf("Pattern.BlockRead: nnz: %w", err)
	}
	if diag, err = s.readInt(']'); err != nil {
		return fmt.Errorf("Pattern.BlockRead: diag: %w", err)
	}
	if diag != 0 && diag != 1 {
		return fmt.Errorf("Pattern.BlockRead: diag flag %d: %w", diag, ErrFormat)
	}

	// Row pointers: rows+1 values for a sized pattern, none otherwise.
	nptr := 0
	if rows > 0 {
		nptr = rows + 1
	}
	rowptr, err := s.readInts(nptr)
	if err != nil {
		return fmt.Errorf("Pattern.BlockRead: rowptr: %w", err)
	}
	colnums, err := s.readInts(nnz)
	if err != nil {
		return fmt.Errorf("Pattern.BlockRead: colnums: %w", err)
	}

	// Consistency checks before committing any state.
	if rows > 0 {
		if rowptr[0] != 0 || rowptr[rows] != nnz {
			return fmt.Errorf("Pattern.BlockRead: rowptr boundaries: %w", ErrFormat)
		}
		for i := 0; i < rows; i++ {
			if rowptr[i+1] < rowptr[i] {
				return fmt.Errorf("Pattern.BlockRead: rowptr not monotone at %d: %w", i, ErrFormat)
			}
		}
		for _, j := range colnums {
			if j < 0 || j >= cols {
				return fmt.Errorf("Pattern.BlockRead: column %d outside [0,%d): %w", j, cols, ErrFormat)
			}
		}
	} else if nnz != 0 {
		return fmt.Errorf("Pattern.BlockRead: entries without rows: %w", ErrFormat)
	}

	p.rows = rows
	p.cols = cols
	p.diag = diag == 1
	p.building = nil
	if rows == 0 {
		p.compressed = false
		p.rowptr = nil
		p.colnums = nil

		return nil
	}
	p.compressed = true
	p.rowptr = rowptr
	p.colnums = colnums

	return nil
}

// writeInts emits "[v0 v1 ... vn]" (or "[]" for an empty slice).
func writeInts(w io.Writer, vals []int) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	for k, v := range vals {
		sep := " "
		if k == 0 {
			sep = ""
		}
		if _, err := fmt.Fprintf(w, "%s%d", sep, v); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "]"); err != nil {
		return err
	}

	return nil
}

// byteScanner reads a block payload one byte at a time so that parsing
// never consumes bytes that belong to an enclosing format.
type byteScanner struct {
	r   io.Reader
	buf [1]byte
}

// next returns the next payload byte; any shortfall becomes ErrFormat.
func (s *byteScanner) next() (byte, error) {
	if _, err := io.ReadFull(s.r, s.buf[:]); err != nil {
		return 0, fmt.Errorf("read: %v: %w", err, ErrFormat)
	}

	return s.buf[0], nil
}

// expect consumes one byte and verifies it equals c.
func (s *byteScanner) expect(c byte) error {
	got, err := s.next()
	if err != nil {
		return err
	}
	if got != c {
		return fmt.Errorf("expected %q, got %q: %w", c, got, ErrFormat)
	}

	return nil
}

// readInt parses a non-negative decimal followed by the terminator term.
func (s *byteScanner) readInt(term byte) (int, error) {
	val, got, err := s.readDigits()
	if err != nil {
		return 0, err
	}
	if got != term {
		return 0, fmt.Errorf("expected %q after value, got %q: %w", term, got, ErrFormat)
	}

	return val, nil
}

// readDigits accumulates decimal digits and returns the value plus the
// first non-digit byte encountered.
func (s *byteScanner) readDigits() (int, byte, error) {
	c, err := s.next()
	if err != nil {
		return 0, 0, err
	}
	if c < '0' || c > '9' {
		return 0, 0, fmt.Errorf("expected digit, got %q: %w", c, ErrFormat)
	}
	val := int(c - '0')
	for {
		if c, err = s.next(); err != nil {
			return 0, 0, err
		}
		if c < '0' || c > '9' {
			return val, c, nil
		}
		val = val*10 + int(c-'0')
	}
}

// readInts parses a bracketed list "[v0 v1 ...]" of exactly n values.
func (s *byteScanner) readInts(n int) ([]int, error) {
	if err := s.expect('['); err != nil {
		return nil, err
	}
	if n == 0 {
		if err := s.expect(']'); err != nil {
			return nil, err
		}

		return nil, nil
	}
	vals := make([]int, n)
	var err error
	for k := 0; k < n; k++ {
		term := byte(' ')
		if k == n-1 {
			term = ']'
		}
		if vals[k], err = s.readInt(term); err != nil {
			return nil, err
		}
	}

	return vals, nil
}
