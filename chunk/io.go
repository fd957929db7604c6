// SPDX-License-Identifier: MIT

// Package chunk - binary block persistence and printing stubs.
//
// The chunked block format wraps the coarse structure's own payload in
// bracket-delimited context:
//
//	[rows cols][<coarse payload>]
//
// The chunk size is deliberately NOT part of the payload: it is carried by
// the receiving pattern, so a reader must be initialized with the writer's
// chunk size before BlockRead (the coarse payload restores the chunk grid,
// and rows/cols arrive in the header).

package chunk

import (
	"fmt"
	"io"
)

// BlockWrite serializes the pattern to w: the logical dimensions in a
// bracketed header, then the coarse structure's block payload in its own
// brackets. Compress first — the stock coarse structure refuses to
// serialize an unfinalized layout.
//
// Errors: any writer or coarse failure, wrapped with context.
func (p *ChunkPattern) BlockWrite(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "[%d %d]", p.rows, p.cols); err != nil {
		return fmt.Errorf("ChunkPattern.BlockWrite: header: %w", err)
	}
	if _, err := io.WriteString(w, "["); err != nil {
		return fmt.Errorf("ChunkPattern.BlockWrite: %w", err)
	}
	if err := p.coarse.BlockWrite(w); err != nil {
		return fmt.Errorf("ChunkPattern.BlockWrite: coarse: %w", err)
	}
	if _, err := io.WriteString(w, "]"); err != nil {
		return fmt.Errorf("ChunkPattern.BlockWrite: %w", err)
	}

	return nil
}

// BlockRead replaces the pattern content with a payload produced by
// BlockWrite: BlockRead(BlockWrite(p)) reproduces rows, cols and an
// equivalent coarse structure.
//
// The receiver provides the chunk-size context (see the file header), so
// it must have been initialized with a chunk size ≥ 1. On failure the
// pattern is left in an indeterminate state and must be discarded or
// reinitialized — no partial-state recovery is attempted.
//
// Errors:
//   - ErrBadChunkSize: the receiver never received a chunk size.
//   - ErrFormat: wrong delimiter, truncated or failing stream.
//   - Any coarse read failure, wrapped.
func (p *ChunkPattern) BlockRead(r io.Reader) error {
	if p.chunkSize < 1 {
		return fmt.Errorf("ChunkPattern.BlockRead: %w", ErrBadChunkSize)
	}

	s := headerScanner{r: r}
	if err := s.expect('['); err != nil {
		return fmt.Errorf("ChunkPattern.BlockRead: header: %w", err)
	}
	rows, err := s.readInt(' ')
	if err != nil {
		return fmt.Errorf("ChunkPattern.BlockRead: rows: %w", err)
	}
	cols, err := s.readInt(']')
	if err != nil {
		return fmt.Errorf("ChunkPattern.BlockRead: cols: %w", err)
	}

	if err = s.expect('['); err != nil {
		return fmt.Errorf("ChunkPattern.BlockRead: %w", err)
	}
	if err = p.coarse.BlockRead(r); err != nil {
		return fmt.Errorf("ChunkPattern.BlockRead: coarse: %w", err)
	}
	if err = s.expect(']'); err != nil {
		return fmt.Errorf("ChunkPattern.BlockRead: %w", err)
	}

	p.rows = rows
	p.cols = cols

	return nil
}

// Print renders the logical pattern to w. Intentionally unsupported on
// the chunked surface: printing belongs to the coarse structure, where
// positions are exact rather than chunk-inflated.
func (p *ChunkPattern) Print(io.Writer) error {
	return fmt.Errorf("ChunkPattern.Print: %w", ErrNotImplemented)
}

// PrintGnuplot renders the logical pattern in gnuplot form. Intentionally
// unsupported, as Print.
func (p *ChunkPattern) PrintGnuplot(io.Writer) error {
	return fmt.Errorf("ChunkPattern.PrintGnuplot: %w", ErrNotImplemented)
}

// headerScanner parses the bracketed header one byte at a time so that no
// byte belonging to the embedded coarse payload is consumed.
type headerScanner struct {
	r   io.Reader
	buf [1]byte
}

// next returns the next byte; any shortfall becomes ErrFormat.
func (s *headerScanner) next() (byte, error) {
	if _, err := io.ReadFull(s.r, s.buf[:]); err != nil {
		return 0, fmt.Errorf("read: %v: %w", err, ErrFormat)
	}

	return s.buf[0], nil
}

// expect consumes one byte and verifies it equals c.
func (s *headerScanner) expect(c byte) error {
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
func (s *headerScanner) readInt(term byte) (int, error) {
	c, err := s.next()
	if err != nil {
		return 0, err
	}
	if c < '0' || c > '9' {
		return 0, fmt.Errorf("expected digit, got %q: %w", c, ErrFormat)
	}
	val := int(c - '0')
	for {
		if c, err = s.next(); err != nil {
			return 0, err
		}
		if c == term {
			return val, nil
		}
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("expected %q after value, got %q: %w", term, c, ErrFormat)
		}
		val = val*10 + int(c-'0')
	}
}
