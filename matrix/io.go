// SPDX-License-Identifier: MIT

// Package matrix - plain-text loading and rendering.
//
// File format (whitespace separated ASCII, no header/version/checksum):
//
//	rows cols
//	v00 v01 ... v0(cols-1)
//	...
//
// The first two tokens are integers, followed by rows*cols float64 tokens in
// row-major order. Line breaks are not significant.
//
// Rendering writes one line per row, values separated by a single space and
// every row (including the last) terminated by '\n'. Values use the shortest
// representation that parses back to the same float64, so Render → Load is
// exact.
package matrix

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

const (
	opLoad        = "Load"
	opSetFromFile = "SetFromFile"
	opFromReader  = "NewDenseFromReader"
	opFromFile    = "NewDenseFromFile"
	opWriteTo     = "WriteTo"
)

// Rendering literals.
const (
	_fmtSep      = ' '
	_fmtRowClose = '\n'
)

// tokenReader yields whitespace-separated tokens from an io.Reader.
type tokenReader struct {
	sc *bufio.Scanner
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &tokenReader{sc: sc}
}

// next returns the next token. ok is false at end of input; err is non-nil
// only for read failures (wrapped with ErrIO).
func (t *tokenReader) next() (tok string, ok bool, err error) {
	if t.sc.Scan() {
		return t.sc.Text(), true, nil
	}
	if err = t.sc.Err(); err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrIO, err)
	}

	return "", false, nil
}

// readHeader parses the leading "rows cols" pair.
func (t *tokenReader) readHeader() (int, int, error) {
	var dims [2]int
	for i := range dims {
		tok, ok, err := t.next()
		if err != nil {
			return 0, 0, err
		}
		if !ok {
			return 0, 0, fmt.Errorf("header: %w", ErrTruncated)
		}
		n, perr := strconv.Atoi(tok)
		if perr != nil {
			return 0, 0, fmt.Errorf("header token %q: %w: %w", tok, ErrParse, perr)
		}
		if n < 0 {
			return 0, 0, fmt.Errorf("header token %q: %w", tok, ErrInvalidDimensions)
		}
		dims[i] = n
	}

	return dims[0], dims[1], nil
}

// readPayload parses exactly len(dst) float64 tokens into dst, then applies
// the trailing-token policy.
func (t *tokenReader) readPayload(dst []float64, o loadOptions) error {
	for i := range dst {
		tok, ok, err := t.next()
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("got %d of %d values: %w", i, len(dst), ErrTruncated)
		}
		v, perr := strconv.ParseFloat(tok, 64)
		if perr != nil {
			return fmt.Errorf("value %d %q: %w: %w", i, tok, ErrParse, perr)
		}
		dst[i] = v
	}

	tok, ok, err := t.next()
	if err != nil {
		return err
	}
	if ok {
		if o.strictTrailing {
			return fmt.Errorf("unexpected trailing token %q: %w", tok, ErrParse)
		}
		Logger().Warn("matrix: ignoring trailing tokens", "first", tok)
	}

	return nil
}

// Load reads a matrix in text format from r into m.
// MAIN DESCRIPTION:
//   - m must already have the shape declared by the header; Load never
//     resizes.
//
// Implementation:
//   - Stage 1: parse header and compare with m's shape.
//   - Stage 2: parse rows*cols values into a scratch buffer.
//   - Stage 3: commit the scratch buffer into m.
//
// Behavior highlights:
//   - All-or-nothing: on any error m keeps its previous contents.
//
// Errors:
//   - ErrDimensionMismatch (header differs from m), ErrTruncated (too few
//     values), ErrParse (non-numeric token or strict trailing), ErrIO.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) scratch.
func (m *Dense) Load(r io.Reader, opts ...LoadOption) error {
	o := gatherLoadOptions(opts...)
	tr := newTokenReader(r)

	rows, cols, err := tr.readHeader()
	if err != nil {
		return matrixErrorf(opLoad, err)
	}
	if rows != m.r || cols != m.c {
		return matrixErrorf(opLoad, fmt.Errorf("file is %dx%d, matrix is %dx%d: %w",
			rows, cols, m.r, m.c, ErrDimensionMismatch))
	}

	scratch := make([]float64, rows*cols)
	if err = tr.readPayload(scratch, o); err != nil {
		return matrixErrorf(opLoad, err)
	}
	copy(m.data, scratch)
	Logger().Debug("matrix: loaded", "rows", rows, "cols", cols)

	return nil
}

// SetFromFile loads m from the text file at path. See Load for the format
// and the shape precondition.
//
// Errors:
//   - ErrIO (wrapping the *fs.PathError) when the file cannot be opened,
//     plus every error Load returns.
func (m *Dense) SetFromFile(path string, opts ...LoadOption) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", opSetFromFile, ErrIO, err)
	}
	defer f.Close()

	Logger().Debug("matrix: reading file", "path", path)
	if err = m.Load(f, opts...); err != nil {
		return fmt.Errorf("%s %q: %w", opSetFromFile, path, err)
	}

	return nil
}

// NewDenseFromReader reads a matrix whose shape is taken from the header.
// Headers with rows*cols above the WithMaxElements bound are rejected
// before allocation.
func NewDenseFromReader(r io.Reader, opts ...LoadOption) (*Dense, error) {
	o := gatherLoadOptions(opts...)
	tr := newTokenReader(r)

	rows, cols, err := tr.readHeader()
	if err != nil {
		return nil, matrixErrorf(opFromReader, err)
	}
	if cols != 0 && rows > o.maxElements/cols {
		return nil, matrixErrorf(opFromReader, fmt.Errorf("%dx%d exceeds %d elements: %w",
			rows, cols, o.maxElements, ErrInvalidDimensions))
	}

	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opFromReader, err)
	}
	if err = tr.readPayload(m.data, o); err != nil {
		return nil, matrixErrorf(opFromReader, err)
	}

	return m, nil
}

// NewDenseFromFile is NewDenseFromReader over the file at path.
func NewDenseFromFile(path string, opts ...LoadOption) (*Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opFromFile, ErrIO, err)
	}
	defer f.Close()

	m, err := NewDenseFromReader(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", opFromFile, path, err)
	}

	return m, nil
}

// appendText appends the rendering of m to buf.
func (m *Dense) appendText(buf []byte) []byte {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				buf = append(buf, _fmtSep)
			}
			buf = strconv.AppendFloat(buf, m.data[base+j], 'g', -1, 64)
		}
		buf = append(buf, _fmtRowClose)
	}

	return buf
}

// WriteTo renders m to w, one row per line. It implements io.WriterTo.
// The output contains no header; prefix "rows cols\n" to produce a file
// that Load accepts.
func (m *Dense) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(m.appendText(nil))
	if err != nil {
		return int64(n), matrixErrorf(opWriteTo, fmt.Errorf("%w: %w", ErrIO, err))
	}

	return int64(n), nil
}

// String renders m in the same format as WriteTo. Empty matrices render as "".
func (m *Dense) String() string {
	return string(m.appendText(nil))
}
