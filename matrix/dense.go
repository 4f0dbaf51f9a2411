// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major), lifecycle & checked accessors.
//
// Purpose:
//   - One contiguous buffer per matrix with the explicit offset i*cols + j.
//   - Value semantics: Clone and CopyFrom always deep-copy; nothing shares a buffer.
//   - Safety at the public surface: At/Set/Row return errors instead of panicking.
//     RawRow is the separately named unchecked path.
//
// Complexity quicksheet:
//   - NewDense/Allocate/Reallocate: O(r*c); At/Set/Row: O(1); Clone/CopyFrom: O(r*c).

package matrix

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxAt         = "At"
	ctxSet        = "Set"
	ctxRow        = "Row"
	ctxAllocate   = "Allocate"
	ctxReallocate = "Reallocate"
)

// maxDenseElements is the largest rows*cols a buffer may hold: bounded by
// the int range for 8-byte elements and by the runtime's 48-bit heap limit.
const maxDenseElements = min(math.MaxInt>>3, 1<<45)

// validShape reports whether rows×cols is non-negative and addressable.
func validShape(rows, cols int) bool {
	if rows < 0 || cols < 0 {
		return false
	}

	return cols == 0 || rows <= maxDenseElements/cols
}

// denseErrorf wraps a sentinel with the Dense method name and the coordinates
// that triggered it, e.g. "Dense.At(3,1): matrix: index out of range".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of float64 values.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c (offset = i*c + j).
//
// The zero value is the empty 0×0 matrix and owns no buffer (data == nil).
// A Dense is not safe for concurrent mutation; callers serialize access.
type Dense struct {
	r, c int       // row and column counts (both 0 when empty)
	data []float64 // contiguous row-major storage (len == r*c), nil when empty
}

var _ fmt.Stringer = (*Dense)(nil)

// NewEmpty returns an empty 0×0 matrix. Equivalent to new(Dense).
func NewEmpty() *Dense { return &Dense{} }

// NewDense creates a rows×cols matrix with freshly allocated storage.
// MAIN DESCRIPTION:
//   - Dimensioned construction. Callers must not rely on the initial
//     contents; use SetZero/SetOne/SetIdentity to initialise explicitly.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0.
//   - Stage 2: Allocate on a fresh empty Dense.
//
// Errors:
//   - ErrInvalidDimensions on negative dimensions or when rows*cols exceeds
//     the addressable element count.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	m := &Dense{}
	if err := m.Allocate(rows, cols); err != nil {
		return nil, err
	}

	return m, nil
}

// NewDenseFromRows builds a matrix from a literal list of rows.
// MAIN DESCRIPTION:
//   - The outer length gives the row count, the first row's length gives the
//     column count. Every row must have that same length.
//
// Implementation:
//   - Stage 1: zero rows → empty 0×0 matrix.
//   - Stage 2: Reallocate to len(rows)×len(rows[0]).
//   - Stage 3: copy row by row, rejecting ragged input.
//
// Errors:
//   - ErrDimensionMismatch when a row length differs from the first row.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - The input slices are copied; later edits to rows do not affect the result.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	m := &Dense{}
	if len(rows) == 0 {
		return m, nil
	}
	r, c := len(rows), len(rows[0])
	if err := m.Reallocate(r, c); err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d values, want %d: %w",
				i, len(rows[i]), c, ErrDimensionMismatch)
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// NewDenseFromData builds a rows×cols matrix from a row-major slice.
// The slice is copied. len(data) must equal rows*cols.
func NewDenseFromData(rows, cols int, data []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewDenseFromData: %d values for %dx%d: %w",
			len(data), rows, cols, ErrDimensionMismatch)
	}
	copy(m.data, data)

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Dims packs Rows() and Cols() into a single call.
func (m *Dense) Dims() (rows, cols int) { return m.r, m.c }

// IsEmpty reports whether m is the empty 0×0 matrix.
func (m *Dense) IsEmpty() bool { return m.r == 0 && m.c == 0 }

// Allocate claims a fresh rows×cols buffer.
// MAIN DESCRIPTION:
//   - Precondition: m owns no buffer. Use Reallocate to replace storage.
//
// Implementation:
//   - Stage 1: reject negative or oversized shapes and an already-owned buffer.
//   - Stage 2: 0×0 keeps the empty state; otherwise make() a flat buffer.
//
// Errors:
//   - ErrInvalidDimensions, ErrAlreadyAllocated.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Allocate(rows, cols int) error {
	if !validShape(rows, cols) {
		return denseErrorf(ctxAllocate, rows, cols, ErrInvalidDimensions)
	}
	if m.data != nil {
		return denseErrorf(ctxAllocate, rows, cols, ErrAlreadyAllocated)
	}
	if rows == 0 && cols == 0 {
		return nil
	}
	m.data = make([]float64, rows*cols)
	m.r, m.c = rows, cols

	return nil
}

// Reallocate releases any existing buffer and allocates rows×cols storage.
// Safe on empty and allocated receivers. Previous contents are discarded.
func (m *Dense) Reallocate(rows, cols int) error {
	if !validShape(rows, cols) {
		return denseErrorf(ctxReallocate, rows, cols, ErrInvalidDimensions)
	}
	Logger().Debug("matrix: reallocate",
		"from_rows", m.r, "from_cols", m.c, "rows", rows, "cols", cols)
	m.Release()

	return m.Allocate(rows, cols)
}

// Release drops the buffer and resets m to the empty 0×0 state.
// Idempotent.
func (m *Dense) Release() {
	m.data = nil
	m.r, m.c = 0, 0
}

// Clone returns a deep copy of m. Mutating the clone never affects m.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	out := &Dense{r: m.r, c: m.c}
	if m.data != nil {
		out.data = make([]float64, len(m.data))
		copy(out.data, m.data)
	}

	return out
}

// CopyFrom assigns src into m (deep copy).
// MAIN DESCRIPTION:
//   - Copy assignment: self-assignment is a no-op; storage is reallocated
//     only when the shapes differ, otherwise the existing buffer is reused.
//
// Errors:
//   - ErrNilMatrix when src is nil.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) only when reallocating.
func (m *Dense) CopyFrom(src *Dense) error {
	if src == nil {
		return fmt.Errorf("CopyFrom: %w", ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	if m.r != src.r || m.c != src.c {
		if err := m.Reallocate(src.r, src.c); err != nil {
			return err
		}
	}
	copy(m.data, src.data)

	return nil
}

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or a wrapped ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns a wrapped ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a view of row i backed by m's buffer. Writes through the view
// change m. The capacity is clipped to the row so append never spills into
// the next row.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows()).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return m.RawRow(i), nil
}

// RawRow is the unchecked variant of Row for hot loops.
// An out-of-range i panics with a runtime slice error; prefer Row.
func (m *Dense) RawRow(i int) []float64 {
	lo, hi := i*m.c, (i+1)*m.c

	return m.data[lo:hi:hi]
}

// RawData exposes the row-major backing buffer without copying.
// The slice aliases m; it is nil for the empty matrix.
func (m *Dense) RawData() []float64 { return m.data }
