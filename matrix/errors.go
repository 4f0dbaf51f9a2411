// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every operation
// returns one of these (possibly wrapped with call-site context) and tests
// match them via errors.Is. The checked surface never panics on user input.

package matrix

import "errors"

// NOTE ON WRAPPING
// ----------------
// Messages are prefixed with "matrix: ..." for easy grepping. Operations add
// context with fmt.Errorf("<Op>: %w", ErrX); callers still use errors.Is.

var (
	// ErrInvalidDimensions is returned when a requested shape has a negative
	// row or column count, or rows*cols exceeds the allowed element count.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrAlreadyAllocated is returned by Allocate when the receiver already
	// owns a buffer. Callers must Release (or use Reallocate) first.
	ErrAlreadyAllocated = errors.New("matrix: already allocated, use Reallocate")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. Add/Sub with different shapes, Mul where a.Cols != b.Rows, a file
	// header that does not match the receiver, or ragged literal rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Dense was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrIO is returned when a matrix file cannot be opened or read.
	ErrIO = errors.New("matrix: i/o failure")

	// ErrParse is returned when a token in a matrix file is not a number
	// (or, in strict mode, when unexpected trailing tokens are present).
	ErrParse = errors.New("matrix: malformed matrix data")

	// ErrTruncated is returned when a matrix file holds fewer values than
	// its header declares.
	ErrTruncated = errors.New("matrix: truncated matrix data")
)
