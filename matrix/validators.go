// SPDX-License-Identifier: MIT
// Package matrix - shape validators shared by the operators.
//
// Purpose:
//   - Single source of truth for nil and shape preconditions.
//   - Return plain sentinels; operators wrap them with their op tag.

package matrix

// ValidateNotNil returns ErrNilMatrix when m is nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape checks both operands are non-nil and have identical
// rows and cols.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func ValidateSameShape(a, b *Dense) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.r != b.r || a.c != b.c {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateMulCompatible checks a.Cols() == b.Rows() for a × b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible(a, b *Dense) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.c != b.r {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateSquare checks m is non-nil and rows == cols.
func ValidateSquare(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.r != m.c {
		return ErrNonSquare
	}

	return nil
}
