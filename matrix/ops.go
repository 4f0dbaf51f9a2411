// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic operators on Dense: element-wise
// addition and subtraction, matrix multiplication and scalar scaling.
//
// Purpose:
//   - Every operator is pure: operands are never mutated and the result is a
//     freshly allocated Dense.
//   - Strict fail-fast validation through validators.go; errors carry an
//     operation tag ("Add: matrix: dimension mismatch").
//
// Notes:
//   - Mul is the canonical triple loop with plain float64 accumulation. It is
//     a correctness baseline, not a tuned kernel.

package matrix

import (
	"fmt"
)

// Operation name constants for unified error wrapping.
const (
	opAdd               = "Add"
	opSub               = "Sub"
	opMul               = "Mul"
	opScale             = "Scale"
	opElementWiseEquals = "ElementWiseEquals"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Call only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// newResult allocates an r×c result buffer for an operator. Shapes reaching
// here come from existing matrices, so they are already non-negative.
func newResult(r, c int) *Dense {
	out := &Dense{}
	if r == 0 && c == 0 {
		return out
	}
	out.r, out.c = r, c
	out.data = make([]float64, r*c)

	return out
}

// addSub computes out = a + sign*b element-wise for sign ∈ {+1, -1}.
// Internal helper for Add/Sub sharing validation and the flat loop.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: single flat loop 0..n-1 over the row-major buffers.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b *Dense, sign float64, opTag string) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := newResult(a.r, a.c)
	for idx := range res.data {
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: for each (i, j) accumulate sum_k A[i,k]*B[k,j] starting from 0.
//
// Behavior highlights:
//   - Fixed i→j→k order; no blocking, no zero skipping, no compensated sums,
//     so results are bit-for-bit reproducible against a naive reference.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, inner, bCols := a.r, a.c, b.c
	res := newResult(aRows, bCols)
	var (
		i, j, k    int
		rowA, rowR int
		sum        float64
	)
	for i = 0; i < aRows; i++ {
		rowA = i * inner
		rowR = i * bCols
		for j = 0; j < bCols; j++ {
			sum = 0
			for k = 0; k < inner; k++ {
				sum += a.data[rowA+k] * b.data[k*bCols+j]
			}
			res.data[rowR+j] = sum
		}
	}

	return res, nil
}

// Scale returns m × s: every element multiplied by the scalar s.
// NaN/Inf scalars propagate per IEEE-754.
//
// Errors:
//   - ErrNilMatrix.
func Scale(m *Dense, s float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := newResult(m.r, m.c)
	for idx, v := range m.data {
		res.data[idx] = v * s
	}

	return res, nil
}

// ScaleLeft returns s × m. It is defined as Scale(m, s), so both operand
// orders always agree.
func ScaleLeft(s float64, m *Dense) (*Dense, error) { return Scale(m, s) }
