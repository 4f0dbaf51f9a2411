// SPDX-License-Identifier: MIT
// Package matrix - in-place initialisers and convenience constructors.

package matrix

import "fmt"

const ctxSetIdentity = "SetIdentity"

// Resize reallocates m to rows×cols. Prior contents are discarded; this is
// a destructive reshape, not a contents-preserving grow.
func (m *Dense) Resize(rows, cols int) error {
	return m.Reallocate(rows, cols)
}

// Fill sets every element to v. Shape is unchanged.
func (m *Dense) Fill(v float64) {
	for i := range m.data {
		m.data[i] = v
	}
}

// SetZero sets every element to 0.0.
func (m *Dense) SetZero() { m.Fill(0) }

// SetOne sets every element to 1.0.
func (m *Dense) SetOne() { m.Fill(1) }

// SetIdentity zeroes m and writes 1.0 on the main diagonal.
//
// Errors:
//   - ErrNonSquare when Rows() != Cols(); m is left untouched.
func (m *Dense) SetIdentity() error {
	if m == nil {
		return matrixErrorf(ctxSetIdentity, ErrNilMatrix)
	}
	if err := ValidateSquare(m); err != nil {
		return fmt.Errorf("%s: %dx%d: %w", ctxSetIdentity, m.r, m.c, err)
	}
	m.SetZero()
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+i] = 1
	}

	return nil
}

// NewZeros returns a rows×cols matrix of zeros.
func NewZeros(rows, cols int) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	m.SetZero()

	return m, nil
}

// NewOnes returns a rows×cols matrix of ones.
func NewOnes(rows, cols int) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	m.SetOne()

	return m, nil
}

// NewIdentity returns the n×n identity matrix.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	if err = m.SetIdentity(); err != nil {
		return nil, err
	}

	return m, nil
}
