// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Purpose:
//   - Hand a Dense to gonum routines without copying (AsGonum).
//   - Convert in both directions with independent storage (Gonum, FromGonum).
//
// Notes:
//   - gonum cannot represent shapes with a zero dimension; such matrices
//     convert to the zero-value *mat.Dense (which reports 0×0).
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const opFromGonum = "FromGonum"

// gonumView exposes a *Dense through the mat.Matrix interface.
// It shares storage with the Dense; gonum panics on bad indices, so At
// follows that convention instead of returning an error.
type gonumView struct {
	m *Dense
}

var _ mat.Matrix = gonumView{}

func (v gonumView) Dims() (r, c int) { return v.m.r, v.m.c }

func (v gonumView) At(i, j int) float64 {
	off, err := v.m.indexOf(i, j)
	if err != nil {
		panic(denseErrorf(ctxAt, i, j, err))
	}

	return v.m.data[off]
}

func (v gonumView) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// AsGonum returns a read view of m satisfying mat.Matrix. No data is copied;
// later writes to m are visible through the view.
func (m *Dense) AsGonum() mat.Matrix { return gonumView{m: m} }

// Gonum copies m into a new *mat.Dense.
// Matrices with a zero dimension yield an empty *mat.Dense.
func (m *Dense) Gonum() *mat.Dense {
	if m.r == 0 || m.c == 0 {
		return &mat.Dense{}
	}
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return mat.NewDense(m.r, m.c, data)
}

// FromGonum copies any mat.Matrix into a new Dense.
// *mat.Dense sources are copied row by row from their raw storage so the
// stride is honored; other implementations go through At.
//
// Errors:
//   - ErrNilMatrix when src is nil.
func FromGonum(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := src.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, fmt.Errorf("%dx%d: %w", r, c, err))
	}
	if r == 0 || c == 0 {
		return out, nil
	}

	if gd, ok := src.(*mat.Dense); ok {
		raw := gd.RawMatrix()
		for i := 0; i < r; i++ {
			copy(out.data[i*c:(i+1)*c], raw.Data[i*raw.Stride:i*raw.Stride+c])
		}

		return out, nil
	}

	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[i*c+j] = src.At(i, j)
		}
	}

	return out, nil
}
