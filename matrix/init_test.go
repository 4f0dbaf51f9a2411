// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
)

func TestSetIdentity(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{5, 5, 5}, {5, 5, 5}, {5, 5, 5}})
	require.NoError(t, m.SetIdentity())
	Compare(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, m)

	empty := matrix.NewEmpty()
	require.NoError(t, empty.SetIdentity())
	require.True(t, empty.IsEmpty())
}

func TestSetIdentityNonSquare(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{7, 7, 7}, {7, 7, 7}})
	err := m.SetIdentity()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.ErrorContains(t, err, "2x3")
	// left untouched
	Compare(t, [][]float64{{7, 7, 7}, {7, 7, 7}}, m)
}

func TestSetOneSetZeroFill(t *testing.T) {
	t.Parallel()

	m := RandomDense(t, 2, 3, 3)

	m.SetOne()
	Compare(t, [][]float64{{1, 1, 1}, {1, 1, 1}}, m)

	m.SetZero()
	Compare(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, m)

	m.Fill(-4.5)
	Compare(t, [][]float64{{-4.5, -4.5, -4.5}, {-4.5, -4.5, -4.5}}, m)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
}

func TestResizeIsDestructiveReshape(t *testing.T) {
	t.Parallel()

	m := MustRows(t, data3x3)
	require.NoError(t, m.Resize(2, 5))
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 5, m.Cols())
	require.Len(t, m.RawData(), 10)

	require.NoError(t, m.Resize(0, 0))
	require.True(t, m.IsEmpty())

	require.ErrorIs(t, m.Resize(-3, 1), matrix.ErrInvalidDimensions)
}

func TestConvenienceConstructors(t *testing.T) {
	t.Parallel()

	I, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	Compare(t, [][]float64{{1, 0}, {0, 1}}, I)

	o, err := matrix.NewOnes(1, 3)
	require.NoError(t, err)
	Compare(t, [][]float64{{1, 1, 1}}, o)

	z, err := matrix.NewZeros(2, 1)
	require.NoError(t, err)
	Compare(t, [][]float64{{0}, {0}}, z)

	_, err = matrix.NewIdentity(-1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewOnes(-1, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewZeros(1, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
