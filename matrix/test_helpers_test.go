// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Small deterministic fixtures shared by the Dense tests.

package matrix_test

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
)

// data3x3 is the 3×3 fixture used by the demo scenario.
var data3x3 = [][]float64{
	{1, 2, 3},
	{4, 5, 6},
	{7, 8, 9},
}

// MustDense allocates an r×c *Dense zero-filled via SetZero, or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	m.SetZero()

	return m
}

// MustRows builds a *Dense from literal rows or fails the test.
func MustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	return m
}

// RandomDense fills a new r×c matrix with reproducible values in [-1, 1).
func RandomDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, r, c)
	data := m.RawData()
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}

	return m
}

// Compare asserts that m matches want exactly.
func Compare(t testing.TB, want [][]float64, m *matrix.Dense) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols in row %d", i)
		for j := range want[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Equalf(t, want[i][j], v, "At(%d,%d)", i, j)
		}
	}
}

// writeFile writes content to a fresh file in t.TempDir and returns its path.
func writeFile(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}
