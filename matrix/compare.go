// SPDX-License-Identifier: MIT

package matrix

// Values written by ElementWiseEquals.
const (
	equalMark   = 1.0
	unequalMark = 0.0
)

// ElementWiseEquals returns a matrix of the same shape holding 1.0 where
// a[i,j] == b[i,j] and 0.0 elsewhere.
// Comparison is exact IEEE-754 equality: no epsilon, NaN never equals NaN,
// and +0 equals -0.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ElementWiseEquals(a, b *Dense) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opElementWiseEquals, err)
	}
	res := newResult(a.r, a.c)
	for idx := range res.data {
		if a.data[idx] == b.data[idx] {
			res.data[idx] = equalMark
		} else {
			res.data[idx] = unequalMark
		}
	}

	return res, nil
}

// Equals reports whether a and b have the same shape and exactly equal
// elements. Differently shaped matrices are simply unequal, never an error.
// Two nil matrices are equal; a nil and a non-nil matrix are not.
func Equals(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for idx, v := range a.data {
		if v != b.data[idx] {
			return false
		}
	}

	return true
}

// Equals is the method form of the package-level Equals.
func (m *Dense) Equals(other *Dense) bool { return Equals(m, other) }
