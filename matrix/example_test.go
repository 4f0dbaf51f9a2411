package matrix_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/densemat/matrix"
)

// ExampleDense_arithmetic mirrors the reference driver: literal matrix,
// identity, sum, difference, product, scaling and equality.
func ExampleDense_arithmetic() {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	id, _ := matrix.NewDense(3, 3)
	_ = id.SetIdentity()

	sum, _ := matrix.Add(a, id)
	fmt.Print("A+I:\n", sum)

	scaled, _ := matrix.ScaleLeft(2, a)
	fmt.Print("2*A:\n", scaled)

	prod, _ := matrix.Mul(a, id)
	fmt.Println("A*I == A:", prod.Equals(a))
	fmt.Println("A == I:", a.Equals(id))

	// Output:
	// A+I:
	// 2 2 3
	// 4 6 6
	// 7 8 10
	// 2*A:
	// 2 4 6
	// 8 10 12
	// 14 16 18
	// A*I == A: true
	// A == I: false
}

// ExampleDense_Load loads a pre-sized matrix from the text format.
func ExampleDense_Load() {
	m, _ := matrix.NewDense(2, 2)
	err := m.Load(strings.NewReader("2 2\n0.5 1\n-3 4e2\n"))
	fmt.Println(err)
	fmt.Print(m)

	err = m.Load(strings.NewReader("3 1\n1 2 3\n"))
	fmt.Println(errors.Is(err, matrix.ErrDimensionMismatch))

	// Output:
	// <nil>
	// 0.5 1
	// -3 400
	// true
}

// ExampleMul shows the dimension-mismatch error.
func ExampleMul() {
	a, _ := matrix.NewDense(2, 3)
	b, _ := matrix.NewDense(2, 3)
	_, err := matrix.Mul(a, b)
	fmt.Println(err)

	// Output:
	// Mul: matrix: dimension mismatch
}
