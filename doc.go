// Package densemat is a small dense linear-algebra playground: one
// row-major float64 matrix type with value semantics and the core operators.
//
// What lives where:
//
//	matrix/   — Dense storage & lifecycle, checked access, Add/Sub/Mul/Scale,
//	            exact equality, identity/zero/one initialisers, the
//	            "rows cols values..." text loader and one-row-per-line rendering,
//	            gonum interop.
//	examples/ — runnable demo driving the matrix API.
//
// Quick example:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
//	id, _ := matrix.NewIdentity(2)
//	p, _ := matrix.Mul(a, id)
//	fmt.Print(p) // 1 2\n3 4\n
//
// Pure Go, no cgo. Dense matrices only: no tensors, no sparse storage, no
// decompositions.
//
// SPDX-License-Identifier: MIT
package densemat
