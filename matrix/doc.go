// Package matrix provides a dense, real-valued matrix with value semantics.
//
// What & Why:
//
//	Dense stores rows*cols float64 values in one contiguous row-major buffer
//	(offset = i*cols + j). It owns that buffer exclusively: Clone and CopyFrom
//	deep-copy, and every arithmetic operator returns a freshly allocated
//	result without touching its operands.
//
// The package provides:
//
//   - Lifecycle: NewDense, NewDenseFromRows, Allocate, Reallocate, Release,
//     Clone, CopyFrom, Resize.
//   - Checked access: At, Set, Row; RawRow/RawData for unchecked hot loops.
//   - Arithmetic: Add, Sub, Mul, Scale, ScaleLeft.
//   - Comparison: ElementWiseEquals (matrix of 1/0), Equals (bool).
//   - Initialisers: SetZero, SetOne, SetIdentity, Fill, NewIdentity.
//   - Text I/O: SetFromFile/Load for the "rows cols values..." format,
//     String/WriteTo for one-line-per-row rendering.
//   - gonum interop: AsGonum, Gonum, FromGonum.
//
// Errors are package sentinels (ErrDimensionMismatch, ErrNonSquare, ErrIO,
// ...) wrapped with operation context; match them with errors.Is.
//
// Dense is not a tensor or sparse type and carries no decompositions.
// It is not safe for concurrent mutation.
//
// Complexity:
//
//	At/Set/Row are O(1). Add, Sub, Scale and the comparisons are O(r*c).
//	Mul is the naive O(r*n*c) triple loop.
package matrix
