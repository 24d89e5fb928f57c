// Package matrix provides the dense storage and shared primitives used by the
// solvers in this module.
//
// The matrix package provides:
//
//   - Matrix, a small bounds-checked interface over two-dimensional float64 data.
//   - Dense, a row-major implementation backed by a single flat slice.
//   - Sentinel errors (ErrNilMatrix, ErrDimensionMismatch, ...) shared by
//     gauss and pagerank so callers can match failures with errors.Is.
//   - Validators (ValidateNotNil, ValidateSquare, ValidateVecLen) that every
//     public kernel runs before touching data.
//   - Helpers used around elimination: MatVec, ShiftDiagonal (built on
//     NewIdentity), Rows2D/NewFromRows converters and Induced, which
//     gauss.SolveSingular uses to cut out the leading triangular block.
//
// Dense matrices are meant for systems that comfortably fit in memory:
// O(r*c) storage, O(1) element access.
//
//	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	y, _ := matrix.MatVec(a, []float64{1, 1}) // [3 7]
package matrix
