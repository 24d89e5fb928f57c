package gauss

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/matrix"
)

// BackSubst solves the upper-triangular system R·x = b from the last row upward:
//
//	x[n-1] = b[n-1] / R[n-1][n-1]
//	x[i]   = (b[i] - Σ_{j>i} R[i][j]·x[j]) / R[i][i],  i = n-2 … 0
//
// Only the upper triangle of r is read; stale values below the diagonal are
// ignored. Neither r nor b is mutated.
//
// Inputs:
//   - r: non-nil square matrix whose diagonal is nonzero.
//   - b: right-hand side, len(b) == r.Rows().
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square R or wrong len(b)).
//
// Notes:
//   - A zero (or tiny) diagonal entry is not detected: the result then holds
//     ±Inf/NaN. Callers guarantee nonzero pivots by construction.
//
// Complexity:
//   - Time O(n²), Space O(n).
func BackSubst(r matrix.Matrix, b []float64) ([]float64, error) {
	if err := matrix.ValidateSquareNonNil(r); err != nil {
		return nil, gaussErrorf(opBackSubst, err)
	}
	if err := matrix.ValidateVecLen(b, r.Rows()); err != nil {
		return nil, gaussErrorf(opBackSubst, err)
	}

	rows, err := matrix.Rows2D(r)
	if err != nil {
		return nil, gaussErrorf(opBackSubst, fmt.Errorf("copy: %w", err))
	}

	return backSubst(rows, b), nil
}

// backSubst is the unchecked kernel shared by Solve and BackSubst.
// n is taken from len(b); r must provide at least n rows and n columns.
func backSubst(r [][]float64, b []float64) []float64 {
	n := len(b)
	x := make([]float64, n)
	if n == 0 {
		return x
	}

	var (
		i, j int
		sum  float64
	)
	x[n-1] = b[n-1] / r[n-1][n-1]
	for i = n - 2; i >= 0; i-- {
		sum = b[i]
		for j = n - 1; j > i; j-- {
			sum -= r[i][j] * x[j]
		}
		x[i] = sum / r[i][i]
	}

	return x
}
