package gauss

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlalg/matrix"
)

// Eliminate reduces a private copy of (A, b) to upper-triangular form using
// column pivoting, one column at a time.
//
// Implementation, per step i = 0..n-1:
//   - Stage 1 (pivot): pick the row r ∈ [i, n) with the largest |A[r][i]|
//     (ties keep the lowest index) and exchange whole rows r and i of A and b.
//   - Stage 2 (eliminate): for every row j > i with A[j][i] ≠ 0,
//     scale = A[j][i]/A[i][i]; A[j][k] -= scale·A[i][k] for k ≥ i;
//     b[j] -= scale·b[i].
//   - Stage 3 (probe only): if every candidate for the next pivot,
//     |A[j][i+1]| for j > i, is below the tolerance, stop and report Rank = i+1.
//     Before step 0 the first column is checked the same way (Rank = 0).
//
// Inputs:
//   - a:    non-nil square matrix; never mutated.
//   - b:    right-hand side of length n, or nil for the homogeneous system
//     A·x = 0. Never mutated.
//   - mode: ModeFull or ModeProbe.
//   - opts: WithTolerance (only consulted in ModeProbe).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrInvalidDimensions, ErrUnknownMode.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the working copy.
func Eliminate(a matrix.Matrix, b []float64, mode Mode, opts ...Option) (*Reduction, error) {
	if mode != ModeFull && mode != ModeProbe {
		return nil, gaussErrorf(opEliminate, fmt.Errorf("mode %d: %w", int(mode), ErrUnknownMode))
	}
	work, rhs, err := workingCopy(a, b)
	if err != nil {
		return nil, gaussErrorf(opEliminate, err)
	}
	o := NewOptions(opts...)

	rank, deficient := reduce(work, rhs, mode, o.tol)

	return &Reduction{U: work, B: rhs, Rank: rank, Deficient: deficient}, nil
}

// workingCopy validates (a, b) and returns independent copies of both.
// A nil b becomes the zero vector.
func workingCopy(a matrix.Matrix, b []float64) ([][]float64, []float64, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, nil, err
	}
	n := a.Rows()
	rhs := make([]float64, n)
	if b != nil {
		if err := matrix.ValidateVecLen(b, n); err != nil {
			return nil, nil, err
		}
		copy(rhs, b)
	}
	work, err := matrix.Rows2D(a)
	if err != nil {
		return nil, nil, err
	}

	return work, rhs, nil
}

// reduce runs the shared pivoting core in place on a and b.
// It returns the number of pivots formed and whether ModeProbe stopped early.
func reduce(a [][]float64, b []float64, mode Mode, tol float64) (int, bool) {
	n := len(a)
	probe := mode == ModeProbe
	if probe && maxCandidate(a, 0, 0) < tol {
		return 0, true
	}

	var (
		i, j, k, p int
		scale      float64
	)
	for i = 0; i < n; i++ {
		// Stage 1: partial pivoting by magnitude, full row exchange.
		p = pivotRow(a, i)
		if p != i {
			a[i], a[p] = a[p], a[i]
			b[i], b[p] = b[p], b[i]
		}

		// Stage 2: clear column i below the pivot.
		for j = i + 1; j < n; j++ {
			if a[j][i] == 0 {
				continue
			}
			scale = a[j][i] / a[i][i]
			for k = i; k < n; k++ {
				a[j][k] -= a[i][k] * scale
			}
			b[j] -= b[i] * scale
		}

		// Stage 3: the next step has nothing usable to pivot on.
		if probe && i+1 < n && maxCandidate(a, i+1, i+1) < tol {
			return i + 1, true
		}
	}

	return n, false
}

// pivotRow returns the row index in [col, n) holding the largest |a[r][col]|.
// Strict comparison keeps the first row on ties.
func pivotRow(a [][]float64, col int) int {
	best, bestAbs := col, math.Abs(a[col][col])
	var v float64
	for r := col + 1; r < len(a); r++ {
		if v = math.Abs(a[r][col]); v > bestAbs {
			best, bestAbs = r, v
		}
	}

	return best
}

// maxCandidate returns max |a[r][col]| over rows r ∈ [from, n).
func maxCandidate(a [][]float64, from, col int) float64 {
	var best float64
	for r := from; r < len(a); r++ {
		best = math.Max(best, math.Abs(a[r][col]))
	}

	return best
}
