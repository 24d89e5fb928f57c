package gauss

import "github.com/katalvlaran/lvlalg/matrix"

// Solve returns x with A·x = b for an invertible square A, using Gaussian
// elimination with column pivoting followed by back-substitution.
//
// Neither a nor b is mutated; the row order of (A, b) does not affect the
// solution beyond rounding.
//
// Errors:
//   - ErrNilMatrix (nil a or nil b), ErrDimensionMismatch, ErrInvalidDimensions.
//
// Notes:
//   - Invertibility is a precondition, not a check. A singular A produces a
//     result containing ±Inf/NaN and a nil error; use SolveSingular for
//     rank-deficient systems.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Solve(a matrix.Matrix, b []float64) ([]float64, error) {
	work, rhs, err := workingCopy(a, b)
	if err != nil {
		return nil, gaussErrorf(opSolve, err)
	}
	// workingCopy treats nil as the homogeneous system; Solve needs a real b.
	if b == nil {
		return nil, gaussErrorf(opSolve, matrix.ValidateVecLen(b, len(rhs)))
	}

	reduce(work, rhs, ModeFull, DefaultPivotTolerance)

	return backSubst(work, rhs), nil
}
