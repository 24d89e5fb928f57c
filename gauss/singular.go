package gauss

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/matrix"
)

// SolveSingular returns a nonzero vector p with A·p ≈ 0 for a rank-deficient
// square A, or the all-zero vector when every pivot stays above the tolerance
// (A is numerically invertible). The zero vector is a sentinel, not an error.
//
// Implementation:
//   - Stage 1: copy A; use a zero right-hand side (homogeneous system).
//   - Stage 2: Eliminate in ModeProbe; no vanishing pivot → return zeros.
//   - Stage 3: with m = Rank, take the m×m upper-left block T of the
//     reduced rows (Dense.Induced) and v = −(column m of rows 0..m-1).
//     Rank 0 means the first column vanished: p = e_0.
//   - Stage 4: solve T·x = v by back-substitution.
//   - Stage 5: return (x[0..m-1], 1, 0, …, 0): the free variable m fixed to 1.
//
// Preconditions:
//   - Only the first vanishing pivot is used. For rank n-1 matrices (the
//     PageRank case) the result spans the null space; for matrices with
//     several independent deficiencies it is one null-space vector among many.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrInvalidDimensions.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func SolveSingular(a matrix.Matrix, opts ...Option) ([]float64, error) {
	red, err := Eliminate(a, nil, ModeProbe, opts...)
	if err != nil {
		return nil, gaussErrorf(opSolveSingular, err)
	}
	n := len(red.U)
	p := make([]float64, n)
	if !red.Deficient {
		return p, nil
	}

	m := red.Rank
	p[m] = 1
	if m == 0 {
		return p, nil
	}

	u, err := matrix.NewFromRows(red.U)
	if err != nil {
		return nil, gaussErrorf(opSolveSingular, err)
	}
	lead := make([]int, m)
	v := make([]float64, m)
	for i := range lead {
		lead[i] = i
		v[i] = -red.U[i][m]
	}
	t, err := u.Induced(lead, lead)
	if err != nil {
		return nil, gaussErrorf(opSolveSingular, fmt.Errorf("leading block: %w", err))
	}
	x, err := BackSubst(t, v)
	if err != nil {
		return nil, gaussErrorf(opSolveSingular, err)
	}
	copy(p, x)

	return p, nil
}
