// Package gauss solves dense linear systems by Gaussian elimination with
// column (partial) pivoting, and extracts null-space vectors of singular
// matrices from the same elimination.
//
// 🚀 What is inside?
//
//	BackSubst     — solve an upper-triangular system R·x = b bottom-up.
//	Eliminate     — reduce (A, b) to upper-triangular form; ModeFull runs every
//	                step, ModeProbe stops at the first vanishing pivot.
//	Solve         — Eliminate(ModeFull) + BackSubst for invertible A.
//	SolveSingular — Eliminate(ModeProbe), solve the surviving triangular block
//	                and return p = (x, 1, 0, …, 0) with A·p ≈ 0.
//
// ✨ Guarantees:
//   - Caller matrices and vectors are never mutated: every routine works on a
//     private [][]float64 copy.
//   - Shape violations (nil, non-square, wrong vector length) are reported
//     with matrix sentinels; numeric degeneracy is not an error. A singular
//     matrix handed to Solve yields ±Inf/NaN, and SolveSingular returns the
//     all-zero vector when no pivot vanishes.
//   - "Zero" means |v| < tolerance; DefaultPivotTolerance is 1e-10 and
//     WithTolerance overrides it per call.
//
// ⚙️ Usage:
//
//	a, _ := matrix.NewFromRows([][]float64{{2, 1}, {1, 3}})
//	x, err := gauss.Solve(a, []float64{3, 5})
//
//	s, _ := matrix.NewFromRows([][]float64{{1, 2}, {2, 4}})
//	p, err := gauss.SolveSingular(s) // p = [-2 1]
//
// Performance:
//
//   - Elimination: O(n³) time; back-substitution O(n²).
//   - Memory: O(n²) for the working copy, O(n) for vectors.
package gauss
