// SPDX-License-Identifier: MIT
// Package matrix provides the small set of whole-matrix helpers the solvers
// lean on: matrix-vector product, identity and diagonal shifts, column sums
// and conversion to and from [][]float64 working copies.
//
// Notes:
//   - All helpers validate through validators.go and wrap errors with an
//     operation tag via matrixErrorf.
//   - Inputs are never mutated; results are freshly allocated.

package matrix

import "fmt"

// ZeroSum is the initial value of the MatVec dot-product accumulators.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMatVec        = "MatVec"
	opIdentity      = "NewIdentity"
	opShiftDiagonal = "ShiftDiagonal"
	opColSums       = "ColSums"
	opRows2D        = "Rows2D"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
// m may be rectangular (r×c); x must have length c; y has length r.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1.0
	}

	return id, nil
}

// ShiftDiagonal returns a new matrix equal to m + alpha*I.
// With alpha = -1 this turns the stationary condition A·p = p into the
// homogeneous system (A - I)·p = 0.
//
// Implementation:
//   - Stage 1: build alpha*I from NewIdentity.
//   - Stage 2: add m entry by entry (flat buffer for *Dense, At otherwise).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
// Complexity: O(n^2).
func ShiftDiagonal(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opShiftDiagonal, err)
	}
	n := m.Rows()
	out, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opShiftDiagonal, err)
	}
	for i := 0; i < n; i++ {
		out.data[i*n+i] *= alpha
	}

	if d, ok := m.(*Dense); ok {
		for k, v := range d.data {
			out.data[k] += v
		}

		return out, nil
	}

	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opShiftDiagonal, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out.data[i*n+j] += v
		}
	}

	return out, nil
}

// ColSums returns the sum of each column of m.
// A column-stochastic matrix has every entry of the result equal to 1.
//
// Complexity: O(r*c).
func ColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	sums := make([]float64, m.Cols())
	if d, ok := m.(*Dense); ok {
		for i := 0; i < d.r; i++ {
			for j := 0; j < d.c; j++ {
				sums[j] += d.data[i*d.c+j]
			}
		}

		return sums, nil
	}

	var v float64
	var err error
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opColSums, err)
			}
			sums[j] += v
		}
	}

	return sums, nil
}

// Rows2D copies m into a freshly allocated [][]float64, one slice per row.
// Solvers use it to obtain a private working copy: row exchanges then become
// slice-header swaps and the caller's matrix is never touched.
//
// Complexity: Time O(r*c), Space O(r*c).
func Rows2D(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRows2D, err)
	}
	r, c := m.Rows(), m.Cols()
	out := make([][]float64, r)

	// Fast-path: copy contiguous row segments.
	if d, ok := m.(*Dense); ok {
		for i := 0; i < r; i++ {
			out[i] = make([]float64, c)
			copy(out[i], d.data[i*c:(i+1)*c])
		}

		return out, nil
	}

	var err error
	for i := 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opRows2D, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
		}
	}

	return out, nil
}
