package pagerank

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlalg/matrix"
)

// BuildTransitionMatrix returns the column-stochastic random-surfer matrix of l:
//
//	A[i][j] = (1−ρ)·(1/outdeg(j)) + ρ/n   if L[i][j] == 1
//	A[i][j] = ρ/n                          otherwise
//
// where outdeg(j) = Σ_k L[k][j].
//
// Inputs:
//   - l:   square 0/1 link matrix with at least one page.
//   - rho: teleport probability in [0, 1].
//   - opts: WithDanglingPolicy decides what a zero column means.
//
// Errors:
//   - ErrEmptyGraph, matrix.ErrDimensionMismatch (ragged/non-square),
//     ErrNonBinaryLink, ErrBadTeleport, ErrDanglingNode (DanglingReject only).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func BuildTransitionMatrix(l LinkMatrix, rho float64, opts ...Option) (*matrix.Dense, error) {
	a, err := buildTransition(l, rho, NewOptions(opts...))
	if err != nil {
		return nil, pagerankErrorf(opBuildTransition, err)
	}

	return a, nil
}

// buildTransition is BuildTransitionMatrix over already resolved options.
func buildTransition(l LinkMatrix, rho float64, o Options) (*matrix.Dense, error) {
	if err := validateLinks(l); err != nil {
		return nil, err
	}
	if math.IsNaN(rho) || rho < 0 || rho > 1 {
		return nil, fmt.Errorf("rho=%v: %w", rho, ErrBadTeleport)
	}

	n := len(l)
	outdeg := outDegrees(l)
	teleport := rho / float64(n)
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}

	var i, j int
	for j = 0; j < n; j++ {
		if outdeg[j] == 0 {
			switch o.dangling {
			case DanglingReject:
				return nil, fmt.Errorf("column %d: %w", j, ErrDanglingNode)
			case DanglingUniform:
				for i = 0; i < n; i++ {
					rows[i][j] = 1 / float64(n)
				}
				continue
			}
		}
		for i = 0; i < n; i++ {
			if l[i][j] == 1 {
				rows[i][j] = (1-rho)*(1/float64(outdeg[j])) + teleport
			} else {
				rows[i][j] = teleport
			}
		}
	}

	return matrix.NewFromRows(rows)
}

// validateLinks checks that l is non-empty, square and binary.
func validateLinks(l LinkMatrix) error {
	n := len(l)
	if n == 0 {
		return ErrEmptyGraph
	}
	for i, row := range l {
		if len(row) != n {
			return fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), n, matrix.ErrDimensionMismatch)
		}
		for j, v := range row {
			if v != 0 && v != 1 {
				return fmt.Errorf("L[%d][%d]=%d: %w", i, j, v, ErrNonBinaryLink)
			}
		}
	}

	return nil
}

// outDegrees returns the column sums of l.
func outDegrees(l LinkMatrix) []int {
	deg := make([]int, len(l))
	for _, row := range l {
		for j, v := range row {
			deg[j] += v
		}
	}

	return deg
}
