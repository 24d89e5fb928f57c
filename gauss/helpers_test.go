package gauss_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/matrix"
)

// eps is the residual bound used throughout the solver tests.
const eps = 1e-9

// hide wraps a Matrix to mask its concrete type, forcing the At/Set paths.
type hide struct{ matrix.Matrix }

// mustDense builds a *matrix.Dense from a literal or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// residualInf returns ‖A·x − b‖∞.
func residualInf(t *testing.T, a matrix.Matrix, x, b []float64) float64 {
	t.Helper()
	ax, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	var worst float64
	for i := range ax {
		worst = math.Max(worst, math.Abs(ax[i]-b[i]))
	}

	return worst
}

// normInf returns max |v[i]|.
func normInf(v []float64) float64 {
	var worst float64
	for _, x := range v {
		worst = math.Max(worst, math.Abs(x))
	}

	return worst
}

// copyRows deep-copies a [][]float64 literal.
func copyRows(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i := range rows {
		out[i] = append([]float64(nil), rows[i]...)
	}

	return out
}

// randomDominant returns a random n×n strictly diagonally dominant matrix,
// which is invertible and well conditioned.
func randomDominant(rng *rand.Rand, n int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		var off float64
		for j := range rows[i] {
			if i == j {
				continue
			}
			rows[i][j] = 2*rng.Float64() - 1
			off += math.Abs(rows[i][j])
		}
		rows[i][i] = off + 1 + rng.Float64()
		if rng.Intn(2) == 0 {
			rows[i][i] = -rows[i][i]
		}
	}

	return rows
}

// randomVec returns n values uniformly drawn from [-1, 1).
func randomVec(rng *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 2*rng.Float64() - 1
	}

	return v
}
