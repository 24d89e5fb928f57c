package gauss_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/gauss"
	"github.com/katalvlaran/lvlalg/matrix"
)

// TestSolveSingular_KnownNullVectors checks exact null-space vectors for
// hand-built rank-deficient matrices.
func TestSolveSingular_KnownNullVectors(t *testing.T) {
	cases := []struct {
		name string
		a    [][]float64
		want []float64
	}{
		{"duplicate-row", [][]float64{{1, -2, 1}, {0, 1, -2}, {0, 1, -2}}, []float64{3, 2, 1}},
		{"scaled-row", [][]float64{{1, 2}, {2, 4}}, []float64{-2, 1}},
		{"zero-first-column", [][]float64{{0, 1}, {0, 2}}, []float64{1, 0}},
		{"deficient-mid-block", [][]float64{{1, 0, 1, 0}, {0, 1, 1, 0}, {1, 1, 2, 0}, {0, 0, 0, 1}}, []float64{-1, -1, 1, 0}},
		{"three-cycle-shifted", [][]float64{{-1, 0, 1}, {1, -1, 0}, {0, 1, -1}}, []float64{1, 1, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := mustDense(t, tc.a)
			p, err := gauss.SolveSingular(a)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tc.want, p, eps)
			assert.Less(t, residualInf(t, a, p, make([]float64, len(p))), eps)
		})
	}
}

// TestSolveSingular_InvertibleReturnsZero expects the exact zero sentinel.
func TestSolveSingular_InvertibleReturnsZero(t *testing.T) {
	for _, rows := range [][][]float64{
		{{2, 1}, {1, 3}},
		{{4, 2, 3}, {2, 2, 1}, {2, 2, 2}},
		{{5}},
	} {
		p, err := gauss.SolveSingular(mustDense(t, rows))
		require.NoError(t, err)
		assert.Equal(t, make([]float64, len(rows)), p)
	}
}

// TestSolveSingular_RandomRankDeficient builds matrices whose last row is a
// linear combination of the others and checks A·p ≈ 0 with p ≠ 0.
func TestSolveSingular_RandomRankDeficient(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for _, n := range []int{2, 3, 6, 15} {
		rows := make([][]float64, n)
		for i := 0; i < n-1; i++ {
			rows[i] = randomVec(rng, n)
		}
		rows[n-1] = make([]float64, n)
		for i := 0; i < n-1; i++ {
			c := 2*rng.Float64() - 1
			for j := 0; j < n; j++ {
				rows[n-1][j] += c * rows[i][j]
			}
		}
		// Move the dependent row somewhere in the middle.
		k := rng.Intn(n)
		rows[k], rows[n-1] = rows[n-1], rows[k]

		a := mustDense(t, rows)
		p, err := gauss.SolveSingular(a)
		require.NoError(t, err)

		scale := math.Max(1, normInf(p))
		assert.Greater(t, normInf(p), 0.0, "n=%d: null vector must be nonzero", n)
		assert.Less(t, residualInf(t, a, p, make([]float64, n))/scale, 1e-8, "n=%d", n)
	}
}

// TestSolveSingular_DoesNotMutate compares the caller's matrix before and after.
func TestSolveSingular_DoesNotMutate(t *testing.T) {
	rows := [][]float64{{1, -2, 1}, {0, 1, -2}, {0, 1, -2}}
	a := mustDense(t, rows)
	before := copyRows(rows)

	_, err := gauss.SolveSingular(a)
	require.NoError(t, err)

	got, err := matrix.Rows2D(a)
	require.NoError(t, err)
	assert.Equal(t, before, got)
}

// TestSolveSingular_Tolerance shows that the pivot tolerance is the sole
// arbiter of "zero": a pivot of 1e-6 survives the default but not 1e-5.
func TestSolveSingular_Tolerance(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 1}, {1, 1 + 1e-6}})

	p, err := gauss.SolveSingular(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, p)

	p, err = gauss.SolveSingular(a, gauss.WithTolerance(1e-5))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-1, 1}, p, eps)
}

// TestSolveSingular_Validation checks sentinel errors.
func TestSolveSingular_Validation(t *testing.T) {
	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	_, err = gauss.SolveSingular(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = gauss.SolveSingular(rect)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestWithTolerance_Panics rejects nonsensical tolerances at construction.
func TestWithTolerance_Panics(t *testing.T) {
	assert.Panics(t, func() { gauss.WithTolerance(-1) })
	assert.Panics(t, func() { gauss.WithTolerance(math.NaN()) })
	assert.Panics(t, func() { gauss.WithTolerance(math.Inf(1)) })
	assert.NotPanics(t, func() { gauss.WithTolerance(0) })
	assert.Equal(t, gauss.DefaultPivotTolerance, gauss.NewOptions().Tolerance())
	assert.Equal(t, 1e-3, gauss.NewOptions(gauss.WithTolerance(1e-3)).Tolerance())
}
