package interp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gonuminterp "gonum.org/v1/gonum/interp"

	"github.com/katalvlaran/lvlalg/interp"
)

const eps = 1e-9

func sample(f func(float64) float64, a, b float64, n int) []float64 {
	h := (b - a) / float64(n)
	y := make([]float64, n+1)
	for i := range y {
		y[i] = f(a + float64(i)*h)
	}

	return y
}

func TestCubicSpline_InterpolatesNodes(t *testing.T) {
	a, b, n := 0.0, 2*math.Pi, 12
	y := sample(math.Sin, a, b, n)
	s, err := interp.NewCubicSpline(a, b, n, y)
	require.NoError(t, err)

	h := (b - a) / float64(n)
	for i := 0; i < n; i++ {
		assert.InDelta(t, y[i], s.Evaluate(a+float64(i)*h), eps, "node %d", i)
	}
	assert.InDelta(t, y[n], s.Evaluate(b), eps)
}

// A complete cubic spline with exact end slopes reproduces any cubic.
func TestCubicSpline_ReproducesCubic(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - 2*x*x + 0.5*x + 1 }
	df := func(x float64) float64 { return 3*x*x - 4*x + 0.5 }
	a, b, n := -1.0, 3.0, 8

	s, err := interp.NewCubicSpline(a, b, n, sample(f, a, b, n))
	require.NoError(t, err)
	s.SetBoundaryConditions(df(a), df(b))

	h := (b - a) / float64(n)
	d := s.Derivatives()
	require.Len(t, d, n+1)
	for i := range d {
		assert.InDelta(t, df(a+float64(i)*h), d[i], 1e-9, "y'_%d", i)
	}
	for z := a; z <= b; z += 0.037 {
		assert.InDelta(t, f(z), s.Evaluate(z), 1e-9, "z=%v", z)
	}
}

func TestCubicSpline_ClampsOutsideInterval(t *testing.T) {
	y := []float64{2, 5, -1, 4}
	s, err := interp.NewCubicSpline(1, 4, 3, y)
	require.NoError(t, err)

	assert.Equal(t, 2.0, s.Evaluate(0))
	assert.Equal(t, 2.0, s.Evaluate(1))
	assert.Equal(t, 4.0, s.Evaluate(4))
	assert.Equal(t, 4.0, s.Evaluate(100))
}

// With zero end slopes the spline is the clamped cubic spline.
func TestCubicSpline_MatchesGonumClampedCubic(t *testing.T) {
	a, b, n := 0.0, 5.0, 10
	y := sample(func(x float64) float64 { return math.Exp(-x) * math.Cos(2*x) }, a, b, n)
	s, err := interp.NewCubicSpline(a, b, n, y)
	require.NoError(t, err)

	xs := make([]float64, n+1)
	for i := range xs {
		xs[i] = a + float64(i)*(b-a)/float64(n)
	}
	var ref gonuminterp.ClampedCubic
	require.NoError(t, ref.Fit(xs, y))

	for z := a + 0.01; z < b; z += 0.13 {
		assert.InDelta(t, ref.Predict(z), s.Evaluate(z), 1e-9, "z=%v", z)
	}
}

func TestCubicSpline_EvaluateNaN(t *testing.T) {
	s, err := interp.NewCubicSpline(0, 1, 4, []float64{0, 1, 0, 1, 0})
	require.NoError(t, err)

	var got float64
	require.NotPanics(t, func() { got = s.Evaluate(math.NaN()) })
	assert.True(t, math.IsNaN(got))
}

func TestCubicSpline_SingleInterval(t *testing.T) {
	s, err := interp.NewCubicSpline(0, 1, 1, []float64{0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, s.Evaluate(0.5), eps) // zero end slopes: symmetric S-curve
	assert.Equal(t, []float64{0, 0}, s.Derivatives())

	s.SetBoundaryConditions(1, 1)
	assert.InDelta(t, 0.25, s.Evaluate(0.25), eps) // straight line
}

func TestCubicSpline_DerivativesIsCopy(t *testing.T) {
	s, err := interp.NewCubicSpline(0, 3, 3, []float64{0, 1, 0, 1})
	require.NoError(t, err)
	d := s.Derivatives()
	d[1] = 1e9
	assert.NotEqual(t, 1e9, s.Derivatives()[1])
}

func TestNewCubicSpline_Validation(t *testing.T) {
	_, err := interp.NewCubicSpline(1, 1, 2, []float64{0, 0, 0})
	assert.ErrorIs(t, err, interp.ErrBadInterval)

	_, err = interp.NewCubicSpline(2, 1, 2, []float64{0, 0, 0})
	assert.ErrorIs(t, err, interp.ErrBadInterval)

	_, err = interp.NewCubicSpline(0, 1, 0, []float64{0})
	assert.ErrorIs(t, err, interp.ErrBadInterval)

	_, err = interp.NewCubicSpline(0, math.Inf(1), 2, []float64{0, 0, 0})
	assert.ErrorIs(t, err, interp.ErrBadInterval)

	_, err = interp.NewCubicSpline(0, 1, 2, []float64{0, 0})
	assert.ErrorIs(t, err, interp.ErrLengthMismatch)
}
