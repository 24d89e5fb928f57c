package interp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/lapack/gonum"
)

// CubicSpline interpolates equidistant samples y_i at x_i = a + i·h,
// h = (b−a)/n, with a piecewise cubic Hermite polynomial per interval.
// The derivatives y'_1 … y'_{n-1} satisfy
//
//	y'_{i-1} + 4·y'_i + y'_{i+1} = 3/h · (y_{i+1} − y_{i-1})
//
// which makes the curve twice continuously differentiable. y'_0 and y'_n are
// boundary conditions (0 by default).
type CubicSpline struct {
	a, b   float64
	n      int
	h      float64
	y      []float64
	yprime []float64
}

var _ Interpolator = (*CubicSpline)(nil)

// NewCubicSpline builds a spline over [a, b] split into n intervals; y holds
// the n+1 sample values. y is copied.
//
// Errors: ErrBadInterval (b <= a, non-finite bounds, n < 1), ErrLengthMismatch.
func NewCubicSpline(a, b float64, n int, y []float64) (*CubicSpline, error) {
	if n < 1 || !(b > a) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return nil, fmt.Errorf("NewCubicSpline: [%v,%v] n=%d: %w", a, b, n, ErrBadInterval)
	}
	if len(y) != n+1 {
		return nil, fmt.Errorf("NewCubicSpline: %d values for %d nodes: %w", len(y), n+1, ErrLengthMismatch)
	}

	s := &CubicSpline{
		a:      a,
		b:      b,
		n:      n,
		h:      (b - a) / float64(n),
		y:      append([]float64(nil), y...),
		yprime: make([]float64, n+1),
	}
	s.computeDerivatives()

	return s, nil
}

// SetBoundaryConditions sets y'(a) = d0 and y'(b) = dn and recomputes the
// inner derivatives.
func (s *CubicSpline) SetBoundaryConditions(d0, dn float64) {
	s.yprime[0] = d0
	s.yprime[s.n] = dn
	s.computeDerivatives()
}

// Derivatives returns a copy of y'_0 … y'_n.
func (s *CubicSpline) Derivatives() []float64 {
	return append([]float64(nil), s.yprime...)
}

// computeDerivatives solves the (n-1)×(n-1) system for the inner derivatives
// with LAPACK's Dgtsv. With a single interval there is nothing to solve.
// The system is strictly diagonally dominant, so Dgtsv never reports a
// singular pivot.
func (s *CubicSpline) computeDerivatives() {
	m := s.n - 1
	if m < 1 {
		return
	}

	lower := make([]float64, m-1)
	diag := make([]float64, m)
	upper := make([]float64, m-1)
	rhs := make([]float64, m)
	for k := range diag {
		diag[k] = 4
		// Row k belongs to node i = k+1.
		rhs[k] = 3 / s.h * (s.y[k+2] - s.y[k])
	}
	for k := range lower {
		lower[k] = 1
		upper[k] = 1
	}
	rhs[0] -= s.yprime[0]
	rhs[m-1] -= s.yprime[s.n]

	// Dgtsv overwrites its scratch slices; rhs holds the solution on return.
	if ok := (gonum.Implementation{}).Dgtsv(m, 1, lower, diag, upper, rhs, 1); ok {
		copy(s.yprime[1:s.n], rhs)
	}
}

// Evaluate returns the spline value at z. Outside [a, b] the nearest boundary
// sample (y_0 or y_n) is returned; a NaN z yields NaN.
func (s *CubicSpline) Evaluate(z float64) float64 {
	if math.IsNaN(z) {
		return math.NaN()
	}
	if z <= s.a {
		return s.y[0]
	}
	if z >= s.b {
		return s.y[s.n]
	}

	i := int((z - s.a) / s.h)
	if i >= s.n {
		i = s.n - 1
	}
	t := (z - (s.a + float64(i)*s.h)) / s.h
	t2, t3 := t*t, t*t*t

	h0 := 1 - 3*t2 + 2*t3
	h1 := 3*t2 - 2*t3
	h2 := t - 2*t2 + t3
	h3 := -t2 + t3

	return s.y[i]*h0 + s.y[i+1]*h1 + s.h*(s.yprime[i]*h2+s.yprime[i+1]*h3)
}
