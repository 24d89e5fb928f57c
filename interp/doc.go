// Package interp interpolates curves through sample points.
//
// Two interpolators share the Interpolator interface:
//
//   - CubicSpline: piecewise cubic Hermite spline on equidistant nodes. The
//     inner derivatives come from the C² continuity conditions (a tridiagonal
//     system), the boundary derivatives default to zero and can be reset.
//   - NewtonPolynomial: one global polynomial in Newton form, built from
//     divided differences and extended one node at a time.
//
// Both evaluate in O(1) per interval (spline) or O(n) (Newton, Horner scheme).
package interp

// Interpolator evaluates an interpolating curve at z.
type Interpolator interface {
	Evaluate(z float64) float64
}
