package interp

import "fmt"

// NewtonPolynomial is the interpolating polynomial in Newton form
//
//	p(z) = a_0 + a_1(z−x_0) + a_2(z−x_0)(z−x_1) + …
//
// It keeps the lower diagonal of the divided-difference scheme,
// f_j = [x_j … x_{n-1}]f, so a new node can be appended in O(n).
type NewtonPolynomial struct {
	x []float64 // nodes
	a []float64 // coefficients a_i = [x_0 … x_i]f
	f []float64 // f_j = [x_j … x_{n-1}]f
}

var _ Interpolator = (*NewtonPolynomial)(nil)

// NewNewtonPolynomial interpolates the points (x_i, y_i). Inputs are copied.
//
// Errors: ErrEmptySamples, ErrLengthMismatch, ErrDuplicateNode.
func NewNewtonPolynomial(x, y []float64) (*NewtonPolynomial, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("NewNewtonPolynomial: %w", ErrEmptySamples)
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("NewNewtonPolynomial: %d nodes, %d values: %w", len(x), len(y), ErrLengthMismatch)
	}
	seen := make(map[float64]struct{}, len(x))
	for _, xi := range x {
		if _, dup := seen[xi]; dup {
			return nil, fmt.Errorf("NewNewtonPolynomial: x=%v: %w", xi, ErrDuplicateNode)
		}
		seen[xi] = struct{}{}
	}

	p := &NewtonPolynomial{x: append([]float64(nil), x...)}
	p.computeCoefficients(y)

	return p, nil
}

// NewEquidistantNewton interpolates n+1 values at x_i = a + i·(b−a)/n.
//
// Errors: ErrBadInterval, ErrLengthMismatch.
func NewEquidistantNewton(a, b float64, n int, y []float64) (*NewtonPolynomial, error) {
	if n < 1 || !(b > a) {
		return nil, fmt.Errorf("NewEquidistantNewton: [%v,%v] n=%d: %w", a, b, n, ErrBadInterval)
	}
	if len(y) != n+1 {
		return nil, fmt.Errorf("NewEquidistantNewton: %d values for %d nodes: %w", len(y), n+1, ErrLengthMismatch)
	}
	h := (b - a) / float64(n)
	x := make([]float64, n+1)
	for i := range x {
		x[i] = a + float64(i)*h
	}

	return NewNewtonPolynomial(x, y)
}

// computeCoefficients runs the divided-difference scheme column by column in
// a single array: after column i, f[j] = [x_j … x_{j+i}]f.
func (p *NewtonPolynomial) computeCoefficients(y []float64) {
	n := len(y)
	p.f = append([]float64(nil), y...)
	p.a = make([]float64, n)
	p.a[0] = p.f[0]
	for i := 1; i < n; i++ {
		for j := 0; j < n-i; j++ {
			p.f[j] = (p.f[j+1] - p.f[j]) / (p.x[i+j] - p.x[j])
		}
		p.a[i] = p.f[0]
	}
}

// Coefficients returns a copy of a_0 … a_{n-1}.
func (p *NewtonPolynomial) Coefficients() []float64 { return append([]float64(nil), p.a...) }

// DividedDifferences returns a copy of f_j = [x_j … x_{n-1}]f.
func (p *NewtonPolynomial) DividedDifferences() []float64 { return append([]float64(nil), p.f...) }

// Nodes returns a copy of the interpolation nodes.
func (p *NewtonPolynomial) Nodes() []float64 { return append([]float64(nil), p.x...) }

// AddSamplingPoint appends the point (xNew, yNew) and extends the scheme
// without rebuilding it. It reports false and changes nothing when xNew is
// already a node.
func (p *NewtonPolynomial) AddSamplingPoint(xNew, yNew float64) bool {
	for _, xi := range p.x {
		if xi == xNew {
			return false
		}
	}

	n := len(p.f)
	x := append(append(make([]float64, 0, n+1), p.x...), xNew)
	f := make([]float64, n+1)
	f[n] = yNew
	for i := n - 1; i >= 0; i-- {
		f[i] = (f[i+1] - p.f[i]) / (x[n] - x[i])
	}

	p.x = x
	p.f = f
	p.a = append(p.a, f[0])

	return true
}

// Evaluate returns p(z) using a Horner-like nested scheme.
func (p *NewtonPolynomial) Evaluate(z float64) float64 {
	n := len(p.a)
	result := p.a[n-1]
	for i := n - 2; i >= 0; i-- {
		result = p.a[i] + (z-p.x[i])*result
	}

	return result
}
