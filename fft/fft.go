// Package fft implements the recursive radix-2 inverse discrete Fourier
// transform.
//
// IFFT evaluates v_j = Σ_k c_k·ω^{jk} with ω = e^{+2πi/n}. The result is not
// scaled by 1/n, so IFFT(DFT(x)) = n·x.
package fft

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// ErrNotPowerOfTwo is returned when the input length is zero or not a power of two.
var ErrNotPowerOfTwo = errors.New("fft: length is not a power of two")

// IFFT returns the unnormalized inverse transform of c. c is not modified.
//
// Complexity: O(n log n) time, O(n log n) allocations.
func IFFT(c []complex128) ([]complex128, error) {
	n := len(c)
	if n == 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("IFFT: len=%d: %w", n, ErrNotPowerOfTwo)
	}

	return ifft(c), nil
}

// ifft splits c into even and odd halves, transforms each and combines them
// with the butterfly v_k = z1_k + ω^k·z2_k, v_{k+m} = z1_k − ω^k·z2_k.
func ifft(c []complex128) []complex128 {
	n := len(c)
	if n == 1 {
		return []complex128{c[0]}
	}

	m := n / 2
	even := make([]complex128, m)
	odd := make([]complex128, m)
	for k := 0; k < m; k++ {
		even[k] = c[2*k]
		odd[k] = c[2*k+1]
	}
	z1 := ifft(even)
	z2 := ifft(odd)

	v := make([]complex128, n)
	var w complex128
	for k := 0; k < m; k++ {
		// Twiddles are computed directly rather than by repeated
		// multiplication so the rounding error does not grow with k.
		w = cmplx.Rect(1, 2*math.Pi*float64(k)/float64(n))
		v[k] = z1[k] + w*z2[k]
		v[k+m] = z1[k] - w*z2[k]
	}

	return v
}
