// Package lvlalg is a small dense linear-algebra toolkit built around
// Gaussian elimination with column pivoting, and the PageRank computation
// that runs on top of it.
//
// What is inside:
//
//	matrix/   — Matrix interface, row-major Dense storage, validators,
//	            MatVec, ShiftDiagonal and other shared helpers
//	gauss/    — pivoted elimination, back-substitution, Solve for regular
//	            systems and SolveSingular for a null-space vector
//	pagerank/ — transition matrix with teleportation, stationary
//	            distribution via SolveSingular, labels by descending score
//	interp/   — cubic Hermite spline on equidistant nodes and Newton
//	            divided-difference polynomials
//	fft/      — recursive radix-2 inverse FFT
//	cmd/pagerank — CLI ranking a YAML link graph
//
// Quick start:
//
//	a, _ := matrix.NewFromRows([][]float64{{2, 1}, {1, 3}})
//	x, _ := gauss.Solve(a, []float64{3, 5}) // [0.8 1.4]
//
//	l := pagerank.LinkMatrix{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}}
//	p, _ := pagerank.Rank(l, 0.15) // [1/3 1/3 1/3]
//
// All kernels are synchronous and never modify their inputs. Failures are
// reported through sentinel errors that callers match with errors.Is.
package lvlalg
