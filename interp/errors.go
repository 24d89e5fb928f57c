package interp

import "errors"

var (
	// ErrEmptySamples is returned when no sample values are given.
	ErrEmptySamples = errors.New("interp: no sample points")

	// ErrLengthMismatch is returned when abscissae and values differ in length,
	// or when a spline gets len(y) != n+1.
	ErrLengthMismatch = errors.New("interp: sample length mismatch")

	// ErrBadInterval is returned for a spline interval with b <= a, a
	// non-finite bound or n < 1.
	ErrBadInterval = errors.New("interp: invalid interval")

	// ErrDuplicateNode is returned when two abscissae coincide.
	ErrDuplicateNode = errors.New("interp: duplicate node")
)
