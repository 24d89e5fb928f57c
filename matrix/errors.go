// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set shared by the solver packages.
// All algorithms MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No algorithm should
// panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Kernels wrap
// these sentinels with fmt.Errorf("Op: %w", ErrX) so callers still match them
// with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> vector length -> index.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a non-square system matrix or a right-hand side of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (or nil vector) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrRaggedRows indicates that a [][]float64 literal has rows of different length.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")
)
