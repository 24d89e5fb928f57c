// Package gauss: sentinel errors.
// Shape failures reuse the matrix sentinels (ErrNilMatrix,
// ErrDimensionMismatch, ErrInvalidDimensions); only conditions specific to
// elimination live here.
package gauss

import (
	"errors"
	"fmt"
)

// ErrUnknownMode is returned by Eliminate when mode is neither ModeFull nor ModeProbe.
var ErrUnknownMode = errors.New("gauss: unknown elimination mode")

// Operation tags for error wrapping.
const (
	opBackSubst     = "BackSubst"
	opEliminate     = "Eliminate"
	opSolve         = "Solve"
	opSolveSingular = "SolveSingular"
)

// gaussErrorf wraps err with an operation tag, preserving it for errors.Is.
func gaussErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
