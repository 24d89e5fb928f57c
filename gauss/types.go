// Package gauss: elimination modes and the tagged reduction result.
package gauss

// Mode selects the termination rule of the shared pivoting core.
//
//   - ModeFull  — run all n elimination steps; used by Solve.
//   - ModeProbe — stop as soon as every candidate for the next pivot is below
//     the tolerance; used by SolveSingular.
type Mode int

const (
	// ModeFull eliminates every column regardless of pivot magnitude.
	ModeFull Mode = iota

	// ModeProbe stops at the first step whose next pivot would vanish.
	ModeProbe
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeProbe:
		return "probe"
	default:
		return "unknown"
	}
}

// Reduction is the result of Eliminate.
//
// Fields:
//   - U         — the reduced working rows. The leading Rank columns are upper
//     triangular; entries below the diagonal are logically zero.
//   - B         — the right-hand side after the same row exchanges and updates.
//   - Rank      — number of pivots formed. Equals n for a complete reduction.
//   - Deficient — true when ModeProbe stopped early; column Rank is the one
//     whose pivot vanished.
type Reduction struct {
	U         [][]float64
	B         []float64
	Rank      int
	Deficient bool
}

// Step returns the index of the elimination step after which the next pivot
// vanished (Rank-1), or -1 when the reduction completed or the very first
// column was already numerically zero.
func (r *Reduction) Step() int {
	if !r.Deficient {
		return -1
	}

	return r.Rank - 1
}
