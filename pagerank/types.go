// Package pagerank: link graph and result types.
package pagerank

// LinkMatrix is an n×n 0/1 matrix: L[i][j] == 1 means page j links to page i.
// Column j therefore lists the outbound links of page j.
type LinkMatrix [][]int

// Link is a directed hyperlink between two labelled pages.
type Link struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Score pairs a page label with its stationary probability.
type Score struct {
	Label string
	Score float64
}

// DanglingPolicy decides how a page without outbound links (a zero column of
// the link matrix) enters the transition matrix.
//
//   - DanglingReject       — fail with ErrDanglingNode (default).
//   - DanglingUniform      — treat the page as linking to every page, so its
//     column becomes 1/n everywhere and stays stochastic.
//   - DanglingTeleportOnly — apply the formula unchanged: the column only gets
//     the teleport term ρ/n and sums to ρ instead of 1.
type DanglingPolicy int

const (
	// DanglingReject fails fast on a zero column.
	DanglingReject DanglingPolicy = iota

	// DanglingUniform spreads a dangling page's mass over all pages.
	DanglingUniform

	// DanglingTeleportOnly keeps the raw formula (sub-stochastic column).
	// For 0 < ρ < 1 a dangling page leaves A with no eigenvalue 1, so A − I
	// is invertible, SolveSingular returns the zero vector and Rank returns
	// all-NaN scores with a nil error.
	DanglingTeleportOnly
)

// String implements fmt.Stringer.
func (p DanglingPolicy) String() string {
	switch p {
	case DanglingReject:
		return "reject"
	case DanglingUniform:
		return "uniform"
	case DanglingTeleportOnly:
		return "teleport-only"
	default:
		return "unknown"
	}
}

// ParseDanglingPolicy maps the String form back to a policy.
func ParseDanglingPolicy(s string) (DanglingPolicy, bool) {
	for _, p := range []DanglingPolicy{DanglingReject, DanglingUniform, DanglingTeleportOnly} {
		if p.String() == s {
			return p, true
		}
	}

	return DanglingReject, false
}
