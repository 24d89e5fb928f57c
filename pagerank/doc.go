// Package pagerank computes the stationary distribution of a random surfer
// on a link graph by solving a singular linear system exactly, instead of
// iterating.
//
// 🚀 How it works
//
//	link matrix L ──► transition matrix A (column-stochastic)
//	              ──► A − I (eigenvalue 1 shifted to 0)
//	              ──► gauss.SolveSingular: p with (A − I)·p = 0
//	              ──► p / Σp  (probability vector)
//	              ──► labels sorted by descending score
//
// A[i][j] = (1−ρ)/outdeg(j) + ρ/n when page j links to page i, else ρ/n,
// where ρ is the teleport probability.
//
// ✨ Key features:
//   - strict input validation (square 0/1 link matrix, ρ ∈ [0,1]);
//   - explicit dangling-node policy: reject (default), uniform, teleport-only;
//   - BuildLinkMatrix turns labelled (from, to) links into a LinkMatrix.
//
// ⚙️ Usage:
//
//	l := pagerank.LinkMatrix{
//		{0, 0, 1},
//		{1, 0, 0},
//		{0, 1, 0},
//	}
//	scores, err := pagerank.Rank(l, 0.15)
//	order, err := pagerank.SortedLabels([]string{"a", "b", "c"}, l, 0.15)
//
// Performance: O(n²) to build A, O(n³) for the singular solve.
package pagerank
