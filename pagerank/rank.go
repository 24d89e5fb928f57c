package pagerank

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlalg/gauss"
	"github.com/katalvlaran/lvlalg/matrix"
)

// Rank returns the stationary distribution p of the random surfer on l:
// A·p = p with A = BuildTransitionMatrix(l, rho), normalized so that Σp = 1.
//
// Implementation:
//   - Stage 1: build A and shift it to A − I (eigenvalue 1 becomes 0).
//   - Stage 2: gauss.SolveSingular finds p with (A − I)·p = 0.
//   - Stage 3: scale p by λ = 1/Σp.
//
// Errors:
//   - every BuildTransitionMatrix error, wrapped with the Rank tag.
//
// Notes:
//   - If the solver finds no vanishing pivot it returns the zero vector and
//     the normalization produces NaN; this is not guarded separately.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Rank(l LinkMatrix, rho float64, opts ...Option) ([]float64, error) {
	o := NewOptions(opts...)
	a, err := buildTransition(l, rho, o)
	if err != nil {
		return nil, pagerankErrorf(opRank, err)
	}
	shifted, err := matrix.ShiftDiagonal(a, -1)
	if err != nil {
		return nil, pagerankErrorf(opRank, err)
	}
	p, err := gauss.SolveSingular(shifted, gauss.WithTolerance(o.tol))
	if err != nil {
		return nil, pagerankErrorf(opRank, err)
	}

	floats.Scale(1/floats.Sum(p), p)

	return p, nil
}

// Ranking pairs each label with its score and orders the pairs by descending
// score. Equal scores keep their input order.
//
// Errors:
//   - matrix.ErrDimensionMismatch when len(labels) != len(l), plus every Rank error.
func Ranking(labels []string, l LinkMatrix, rho float64, opts ...Option) ([]Score, error) {
	if len(labels) != len(l) {
		return nil, pagerankErrorf(opSortedLabels,
			fmt.Errorf("%d labels for %d pages: %w", len(labels), len(l), matrix.ErrDimensionMismatch))
	}
	p, err := Rank(l, rho, opts...)
	if err != nil {
		return nil, pagerankErrorf(opSortedLabels, err)
	}

	scores := make([]Score, len(p))
	for i := range p {
		scores[i] = Score{Label: labels[i], Score: p[i]}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Score > scores[j].Score })

	return scores, nil
}

// SortedLabels returns labels ordered by descending PageRank score.
// The result is a permutation of labels; the input slice is not reordered.
func SortedLabels(labels []string, l LinkMatrix, rho float64, opts ...Option) ([]string, error) {
	scores, err := Ranking(labels, l, rho, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(scores))
	for i, s := range scores {
		out[i] = s.Label
	}

	return out, nil
}
