package gauss_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlalg/gauss"
	"github.com/katalvlaran/lvlalg/matrix"
)

// BenchmarkSolve measures the O(n³) elimination plus back-substitution.
func BenchmarkSolve(b *testing.B) {
	for _, n := range []int{16, 64, 128} {
		rng := rand.New(rand.NewSource(int64(n)))
		a, err := matrix.NewFromRows(randomDominant(rng, n))
		if err != nil {
			b.Fatal(err)
		}
		rhs := randomVec(rng, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := gauss.Solve(a, rhs); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkSolveSingular measures the probe path on a rank n-1 matrix.
func BenchmarkSolveSingular(b *testing.B) {
	for _, n := range []int{16, 64} {
		rows := make([][]float64, n)
		for i := range rows {
			rows[i] = make([]float64, n)
			rows[i][i] = -1
		}
		// Shifted cycle: P - I where P maps page i to page i+1.
		for i := 0; i < n; i++ {
			rows[(i+1)%n][i] = 1
		}
		a, err := matrix.NewFromRows(rows)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := gauss.SolveSingular(a); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
