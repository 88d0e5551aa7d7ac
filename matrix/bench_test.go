// File: bench_test.go - benchmarks for the eigen and congruence kernels.

package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/ppvstat/matrix"
)

var benchSizes = []int{2, 3, 8}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkV []float64
)

func BenchmarkEigenSym(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := MustRows(b, randomSymmetric(b, n, 1337))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				vals, q, err := matrix.EigenSym(m, matrix.DefaultEigenTol, matrix.DefaultEigenMaxIter)
				if err != nil {
					b.Fatal(err)
				}
				sinkV, sinkM = vals, q
			}
		})
	}
}

func BenchmarkCongruence(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := MustRows(b, randomSymmetric(b, n, 4242))
			w := MustRows(b, randomSymmetric(b, n, 11))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				r, err := matrix.Congruence(w, m)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = r
			}
		})
	}
}
