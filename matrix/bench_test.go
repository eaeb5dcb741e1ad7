package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/lvhmm/matrix"
)

// randDense fills an r×c matrix from a fixed seed.
func randDense(b *testing.B, r, c int) *matrix.Dense {
	b.Helper()
	rng := rand.New(rand.NewPCG(uint64(r), uint64(c)))
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()
		}
	}
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		b.Fatalf("NewDenseFrom: %v", err)
	}

	return m
}

// BenchmarkMul_64 measures a 64×64 product on the Dense fast-path.
func BenchmarkMul_64(b *testing.B) {
	x, y := randDense(b, 64, 64), randDense(b, 64, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Mul(x, y); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkVecMat_64 measures the step used by forward recursions.
func BenchmarkVecMat_64(b *testing.B) {
	m := randDense(b, 64, 64)
	x := make([]float64, 64)
	for i := range x {
		x[i] = 1.0 / 64
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.VecMat(x, m); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMatVec_64 measures the step used by backward recursions.
func BenchmarkMatVec_64(b *testing.B) {
	m := randDense(b, 64, 64)
	x := make([]float64, 64)
	for i := range x {
		x[i] = 1
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.MatVec(m, x); err != nil {
			b.Fatal(err)
		}
	}
}
