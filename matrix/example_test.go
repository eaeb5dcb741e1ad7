package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvhmm/matrix"
)

// ExampleVecMat propagates a state distribution one step through a
// row-stochastic transition matrix.
func ExampleVecMat() {
	A, _ := matrix.NewDenseFrom([][]float64{{0.7, 0.3}, {0.4, 0.6}})

	next, err := matrix.VecMat([]float64{0.6, 0.4}, A)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.2f %.2f\n", next[0], next[1])
	// Output:
	// 0.58 0.42
}

// ExampleNormalizeRowsL1 turns transition counts into probabilities.
func ExampleNormalizeRowsL1() {
	counts, _ := matrix.NewDenseFrom([][]float64{{3, 1}, {1, 1}})

	P, _, err := matrix.NormalizeRowsL1(counts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(P)
	// Output:
	// [0.75, 0.25]
	// [0.5, 0.5]
}
