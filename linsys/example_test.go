// Package linsys_test provides runnable, deterministic examples.
package linsys_test

import (
	"fmt"

	"github.com/katalvlaran/mat2/linsys"
	"github.com/katalvlaran/mat2/matrix"
)

// ExampleSubstitute evaluates x + y and x − y at (2, 3).
func ExampleSubstitute() {
	m, _ := matrix.FromRows([][]int{{1, 1}, {1, -1}})
	fmt.Print(linsys.Substitute(m, []int{2, 3}))

	// Output:
	// [5]
	// [-1]
}

// ExampleSolve solves 2x + y = 4, x + 3y = 7.
func ExampleSolve() {
	a, _ := matrix.FromRows([][]float64{{2, 1}, {1, 3}})
	x, err := linsys.Solve(a, []float64{4, 7})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("x=%.3f y=%.3f\n", x[0], x[1])

	// Output:
	// x=1.000 y=2.000
}
