package penalty_test

import (
	"fmt"

	"github.com/katalvlaran/roughpen/basis"
	"github.com/katalvlaran/roughpen/lindiff"
	"github.com/katalvlaran/roughpen/penalty"
)

// ExampleMatrix computes the curvature penalty of the power basis
// {1, x, x²} on [0, 1]: only x² has curvature, so a single entry survives.
func ExampleMatrix() {
	mb, _ := basis.NewMonomial(0, 1, 3)
	reg := penalty.NewRegularization(lindiff.NewOrder(2))

	r, _ := penalty.Matrix(mb, reg)

	for i := 0; i < 3; i++ {
		fmt.Printf("%.0f %.0f %.0f\n", r.At(i, 0), r.At(i, 1), r.At(i, 2))
	}

	// Output:
	// 0 0 0
	// 0 0 0
	// 0 0 4
}

// ExampleMatrix_constant shows the closed form for the constant basis:
// w_0²·(hi − lo).
func ExampleMatrix_constant() {
	cb, _ := basis.NewConstant(0, 1)
	reg := penalty.NewRegularization(lindiff.New(2))

	r, _ := penalty.Matrix(cb, reg)
	fmt.Println(r.At(0, 0))

	// Output:
	// 4
}
