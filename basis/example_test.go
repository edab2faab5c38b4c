package basis_test

import (
	"fmt"

	"github.com/katalvlaran/roughpen/basis"
)

// ExampleNewMonomial evaluates the power basis {1, t, t²} and its first
// derivatives at t = 2.
func ExampleNewMonomial() {
	mb, _ := basis.NewMonomial(0, 3, 3)

	vals, _ := mb.Evaluate([]float64{2}, 0)
	derivs, _ := mb.Evaluate([]float64{2}, 1)

	for i := 0; i < mb.NBasis(); i++ {
		fmt.Printf("phi_%d(2) = %.0f, phi_%d'(2) = %.0f\n",
			i, vals.At(i, 0), i, derivs.At(i, 0))
	}

	// Output:
	// phi_0(2) = 1, phi_0'(2) = 0
	// phi_1(2) = 2, phi_1'(2) = 1
	// phi_2(2) = 4, phi_2'(2) = 4
}

// ExampleNewBSpline shows the clamped evaluation-knot vector of a cubic
// spline basis.
func ExampleNewBSpline() {
	sb, _ := basis.NewBSpline(0, 1, []float64{0, 0.5, 1}, 4)

	fmt.Println("dimension:", sb.NBasis())
	fmt.Println("evaluation knots:", sb.EvaluationKnots())

	// Output:
	// dimension: 5
	// evaluation knots: [0 0 0 0 0.5 1 1 1 1]
}
