// Package basis: shared contract and variant tags.

package basis

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Kind tags the concrete basis family. The penalty dispatcher routes on it,
// so each variant reports a distinct constant.
type Kind int

const (
	// KindConstant is the one-function basis φ(t) = 1.
	KindConstant Kind = iota

	// KindMonomial is the power basis {1, t, t², …}.
	KindMonomial

	// KindFourier is the sinusoidal basis {1, sin(ωt), cos(ωt), …}.
	KindFourier

	// KindBSpline is the piecewise-polynomial spline basis.
	KindBSpline
)

// String returns a human-readable family name.
func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "constant"
	case KindMonomial:
		return "monomial"
	case KindFourier:
		return "fourier"
	case KindBSpline:
		return "bspline"
	default:
		return "unknown"
	}
}

// Basis is the contract every function-basis variant satisfies.
//
// Evaluate returns an NBasis()×len(points) matrix whose (i, p) entry is the
// deriv-th derivative of φ_i at points[p]. deriv = 0 means plain evaluation.
// Derivative orders beyond a variant's smoothness yield exact zeros, never
// an error.
//
// Implementations are immutable after construction; Evaluate allocates a
// fresh matrix per call, so concurrent use needs no synchronization.
type Basis interface {
	// Kind reports the basis family tag used for dispatch.
	Kind() Kind

	// NBasis reports the number of basis functions n.
	NBasis() int

	// Domain reports the closed interval [lo, hi] the basis lives on.
	Domain() (lo, hi float64)

	// Evaluate computes derivative values φ_i^(deriv)(points[p]) into an
	// n×len(points) matrix.
	Evaluate(points []float64, deriv int) (*mat.Dense, error)
}

// checkDomain validates a domain interval for any constructor.
func checkDomain(lo, hi float64) error {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
		return ErrBadDomain
	}

	return nil
}

// checkEval validates the shared Evaluate argument contract.
func checkEval(points []float64, deriv int) error {
	if deriv < 0 {
		return ErrBadDerivative
	}
	if len(points) == 0 {
		return ErrNoPoints
	}

	return nil
}
