package basis

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Monomial is the power basis {1, t, t², …, t^(n-1)} on [lo, hi].
//
// Derivatives are exact: d^d/dt^d t^k = k·(k−1)·…·(k−d+1) · t^(k−d) for
// k ≥ d and zero otherwise (the falling-factorial rule).
type Monomial struct {
	lo, hi float64
	n      int
}

// NewMonomial builds the n-function power basis on [lo, hi].
// Errors: ErrBadDomain, ErrBadDimension.
func NewMonomial(lo, hi float64, n int) (*Monomial, error) {
	if err := checkDomain(lo, hi); err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, ErrBadDimension
	}

	return &Monomial{lo: lo, hi: hi, n: n}, nil
}

// Kind reports KindMonomial.
func (m *Monomial) Kind() Kind { return KindMonomial }

// NBasis reports the basis dimension n.
func (m *Monomial) NBasis() int { return m.n }

// Domain reports the interval [lo, hi].
func (m *Monomial) Domain() (lo, hi float64) { return m.lo, m.hi }

// FallingFactorial returns k·(k−1)·…·(k−d+1), the coefficient picked up by
// differentiating t^k d times. d = 0 yields 1; d > k yields 0.
func FallingFactorial(k, d int) float64 {
	if d > k {
		return 0
	}
	f := 1.0
	for i := 0; i < d; i++ {
		f *= float64(k - i)
	}

	return f
}

// Evaluate fills an n×len(points) matrix with deriv-th power derivatives.
// Complexity: O(n·len(points)).
func (m *Monomial) Evaluate(points []float64, deriv int) (*mat.Dense, error) {
	if err := checkEval(points, deriv); err != nil {
		return nil, err
	}

	out := mat.NewDense(m.n, len(points), nil)
	for k := deriv; k < m.n; k++ {
		ff := FallingFactorial(k, deriv)
		for p, t := range points {
			out.Set(k, p, ff*math.Pow(t, float64(k-deriv)))
		}
	}

	return out, nil
}
