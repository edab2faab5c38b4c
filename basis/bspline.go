package basis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// BSpline is a piecewise-polynomial spline basis of a given order
// (order = degree + 1) over a knot sequence spanning [lo, hi].
//
// The basis is clamped: evaluation uses a knot vector with the boundary
// knots repeated to multiplicity order, so the n = len(knots)+order−2
// basis functions partition unity over the domain. Evaluation follows the
// Cox–de Boor recursion; derivatives use the exact B-spline derivative
// recurrence, so every derivative of order < order is computed without
// numerical differencing, and derivatives of order ≥ order are identically
// zero.
type BSpline struct {
	lo, hi float64
	knots  []float64 // user knots, non-decreasing, knots[0]=lo, knots[last]=hi
	order  int
	tau    []float64 // clamped evaluation knots, len = n + order
}

// NewBSpline builds a spline basis of the given order on [lo, hi] over
// knots. Knots must be non-decreasing, start at lo and end at hi; interior
// knots may repeat (higher multiplicity lowers smoothness there).
// Errors: ErrBadDomain, ErrBadOrder, ErrBadKnots.
func NewBSpline(lo, hi float64, knots []float64, order int) (*BSpline, error) {
	if err := checkDomain(lo, hi); err != nil {
		return nil, err
	}
	if order < 1 {
		return nil, ErrBadOrder
	}
	if len(knots) < 2 {
		return nil, fmt.Errorf("need at least 2 knots, got %d: %w", len(knots), ErrBadKnots)
	}
	for i, k := range knots {
		if math.IsNaN(k) || math.IsInf(k, 0) {
			return nil, fmt.Errorf("knot %d is not finite: %w", i, ErrBadKnots)
		}
		if i > 0 && k < knots[i-1] {
			return nil, fmt.Errorf("knot %d out of order: %w", i, ErrBadKnots)
		}
	}
	if knots[0] != lo || knots[len(knots)-1] != hi {
		return nil, fmt.Errorf("knots must span the domain: %w", ErrBadKnots)
	}

	b := &BSpline{
		lo:    lo,
		hi:    hi,
		knots: append([]float64(nil), knots...),
		order: order,
	}
	b.tau = b.buildEvaluationKnots()

	return b, nil
}

// buildEvaluationKnots clamps the knot vector: each boundary knot is
// repeated to multiplicity order.
func (b *BSpline) buildEvaluationKnots() []float64 {
	tau := make([]float64, 0, len(b.knots)+2*(b.order-1))
	for i := 0; i < b.order-1; i++ {
		tau = append(tau, b.lo)
	}
	tau = append(tau, b.knots...)
	for i := 0; i < b.order-1; i++ {
		tau = append(tau, b.hi)
	}

	return tau
}

// Kind reports KindBSpline.
func (b *BSpline) Kind() Kind { return KindBSpline }

// NBasis reports len(knots) + order − 2.
func (b *BSpline) NBasis() int { return len(b.knots) + b.order - 2 }

// Domain reports the interval [lo, hi].
func (b *BSpline) Domain() (lo, hi float64) { return b.lo, b.hi }

// Order reports the spline order (degree + 1).
func (b *BSpline) Order() int { return b.order }

// Knots returns a copy of the user knot sequence.
func (b *BSpline) Knots() []float64 {
	return append([]float64(nil), b.knots...)
}

// EvaluationKnots returns a copy of the clamped knot vector (boundary
// knots at multiplicity order), length NBasis() + Order().
func (b *BSpline) EvaluationKnots() []float64 {
	return append([]float64(nil), b.tau...)
}

// Evaluate fills an n×len(points) matrix with deriv-th spline derivatives.
// Complexity: O(len(points)·(n + order·(order+deriv))).
func (b *BSpline) Evaluate(points []float64, deriv int) (*mat.Dense, error) {
	if err := checkEval(points, deriv); err != nil {
		return nil, err
	}

	n := b.NBasis()
	out := mat.NewDense(n, len(points), nil)
	if deriv >= b.order {
		// A spline of order k is a degree k-1 polynomial piecewise; its
		// k-th and higher derivatives vanish everywhere.
		return out, nil
	}

	buf := make([]float64, len(b.tau)-1)
	for p, t := range points {
		b.evalAll(t, deriv, buf)
		for i := 0; i < n; i++ {
			out.Set(i, p, buf[i])
		}
	}

	return out, nil
}

// evalAll writes the deriv-th derivatives of all basis functions at t into
// buf (len(tau)-1 scratch; the first NBasis() entries are the result).
//
// Stage 1: order-1 indicator functions over half-open knot intervals, with
// the last non-degenerate interval closed on the right so the domain
// endpoint evaluates to the boundary spline.
// Stage 2: Cox–de Boor value recursion up to order (order − deriv).
// Stage 3: deriv derivative-lifting steps, each raising the spline order
// and the derivative count by one:
//
//	D_{i,k} = (k−1)·( D_{i,k−1}/(τ_{i+k−1}−τ_i) − D_{i+1,k−1}/(τ_{i+k}−τ_{i+1}) )
//
// Zero-length knot gaps drop their term (the usual 0/0 → 0 convention).
func (b *BSpline) evalAll(t float64, deriv int, buf []float64) {
	tau := b.tau
	for j := range buf {
		buf[j] = 0
	}

	if t >= b.hi {
		// Close the right end: attribute the endpoint to the last
		// non-degenerate interval.
		for j := len(tau) - 2; j >= 0; j-- {
			if tau[j] < tau[j+1] {
				buf[j] = 1

				break
			}
		}
	} else {
		for j := 0; j < len(tau)-1; j++ {
			if tau[j] <= t && t < tau[j+1] {
				buf[j] = 1
			}
		}
	}

	// Value recursion.
	for k := 2; k <= b.order-deriv; k++ {
		for j := 0; j < len(tau)-k; j++ {
			var acc float64
			if den := tau[j+k-1] - tau[j]; den > 0 {
				acc += (t - tau[j]) / den * buf[j]
			}
			if den := tau[j+k] - tau[j+1]; den > 0 {
				acc += (tau[j+k] - t) / den * buf[j+1]
			}
			buf[j] = acc
		}
	}

	// Derivative lifting.
	for k := b.order - deriv + 1; k <= b.order; k++ {
		for j := 0; j < len(tau)-k; j++ {
			var acc float64
			if den := tau[j+k-1] - tau[j]; den > 0 {
				acc += buf[j] / den
			}
			if den := tau[j+k] - tau[j+1]; den > 0 {
				acc -= buf[j+1] / den
			}
			buf[j] = float64(k-1) * acc
		}
	}
}
