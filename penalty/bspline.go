package penalty

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/roughpen/basis"
	"github.com/katalvlaran/roughpen/poly"
)

// bsplineOptimizer computes the exact penalty for spline bases with a
// single-derivative-order operator.
//
// Weights attached to derivative orders ≥ the spline order are dropped:
// those derivatives vanish identically. After filtering,
//   - no surviving weight → the zero matrix, exactly;
//   - more than one surviving weight → decline (only single-order
//     penalties are optimized; the fallback handles the rest);
//   - exactly one surviving order d → one of two exact paths below.
//
// d = order−1: the d-th derivative of every basis function is constant
// between knots, so sampling at interval midpoints and weighting by
// interval lengths sums the integral exactly.
//
// d < order−1: each basis function is expanded into its local polynomial
// per knot interval (coefficients in x − knot_start); per interval and
// pair, differentiate both locals d times, multiply, antidifferentiate and
// evaluate over [0, interval length]. Declines when any knot interval has
// zero length — the local-polynomial expansion assumes simple knots.
func bsplineOptimizer(b basis.Basis, reg Regularization) (*mat.SymDense, bool, error) {
	sb, ok := b.(*basis.BSpline)
	if !ok {
		return nil, false, nil
	}
	w, ok := reg.op.ConstantWeights()
	if !ok {
		return nil, false, nil
	}

	order := sb.Order()
	n := sb.NBasis()

	var nonzero []int
	for d, wd := range w {
		if wd != 0 && d < order {
			nonzero = append(nonzero, d)
		}
	}
	if len(nonzero) == 0 {
		return mat.NewSymDense(n, nil), true, nil
	}
	if len(nonzero) != 1 {
		return nil, false, nil
	}
	d := nonzero[0]
	wd := w[d]

	knots := sb.Knots()
	if d == order-1 {
		r, err := bsplineMaxDeriv(sb, d, wd, knots)
		if err != nil {
			return nil, false, err
		}

		return r, true, nil
	}

	for l := 0; l+1 < len(knots); l++ {
		if knots[l+1] == knots[l] {
			return nil, false, nil
		}
	}

	r, err := bsplinePiecewise(sb, d, wd, knots)
	if err != nil {
		return nil, false, err
	}

	return r, true, nil
}

// bsplineMaxDeriv handles d = order−1: derivatives are piecewise constant,
// so R[i][j] = Σ_l Δ_l · c_i(l) · c_j(l) with c sampled at interval
// midpoints. Zero-length intervals contribute nothing (Δ_l = 0).
func bsplineMaxDeriv(sb *basis.BSpline, d int, wd float64, knots []float64) (*mat.SymDense, error) {
	nint := len(knots) - 1
	mids := make([]float64, nint)
	for l := 0; l < nint; l++ {
		mids[l] = knots[l] + (knots[l+1]-knots[l])/2
	}

	consts, err := sb.Evaluate(mids, d)
	if err != nil {
		return nil, fmt.Errorf("penalty: bspline midpoint derivatives: %w", err)
	}

	n := sb.NBasis()
	res := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			var acc float64
			for l := 0; l < nint; l++ {
				acc += (knots[l+1] - knots[l]) * consts.At(i, l) * consts.At(j, l)
			}
			res.SetSym(i, j, wd*wd*acc)
		}
	}

	return res, nil
}

// bsplinePiecewise handles d < order−1 over simple knots via the local
// polynomial representation of every basis function.
func bsplinePiecewise(sb *basis.BSpline, d int, wd float64, knots []float64) (*mat.SymDense, error) {
	order := sb.Order()
	n := sb.NBasis()
	nint := len(knots) - 1

	// Taylor coefficients at each interval's left knot: the spline equals
	// Σ_j f^(j)(a)/j! · (x−a)^j on [a, b), and evaluation at a knot takes
	// the right-hand limit, so the expansion belongs to the interval on
	// the right.
	derivs := make([]*mat.Dense, order)
	lefts := knots[:nint]
	for j := 0; j < order; j++ {
		vals, err := sb.Evaluate(lefts, j)
		if err != nil {
			return nil, fmt.Errorf("penalty: bspline local derivatives: %w", err)
		}
		derivs[j] = vals
	}

	// local[i][l]: decreasing-exponent coefficients of φ_i on interval l.
	local := make([][][]float64, n)
	for i := 0; i < n; i++ {
		local[i] = make([][]float64, nint)
		for l := 0; l < nint; l++ {
			c := make([]float64, order)
			fact := 1.0
			for j := 0; j < order; j++ {
				if j > 0 {
					fact *= float64(j)
				}
				c[order-1-j] = derivs[j].At(i, l) / fact
			}
			local[i][l] = c
		}
	}

	// Accumulate interval contributions into the upper triangle only, then
	// commit each entry once: symmetry stays exact.
	acc := make([][]float64, n)
	for i := range acc {
		acc[i] = make([]float64, n)
	}

	for l := 0; l < nint; l++ {
		h := knots[l+1] - knots[l]
		for i := 0; i < n; i++ {
			pi := poly.TrimLeading(local[i][l])
			if len(pi) <= d {
				// The d-th derivative wipes out polynomials of degree < d;
				// nothing to integrate.
				continue
			}
			di := poly.Deriv(pi, d)
			for j := i; j < n; j++ {
				pj := poly.TrimLeading(local[j][l])
				if len(pj) <= d {
					continue
				}
				dj := poly.Deriv(pj, d)
				acc[i][j] += poly.DefInt(poly.Mul(di, dj), 0, h)
			}
		}
	}

	res := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			res.SetSym(i, j, wd*wd*acc[i][j])
		}
	}

	return res, nil
}
