package penalty

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/roughpen/basis"
	"github.com/katalvlaran/roughpen/poly"
)

// monomialOptimizer computes the exact penalty for the power basis.
//
// Step 1 — apply L symbolically: L(t^k) = Σ_d w_d·k·(k−1)…(k−d+1)·t^(k−d),
// one polynomial per basis function, stored at the common length n in
// decreasing-exponent convention.
// Step 2 — pairwise products: polynomial multiplication is convolution;
// a single real FFT per polynomial makes all upper-triangle products an
// O(n² log n) batch instead of O(n³).
// Step 3 — integrate each product term-by-term and evaluate the definite
// integral by Barrow's rule. No quadrature error anywhere.
//
// Declines for non-constant operator coefficients.
func monomialOptimizer(b basis.Basis, reg Regularization) (*mat.SymDense, bool, error) {
	mb, ok := b.(*basis.Monomial)
	if !ok {
		return nil, false, nil
	}
	w, ok := reg.op.ConstantWeights()
	if !ok {
		return nil, false, nil
	}

	n := mb.NBasis()
	rows := make([][]float64, n)
	for k := 0; k < n; k++ {
		row := make([]float64, n)
		for d := 0; d < len(w) && d <= k; d++ {
			if w[d] == 0 {
				continue
			}
			// t^(k-d) lands at index n-1-(k-d).
			row[n-1-(k-d)] += w[d] * basis.FallingFactorial(k, d)
		}
		rows[k] = row
	}

	conv, err := poly.NewConvolver(rows, 2*n-1)
	if err != nil {
		return nil, false, fmt.Errorf("penalty: monomial convolver: %w", err)
	}

	lo, hi := mb.Domain()
	res := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			prod, err := conv.Mul(i, j)
			if err != nil {
				return nil, false, fmt.Errorf("penalty: monomial product (%d,%d): %w", i, j, err)
			}
			res.SetSym(i, j, poly.DefInt(prod, lo, hi))
		}
	}

	return res, true, nil
}
