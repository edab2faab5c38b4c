package penalty

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/roughpen/basis"
	"github.com/katalvlaran/roughpen/quadrature"
)

// Numerical computes the penalty matrix by pairwise adaptive quadrature of
// (Lφ_i)(s)·(Lφ_j)(s) over the domain. It handles any basis and any
// operator, including variable coefficients — the guaranteed-correct
// performance floor the optimizers must beat.
//
// Only the upper triangle is integrated; symmetric storage supplies the
// lower triangle, so R = Rᵀ is exact and independent of the order in which
// pairs are computed.
//
// Cost: O(n²) integrals, each evaluating the basis at every quadrature
// node. Errors: ErrNilBasis, ErrNilOperator, or a propagated basis
// evaluation / quadrature failure.
func Numerical(b basis.Basis, reg Regularization, opts ...quadrature.Option) (*mat.SymDense, error) {
	if b == nil {
		return nil, ErrNilBasis
	}
	if reg.op == nil {
		return nil, ErrNilOperator
	}

	lop, err := reg.op.Apply(b)
	if err != nil {
		return nil, fmt.Errorf("penalty: bind operator: %w", err)
	}

	lo, hi := b.Domain()
	n := b.NBasis()
	res := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			var evalErr error
			integrand := func(t float64) float64 {
				v, err := lop(t)
				if err != nil {
					if evalErr == nil {
						evalErr = err
					}

					return 0
				}

				return v[i] * v[j]
			}

			val, err := quadrature.Adaptive(integrand, lo, hi, opts...)
			if evalErr != nil {
				return nil, fmt.Errorf("penalty: entry (%d,%d): %w", i, j, evalErr)
			}
			if err != nil {
				return nil, fmt.Errorf("penalty: entry (%d,%d): %w", i, j, err)
			}
			res.SetSym(i, j, val)
		}
	}

	return res, nil
}
