package penalty

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/roughpen/basis"
)

// constantOptimizer handles the one-function constant basis in closed
// form. Every derivative of φ(t)=1 beyond order 0 vanishes, so only the
// zeroth weight survives:
//
//	R = [[ w_0² · (hi − lo) ]]
//
// Declines for non-constant operator coefficients.
func constantOptimizer(b basis.Basis, reg Regularization) (*mat.SymDense, bool, error) {
	cb, ok := b.(*basis.Constant)
	if !ok {
		return nil, false, nil
	}
	w, ok := reg.op.ConstantWeights()
	if !ok {
		return nil, false, nil
	}

	lo, hi := cb.Domain()
	r := mat.NewSymDense(1, nil)
	r.SetSym(0, 0, w[0]*w[0]*(hi-lo))

	return r, true, nil
}
