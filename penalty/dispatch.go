package penalty

import (
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/roughpen/basis"
)

// Optimizer is an exact penalty-matrix algorithm for one basis family.
//
// ok = false means "not applicable": the optimizer's structural
// precondition failed (non-constant weights, period/domain mismatch, …)
// and the dispatcher should fall back to numerical integration. A non-nil
// error is reserved for genuine failures and aborts the computation.
type Optimizer func(b basis.Basis, reg Regularization) (r *mat.SymDense, ok bool, err error)

var (
	optMu      sync.RWMutex
	optimizers = map[basis.Kind]Optimizer{
		basis.KindConstant: constantOptimizer,
		basis.KindMonomial: monomialOptimizer,
		basis.KindFourier:  fourierOptimizer,
		basis.KindBSpline:  bsplineOptimizer,
	}
)

// Register wires an optimizer for a basis family, replacing any previous
// entry. Intended for init-time extension with new basis kinds; the
// routing logic itself never changes.
// Errors: ErrNilOptimizer.
func Register(kind basis.Kind, opt Optimizer) error {
	if opt == nil {
		return ErrNilOptimizer
	}
	optMu.Lock()
	optimizers[kind] = opt
	optMu.Unlock()

	return nil
}

// lookup fetches the optimizer registered for kind, if any.
func lookup(kind basis.Kind) (Optimizer, bool) {
	optMu.RLock()
	opt, ok := optimizers[kind]
	optMu.RUnlock()

	return opt, ok
}

// Matrix computes the penalty matrix R[i][j] = ∫ Lφ_i · Lφ_j over the
// basis domain.
//
// Routing: the optimizer registered for b.Kind() runs first; if none is
// registered, or it declines, the matrix is computed by pairwise numerical
// integration. The result is freshly allocated symmetric storage, so
// R = Rᵀ holds exactly.
//
// Errors: ErrNilBasis, ErrNilOperator, or a propagated evaluation /
// integration failure. A decline is never an error.
func Matrix(b basis.Basis, reg Regularization) (*mat.SymDense, error) {
	if b == nil {
		return nil, ErrNilBasis
	}
	if reg.op == nil {
		return nil, ErrNilOperator
	}

	if opt, ok := lookup(b.Kind()); ok {
		r, applicable, err := opt(b, reg)
		if err != nil {
			return nil, err
		}
		if applicable {
			return r, nil
		}
	}

	return Numerical(b, reg)
}
