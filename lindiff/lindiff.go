package lindiff

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/roughpen/basis"
)

// ErrNilBasis is returned by Apply when the basis is nil.
var ErrNilBasis = errors.New("lindiff: nil basis")

// WeightFunc is a coefficient that varies over the domain variable.
type WeightFunc func(t float64) float64

// Operator is a linear differential operator of order m described by the
// ordered weight sequence (w_0 … w_m): L f = Σ_k w_k f^(k).
//
// Weights are either all constants or all domain-dependent functions; the
// sequence length fixes the maximal derivative order considered even when
// trailing weights are zero. The zero value is not useful; build operators
// with New, NewOrder or NewVarying.
type Operator struct {
	consts []float64
	funcs  []WeightFunc
}

// New builds a constant-coefficient operator from weights (w_0 … w_m).
// With no arguments it degenerates to the zero operator of order 0.
func New(weights ...float64) *Operator {
	if len(weights) == 0 {
		weights = []float64{0}
	}

	return &Operator{consts: append([]float64(nil), weights...)}
}

// NewOrder builds the pure m-th derivative operator: weights all zero
// except w_m = 1. NewOrder(2) is the classic curvature penalty.
// Negative m is a programmer error and panics.
func NewOrder(m int) *Operator {
	if m < 0 {
		panic(fmt.Sprintf("lindiff: NewOrder(%d): negative order", m))
	}
	w := make([]float64, m+1)
	w[m] = 1

	return &Operator{consts: w}
}

// NewVarying builds an operator whose coefficients are functions of the
// domain variable. Nil entries are treated as identically zero.
// ConstantWeights reports not-applicable for such operators, so every
// exact penalty path declines and computation falls back to quadrature.
func NewVarying(weights ...WeightFunc) *Operator {
	if len(weights) == 0 {
		weights = []WeightFunc{nil}
	}

	return &Operator{funcs: append([]WeightFunc(nil), weights...)}
}

// Order reports the operator order m (maximal derivative considered).
func (op *Operator) Order() int {
	if op.funcs != nil {
		return len(op.funcs) - 1
	}

	return len(op.consts) - 1
}

// ConstantWeights reports the weight sequence (w_0 … w_m) and true when the
// coefficients are constants, or (nil, false) otherwise. The slice is a
// copy; mutating it does not affect the operator.
func (op *Operator) ConstantWeights() ([]float64, bool) {
	if op.consts == nil {
		return nil, false
	}

	return append([]float64(nil), op.consts...), true
}

// Weight evaluates coefficient w_k at domain point t. Constant operators
// ignore t. k outside [0, Order()] yields 0.
func (op *Operator) Weight(k int, t float64) float64 {
	if k < 0 || k > op.Order() {
		return 0
	}
	if op.funcs != nil {
		if op.funcs[k] == nil {
			return 0
		}

		return op.funcs[k](t)
	}

	return op.consts[k]
}

// Apply binds the operator to a basis and returns the pointwise evaluation
// capability used by the numerical fallback: the returned function
// computes the vector ((Lφ_0)(t) … (Lφ_{n-1})(t)).
//
// Each call evaluates the basis once per derivative order; cost is
// O(Order()) basis evaluations per point.
func (op *Operator) Apply(b basis.Basis) (func(t float64) ([]float64, error), error) {
	if b == nil {
		return nil, ErrNilBasis
	}

	n := b.NBasis()

	return func(t float64) ([]float64, error) {
		out := make([]float64, n)
		pt := []float64{t}
		for k := 0; k <= op.Order(); k++ {
			w := op.Weight(k, t)
			if w == 0 {
				continue
			}
			vals, err := b.Evaluate(pt, k)
			if err != nil {
				return nil, fmt.Errorf("lindiff: evaluate derivative %d: %w", k, err)
			}
			for i := 0; i < n; i++ {
				out[i] += w * vals.At(i, 0)
			}
		}

		return out, nil
	}, nil
}
