// Package penalty: regularization configuration.

package penalty

import "github.com/katalvlaran/roughpen/lindiff"

// Regularization wraps the linear differential operator whose squared
// action defines the roughness measure. It is stateless beyond the
// operator: build one next to the fitting configuration and pass it to
// every Matrix call.
type Regularization struct {
	op *lindiff.Operator
}

// NewRegularization wraps op. A nil op yields the zero Regularization,
// which Matrix rejects with ErrNilOperator.
func NewRegularization(op *lindiff.Operator) Regularization {
	return Regularization{op: op}
}

// DefaultRegularization penalizes curvature: L f = f″, the standard
// second-derivative roughness of smoothing splines.
func DefaultRegularization() Regularization {
	return Regularization{op: lindiff.NewOrder(2)}
}

// Operator reports the wrapped differential operator (nil for the zero
// value).
func (r Regularization) Operator() *lindiff.Operator {
	return r.op
}
