// Package penalty: sentinel error set.
// Optimizer "not applicable" is a boolean decline, not an error; these
// sentinels mark genuine misuse or propagated computation failures.

package penalty

import "errors"

var (
	// ErrNilBasis is returned when Matrix or Numerical receives a nil basis.
	ErrNilBasis = errors.New("penalty: nil basis")

	// ErrNilOperator is returned when the regularization carries no
	// differential operator (zero-value Regularization).
	ErrNilOperator = errors.New("penalty: regularization has no operator")

	// ErrNilOptimizer is returned by Register for a nil optimizer func.
	ErrNilOptimizer = errors.New("penalty: nil optimizer")
)
