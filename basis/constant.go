package basis

import "gonum.org/v1/gonum/mat"

// Constant is the one-function basis φ(t) = 1 on [lo, hi].
//
// It is the degenerate end of the basis spectrum, but it keeps the penalty
// engine total: the closed-form penalty of a constant under L is
// w_0²·(hi−lo), and the fallback path must agree with it.
type Constant struct {
	lo, hi float64
}

// NewConstant builds the constant basis on [lo, hi].
// Errors: ErrBadDomain.
func NewConstant(lo, hi float64) (*Constant, error) {
	if err := checkDomain(lo, hi); err != nil {
		return nil, err
	}

	return &Constant{lo: lo, hi: hi}, nil
}

// Kind reports KindConstant.
func (c *Constant) Kind() Kind { return KindConstant }

// NBasis reports 1.
func (c *Constant) NBasis() int { return 1 }

// Domain reports the interval [lo, hi].
func (c *Constant) Domain() (lo, hi float64) { return c.lo, c.hi }

// Evaluate fills a 1×len(points) matrix: ones for deriv = 0, zeros for any
// higher derivative.
func (c *Constant) Evaluate(points []float64, deriv int) (*mat.Dense, error) {
	if err := checkEval(points, deriv); err != nil {
		return nil, err
	}

	out := mat.NewDense(1, len(points), nil)
	if deriv == 0 {
		for p := range points {
			out.Set(0, p, 1)
		}
	}

	return out, nil
}
