package basis

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Fourier is the sinusoidal basis on [lo, hi] with angular frequency
// ω = 2π/period:
//
//	φ_0(t)      = 1/√T
//	φ_{2j-1}(t) = sin(jωt)/√(T/2)
//	φ_{2j}(t)   = cos(jωt)/√(T/2)      j = 1 … (n-1)/2
//
// where T is the period. The normalization makes the basis orthonormal over
// one period, which is precisely the property the exact penalty path
// exploits when period == hi−lo.
//
// The dimension is always odd: a constant plus whole sin/cos pairs. A
// requested even dimension is rounded up.
type Fourier struct {
	lo, hi float64
	n      int
	period float64
}

// NewFourier builds a Fourier basis on [lo, hi] with the given period.
// n is rounded up to the next odd dimension. Errors: ErrBadDomain,
// ErrBadDimension, ErrBadPeriod.
func NewFourier(lo, hi float64, n int, period float64) (*Fourier, error) {
	if err := checkDomain(lo, hi); err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, ErrBadDimension
	}
	if !(period > 0) || math.IsInf(period, 1) {
		return nil, ErrBadPeriod
	}
	if n%2 == 0 {
		n++
	}

	return &Fourier{lo: lo, hi: hi, n: n, period: period}, nil
}

// Kind reports KindFourier.
func (f *Fourier) Kind() Kind { return KindFourier }

// NBasis reports the (odd) basis dimension.
func (f *Fourier) NBasis() int { return f.n }

// Domain reports the interval [lo, hi].
func (f *Fourier) Domain() (lo, hi float64) { return f.lo, f.hi }

// Period reports the basis period T.
func (f *Fourier) Period() float64 { return f.period }

// sinDeriv evaluates d^d/dt^d sin(a·t) at t.
// Successive derivatives cycle sin → cos → −sin → −cos, each step scaling
// by a.
func sinDeriv(a, t float64, d int) float64 {
	v := math.Pow(a, float64(d))
	switch d % 4 {
	case 0:
		return v * math.Sin(a*t)
	case 1:
		return v * math.Cos(a*t)
	case 2:
		return -v * math.Sin(a*t)
	default:
		return -v * math.Cos(a*t)
	}
}

// cosDeriv evaluates d^d/dt^d cos(a·t) at t.
func cosDeriv(a, t float64, d int) float64 {
	v := math.Pow(a, float64(d))
	switch d % 4 {
	case 0:
		return v * math.Cos(a*t)
	case 1:
		return -v * math.Sin(a*t)
	case 2:
		return -v * math.Cos(a*t)
	default:
		return v * math.Sin(a*t)
	}
}

// Evaluate fills an n×len(points) matrix with deriv-th derivatives of the
// normalized sinusoids. Complexity: O(n·len(points)).
func (f *Fourier) Evaluate(points []float64, deriv int) (*mat.Dense, error) {
	if err := checkEval(points, deriv); err != nil {
		return nil, err
	}

	omega := 2 * math.Pi / f.period
	constScale := 1 / math.Sqrt(f.period)
	pairScale := 1 / math.Sqrt(f.period/2)

	out := mat.NewDense(f.n, len(points), nil)
	for p, t := range points {
		if deriv == 0 {
			out.Set(0, p, constScale)
		}
		for j := 1; j <= (f.n-1)/2; j++ {
			a := float64(j) * omega
			out.Set(2*j-1, p, pairScale*sinDeriv(a, t, deriv))
			out.Set(2*j, p, pairScale*cosDeriv(a, t, deriv))
		}
	}

	return out, nil
}
