package penalty

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/roughpen/basis"
)

// fourierOptimizer computes the exact penalty for the sinusoidal basis.
//
// Derivatives of sin and cos cycle through {sin, cos, −sin, −cos}, so
// applying a constant-coefficient L to a basis sinusoid of angular
// frequency a = kω yields A·sin(at) + B·cos(at) with
//
//	A, B = Σ_d w_d·a^d · (±1)
//
// split between even and odd derivative orders under the sign 4-cycle
// {+,+,−,−}. When the period equals the domain length the basis is
// orthonormal, so all cross terms integrate to zero and the diagonal entry
// is A² + B²; the constant element contributes w_0² at (0,0).
//
// Declines for non-constant coefficients or when the period differs from
// the domain length (the basis is then not orthonormal over the domain).
func fourierOptimizer(b basis.Basis, reg Regularization) (*mat.SymDense, bool, error) {
	fb, ok := b.(*basis.Fourier)
	if !ok {
		return nil, false, nil
	}
	w, ok := reg.op.ConstantWeights()
	if !ok {
		return nil, false, nil
	}
	lo, hi := fb.Domain()
	if fb.Period() != hi-lo {
		return nil, false, nil
	}

	// Sign 4-cycle of successive sinusoid derivatives; the cosine element
	// runs one step ahead of the sine element.
	cycle := [4]float64{1, 1, -1, -1}
	omega := 2 * math.Pi / fb.Period()

	n := fb.NBasis()
	res := mat.NewSymDense(n, nil)
	res.SetSym(0, 0, w[0]*w[0])

	for k := 1; k <= (n-1)/2; k++ {
		a := float64(k) * omega

		// Vandermonde-style powers a^d dotted with the weights.
		var sinA, sinB, cosA, cosB float64
		pw := 1.0
		for d := 0; d < len(w); d++ {
			coef := w[d] * pw
			if d%2 == 0 {
				sinA += cycle[d%4] * coef
				cosB += cycle[(d+1)%4] * coef
			} else {
				sinB += cycle[d%4] * coef
				cosA += cycle[(d+1)%4] * coef
			}
			pw *= a
		}

		res.SetSym(2*k-1, 2*k-1, sinA*sinA+sinB*sinB)
		res.SetSym(2*k, 2*k, cosA*cosA+cosB*cosB)
	}

	return res, true, nil
}
