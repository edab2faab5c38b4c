package poly

// Coefficient slices use decreasing-exponent convention throughout:
// index 0 holds the highest-degree coefficient, the last index the
// constant term. An empty slice is the zero polynomial.

// TrimLeading strips leading zero coefficients so the slice length reflects
// the true degree. Differentiation and integration assume trimmed input to
// avoid spurious degree inflation. Returns a subslice, not a copy.
func TrimLeading(p []float64) []float64 {
	i := 0
	for i < len(p) && p[i] == 0 {
		i++
	}

	return p[i:]
}

// Deriv returns the m-th derivative of p. Each surviving coefficient picks
// up the falling factorial e·(e−1)·…·(e−m+1) of its exponent.
func Deriv(p []float64, m int) []float64 {
	deg := len(p) - 1
	if m <= 0 {
		return append([]float64(nil), p...)
	}
	if deg < m {
		return nil
	}

	out := make([]float64, deg-m+1)
	for i := range out {
		e := deg - i // exponent of p[i]
		f := p[i]
		for k := 0; k < m; k++ {
			f *= float64(e - k)
		}
		out[i] = f
	}

	return out
}

// Integ returns the antiderivative of p with zero constant term:
// coefficient of x^e becomes coefficient/(e+1) attached to x^(e+1).
func Integ(p []float64) []float64 {
	out := make([]float64, len(p)+1)
	for i, c := range p {
		out[i] = c / float64(len(p)-i)
	}

	return out
}

// Eval computes p(x) by Horner's rule.
func Eval(p []float64, x float64) float64 {
	var v float64
	for _, c := range p {
		v = v*x + c
	}

	return v
}

// DefInt computes the definite integral of p over [lo, hi] exactly:
// antidifferentiate, then apply Barrow's rule (evaluate at hi minus lo).
func DefInt(p []float64, lo, hi float64) float64 {
	anti := Integ(p)

	return Eval(anti, hi) - Eval(anti, lo)
}

// Mul returns the product p·q by direct convolution. Zero polynomials
// yield nil.
func Mul(p, q []float64) []float64 {
	if len(p) == 0 || len(q) == 0 {
		return nil
	}

	out := make([]float64, len(p)+len(q)-1)
	for i, a := range p {
		if a == 0 {
			continue
		}
		for j, b := range q {
			out[i+j] += a * b
		}
	}

	return out
}
