package poly

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Convolver errors.
var (
	// ErrBadLength is returned when the requested transform length cannot
	// hold the product of two input polynomials.
	ErrBadLength = errors.New("poly: transform length too short for products")

	// ErrBadIndex is returned when a product is requested for a polynomial
	// index outside the batch.
	ErrBadIndex = errors.New("poly: polynomial index out of range")
)

// Convolver computes pairwise polynomial products for a fixed batch of
// polynomials through a real-input FFT: every polynomial is transformed
// once at construction; each product is a pointwise multiplication in
// transform space plus one inverse transform.
//
// The transform length must be at least len(p)+len(q)−1 for every product
// requested, otherwise the circular convolution wraps around. For a batch
// of polynomials of common length n, length 2n−1 is the tight choice.
type Convolver struct {
	fft    *fourier.FFT
	length int
	coefs  [][]complex128
}

// NewConvolver transforms the batch of polynomials (decreasing-exponent
// coefficients, each no longer than length) and prepares product
// computation at the given transform length.
// Errors: ErrBadLength.
func NewConvolver(polys [][]float64, length int) (*Convolver, error) {
	for i, p := range polys {
		if 2*len(p)-1 > length {
			return nil, fmt.Errorf("polynomial %d has %d coefficients, length %d: %w",
				i, len(p), length, ErrBadLength)
		}
	}

	fft := fourier.NewFFT(length)
	coefs := make([][]complex128, len(polys))
	seq := make([]float64, length)
	for i, p := range polys {
		copy(seq, p)
		for j := len(p); j < length; j++ {
			seq[j] = 0 // zero padding keeps the convolution linear
		}
		coefs[i] = fft.Coefficients(nil, seq)
	}

	return &Convolver{fft: fft, length: length, coefs: coefs}, nil
}

// Len reports the transform (and product) length.
func (c *Convolver) Len() int { return c.length }

// Mul returns the product of polynomials i and j as a coefficient slice of
// the transform length (leading entries may be zero; TrimLeading restores
// the true degree).
// Errors: ErrBadIndex.
func (c *Convolver) Mul(i, j int) ([]float64, error) {
	if i < 0 || i >= len(c.coefs) || j < 0 || j >= len(c.coefs) {
		return nil, fmt.Errorf("pair (%d,%d) of %d: %w", i, j, len(c.coefs), ErrBadIndex)
	}

	prod := make([]complex128, len(c.coefs[i]))
	for k := range prod {
		prod[k] = c.coefs[i][k] * c.coefs[j][k]
	}

	out := c.fft.Sequence(nil, prod)
	scale := 1 / float64(c.length) // gonum's inverse transform is unnormalized
	for k := range out {
		out[k] *= scale
	}

	return out, nil
}
