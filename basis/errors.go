// Package basis: sentinel error set.
// All constructors and evaluators return these sentinels (optionally
// wrapped with context via %w); tests match them with errors.Is.
// Panics are reserved for programmer errors in private helpers.

package basis

import "errors"

var (
	// ErrBadDomain is returned when a domain interval is empty or inverted
	// (lo >= hi), or contains NaN/Inf endpoints.
	ErrBadDomain = errors.New("basis: invalid domain interval")

	// ErrBadDimension is returned when a requested basis dimension is < 1.
	ErrBadDimension = errors.New("basis: dimension must be >= 1")

	// ErrBadPeriod is returned when a Fourier period is not finite and positive.
	ErrBadPeriod = errors.New("basis: period must be positive")

	// ErrBadKnots is returned when a B-spline knot sequence is too short,
	// unsorted, non-finite, or does not span the domain.
	ErrBadKnots = errors.New("basis: invalid knot sequence")

	// ErrBadOrder is returned when a B-spline order (degree+1) is < 1.
	ErrBadOrder = errors.New("basis: spline order must be >= 1")

	// ErrBadDerivative is returned when a negative derivative order is
	// requested from Evaluate.
	ErrBadDerivative = errors.New("basis: derivative order must be >= 0")

	// ErrNoPoints is returned when Evaluate receives an empty point slice.
	ErrNoPoints = errors.New("basis: no evaluation points")
)
