package quadrature

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// DEFAULTS — single source of truth for zero-value behavior.
const (
	// DefaultTolerance is the absolute-plus-relative disagreement allowed
	// between a panel estimate and its bisected refinement.
	DefaultTolerance = 1e-10

	// DefaultMaxDepth bounds the bisection recursion per panel.
	DefaultMaxDepth = 30

	// panelNodes is the Gauss–Legendre node count per panel; exact for
	// polynomial integrands up to degree 2·panelNodes−1.
	panelNodes = 11
)

var (
	// ErrNoConvergence is returned when a panel still disagrees with its
	// refinement at the maximal bisection depth.
	ErrNoConvergence = errors.New("quadrature: integral did not converge")

	// ErrBadInterval is returned for inverted or non-finite bounds.
	ErrBadInterval = errors.New("quadrature: invalid integration interval")

	// ErrBadOption is returned for nonsensical option values.
	ErrBadOption = errors.New("quadrature: invalid option value")
)

// Option configures Adaptive.
type Option func(*config)

type config struct {
	tol      float64
	maxDepth int
}

// WithTolerance sets the panel agreement tolerance (must be > 0).
func WithTolerance(tol float64) Option {
	return func(c *config) { c.tol = tol }
}

// WithMaxDepth sets the bisection depth limit (must be >= 1).
func WithMaxDepth(depth int) Option {
	return func(c *config) { c.maxDepth = depth }
}

// Adaptive integrates f over [lo, hi] by adaptive bisection of fixed
// Gauss–Legendre panels.
//
// Errors: ErrBadInterval, ErrBadOption, ErrNoConvergence.
// Complexity: O(panels · panelNodes) evaluations of f; panel count depends
// on integrand roughness and tolerance.
func Adaptive(f func(float64) float64, lo, hi float64, opts ...Option) (float64, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo > hi {
		return 0, ErrBadInterval
	}
	if lo == hi {
		return 0, nil
	}

	cfg := config{tol: DefaultTolerance, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !(cfg.tol > 0) {
		return 0, fmt.Errorf("tolerance %g: %w", cfg.tol, ErrBadOption)
	}
	if cfg.maxDepth < 1 {
		return 0, fmt.Errorf("max depth %d: %w", cfg.maxDepth, ErrBadOption)
	}

	whole := panel(f, lo, hi)

	return bisect(f, lo, hi, whole, cfg.tol, cfg.maxDepth)
}

// panel integrates one panel with the fixed rule.
func panel(f func(float64) float64, lo, hi float64) float64 {
	return quad.Fixed(f, lo, hi, panelNodes, quad.Legendre{}, 0)
}

// bisect refines [lo, hi] until the coarse estimate agrees with the sum of
// the half-panel estimates, splitting the tolerance between halves.
func bisect(f func(float64) float64, lo, hi, coarse, tol float64, depth int) (float64, error) {
	mid := lo + (hi-lo)/2
	left := panel(f, lo, mid)
	right := panel(f, mid, hi)
	fine := left + right

	if diff := math.Abs(fine - coarse); diff <= tol*(1+math.Abs(fine)) {
		return fine, nil
	}
	if depth <= 1 {
		return fine, fmt.Errorf("interval [%g, %g]: %w", lo, hi, ErrNoConvergence)
	}

	lv, err := bisect(f, lo, mid, left, tol/2, depth-1)
	if err != nil {
		return lv, err
	}
	rv, err := bisect(f, mid, hi, right, tol/2, depth-1)
	if err != nil {
		return lv + rv, err
	}

	return lv + rv, nil
}
