// Package quadrature provides adaptive numerical integration of real
// functions over finite intervals.
//
// 🚀 How it works:
//
//	Each panel is integrated with a fixed Gauss–Legendre rule; the panel
//	estimate is compared against the sum of the two half-panel estimates.
//	Panels that disagree beyond the tolerance are bisected recursively, so
//	effort concentrates where the integrand is rough (e.g. around spline
//	knots) while smooth regions are dispatched in one rule application.
//
// ⚙️ Usage:
//
//	v, err := quadrature.Adaptive(math.Cos, 0, math.Pi/2)
//	v, err = quadrature.Adaptive(f, a, b,
//	    quadrature.WithTolerance(1e-8),
//	    quadrature.WithMaxDepth(20))
//
// Non-convergence within the depth limit surfaces ErrNoConvergence; there
// is no silent truncation.
package quadrature
