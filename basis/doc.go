// Package basis provides finite one-dimensional function bases for
// functional-data representation: constant, monomial, Fourier and B-spline.
//
// 🚀 What is a basis here?
//
//	A finite set of functions {φ_0 … φ_{n-1}} spanning an approximation
//	space over a closed interval [lo, hi]. Curves are represented as
//	coefficient vectors against the basis; every variant supports exact
//	evaluation of arbitrary-order derivatives, which is what the penalty
//	engine builds on.
//
// ✨ Key features:
//   - Constant   — the one-function basis φ(t) = 1
//   - Monomial   — {1, t, t², …}, derivatives by falling factorials
//   - Fourier    — {1/√T, sin(ωt), cos(ωt), …} normalized so the basis is
//     orthonormal whenever the period equals the domain length
//   - BSpline    — simple interior knots, Cox–de Boor evaluation, exact
//     derivative recurrence, clamped evaluation-knot vector
//
// ⚙️ Usage:
//
//	mb, err := basis.NewMonomial(0, 1, 3)   // {1, t, t²} on [0,1]
//	vals, err := mb.Evaluate([]float64{0.5}, 1) // first derivatives
//
// Evaluate returns an n×len(points) matrix: one row per basis function,
// one column per evaluation point.
//
// All constructors validate their inputs and return package sentinels
// (ErrBadDomain, ErrBadKnots, …) matched via errors.Is; nothing panics on
// user input.
package basis
