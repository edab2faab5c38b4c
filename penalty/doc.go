// Package penalty computes roughness-penalty matrices
//
//	R[i][j] = ∫ (Lφ_i)(s) · (Lφ_j)(s) ds
//
// for a function basis {φ_i} under a linear differential operator L.
//
// 🚀 How computation is routed:
//
//	Matrix(basis, reg) looks up an exact algorithm keyed by the basis
//	family (constant, monomial, Fourier, B-spline). An optimizer may
//	decline — non-constant operator coefficients, a Fourier period that
//	does not match the domain, a multi-term B-spline penalty — and the
//	computation falls back to pairwise adaptive quadrature. Either way the
//	caller receives a complete n×n symmetric matrix; "not applicable" is
//	an internal signal, never a caller-visible failure.
//
// ✨ Key features:
//   - Exact closed forms per basis family: polynomial calculus with FFT
//     pairwise convolution for monomials, trigonometric orthonormality for
//     Fourier, piecewise-polynomial spline calculus for B-splines
//   - Symmetric storage (gonum mat.SymDense): R = Rᵀ holds bit-for-bit by
//     construction
//   - Extensible dispatch: Register wires an optimizer for a new basis
//     family without touching the routing logic
//
// ⚙️ Usage:
//
//	bs, _ := basis.NewBSpline(0, 1, []float64{0, 0.25, 0.5, 0.75, 1}, 4)
//	reg := penalty.NewRegularization(lindiff.NewOrder(2))
//	R, err := penalty.Matrix(bs, reg)
//
// Every computation is deterministic, allocation-fresh and free of shared
// mutable state; concurrent Matrix calls need no synchronization.
package penalty
