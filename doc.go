// Package roughpen computes roughness-penalty matrices for finite function
// bases under linear differential operators — the quadratic-form ingredient
// of penalized smoothing in functional data analysis.
//
// 🚀 What is roughpen?
//
//	Given a basis {φ_i} and a linear differential operator
//	L f = Σ w_k f^(k), roughpen produces the symmetric matrix
//
//	    R[i][j] = ∫ (Lφ_i)(s) · (Lφ_j)(s) ds
//
//	over the basis domain. R measures the L-roughness of any curve
//	expanded in the basis, so smoothing-spline and ridge-style fitters
//	penalize coefficient vectors c through cᵀRc.
//
// ✨ Why choose roughpen?
//
//   - Exact where it counts — closed-form algorithms per basis family
//     (constant, monomial, Fourier, B-spline) replace blind quadrature
//   - Honest fallback — configurations outside an optimizer's reach are
//     integrated numerically, never mis-approximated
//   - Bit-exact symmetry — results use symmetric storage, so R = Rᵀ holds
//     by construction, not by rounding
//   - Pure Go numerics on gonum — no cgo, no global state
//
// Under the hood, everything is organized into focused subpackages:
//
//	basis/      — constant, monomial, Fourier and B-spline bases with
//	              arbitrary-order derivative evaluation
//	lindiff/    — linear differential operator descriptors
//	poly/       — dense polynomial calculus + FFT pairwise convolution
//	quadrature/ — adaptive Gauss–Legendre integration
//	penalty/    — the dispatcher, the per-basis optimizers and the
//	              numerical fallback
//
// Quick taste:
//
//	bs, _ := basis.NewBSpline(0, 1, []float64{0, 0.25, 0.5, 0.75, 1}, 4)
//	reg := penalty.NewRegularization(lindiff.NewOrder(2))
//	R, err := penalty.Matrix(bs, reg)
//
// computes the classic second-derivative cubic-spline roughness penalty,
// exactly.
//
//	go get github.com/katalvlaran/roughpen
package roughpen
