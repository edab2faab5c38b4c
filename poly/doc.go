// Package poly implements dense polynomial calculus on coefficient slices
// in decreasing-exponent (Horner-compatible) convention:
//
//	p = [c_0, c_1, …, c_d]  represents  c_0·x^(d) + c_1·x^(d-1) + … + c_d
//
// ✨ Key features:
//   - Deriv / Integ — exact differentiation and antidifferentiation
//   - Eval — Horner evaluation; DefInt — definite integrals via Barrow's rule
//   - Mul — direct convolution (the correctness-first product)
//   - Convolver — batch pairwise products through a real-input FFT:
//     transform every polynomial once, multiply pointwise per pair, invert;
//     all O(n²) pairwise products cost O(n² log n) instead of O(n³)
//
// The direct and FFT product paths are cross-tested against each other;
// FFT rounding stays within a few ulps for the coefficient magnitudes the
// penalty engine produces.
//
// Complexity:
//   - Deriv/Integ/Eval: O(len)
//   - Mul: O(len(p)·len(q))
//   - Convolver over k polynomials padded to length L: O(k·L·log L) setup,
//     O(L·log L) per product
package poly
