// Package lindiff describes linear differential operators
//
//	L f = w_0·f + w_1·f′ + … + w_m·f^(m)
//
// used to measure curve roughness in penalized smoothing.
//
// ✨ Key features:
//   - Constant-coefficient operators (New, NewOrder) — the structure every
//     exact penalty algorithm requires; ConstantWeights reports them.
//   - Variable-coefficient operators (NewVarying) — weights that are
//     functions of the domain variable; ConstantWeights declines, which
//     routes penalty computation to numerical integration.
//   - Apply — turn an operator plus a basis into a pointwise-evaluable
//     (Lφ_i)(t), the capability the numerical fallback integrates.
//
// ⚙️ Usage:
//
//	op := lindiff.NewOrder(2)            // L f = f″, the classic curvature penalty
//	w, ok := op.ConstantWeights()        // [0 0 1], true
//
//	op = lindiff.New(1, 0, 4)            // L f = f + 4·f″
//
// Operators are immutable after construction and safe for concurrent use.
package lindiff
