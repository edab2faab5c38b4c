package penalty_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roughpen/basis"
	"github.com/katalvlaran/roughpen/lindiff"
	"github.com/katalvlaran/roughpen/penalty"
)

// crossTol is the optimized-vs-quadrature agreement required by the
// engine's contract: well within quadrature tolerance.
const crossTol = 1e-6

// TestCross_Monomial validates the FFT/Barrow monomial path against plain
// numerical integration for a mixed operator.
func TestCross_Monomial(t *testing.T) {
	mb, err := basis.NewMonomial(0, 1, 4)
	require.NoError(t, err)
	reg := penalty.NewRegularization(lindiff.New(1, 0, 2))

	exact, err := penalty.Matrix(mb, reg)
	require.NoError(t, err)
	numeric, err := penalty.Numerical(mb, reg)
	require.NoError(t, err)

	assertMatInDelta(t, exact, numeric, crossTol)
}

// TestCross_MonomialShiftedDomain repeats the check away from [0,1] so
// Barrow's rule is exercised with a nonzero left endpoint.
func TestCross_MonomialShiftedDomain(t *testing.T) {
	mb, err := basis.NewMonomial(-1, 2, 5)
	require.NoError(t, err)
	reg := penalty.NewRegularization(lindiff.NewOrder(1))

	exact, err := penalty.Matrix(mb, reg)
	require.NoError(t, err)
	numeric, err := penalty.Numerical(mb, reg)
	require.NoError(t, err)

	assertMatInDelta(t, exact, numeric, crossTol)
}

// TestCross_Fourier validates the orthonormal diagonal construction
// against quadrature when period == domain length.
func TestCross_Fourier(t *testing.T) {
	fb, err := basis.NewFourier(0, 1, 5, 1)
	require.NoError(t, err)
	reg := penalty.NewRegularization(lindiff.New(1, 0, 1))

	exact, err := penalty.Matrix(fb, reg)
	require.NoError(t, err)
	numeric, err := penalty.Numerical(fb, reg)
	require.NoError(t, err)

	assertMatInDelta(t, exact, numeric, crossTol)
}

// TestCross_FourierPeriodMismatch: a period different from the domain
// length breaks orthonormality; Matrix must fall back and agree with a
// direct Numerical call bit for bit.
func TestCross_FourierPeriodMismatch(t *testing.T) {
	fb, err := basis.NewFourier(0, 1, 5, 2)
	require.NoError(t, err)
	reg := penalty.NewRegularization(lindiff.NewOrder(1))

	viaMatrix, err := penalty.Matrix(fb, reg)
	require.NoError(t, err)
	direct, err := penalty.Numerical(fb, reg)
	require.NoError(t, err)

	assertMatInDelta(t, direct, viaMatrix, 0) // identical path, identical bits
}

// TestCross_BSplineCurvature: the classic case — cubic splines under the
// second-derivative penalty, exact piecewise-polynomial path vs
// quadrature.
func TestCross_BSplineCurvature(t *testing.T) {
	sb, err := basis.NewBSpline(0, 1, []float64{0, 0.25, 0.5, 0.75, 1}, 4)
	require.NoError(t, err)
	reg := penalty.NewRegularization(lindiff.NewOrder(2))

	exact, err := penalty.Matrix(sb, reg)
	require.NoError(t, err)
	numeric, err := penalty.Numerical(sb, reg)
	require.NoError(t, err)

	assertMatInDelta(t, exact, numeric, crossTol)
}

// TestCross_BSplineMaxDerivative: d = order−1 takes the piecewise-constant
// midpoint path.
func TestCross_BSplineMaxDerivative(t *testing.T) {
	sb, err := basis.NewBSpline(0, 1, []float64{0, 0.25, 0.5, 0.75, 1}, 3)
	require.NoError(t, err)
	reg := penalty.NewRegularization(lindiff.NewOrder(2))

	exact, err := penalty.Matrix(sb, reg)
	require.NoError(t, err)
	numeric, err := penalty.Numerical(sb, reg)
	require.NoError(t, err)

	assertMatInDelta(t, exact, numeric, crossTol)
}

// TestCross_BSplineScaledWeight: a non-unit single weight must scale the
// penalty by w², matching quadrature.
func TestCross_BSplineScaledWeight(t *testing.T) {
	sb, err := basis.NewBSpline(0, 1, []float64{0, 0.5, 1}, 4)
	require.NoError(t, err)
	reg := penalty.NewRegularization(lindiff.New(0, 0, 3))

	exact, err := penalty.Matrix(sb, reg)
	require.NoError(t, err)
	numeric, err := penalty.Numerical(sb, reg)
	require.NoError(t, err)

	assertMatInDelta(t, exact, numeric, crossTol)
}

// TestCross_BSplineFirstDerivative exercises a low derivative order on a
// higher-order spline.
func TestCross_BSplineFirstDerivative(t *testing.T) {
	sb, err := basis.NewBSpline(0, 2, []float64{0, 0.5, 1, 1.5, 2}, 4)
	require.NoError(t, err)
	reg := penalty.NewRegularization(lindiff.NewOrder(1))

	exact, err := penalty.Matrix(sb, reg)
	require.NoError(t, err)
	numeric, err := penalty.Numerical(sb, reg)
	require.NoError(t, err)

	assertMatInDelta(t, exact, numeric, crossTol)
}

// TestCross_MultiTermBSplineFallsBack: two surviving derivative orders are
// outside the exact path; Matrix must agree with Numerical bit for bit
// because it takes the same fallback.
func TestCross_MultiTermBSplineFallsBack(t *testing.T) {
	sb, err := basis.NewBSpline(0, 1, []float64{0, 0.5, 1}, 4)
	require.NoError(t, err)
	reg := penalty.NewRegularization(lindiff.New(0, 1, 1))

	viaMatrix, err := penalty.Matrix(sb, reg)
	require.NoError(t, err)
	direct, err := penalty.Numerical(sb, reg)
	require.NoError(t, err)

	assertMatInDelta(t, direct, viaMatrix, 0)
}

// TestCross_VaryingCoefficients: non-constant weights decline every
// optimizer; the fallback integrates them directly. Sanity-checked against
// a hand-computed entry: L f = t·f on {1, x} over [0,1] gives
// R[0][0] = ∫ t² = 1/3.
func TestCross_VaryingCoefficients(t *testing.T) {
	mb, err := basis.NewMonomial(0, 1, 2)
	require.NoError(t, err)
	reg := penalty.NewRegularization(lindiff.NewVarying(func(t float64) float64 { return t }))

	r, err := penalty.Matrix(mb, reg)
	require.NoError(t, err)

	require.Equal(t, 2, r.SymmetricDim())
	assertScalarInDelta(t, 1.0/3, r.At(0, 0))
	assertScalarInDelta(t, 1.0/4, r.At(0, 1)) // ∫ t·1 · t·t = 1/4
	assertScalarInDelta(t, 1.0/5, r.At(1, 1)) // ∫ (t·t)² = 1/5
}

// assertScalarInDelta applies the cross-validation tolerance to a single
// value.
func assertScalarInDelta(t *testing.T, want, got float64) {
	t.Helper()
	require.InDelta(t, want, got, crossTol)
}
