package penalty_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/roughpen/basis"
	"github.com/katalvlaran/roughpen/lindiff"
	"github.com/katalvlaran/roughpen/penalty"
)

// assertMatInDelta compares two symmetric matrices entrywise within an
// absolute-plus-relative tolerance.
func assertMatInDelta(t *testing.T, want, got *mat.SymDense, tol float64) {
	t.Helper()
	require.Equal(t, want.SymmetricDim(), got.SymmetricDim())
	n := want.SymmetricDim()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			w, g := want.At(i, j), got.At(i, j)
			assert.InDelta(t, w, g, tol*math.Max(1, math.Abs(w)), "entry (%d,%d)", i, j)
		}
	}
}

// TestMatrix_ConstantClosedForm: domain [0,1], w_0 = 2 → [[4]].
func TestMatrix_ConstantClosedForm(t *testing.T) {
	cb, err := basis.NewConstant(0, 1)
	require.NoError(t, err)

	r, err := penalty.Matrix(cb, penalty.NewRegularization(lindiff.New(2)))
	require.NoError(t, err)

	require.Equal(t, 1, r.SymmetricDim())
	assert.Equal(t, 4.0, r.At(0, 0))
}

// TestMatrix_MonomialWorkedExample: {1, x, x²} on [0,1] under L = d²/dx²;
// only L(x²) = 2 survives, so R[2][2] = ∫₀¹ 4 = 4 and everything else is 0.
func TestMatrix_MonomialWorkedExample(t *testing.T) {
	mb, err := basis.NewMonomial(0, 1, 3)
	require.NoError(t, err)

	r, err := penalty.Matrix(mb, penalty.NewRegularization(lindiff.NewOrder(2)))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == 2 && j == 2 {
				want = 4.0
			}
			assert.InDelta(t, want, r.At(i, j), 1e-12, "entry (%d,%d)", i, j)
		}
	}
}

// TestMatrix_FourierDiagonal: with period == domain length the penalty is
// diagonal with (0,0) = w_0², exactly as orthonormality dictates.
func TestMatrix_FourierDiagonal(t *testing.T) {
	fb, err := basis.NewFourier(0, 1, 7, 1)
	require.NoError(t, err)

	r, err := penalty.Matrix(fb, penalty.NewRegularization(lindiff.New(3, 0, 1)))
	require.NoError(t, err)

	n := r.SymmetricDim()
	assert.Equal(t, 9.0, r.At(0, 0), "(0,0) is w_0²")
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			assert.Equal(t, 0.0, r.At(i, j), "off-diagonal (%d,%d)", i, j)
		}
	}
}

// TestMatrix_BSplineZeroOperator: derivative order ≥ spline order yields
// the exact zero matrix.
func TestMatrix_BSplineZeroOperator(t *testing.T) {
	sb, err := basis.NewBSpline(0, 1, []float64{0, 0.5, 1}, 3)
	require.NoError(t, err)

	r, err := penalty.Matrix(sb, penalty.NewRegularization(lindiff.NewOrder(3)))
	require.NoError(t, err)

	n := r.SymmetricDim()
	require.Equal(t, sb.NBasis(), n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			assert.Equal(t, 0.0, r.At(i, j))
		}
	}
}

// TestMatrix_ExactSymmetry: R[i][j] and R[j][i] are the same stored value,
// bit for bit, for every computation path.
func TestMatrix_ExactSymmetry(t *testing.T) {
	sb, err := basis.NewBSpline(0, 1, []float64{0, 0.25, 0.5, 0.75, 1}, 4)
	require.NoError(t, err)

	regs := []penalty.Regularization{
		penalty.NewRegularization(lindiff.NewOrder(2)), // exact spline path
		penalty.NewRegularization(lindiff.New(1, 1)),   // multi-term → fallback
	}
	for _, reg := range regs {
		r, err := penalty.Matrix(sb, reg)
		require.NoError(t, err)
		n := r.SymmetricDim()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				assert.Equal(t, r.At(i, j), r.At(j, i))
			}
		}
	}
}

// TestMatrix_Idempotence: identical inputs produce bit-identical matrices.
func TestMatrix_Idempotence(t *testing.T) {
	mb, err := basis.NewMonomial(0, 2, 5)
	require.NoError(t, err)
	reg := penalty.NewRegularization(lindiff.New(1, 0, 2))

	a, err := penalty.Matrix(mb, reg)
	require.NoError(t, err)
	b, err := penalty.Matrix(mb, reg)
	require.NoError(t, err)

	assert.True(t, mat.Equal(a, b), "pure function must reproduce exactly")
}

// TestMatrix_DefaultRegularization penalizes curvature (f″).
func TestMatrix_DefaultRegularization(t *testing.T) {
	reg := penalty.DefaultRegularization()
	w, ok := reg.Operator().ConstantWeights()
	require.True(t, ok)
	assert.Equal(t, []float64{0, 0, 1}, w)
}

// TestMatrix_Misuse covers the caller-visible error surface.
func TestMatrix_Misuse(t *testing.T) {
	_, err := penalty.Matrix(nil, penalty.DefaultRegularization())
	assert.ErrorIs(t, err, penalty.ErrNilBasis)

	mb, err := basis.NewMonomial(0, 1, 2)
	require.NoError(t, err)
	_, err = penalty.Matrix(mb, penalty.Regularization{})
	assert.ErrorIs(t, err, penalty.ErrNilOperator)

	_, err = penalty.Numerical(nil, penalty.DefaultRegularization())
	assert.ErrorIs(t, err, penalty.ErrNilBasis)

	err = penalty.Register(basis.KindMonomial, nil)
	assert.ErrorIs(t, err, penalty.ErrNilOptimizer)
}

// TestRegister routes a custom kind through a registered optimizer.
func TestRegister(t *testing.T) {
	const kindCustom = basis.Kind(1000)

	called := false
	err := penalty.Register(kindCustom, func(b basis.Basis, reg penalty.Regularization) (*mat.SymDense, bool, error) {
		called = true
		r := mat.NewSymDense(1, nil)
		r.SetSym(0, 0, 42)

		return r, true, nil
	})
	require.NoError(t, err)

	r, err := penalty.Matrix(customBasis{}, penalty.DefaultRegularization())
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, 42.0, r.At(0, 0))
}

// customBasis is a minimal basis implementation for registry tests.
type customBasis struct{}

func (customBasis) Kind() basis.Kind         { return basis.Kind(1000) }
func (customBasis) NBasis() int              { return 1 }
func (customBasis) Domain() (lo, hi float64) { return 0, 1 }
func (customBasis) Evaluate(points []float64, deriv int) (*mat.Dense, error) {
	out := mat.NewDense(1, len(points), nil)
	if deriv == 0 {
		for p := range points {
			out.Set(0, p, 1)
		}
	}

	return out, nil
}
