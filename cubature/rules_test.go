package cubature_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingium/math/cubature"
)

// TestKronrodTables_WeightsIntegrateOne verifies that both the 15-point and
// the embedded 7-point weights integrate the constant 1 over [-1, 1].
func TestKronrodTables_WeightsIntegrateOne(t *testing.T) {
	nodes, kronrod, gauss := cubature.KronrodTables_TestOnly()

	sumK := kronrod[7]
	for i := 0; i < 7; i++ {
		sumK += 2 * kronrod[i]
	}
	assert.InDelta(t, 2.0, sumK, 1e-14, "Kronrod weights")

	sumG := gauss[3] + 2*(gauss[0]+gauss[1]+gauss[2])
	assert.InDelta(t, 2.0, sumG, 1e-14, "Gauss weights")

	assert.Equal(t, 0.0, nodes[7], "midpoint last")
	for i := 1; i < 8; i++ {
		assert.Less(t, nodes[i], nodes[i-1], "abscissas stored outermost first")
	}
}

// TestGaussKronrod_PolynomialExact checks exactness on low-degree polynomials
// and the fixed evaluation count.
func TestGaussKronrod_PolynomialExact(t *testing.T) {
	cases := []struct {
		name string
		f    cubature.Integrand[struct{}]
		a, b float64
		want float64
	}{
		{"x^2 on [0,1]", func(x []float64, _ struct{}) float64 { return x[0] * x[0] }, 0, 1, 1.0 / 3},
		{"x^5-3x on [-2,3]", func(x []float64, _ struct{}) float64 { return math.Pow(x[0], 5) - 3*x[0] }, -2, 3, (729.0-64)/6 - 1.5*(9-4)},
		{"4x^3 on [1,2]", func(x []float64, _ struct{}) float64 { return 4 * x[0] * x[0] * x[0] }, 1, 2, 15},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			f := func(x []float64, p struct{}) float64 {
				calls++
				return tc.f(x, p)
			}
			est, err := cubature.GaussKronrod(f, struct{}{}, tc.a, tc.b)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, est.Value, 1e-12*math.Max(1, math.Abs(tc.want)))
			assert.Less(t, est.Error, 1e-10)
			assert.Equal(t, 15, calls)
		})
	}
}

// TestGaussKronrod_ZeroWidth ensures a degenerate interval is not evaluated.
func TestGaussKronrod_ZeroWidth(t *testing.T) {
	calls := 0
	f := func(x []float64, _ int) float64 {
		calls++
		return 1
	}
	est, err := cubature.GaussKronrod(f, 0, 0.25, 0.25)
	require.NoError(t, err)
	assert.Equal(t, cubature.Estimate{}, est)
	assert.Zero(t, calls)
}

// TestGaussKronrod_NilIntegrand returns the sentinel.
func TestGaussKronrod_NilIntegrand(t *testing.T) {
	_, err := cubature.GaussKronrod[int](nil, 0, 0, 1)
	assert.ErrorIs(t, err, cubature.ErrNilIntegrand)
}
