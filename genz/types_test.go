package genz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingium/math/genz"
)

// TestFamily_StringParseRoundTrip checks every family name parses back to itself.
func TestFamily_StringParseRoundTrip(t *testing.T) {
	fams := genz.Families()
	require.Len(t, fams, 6)
	for _, f := range fams {
		got, err := genz.ParseFamily(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
		assert.Greater(t, f.Difficulty(), 0.0, "%s", f)
	}
}

// TestParseFamily_Lenient accepts mixed case, surrounding space and underscores.
func TestParseFamily_Lenient(t *testing.T) {
	f, err := genz.ParseFamily("  Product_Peak ")
	require.NoError(t, err)
	assert.Equal(t, genz.ProductPeak, f)

	_, err = genz.ParseFamily("banana")
	assert.ErrorIs(t, err, genz.ErrUnknownFamily)
}

// TestFamily_Unknown covers out-of-range values.
func TestFamily_Unknown(t *testing.T) {
	f := genz.Family(42)
	assert.Equal(t, "family(42)", f.String())
	assert.Zero(t, f.Difficulty())

	_, err := genz.Integrand(f)
	assert.ErrorIs(t, err, genz.ErrUnknownFamily)

	_, err = genz.Exact(f, genz.Params{A: []float64{1}, U: []float64{0.5}})
	assert.ErrorIs(t, err, genz.ErrUnknownFamily)

	_, err = genz.NewParams(f, 2, 1)
	assert.ErrorIs(t, err, genz.ErrUnknownFamily)
}

// TestExact_ParamsLength rejects empty or mismatched parameter vectors.
func TestExact_ParamsLength(t *testing.T) {
	_, err := genz.Exact(genz.Gaussian, genz.Params{})
	assert.ErrorIs(t, err, genz.ErrParamsLength)

	_, err = genz.Exact(genz.Gaussian, genz.Params{A: []float64{1, 2}, U: []float64{0.5}})
	assert.ErrorIs(t, err, genz.ErrParamsLength)
}
