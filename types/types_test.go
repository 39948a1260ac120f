package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gobem/utils"
)

func TestTypes(t *testing.T) {
	{
		tokens := []string{"Polynomial", "HARMONIC", "exp", "Exponential", "linear", "Source", ""}
		flags := []OracleType{ORACLE_HarmonicPolynomial, ORACLE_HarmonicPolynomial, ORACLE_Exponential,
			ORACLE_Exponential, ORACLE_Linear, ORACLE_Source, ORACLE_HarmonicPolynomial}
		for i, token := range tokens {
			ot, err := NewOracleType(token)
			require.NoError(t, err)
			assert.Equal(t, flags[i], ot)
		}
		assert.Equal(t, "Linear", ORACLE_Linear.Print())
		_, err := NewOracleType("bessel")
		assert.True(t, errors.Is(err, utils.ErrInvalidConfiguration))
	}
	{
		tokens := []string{"SignedArea", "signed_area", "Radial", ""}
		flags := []OrientationType{ORIENT_SignedArea, ORIENT_SignedArea, ORIENT_Radial, ORIENT_SignedArea}
		for i, token := range tokens {
			ot, err := NewOrientationType(token)
			require.NoError(t, err)
			assert.Equal(t, flags[i], ot)
		}
		assert.Equal(t, "Radial", ORIENT_Radial.Print())
		_, err := NewOrientationType("inward")
		assert.True(t, errors.Is(err, utils.ErrInvalidConfiguration))
	}
	{
		ct, err := NewCurveType("Star")
		require.NoError(t, err)
		assert.Equal(t, CURVE_Star, ct)
		ct, err = NewCurveType("")
		require.NoError(t, err)
		assert.Equal(t, CURVE_Ellipse, ct)
		_, err = NewCurveType("square")
		assert.True(t, errors.Is(err, utils.ErrInvalidConfiguration))
	}
}
