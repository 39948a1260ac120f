package InputParameters

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/notargets/gobem/utils"
)

var inputDeck = []byte(`
Title: "Star shaped domain, exponential field"
Curve: star
A: 1.5
StarDelta: 0.25
StarLobes: 4
NBoundary: 120
NGrid: 64
GridHalfWidth: 2.5
Oracle: Exponential
Orientation: Radial
`)

func TestParse(t *testing.T) {
	ip := NewDefaultInputParametersBEM()
	require.NoError(t, ip.Parse(inputDeck))
	assert.Equal(t, "star", ip.Curve)
	assert.Equal(t, 1.5, ip.A)
	assert.Equal(t, 0.25, ip.StarDelta)
	assert.Equal(t, 4, ip.StarLobes)
	assert.Equal(t, 120, ip.NBoundary)
	assert.Equal(t, 64, ip.NGrid)
	assert.Equal(t, 2.5, ip.GridHalfWidth)
	assert.Equal(t, "Exponential", ip.Oracle)
	// Untouched by the deck
	assert.Equal(t, 1.e-8, ip.Epsilon)
	assert.Equal(t, 3, ip.HarmonicOrder)
	require.NoError(t, ip.Validate())

	var buf bytes.Buffer
	ip.Print(&buf)
	assert.Contains(t, buf.String(), "= Star Lobes")
	assert.Contains(t, buf.String(), "[Radial]")

	assert.Error(t, ip.Parse([]byte("NBoundary: [1, 2")))
}

func TestValidate(t *testing.T) {
	{
		ip := NewDefaultInputParametersBEM()
		assert.NoError(t, ip.Validate())
	}
	{ // Every violation is reported
		ip := NewDefaultInputParametersBEM()
		ip.NBoundary = 2
		ip.B = 0
		ip.Epsilon = -1
		ip.Oracle = "bessel"
		ip.GridHalfWidth = 0
		err := ip.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, utils.ErrInvalidConfiguration))
		assert.Len(t, multierr.Errors(err), 5)
		assert.Contains(t, err.Error(), "NBoundary must be at least 3")
	}
	{
		ip := NewDefaultInputParametersBEM()
		ip.HarmonicOrder = -2
		ip.Orientation = "inward"
		assert.Len(t, multierr.Errors(ip.Validate()), 2)
		ip = NewDefaultInputParametersBEM()
		ip.Oracle = "linear"
		ip.LinearCoeffs = []float64{1}
		assert.True(t, errors.Is(ip.Validate(), utils.ErrInvalidConfiguration))
		ip = NewDefaultInputParametersBEM()
		ip.Curve = "star"
		ip.StarDelta = 1
		assert.True(t, errors.Is(ip.Validate(), utils.ErrInvalidConfiguration))
	}
}

func TestApplyOverrides(t *testing.T) {
	ip := NewDefaultInputParametersBEM()
	v := viper.New()
	v.Set(KeyNBoundary, 200)
	v.Set(KeyOracle, "linear")
	v.Set(KeyEpsilon, "1e-6")
	v.Set(KeyStarDelta, 0.25)
	v.Set(KeyStarLobes, "7")
	v.Set(KeySourceX, -8)
	v.Set(KeySourceY, "4.5")
	v.Set(KeyLinearCoeffs, "2, -1,0.5")
	require.NoError(t, ip.ApplyOverrides(v))
	assert.Equal(t, 200, ip.NBoundary)
	assert.Equal(t, "linear", ip.Oracle)
	assert.Equal(t, 1.e-6, ip.Epsilon)
	assert.Equal(t, 0.25, ip.StarDelta)
	assert.Equal(t, 7, ip.StarLobes)
	assert.Equal(t, -8., ip.SourceX)
	assert.Equal(t, 4.5, ip.SourceY)
	assert.Equal(t, []float64{2, -1, 0.5}, ip.LinearCoeffs)
	assert.Equal(t, 100, ip.NGrid)
	require.NoError(t, ip.ApplyOverrides(nil))
	assert.Equal(t, 200, ip.NBoundary)
	{ // List form, as a config file supplies it
		v.Set(KeyLinearCoeffs, []string{"1", "0", "3"})
		require.NoError(t, ip.ApplyOverrides(v))
		assert.Equal(t, []float64{1, 0, 3}, ip.LinearCoeffs)
	}
	{
		v.Set(KeyLinearCoeffs, "1,x,0")
		err := ip.ApplyOverrides(v)
		assert.True(t, errors.Is(err, utils.ErrInvalidConfiguration))
	}
}
