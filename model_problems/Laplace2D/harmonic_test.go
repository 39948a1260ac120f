package Laplace2D

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gobem/BEM2D"
	"github.com/notargets/gobem/InputParameters"
	"github.com/notargets/gobem/utils"
)

func TestHarmonicPolynomial(t *testing.T) {
	hp := HarmonicPolynomial{Order: 3}
	assert.InDelta(t, -11., hp.Evaluate(1, 2), 1.e-14)
	r, theta := 1.7, 0.4
	assert.InDeltaf(t, math.Pow(r, 3)*math.Cos(3*theta),
		hp.Evaluate(r*math.Cos(theta), r*math.Sin(theta)), 1.e-13, "polar form")
	dudx, dudy := hp.Gradient(1, 2)
	assert.InDelta(t, 3.-12., dudx, 1.e-14)
	assert.InDelta(t, -12., dudy, 1.e-14)
	assert.Equal(t, 1., HarmonicPolynomial{}.Evaluate(3, 4))
	dudx, dudy = HarmonicPolynomial{}.Gradient(3, 4)
	assert.Equal(t, [2]float64{0, 0}, [2]float64{dudx, dudy})
	dudx, dudy = HarmonicPolynomial{Order: 1}.Gradient(0, 0)
	assert.Equal(t, [2]float64{1, 0}, [2]float64{dudx, dudy})
}

func TestOracles(t *testing.T) {
	oracles := []BEM2D.FieldOracle{
		HarmonicPolynomial{Order: 4},
		ExponentialHarmonic{},
		LinearHarmonic{A: 2, B: -1, C: 0.5},
		SourceHarmonic{X0: 10, Y0: 10},
	}
	var (
		h   = 1.e-4
		pts = [][2]float64{{0.3, -0.2}, {1.1, 0.9}, {-2, 1.5}}
	)
	for _, o := range oracles {
		for _, p := range pts {
			x, y := p[0], p[1]
			// Gradient against central differences
			fdx := (o.Evaluate(x+h, y) - o.Evaluate(x-h, y)) / (2 * h)
			fdy := (o.Evaluate(x, y+h) - o.Evaluate(x, y-h)) / (2 * h)
			dudx, dudy := o.Gradient(x, y)
			scale := math.Max(1, math.Abs(dudx)+math.Abs(dudy))
			assert.InDeltaf(t, fdx, dudx, 1.e-6*scale, "%T d/dx at %v", o, p)
			assert.InDeltaf(t, fdy, dudy, 1.e-6*scale, "%T d/dy at %v", o, p)
			// Five point Laplacian vanishes
			lap := (o.Evaluate(x+h, y) + o.Evaluate(x-h, y) + o.Evaluate(x, y+h) +
				o.Evaluate(x, y-h) - 4*o.Evaluate(x, y)) / (h * h)
			assert.InDeltaf(t, 0., lap, 1.e-3*scale, "%T laplacian at %v", o, p)
		}
	}
}

func TestNewOracle(t *testing.T) {
	ip := InputParameters.NewDefaultInputParametersBEM()
	o, err := NewOracle(ip)
	require.NoError(t, err)
	assert.Equal(t, HarmonicPolynomial{Order: 3}, o)
	ip.Oracle = "Linear"
	ip.LinearCoeffs = []float64{1, 2, 3}
	o, err = NewOracle(ip)
	require.NoError(t, err)
	assert.Equal(t, LinearHarmonic{A: 1, B: 2, C: 3}, o)
	ip.Oracle = "source"
	o, err = NewOracle(ip)
	require.NoError(t, err)
	assert.Equal(t, SourceHarmonic{X0: 10, Y0: 10}, o)
	ip.Oracle = "exp"
	o, err = NewOracle(ip)
	require.NoError(t, err)
	assert.Equal(t, ExponentialHarmonic{}, o)
	ip.Oracle = "bessel"
	_, err = NewOracle(ip)
	assert.True(t, errors.Is(err, utils.ErrInvalidConfiguration))
}
