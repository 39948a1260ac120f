package Laplace2D

import (
	"fmt"
	"math"

	"github.com/notargets/gobem/BEM2D"
	"github.com/notargets/gobem/InputParameters"
	"github.com/notargets/gobem/types"
	"github.com/notargets/gobem/utils"
)

/*
HarmonicPolynomial is Re(z^n) = r^n cos(n theta). With f(z) = z^n analytic,
f'(z) = du/dx - i du/dy gives the gradient from n z^(n-1).
*/
type HarmonicPolynomial struct {
	Order int
}

func zPow(z complex128, n int) (zn complex128) {
	zn = 1
	for i := 0; i < n; i++ {
		zn *= z
	}
	return
}

func (hp HarmonicPolynomial) Evaluate(x, y float64) float64 {
	return real(zPow(complex(x, y), hp.Order))
}

func (hp HarmonicPolynomial) Gradient(x, y float64) (dudx, dudy float64) {
	if hp.Order == 0 {
		return 0, 0
	}
	df := complex(float64(hp.Order), 0) * zPow(complex(x, y), hp.Order-1)
	return real(df), -imag(df)
}

// ExponentialHarmonic is e^x cos(y)
type ExponentialHarmonic struct{}

func (ExponentialHarmonic) Evaluate(x, y float64) float64 { return math.Exp(x) * math.Cos(y) }

func (ExponentialHarmonic) Gradient(x, y float64) (dudx, dudy float64) {
	ex := math.Exp(x)
	return ex * math.Cos(y), -ex * math.Sin(y)
}

// LinearHarmonic is a x + b y + c
type LinearHarmonic struct {
	A, B, C float64
}

func (lh LinearHarmonic) Evaluate(x, y float64) float64 { return lh.A*x + lh.B*y + lh.C }

func (lh LinearHarmonic) Gradient(x, y float64) (dudx, dudy float64) { return lh.A, lh.B }

// SourceHarmonic is ln|x - x0|, harmonic everywhere except at the source point,
// which must lie outside the domain
type SourceHarmonic struct {
	X0, Y0 float64
}

func (sh SourceHarmonic) r2(x, y float64) float64 {
	return utils.POW(x-sh.X0, 2) + utils.POW(y-sh.Y0, 2)
}

func (sh SourceHarmonic) Evaluate(x, y float64) float64 {
	return 0.5 * math.Log(sh.r2(x, y))
}

func (sh SourceHarmonic) Gradient(x, y float64) (dudx, dudy float64) {
	r2 := sh.r2(x, y)
	return (x - sh.X0) / r2, (y - sh.Y0) / r2
}

func NewOracle(ip *InputParameters.InputParametersBEM) (oracle BEM2D.FieldOracle, err error) {
	var (
		ot types.OracleType
	)
	if ot, err = types.NewOracleType(ip.Oracle); err != nil {
		return
	}
	switch ot {
	case types.ORACLE_HarmonicPolynomial:
		if ip.HarmonicOrder < 0 {
			err = fmt.Errorf("%w: negative harmonic order %d", utils.ErrInvalidConfiguration, ip.HarmonicOrder)
			return
		}
		oracle = HarmonicPolynomial{Order: ip.HarmonicOrder}
	case types.ORACLE_Exponential:
		oracle = ExponentialHarmonic{}
	case types.ORACLE_Linear:
		if len(ip.LinearCoeffs) != 3 {
			err = fmt.Errorf("%w: linear oracle needs 3 coefficients, have %d",
				utils.ErrInvalidConfiguration, len(ip.LinearCoeffs))
			return
		}
		c := ip.LinearCoeffs
		oracle = LinearHarmonic{A: c[0], B: c[1], C: c[2]}
	case types.ORACLE_Source:
		oracle = SourceHarmonic{X0: ip.SourceX, Y0: ip.SourceY}
	}
	return
}
