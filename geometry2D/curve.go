package geometry2D

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/notargets/gobem/utils"
)

// Curve is a closed parametric boundary, theta in [0, 2*Pi)
type Curve interface {
	Eval(theta float64) Point
	// Perimeter is the exact arc length of the closed curve
	Perimeter() float64
	Validate() error
}

// Number of Gauss-Legendre points used for arc length integrals, the
// integrands are smooth and periodic so this is converged to round off for
// any reasonable aspect ratio
const perimeterQuadPoints = 256

type Ellipse struct {
	A, B float64 // Semi axes along x and y
}

func NewEllipse(A, B float64) (el *Ellipse, err error) {
	el = &Ellipse{A: A, B: B}
	if err = el.Validate(); err != nil {
		return nil, err
	}
	return
}

func (el *Ellipse) Eval(theta float64) Point {
	return Point{X: [2]float64{el.A * math.Cos(theta), el.B * math.Sin(theta)}}
}

func (el *Ellipse) Validate() error {
	if el.A <= 0 || el.B <= 0 {
		return fmt.Errorf("%w: ellipse semi axes must be positive, have a = %g, b = %g",
			utils.ErrInvalidConfiguration, el.A, el.B)
	}
	return nil
}

func (el *Ellipse) Perimeter() float64 {
	var (
		a2, b2 = el.A * el.A, el.B * el.B
	)
	return quad.Fixed(func(theta float64) float64 {
		s, c := math.Sincos(theta)
		return math.Sqrt(a2*s*s + b2*c*c)
	}, 0, 2*math.Pi, perimeterQuadPoints, nil, 0)
}

/*
StarCurve is the polar curve r(theta) = R*(1 + Delta*cos(K*theta)), star shaped
about the origin for Delta < 1 and non-convex once Delta*(K*K+1) > 1
*/
type StarCurve struct {
	R, Delta float64
	K        int
}

func NewStarCurve(R, Delta float64, K int) (sc *StarCurve, err error) {
	sc = &StarCurve{R: R, Delta: Delta, K: K}
	if err = sc.Validate(); err != nil {
		return nil, err
	}
	return
}

func (sc *StarCurve) radius(theta float64) float64 {
	return sc.R * (1 + sc.Delta*math.Cos(float64(sc.K)*theta))
}

func (sc *StarCurve) Eval(theta float64) Point {
	var (
		r    = sc.radius(theta)
		s, c = math.Sincos(theta)
	)
	return Point{X: [2]float64{r * c, r * s}}
}

func (sc *StarCurve) Validate() error {
	if sc.R <= 0 || sc.Delta < 0 || sc.Delta >= 1 || sc.K < 0 {
		return fmt.Errorf("%w: star curve needs R > 0, 0 <= Delta < 1, K >= 0, have R = %g, Delta = %g, K = %d",
			utils.ErrInvalidConfiguration, sc.R, sc.Delta, sc.K)
	}
	return nil
}

func (sc *StarCurve) Perimeter() float64 {
	var (
		K = float64(sc.K)
	)
	return quad.Fixed(func(theta float64) float64 {
		r := sc.radius(theta)
		dr := -sc.R * sc.Delta * K * math.Sin(K*theta)
		return math.Sqrt(r*r + dr*dr)
	}, 0, 2*math.Pi, perimeterQuadPoints, nil, 0)
}

// ReversedCurve traverses Curve clockwise
type ReversedCurve struct {
	Curve
}

func (rc ReversedCurve) Eval(theta float64) Point {
	return rc.Curve.Eval(2*math.Pi - theta)
}
