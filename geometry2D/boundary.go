package geometry2D

import (
	"fmt"
	"math"

	"github.com/notargets/gobem/utils"
)

// BoundarySample is an ordered, cyclic set of points on a closed curve. Index
// M wraps to index 0.
type BoundarySample struct {
	points []Point
}

// SampleCurve places M points equally spaced in the curve parameter (not in arc
// length), theta_k = 2*Pi*k/M
func SampleCurve(c Curve, M int) (bs *BoundarySample, err error) {
	if M < 3 {
		return nil, fmt.Errorf("%w: need at least 3 boundary samples, have M = %d",
			utils.ErrInvalidConfiguration, M)
	}
	if err = c.Validate(); err != nil {
		return nil, err
	}
	var (
		points = make([]Point, M)
		dTheta = 2 * math.Pi / float64(M)
	)
	for k := range points {
		points[k] = c.Eval(float64(k) * dTheta)
	}
	return &BoundarySample{points: points}, nil
}

// NewBoundarySample copies points into a sample, no closing duplicate point is
// expected at the end
func NewBoundarySample(points []Point) (bs *BoundarySample, err error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: need at least 3 boundary samples, have M = %d",
			utils.ErrInvalidConfiguration, len(points))
	}
	bs = &BoundarySample{points: make([]Point, len(points))}
	copy(bs.points, points)
	return
}

func (bs *BoundarySample) Len() int { return len(bs.points) }

// At returns point i, cyclic in both directions
func (bs *BoundarySample) At(i int) Point {
	var (
		M = len(bs.points)
	)
	i %= M
	if i < 0 {
		i += M
	}
	return bs.points[i]
}

// Points returns a copy of the sample
func (bs *BoundarySample) Points() (points []Point) {
	points = make([]Point, len(bs.points))
	copy(points, bs.points)
	return
}

func (bs *BoundarySample) XY() (x, y []float64) {
	x, y = make([]float64, len(bs.points)), make([]float64, len(bs.points))
	for i, pt := range bs.points {
		x[i], y[i] = pt.X[0], pt.X[1]
	}
	return
}

func (bs *BoundarySample) BoundingBox() *BoundingBox {
	return NewBoundingBox(bs.points)
}
