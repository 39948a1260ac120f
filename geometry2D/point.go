package geometry2D

import (
	"fmt"
	"math"
)

type Point struct {
	X [2]float64
}

func NewPoint(x, y float64) Point {
	return Point{X: [2]float64{x, y}}
}

func (pt Point) Minus(rhs Point) Point {
	return Point{X: [2]float64{pt.X[0] - rhs.X[0], pt.X[1] - rhs.X[1]}}
}

func (pt Point) Plus(rhs Point) Point {
	return Point{X: [2]float64{pt.X[0] + rhs.X[0], pt.X[1] + rhs.X[1]}}
}

func (pt Point) Scale(a float64) Point {
	return Point{X: [2]float64{a * pt.X[0], a * pt.X[1]}}
}

func (pt Point) Dot(rhs Point) float64 {
	return pt.X[0]*rhs.X[0] + pt.X[1]*rhs.X[1]
}

// Cross is the z component of the 3D cross product
func (pt Point) Cross(rhs Point) float64 {
	return pt.X[0]*rhs.X[1] - pt.X[1]*rhs.X[0]
}

func (pt Point) Norm() float64 {
	return math.Hypot(pt.X[0], pt.X[1])
}

func (pt Point) Distance(rhs Point) float64 {
	return pt.Minus(rhs).Norm()
}

// Normalize returns the unit vector along pt, ok is false for vectors shorter than tol
func (pt Point) Normalize(tol float64) (unit Point, ok bool) {
	var (
		length = pt.Norm()
	)
	if length < tol {
		return
	}
	return pt.Scale(1. / length), true
}

// RotateCW rotates by -90 degrees: (x, y) -> (y, -x)
func (pt Point) RotateCW() Point {
	return Point{X: [2]float64{pt.X[1], -pt.X[0]}}
}

func (pt Point) Equal(rhs Point) bool {
	return pt.X == rhs.X
}

func (pt Point) String() string {
	return fmt.Sprintf("(%8.5f,%8.5f)", pt.X[0], pt.X[1])
}
