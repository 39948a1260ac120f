package geometry2D

import (
	"fmt"

	"github.com/notargets/gobem/utils"
)

/*
EvaluationGrid is an N by N lattice covering [-L, L]^2, nodes placed like
linspace(-L, L, N) in each direction. Point k = j*N + i sits at (x[i], y[j]).
*/
type EvaluationGrid struct {
	N      int
	L      float64
	X, Y   []float64 // 1D node coordinates
	points []Point
}

func NewEvaluationGrid(L float64, N int) (eg *EvaluationGrid, err error) {
	if N < 1 {
		return nil, fmt.Errorf("%w: grid resolution must be at least 1, have N = %d",
			utils.ErrInvalidConfiguration, N)
	}
	if L <= 0 {
		return nil, fmt.Errorf("%w: grid half width must be positive, have L = %g",
			utils.ErrInvalidConfiguration, L)
	}
	eg = &EvaluationGrid{
		N:      N,
		L:      L,
		X:      utils.Linspace(-L, L, N),
		Y:      utils.Linspace(-L, L, N),
		points: make([]Point, N*N),
	}
	for j := 0; j < N; j++ {
		for i := 0; i < N; i++ {
			eg.points[eg.Index(i, j)] = Point{X: [2]float64{eg.X[i], eg.Y[j]}}
		}
	}
	return
}

func (eg *EvaluationGrid) Len() int { return len(eg.points) }

func (eg *EvaluationGrid) Index(i, j int) int { return i + j*eg.N }

func (eg *EvaluationGrid) Point(k int) Point { return eg.points[k] }

// Points returns the lattice points, callers must not modify them
func (eg *EvaluationGrid) Points() []Point { return eg.points }

// Spacing is the node spacing, zero for a single node grid
func (eg *EvaluationGrid) Spacing() float64 {
	if eg.N < 2 {
		return 0
	}
	return 2 * eg.L / float64(eg.N-1)
}

func (eg *EvaluationGrid) BoundingBox() *BoundingBox {
	return &BoundingBox{
		XMin: [2]float64{-eg.L, -eg.L},
		XMax: [2]float64{eg.L, eg.L},
	}
}

// XY32 packs the lattice as interleaved float32 x,y pairs for plotting
func (eg *EvaluationGrid) XY32() (xy []float32) {
	xy = make([]float32, 2*len(eg.points))
	for k, pt := range eg.points {
		xy[2*k], xy[2*k+1] = float32(pt.X[0]), float32(pt.X[1])
	}
	return
}
