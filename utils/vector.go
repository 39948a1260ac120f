package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V *mat.VecDense
}

func NewVector(n int, dataO ...[]float64) Vector {
	if len(dataO) != 0 {
		if len(dataO[0]) != n {
			panic(fmt.Errorf("mismatch in allocation: NewVector n = %d, len(data[0]) = %d", n, len(dataO[0])))
		}
		return Vector{mat.NewVecDense(n, dataO[0])}
	}
	return Vector{mat.NewVecDense(n, make([]float64, n))}
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }
func (v Vector) Data() []float64          { return v.V.RawVector().Data }

// Chainable (extended) methods
func (v Vector) Copy() Vector {
	var (
		data = make([]float64, v.Len())
	)
	copy(data, v.Data())
	return NewVector(len(data), data)
}

func (v Vector) Sub(a Vector) Vector { v.V.SubVec(v.V, a.V); return v }

// ElMul multiplies element by element, in place
func (v Vector) ElMul(a []float64) Vector {
	var (
		data = v.Data()
	)
	if len(a) != len(data) {
		panic(fmt.Errorf("dimension mismatch: %d vs %d", len(data), len(a)))
	}
	for i := range data {
		data[i] *= a[i]
	}
	return v
}

// Find returns the indices whose values satisfy op against target
func (v Vector) Find(op EvalOp, target float64, abs bool) (I []int) {
	for i, val := range v.Data() {
		if abs && val < 0 {
			val = -val
		}
		if op.Compare(val, target) {
			I = append(I, i)
		}
	}
	return
}
