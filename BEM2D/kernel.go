package BEM2D

import (
	"math"

	"github.com/notargets/gobem/geometry2D"
)

// DefaultEpsilon is the separation below which kernel evaluations snap to zero
const DefaultEpsilon = 1.e-8

/*
Kernel evaluates the fundamental solution of the 2D Laplace operator

	G(q,s)      = -(1/2Pi) ln|q-s|
	dG/dn(q,s)  = [(q-s).n] / (2Pi |q-s|^2)

where the derivative is taken with respect to the source point s along the
unit normal n at s. Both are set to zero when |q-s| < Epsilon, which
under-weights self interaction terms instead of integrating them analytically.
*/
type Kernel struct {
	Epsilon float64
}

func NewKernel(epsO ...float64) Kernel {
	var (
		eps = DefaultEpsilon
	)
	if len(epsO) != 0 && epsO[0] > 0 {
		eps = epsO[0]
	}
	return Kernel{Epsilon: eps}
}

const oo2pi = 0.5 / math.Pi

// Regularized is true when q and s are close enough for the guard to apply
func (k Kernel) Regularized(q, s geometry2D.Point) bool {
	_, _, reg := k.evalPair(q.X[0], q.X[1], s.X[0], s.X[1], 0, 0)
	return reg
}

func (k Kernel) G(q, s geometry2D.Point) (g float64) {
	g, _, _ = k.evalPair(q.X[0], q.X[1], s.X[0], s.X[1], 0, 0)
	return
}

func (k Kernel) DGDn(q, s, n geometry2D.Point) (dgdn float64) {
	_, dgdn, _ = k.evalPair(q.X[0], q.X[1], s.X[0], s.X[1], n.X[0], n.X[1])
	return
}

// evalPair computes both kernels from one separation vector, reg reports whether
// the guard fired
func (k Kernel) evalPair(qx, qy, sx, sy, nx, ny float64) (g, dgdn float64, reg bool) {
	var (
		dx, dy = qx - sx, qy - sy
		r2     = dx*dx + dy*dy
	)
	if r2 < k.Epsilon*k.Epsilon {
		return 0, 0, true
	}
	g = -0.5 * oo2pi * math.Log(r2)
	dgdn = oo2pi * (dx*nx + dy*ny) / r2
	return
}
