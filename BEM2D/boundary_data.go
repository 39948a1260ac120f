package BEM2D

import (
	"github.com/notargets/gobem/geometry2D"
	"github.com/notargets/gobem/utils"
)

// FieldOracle supplies a known harmonic function and its gradient, used to
// manufacture boundary data
type FieldOracle interface {
	Evaluate(x, y float64) float64
	Gradient(x, y float64) (dudx, dudy float64)
}

// BoundaryData holds phi and dphi/dn at each segment midpoint
type BoundaryData struct {
	Phi, DPhiDn []float64
}

// SampleBoundaryData evaluates the oracle at every segment midpoint and projects
// its gradient onto the segment's outward normal
func SampleBoundaryData(segs *geometry2D.Segments, oracle FieldOracle) (bd *BoundaryData) {
	var (
		M = segs.Len()
	)
	bd = &BoundaryData{
		Phi:    make([]float64, M),
		DPhiDn: make([]float64, M),
	}
	for j, s := range segs.Segs {
		x, y := s.Mid.X[0], s.Mid.X[1]
		bd.Phi[j] = oracle.Evaluate(x, y)
		dudx, dudy := oracle.Gradient(x, y)
		bd.DPhiDn[j] = dudx*s.Normal.X[0] + dudy*s.Normal.X[1]
	}
	return
}

func (bd *BoundaryData) Len() int { return len(bd.Phi) }

// LayerDensities forms the midpoint rule weighted densities
//
//	L[j] = h[j]*dphi/dn[j]   (single layer)
//	D[j] = h[j]*phi[j]       (double layer)
func (bd *BoundaryData) LayerDensities(h []float64) (L, D []float64) {
	var (
		M = len(h)
	)
	L = utils.NewVector(M, bd.DPhiDn).Copy().ElMul(h).Data()
	D = utils.NewVector(M, bd.Phi).Copy().ElMul(h).Data()
	return
}
