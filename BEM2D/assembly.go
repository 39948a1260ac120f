package BEM2D

import (
	"fmt"
	"sync"

	"github.com/notargets/gobem/geometry2D"
	"github.com/notargets/gobem/utils"
)

type Assembler struct {
	Segs       *geometry2D.Segments
	Points     []geometry2D.Point // Evaluation points, one matrix row each
	Kernel     Kernel
	Partitions *utils.PartitionMap
}

// NewAssembler fails on an empty point set or boundary, the matrices need at
// least one row and one column
func NewAssembler(segs *geometry2D.Segments, points []geometry2D.Point, kernel Kernel,
	ProcLimit int) (as *Assembler, err error) {
	if len(points) == 0 || segs == nil || segs.Len() == 0 {
		return nil, fmt.Errorf("%w: assembly needs evaluation points and boundary segments",
			utils.ErrInvalidConfiguration)
	}
	as = &Assembler{
		Segs:   segs,
		Points: points,
		Kernel: kernel,
	}
	as.Partitions = utils.NewPartitionMap(utils.GetParallelDegree(ProcLimit, len(points)), len(points))
	return
}

// KernelMatrices is the output of one assembly pass
type KernelMatrices struct {
	G, Hn utils.Matrix // [NPoints, M], row i is evaluation point i, column j is segment j
	H     []float64    // Segment arc lengths, the quadrature weights
	// Evaluation points within Epsilon of a segment midpoint, ascending
	Regularized []int
}

/*
Assemble fills G[i,j] = G(q_i, mid_j) and Hn[i,j] = dG/dn(q_i, mid_j; n_j). Rows
are partitioned into contiguous ranges, one goroutine per range, so every matrix
cell has exactly one writer.
*/
func (as *Assembler) Assemble() (km *KernelMatrices) {
	var (
		NPoints = len(as.Points)
		M       = as.Segs.Len()
		NP      = as.Partitions.ParallelDegree
		mx, my  = make([]float64, M), make([]float64, M)
		nx, ny  = make([]float64, M), make([]float64, M)
		regs    = make([][]int, NP)
		wg      = sync.WaitGroup{}
	)
	km = &KernelMatrices{
		G:  utils.NewMatrix(NPoints, M),
		Hn: utils.NewMatrix(NPoints, M),
		H:  as.Segs.Weights(),
	}
	for j, s := range as.Segs.Segs {
		mx[j], my[j] = s.Mid.X[0], s.Mid.X[1]
		nx[j], ny[j] = s.Normal.X[0], s.Normal.X[1]
	}
	gD, hD := km.G.MutableData(), km.Hn.MutableData()
	for np := 0; np < NP; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			kMin, kMax := as.Partitions.GetBucketRange(np)
			for i := kMin; i < kMax; i++ {
				var (
					qx, qy = as.Points[i].X[0], as.Points[i].X[1]
					row    = i * M
					hitReg bool
				)
				for j := 0; j < M; j++ {
					g, dgdn, reg := as.Kernel.evalPair(qx, qy, mx[j], my[j], nx[j], ny[j])
					gD[row+j], hD[row+j] = g, dgdn
					hitReg = hitReg || reg
				}
				if hitReg {
					regs[np] = append(regs[np], i)
				}
			}
		}(np)
	}
	wg.Wait()
	for np := 0; np < NP; np++ {
		km.Regularized = append(km.Regularized, regs[np]...)
	}
	km.G.SetReadOnly("G")
	km.Hn.SetReadOnly("Hn")
	return
}

func (km *KernelMatrices) Dims() (NPoints, M int) { return km.G.Dims() }

/*
Reconstruct evaluates the discrete Green's representation formula

	u[i] = sum_j G[i,j]*h[j]*dphi/dn[j] - sum_j Hn[i,j]*h[j]*phi[j]

which approximates the field inside the boundary and vanishes outside it.
*/
func (km *KernelMatrices) Reconstruct(bd *BoundaryData) (field []float64, err error) {
	var (
		_, M = km.Dims()
	)
	if bd.Len() != M || len(bd.DPhiDn) != M {
		return nil, fmt.Errorf("%w: boundary data has %d entries for %d segments",
			utils.ErrInvalidConfiguration, bd.Len(), M)
	}
	L, D := bd.LayerDensities(km.H)
	single := km.G.MulVec(L)
	double := km.Hn.MulVec(D)
	return single.Sub(double).Data(), nil
}
