package Laplace2D

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gobem/BEM2D"
	"github.com/notargets/gobem/InputParameters"
	"github.com/notargets/gobem/geometry2D"
	"github.com/notargets/gobem/types"
	"github.com/notargets/gobem/utils"
)

// Laplace2D reconstructs a harmonic field inside a closed curve from boundary
// data manufactured by an oracle
type Laplace2D struct {
	IP             *InputParameters.InputParametersBEM
	Curve          geometry2D.Curve
	Boundary       *geometry2D.BoundarySample
	Segs           *geometry2D.Segments
	Grid           *geometry2D.EvaluationGrid
	Kernel         BEM2D.Kernel
	Oracle         BEM2D.FieldOracle
	ParallelDegree int
	logger         *zap.Logger
}

type Solution struct {
	Field []float64 // Reconstructed value at every grid node
	// Oracle value inside the boundary, zero outside where the representation
	// formula vanishes
	Exact  []float64
	Inside []bool // Grid node lies inside the boundary polygon
	// Grid node is at least one grid spacing from the boundary, only these
	// enter the error norms
	Measured             []bool
	NInterior, NExterior int // Measured node counts
	InteriorMaxError     float64
	InteriorRMSError     float64
	ExteriorMaxMagnitude float64
	Regularized          []int
}

/*
NewLaplace2D validates the parameters and builds the geometry. Nothing of
O(N^2 M) cost happens here, so bad input fails before any assembly.
*/
func NewLaplace2D(ip *InputParameters.InputParametersBEM, logger *zap.Logger) (c *Laplace2D, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err = ip.Validate(); err != nil {
		return
	}
	c = &Laplace2D{
		IP:             ip,
		Kernel:         BEM2D.NewKernel(ip.Epsilon),
		ParallelDegree: ip.ParallelDegree,
		logger:         logger,
	}
	if c.Curve, err = NewCurve(ip); err != nil {
		return nil, err
	}
	if c.Boundary, err = geometry2D.SampleCurve(c.Curve, ip.NBoundary); err != nil {
		return nil, err
	}
	ot, err := types.NewOrientationType(ip.Orientation)
	if err != nil {
		return nil, err
	}
	if c.Segs, err = geometry2D.NewSegments(c.Boundary, NewOrientation(ot)); err != nil {
		return nil, err
	}
	if err = c.Segs.CheckOrthogonality(1.e-6); err != nil {
		return nil, err
	}
	if c.Grid, err = geometry2D.NewEvaluationGrid(ip.GridHalfWidth, ip.NGrid); err != nil {
		return nil, err
	}
	if c.Oracle, err = NewOracle(ip); err != nil {
		return nil, err
	}
	if sh, ok := c.Oracle.(SourceHarmonic); ok {
		src := geometry2D.NewPoint(sh.X0, sh.Y0)
		if c.Segs.Contains(src) || c.Segs.DistanceToBoundary(src) < c.Segs.MinSegmentLength() {
			return nil, fmt.Errorf("%w: source point %v must lie outside the boundary",
				utils.ErrInvalidConfiguration, src)
		}
	}
	if !c.Grid.BoundingBox().Covers(c.Boundary.BoundingBox()) {
		c.logger.Warn("evaluation grid does not cover the boundary",
			zap.Float64("gridHalfWidth", c.Grid.L))
	}
	c.logger.Debug("geometry ready",
		zap.String("curve", fmt.Sprintf("%T", c.Curve)),
		zap.Int("M", c.Segs.Len()),
		zap.Stringer("orientation", c.Segs.Orientation),
		zap.Float64("perimeter", c.Segs.Perimeter()),
		zap.Float64("signedArea", c.Segs.SignedArea()),
		zap.Int("gridPoints", c.Grid.Len()),
	)
	return
}

func NewCurve(ip *InputParameters.InputParametersBEM) (curve geometry2D.Curve, err error) {
	var (
		ct types.CurveType
	)
	if ct, err = types.NewCurveType(ip.Curve); err != nil {
		return
	}
	switch ct {
	case types.CURVE_Star:
		return geometry2D.NewStarCurve(ip.A, ip.StarDelta, ip.StarLobes)
	default:
		return geometry2D.NewEllipse(ip.A, ip.B)
	}
}

func NewOrientation(ot types.OrientationType) geometry2D.Orientation {
	switch ot {
	case types.ORIENT_Radial:
		return geometry2D.RadialOrientation
	default:
		return geometry2D.SignedAreaOrientation
	}
}

// Solve assembles the kernel matrices, reconstructs the field on the grid and
// measures it against the oracle
func (c *Laplace2D) Solve() (sol *Solution, err error) {
	var (
		start  = time.Now()
		points = c.Grid.Points()
		as     *BEM2D.Assembler
	)
	if as, err = BEM2D.NewAssembler(c.Segs, points, c.Kernel, c.ParallelDegree); err != nil {
		return nil, err
	}
	bd := BEM2D.SampleBoundaryData(c.Segs, c.Oracle)
	km := as.Assemble()
	c.logger.Info("kernel matrices assembled",
		zap.Int("rows", len(points)),
		zap.Int("segments", c.Segs.Len()),
		zap.Int("parallelDegree", as.Partitions.ParallelDegree),
		zap.Duration("elapsed", time.Since(start)),
	)
	c.logger.Debug("memory after assembly", zap.String("usage", utils.GetMemUsage()))
	if len(km.Regularized) != 0 {
		c.logger.Warn("evaluation points within epsilon of a boundary midpoint, self terms dropped",
			zap.Int("count", len(km.Regularized)),
			zap.Float64("epsilon", c.Kernel.Epsilon),
		)
	}
	sol = &Solution{Regularized: km.Regularized}
	if sol.Field, err = km.Reconstruct(bd); err != nil {
		return nil, err
	}
	if !utils.IsFinite(sol.Field) {
		return nil, fmt.Errorf("reconstructed field is not finite")
	}
	c.measure(sol)
	c.logger.Info("field reconstructed",
		zap.Int("interiorPoints", sol.NInterior),
		zap.Float64("interiorMaxError", sol.InteriorMaxError),
		zap.Float64("interiorRMSError", sol.InteriorRMSError),
		zap.Int("exteriorPoints", sol.NExterior),
		zap.Float64("exteriorMaxMagnitude", sol.ExteriorMaxMagnitude),
		zap.Duration("elapsed", time.Since(start)),
	)
	return
}

func (c *Laplace2D) measure(sol *Solution) {
	var (
		NPoints  = c.Grid.Len()
		dist     = utils.NewVector(NPoints)
		errInt   = make([]float64, 0, NPoints)
		magExt   = make([]float64, 0, NPoints)
		oracleAt = c.Oracle.Evaluate
	)
	sol.Exact = make([]float64, NPoints)
	sol.Inside = make([]bool, NPoints)
	sol.Measured = make([]bool, NPoints)
	dd := dist.Data()
	for k, pt := range c.Grid.Points() {
		sol.Inside[k] = c.Segs.Contains(pt)
		if sol.Inside[k] {
			sol.Exact[k] = oracleAt(pt.X[0], pt.X[1])
		}
		dd[k] = c.Segs.DistanceToBoundary(pt)
	}
	for _, k := range dist.Find(utils.GreaterOrEqual, c.Grid.Spacing(), false) {
		sol.Measured[k] = true
		if sol.Inside[k] {
			errInt = append(errInt, math.Abs(sol.Field[k]-sol.Exact[k]))
		} else {
			magExt = append(magExt, math.Abs(sol.Field[k]))
		}
	}
	sol.NInterior, sol.NExterior = len(errInt), len(magExt)
	if sol.NInterior != 0 {
		sol.InteriorMaxError = floats.Max(errInt)
		sol.InteriorRMSError = floats.Norm(errInt, 2) / math.Sqrt(float64(sol.NInterior))
	}
	if sol.NExterior != 0 {
		sol.ExteriorMaxMagnitude = floats.Max(magExt)
	}
}
