package Laplace2D

import (
	"time"

	"github.com/notargets/avs/assets"
	utils2 "github.com/notargets/avs/utils"

	"github.com/notargets/gobem/utils"
)

type PlotMeta struct {
	Plot        bool
	ShowNormals bool
	Exact       bool          // Shade the oracle field instead of the reconstruction
	Hold        time.Duration // Window lifetime after drawing, zero holds forever
}

// BoundaryLines draws the boundary polygon and, optionally, the outward normals
// at each midpoint scaled to a fraction of the local segment length
func (c *Laplace2D) BoundaryLines(showNormals bool) (ls utils.LineSet) {
	ls = make(utils.LineSet)
	for _, s := range c.Segs.Segs {
		ls.AddLine(s.P0.X[0], s.P0.X[1], s.P1.X[0], s.P1.X[1], utils.GetColor(utils.Black))
		if showNormals {
			tip := s.Mid.Plus(s.Normal.Scale(0.5 * s.H))
			ls.AddLine(s.Mid.X[0], s.Mid.X[1], tip.X[0], tip.X[1], utils.GetColor(utils.Red))
		}
	}
	if showNormals {
		x, y := c.Boundary.XY()
		ls.AddCrossHairs(x, y, 0.1*c.Segs.MinSegmentLength(), utils.GetColor(utils.Blue))
	}
	return
}

func (c *Laplace2D) Plot(sol *Solution, pm *PlotMeta) {
	if pm == nil || !pm.Plot {
		return
	}
	var (
		L     = float32(c.Grid.L)
		field = sol.Field
	)
	if pm.Exact {
		field = sol.Exact
	}
	ch := utils.NewChart(-L, L, -L, L)
	gm := utils.StructuredTriMesh(c.Grid.N, c.Grid.N, c.Grid.XY32())
	fMin, fMax := utils.GetFieldMinMax(sol.Exact)
	utils.PlotShadedField(ch, gm, field, fMin, fMax)
	utils.PlotLines(ch, c.BoundaryLines(pm.ShowNormals))
	tf := assets.NewTextFormatter("NotoSans", "Regular", 24, utils2.BLACK, true, false)
	ch.Printf(tf, -0.95*L, 0.9*L, "%s, M = %d, RMS error = %8.2e",
		c.IP.Title, c.Segs.Len(), sol.InteriorRMSError)
	hold(pm.Hold)
}

func hold(d time.Duration) {
	if d <= 0 {
		for {
			utils.SleepFor(1000)
		}
	}
	utils.SleepFor(int(d.Milliseconds()))
}
