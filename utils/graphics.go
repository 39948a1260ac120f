package utils

import (
	"image/color"
	"time"

	"github.com/notargets/avs/chart2d"
	"github.com/notargets/avs/geometry"
	utils2 "github.com/notargets/avs/utils"
	"gonum.org/v1/gonum/floats"
)

type ColorName uint8

const (
	White ColorName = iota
	Blue
	Red
	Green
	Black
)

func GetColor(name ColorName) (c color.RGBA) {
	switch name {
	case White:
		c = utils2.WHITE
	case Blue:
		c = color.RGBA{R: 50, G: 0, B: 255, A: 255}
	case Red:
		c = utils2.RED
	case Green:
		c = color.RGBA{R: 25, G: 255, B: 25, A: 255}
	case Black:
		c = utils2.BLACK
	}
	return
}

func SleepFor(milliseconds int) {
	time.Sleep(time.Duration(milliseconds) * time.Millisecond)
}

// LineSet collects line segments as x1,y1,x2,y2 runs keyed by color
type LineSet map[color.RGBA][]float32

func (ls LineSet) AddLine(x1, y1, x2, y2 float64, col color.RGBA) {
	ls[col] = append(ls[col],
		float32(x1), float32(y1),
		float32(x2), float32(y2),
	)
}

func (ls LineSet) AddCrossHairs(x, y []float64, size float64, col color.RGBA) {
	for i := range x {
		ls.AddLine(x[i]-size, y[i], x[i]+size, y[i], col)
		ls.AddLine(x[i], y[i]-size, x[i], y[i]+size, col)
	}
}

func NewChart(xMin, xMax, yMin, yMax float32) (ch *chart2d.Chart2D) {
	xMin, xMax, yMin, yMax = GetSquareBoundingBox(xMin, xMax, yMin, yMax)
	ch = chart2d.NewChart2D(xMin, xMax, yMin, yMax,
		1024, 1024, utils2.WHITE, utils2.BLACK)
	return
}

func PlotLines(ch *chart2d.Chart2D, ls LineSet) {
	for col, line := range ls {
		ch.AddLine(line, col)
	}
}

// StructuredTriMesh splits each cell of an nx by ny lattice into two
// triangles. xy holds x,y pairs with the x index varying fastest.
func StructuredTriMesh(nx, ny int, xy []float32) (gm geometry.TriMesh) {
	var (
		nCells = (nx - 1) * (ny - 1)
	)
	if nCells < 0 {
		nCells = 0
	}
	gm = geometry.TriMesh{
		XY:       xy,
		TriVerts: make([][3]int64, 0, 2*nCells),
	}
	for j := 0; j < ny-1; j++ {
		for i := 0; i < nx-1; i++ {
			var (
				v00 = int64(i + j*nx)
				v10 = v00 + 1
				v01 = v00 + int64(nx)
				v11 = v01 + 1
			)
			gm.TriVerts = append(gm.TriVerts,
				[3]int64{v00, v10, v11},
				[3]int64{v00, v11, v01},
			)
		}
	}
	return
}

func PlotShadedField(ch *chart2d.Chart2D, gm geometry.TriMesh, field []float64,
	fMin, fMax float64) {
	var (
		pField = make([]float32, len(field))
	)
	for i, f := range field {
		pField[i] = float32(f)
	}
	if fMin == 0 && fMax == 0 {
		fMin, fMax = GetFieldMinMax(field)
	}
	vs := geometry.VertexScalar{
		TMesh:       &gm,
		FieldValues: pField,
	}
	ch.AddShadedVertexScalar(&vs, float32(fMin), float32(fMax))
}

// GetFieldMinMax is the value range of field, zero for an empty field
func GetFieldMinMax(field []float64) (fMin, fMax float64) {
	if len(field) == 0 {
		return
	}
	return floats.Min(field), floats.Max(field)
}

func GetSquareBoundingBox(xMin, xMax, yMin, yMax float32) (xBMin,
	xBMax, yBMin, yBMax float32) {
	xRange := xMax - xMin
	yRange := yMax - yMin
	if yRange > xRange {
		yBMin = yMin
		yBMax = yMax
		xCent := xRange/2. + xMin
		xBMin = xCent - yRange/2.
		xBMax = xCent + yRange/2.
	} else {
		xBMin = xMin
		xBMax = xMax
		yCent := yRange/2. + yMin
		yBMin = yCent - xRange/2.
		yBMax = yCent + xRange/2.
	}
	return
}
