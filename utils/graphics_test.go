package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraphicsSupport(t *testing.T) {
	{ // Two triangles per lattice cell, counterclockwise
		xy := []float32{0, 0, 1, 0, 2, 0, 0, 1, 1, 1, 2, 1}
		gm := StructuredTriMesh(3, 2, xy)
		assert.Equal(t, 4, len(gm.TriVerts))
		assert.Equal(t, [3]int64{0, 1, 4}, gm.TriVerts[0])
		assert.Equal(t, [3]int64{0, 4, 3}, gm.TriVerts[1])
		assert.Equal(t, [3]int64{1, 2, 5}, gm.TriVerts[2])
		for _, tri := range gm.TriVerts {
			var area float32
			for n := 0; n < 3; n++ {
				a, b := tri[n], tri[(n+1)%3]
				area += xy[2*a]*xy[2*b+1] - xy[2*b]*xy[2*a+1]
			}
			assert.Greater(t, area, float32(0))
		}
		assert.Empty(t, StructuredTriMesh(1, 1, xy[:2]).TriVerts)
	}
	{
		ls := make(LineSet)
		ls.AddLine(0, 0, 1, 1, GetColor(Red))
		ls.AddCrossHairs([]float64{2}, []float64{3}, 0.5, GetColor(Blue))
		assert.Equal(t, []float32{0, 0, 1, 1}, ls[GetColor(Red)])
		assert.Equal(t, []float32{1.5, 3, 2.5, 3, 2, 2.5, 2, 3.5}, ls[GetColor(Blue)])
	}
	{
		xMin, xMax, yMin, yMax := GetSquareBoundingBox(-1, 3, 0, 1)
		assert.Equal(t, [4]float32{-1, 3, -1.5, 2.5}, [4]float32{xMin, xMax, yMin, yMax})
		xMin, xMax, yMin, yMax = GetSquareBoundingBox(0, 1, -2, 2)
		assert.Equal(t, [4]float32{-1.5, 2.5, -2, 2}, [4]float32{xMin, xMax, yMin, yMax})
		fMin, fMax := GetFieldMinMax([]float64{3, -1, 7, 2})
		assert.Equal(t, -1., fMin)
		assert.Equal(t, 7., fMax)
		fMin, fMax = GetFieldMinMax(nil)
		assert.Equal(t, [2]float64{0, 0}, [2]float64{fMin, fMax})
	}
}
