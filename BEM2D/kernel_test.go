package BEM2D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gobem/geometry2D"
)

func TestKernel(t *testing.T) {
	k := NewKernel()
	assert.Equal(t, DefaultEpsilon, k.Epsilon)
	assert.Equal(t, 1.e-6, NewKernel(1.e-6).Epsilon)
	assert.Equal(t, DefaultEpsilon, NewKernel(-1).Epsilon)
	{ // Coincident and near coincident pairs snap to zero
		q := geometry2D.NewPoint(0.3, -0.7)
		n := geometry2D.NewPoint(0, 1)
		assert.Equal(t, 0., k.G(q, q))
		assert.Equal(t, 0., k.DGDn(q, q, n))
		assert.True(t, k.Regularized(q, q))
		s := q.Plus(geometry2D.NewPoint(0.5e-8, 0))
		assert.Equal(t, 0., k.G(q, s))
		assert.True(t, k.Regularized(q, s))
		s = q.Plus(geometry2D.NewPoint(2.e-8, 0))
		assert.False(t, k.Regularized(q, s))
		assert.InDeltaf(t, -math.Log(2.e-8)/(2*math.Pi), k.G(q, s), 1.e-9, "just outside the guard")
	}
	{ // Sign and magnitude of the log kernel
		q, s := geometry2D.NewPoint(0, 0), geometry2D.NewPoint(0.5, 0)
		assert.True(t, k.G(q, s) > 0)
		assert.Equal(t, k.G(q, s), k.G(s, q))
		assert.InDelta(t, 0., k.G(q, geometry2D.NewPoint(0, 1)), 1.e-15)
		assert.InDelta(t, -1./(2*math.Pi), k.G(q, geometry2D.NewPoint(math.E, 0)), 1.e-15)
		assert.True(t, k.G(q, geometry2D.NewPoint(3, 4)) < 0)
	}
	{ // Normal derivative
		q, s := geometry2D.NewPoint(1, 0), geometry2D.NewPoint(0, 0)
		n := geometry2D.NewPoint(1, 0)
		assert.InDelta(t, 1./(2*math.Pi), k.DGDn(q, s, n), 1.e-15)
		assert.Equal(t, -k.DGDn(q, s, n), k.DGDn(q, s, n.Scale(-1)))
		// Tangential normal gives no flux
		assert.Equal(t, 0., k.DGDn(q, s, geometry2D.NewPoint(0, 1)))
		q2 := geometry2D.NewPoint(2.5, -1.25)
		n2, _ := geometry2D.NewPoint(0.6, 0.8).Normalize(1.e-12)
		assert.InDeltaf(t, -k.DGDn(q2, s, n2), k.DGDn(q2, s, n2.Scale(-1)), 1.e-15, "antisymmetry")
	}
}
