package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrix(t *testing.T) {
	// MulVec
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		v := M.MulVec([]float64{1, 0, -1})
		assert.Equal(t, []float64{-2, -2}, v.Data())
		assert.Panics(t, func() { M.MulVec([]float64{1, 2}) })
	}
	// Read only protection
	{
		M := NewMatrix(2, 2)
		data := M.MutableData()
		data[3] = 4
		assert.Equal(t, 4., M.At(1, 1))
		M.SetReadOnly("M")
		require.True(t, M.IsReadOnly())
		assert.Panics(t, func() { M.MutableData() })
		assert.Equal(t, []float64{0, 0, 0, 4}, M.Data())
	}
	// Allocation mismatch
	{
		assert.Panics(t, func() { NewMatrix(2, 2, []float64{1, 2, 3}) })
	}
}
