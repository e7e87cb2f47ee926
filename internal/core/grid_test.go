package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteGridRasterIsRowMajor(t *testing.T) {
	g := NewByteGrid(11, 6)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			require.NoError(t, g.Cells().Set(x, y, uint8(y*g.W+x)))
		}
	}
	raster := g.Raster()
	require.Len(t, raster, 66)
	for i, v := range raster {
		assert.Equal(t, uint8(i), v)
	}
}

func TestByteGridWrap(t *testing.T) {
	g := NewByteGrid(5, 4)
	g.Put(-1, 4, 7)
	assert.Equal(t, uint8(7), g.At(4, 0))

	g.Put(-1, -1, 9)
	assert.Equal(t, uint8(9), g.At(4, 3))
	assert.Equal(t, uint8(9), g.At(9, 7))
}

func TestByteGridClampsSizeAndClears(t *testing.T) {
	g := NewByteGrid(0, -2)
	assert.Equal(t, 1, g.W)
	assert.Equal(t, 1, g.H)

	g = NewByteGrid(3, 3)
	g.Put(1, 1, 4)
	g.Clear()
	for _, v := range g.Cells().All() {
		assert.Zero(t, v)
	}
}

func TestSwap(t *testing.T) {
	a, b := NewByteGrid(2, 2), NewByteGrid(2, 2)
	a.Put(0, 0, 1)
	Swap(a, b)
	assert.Equal(t, uint8(0), a.At(0, 0))
	assert.Equal(t, uint8(1), b.At(0, 0))
}
