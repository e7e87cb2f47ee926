package core

import "zgrid/pkg/zarray"

// ByteGrid stores a 2D grid of byte-sized cell values in Morton blocks and
// keeps a row-major raster for renderers.
type ByteGrid struct {
	W, H   int
	cells  *zarray.Grid2D[uint8]
	raster []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, cells: zarray.New2D(w, h, uint8(0)), raster: make([]uint8, w*h)}
}

// Cells exposes the block storage so callers can use every access family.
func (g *ByteGrid) Cells() *zarray.Grid2D[uint8] { return g.cells }

// At returns the value at (x, y) with toroidal wrapping.
func (g *ByteGrid) At(x, y int) uint8 { return g.cells.WrappedGet(x, y) }

// Put stores v at (x, y) with toroidal wrapping.
func (g *ByteGrid) Put(x, y int, v uint8) { g.cells.WrappedSet(x, y, v) }

// Raster copies the grid into a row-major buffer owned by g and returns it.
// The buffer is overwritten on the next call.
func (g *ByteGrid) Raster() []uint8 {
	it := g.cells.Iter()
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		g.raster[c.Y*g.W+c.X] = c.Value
	}
	return g.raster
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	g.cells.Transform(func(int, int, uint8) uint8 { return 0 })
}

// Swap exchanges the contents of two equally sized grids.
func Swap(a, b *ByteGrid) {
	a.cells, b.cells = b.cells, a.cells
}
