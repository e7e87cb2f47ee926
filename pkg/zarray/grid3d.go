package zarray

import (
	"iter"

	"zgrid/pkg/morton"
)

// Grid3D is a fixed-size 3D grid stored as 8x8x8 Morton blocks. Blocks are
// laid out x fastest, then y, then z.
type Grid3D[T any] struct {
	xsize, ysize, zsize    int
	pxsize, pysize, pzsize int
	blocks                 []block3[T]
}

// New3D allocates an x*y*z grid with every cell, padding included, set to fill.
func New3D[T any](xsize, ysize, zsize int, fill T) *Grid3D[T] {
	return build3D(xsize, ysize, zsize, func(int, int, int) T { return fill })
}

// NewDefault3D allocates an x*y*z grid of zero values.
func NewDefault3D[T any](xsize, ysize, zsize int) *Grid3D[T] {
	return build3D[T](xsize, ysize, zsize, nil)
}

// NewFunc3D allocates an x*y*z grid and fills it by calling fn for every slot
// of every block, padding coordinates included.
func NewFunc3D[T any](xsize, ysize, zsize int, fn func(x, y, z int) T) *Grid3D[T] {
	return build3D(xsize, ysize, zsize, fn)
}

func build3D[T any](xsize, ysize, zsize int, fill func(x, y, z int) T) *Grid3D[T] {
	xsize, ysize, zsize = max(xsize, 0), max(ysize, 0), max(zsize, 0)
	g := &Grid3D[T]{
		xsize:  xsize,
		ysize:  ysize,
		zsize:  zsize,
		pxsize: blocksFor(xsize),
		pysize: blocksFor(ysize),
		pzsize: blocksFor(zsize),
	}
	g.blocks = make([]block3[T], g.pxsize*g.pysize*g.pzsize)
	if fill == nil {
		return g
	}
	for b := range g.blocks {
		bx, by, bz := g.origin(b)
		blk := &g.blocks[b]
		for i := range blk.cells {
			blk.cells[i] = fill(slot3(bx, by, bz, i))
		}
	}
	return g
}

func (g *Grid3D[T]) origin(b int) (int, int, int) {
	bx := (b % g.pxsize) << blockShift
	by := ((b / g.pxsize) % g.pysize) << blockShift
	bz := (b / (g.pxsize * g.pysize)) << blockShift
	return bx, by, bz
}

func (g *Grid3D[T]) block(x, y, z int) *block3[T] {
	return &g.blocks[(x>>blockShift)+g.pxsize*((y>>blockShift)+g.pysize*(z>>blockShift))]
}

func (g *Grid3D[T]) inBounds(x, y, z int) bool {
	return x >= 0 && y >= 0 && z >= 0 && x < g.xsize && y < g.ysize && z < g.zsize
}

func (g *Grid3D[T]) contains(x, y, z int) bool {
	return x < g.xsize && y < g.ysize && z < g.zsize
}

func (g *Grid3D[T]) lookupError(x, y, z int) error {
	return &LookupError{Coord: []int{x, y, z}, Bounds: []int{g.xsize, g.ysize, g.zsize}}
}

// Dimensions returns (xsize, ysize, zsize).
func (g *Grid3D[T]) Dimensions() (int, int, int) { return g.xsize, g.ysize, g.zsize }

// XSize returns the extent along X.
func (g *Grid3D[T]) XSize() int { return g.xsize }

// Width is an alias for XSize.
func (g *Grid3D[T]) Width() int { return g.XSize() }

// YSize returns the extent along Y.
func (g *Grid3D[T]) YSize() int { return g.ysize }

// Height is an alias for YSize.
func (g *Grid3D[T]) Height() int { return g.YSize() }

// ZSize returns the extent along Z.
func (g *Grid3D[T]) ZSize() int { return g.zsize }

// Depth is an alias for ZSize.
func (g *Grid3D[T]) Depth() int { return g.ZSize() }

// Len returns the number of logical cells.
func (g *Grid3D[T]) Len() int { return g.xsize * g.ysize * g.zsize }

// Empty reports whether any axis has zero extent.
func (g *Grid3D[T]) Empty() bool { return g.xsize == 0 || g.ysize == 0 || g.zsize == 0 }

// BlockCount returns the number of 8x8x8 blocks backing the grid.
func (g *Grid3D[T]) BlockCount() int { return len(g.blocks) }

// Get returns the value at (x, y, z) or a *LookupError when out of range.
func (g *Grid3D[T]) Get(x, y, z int) (T, error) {
	if !g.inBounds(x, y, z) {
		var zero T
		return zero, g.lookupError(x, y, z)
	}
	return g.block(x, y, z).get(x, y, z), nil
}

// Set stores v at (x, y, z) or returns a *LookupError when out of range.
func (g *Grid3D[T]) Set(x, y, z int, v T) error {
	if !g.inBounds(x, y, z) {
		return g.lookupError(x, y, z)
	}
	g.block(x, y, z).set(x, y, z, v)
	return nil
}

// GetUnchecked reads (x, y, z) without validation.
func (g *Grid3D[T]) GetUnchecked(x, y, z int) T {
	return g.block(x, y, z).get(x, y, z)
}

// SetUnchecked writes (x, y, z) without validation.
func (g *Grid3D[T]) SetUnchecked(x, y, z int, v T) {
	g.block(x, y, z).set(x, y, z, v)
}

// WrappedGet reads (x, y, z) with every axis tiled around the logical extent.
func (g *Grid3D[T]) WrappedGet(x, y, z int) T {
	if g.Empty() {
		var zero T
		return zero
	}
	x, y, z = wrap(x, g.xsize), wrap(y, g.ysize), wrap(z, g.zsize)
	return g.block(x, y, z).get(x, y, z)
}

// WrappedSet writes (x, y, z) with every axis tiled around the logical extent.
func (g *Grid3D[T]) WrappedSet(x, y, z int, v T) {
	if g.Empty() {
		return
	}
	x, y, z = wrap(x, g.xsize), wrap(y, g.ysize), wrap(z, g.zsize)
	g.block(x, y, z).set(x, y, z, v)
}

// BoundedGet returns the value at (x, y, z) and true, or false when out of range.
func (g *Grid3D[T]) BoundedGet(x, y, z int) (T, bool) {
	if !g.inBounds(x, y, z) {
		var zero T
		return zero, false
	}
	return g.block(x, y, z).get(x, y, z), true
}

// BoundedGetOr returns the value at (x, y, z), or def when out of range.
func (g *Grid3D[T]) BoundedGetOr(x, y, z int, def T) T {
	if v, ok := g.BoundedGet(x, y, z); ok {
		return v
	}
	return def
}

// BoundedSet writes (x, y, z) when in range and reports whether it did.
func (g *Grid3D[T]) BoundedSet(x, y, z int, v T) bool {
	if !g.inBounds(x, y, z) {
		return false
	}
	g.block(x, y, z).set(x, y, z, v)
	return true
}

// Fill sets every cell of the box [x1,x2) x [y1,y2) x [z1,z2) to v. The walk
// is y outermost, then x, then z. It stops at the first out-of-range cell;
// earlier writes are kept.
func (g *Grid3D[T]) Fill(x1, y1, z1, x2, y2, z2 int, v T) error {
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			for z := z1; z < z2; z++ {
				if err := g.Set(x, y, z, v); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// WrappedFill is Fill with wrapped coordinates.
func (g *Grid3D[T]) WrappedFill(x1, y1, z1, x2, y2, z2 int, v T) {
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			for z := z1; z < z2; z++ {
				g.WrappedSet(x, y, z, v)
			}
		}
	}
}

// BoundedFill is Fill that skips out-of-range cells.
func (g *Grid3D[T]) BoundedFill(x1, y1, z1, x2, y2, z2 int, v T) {
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			for z := z1; z < z2; z++ {
				g.BoundedSet(x, y, z, v)
			}
		}
	}
}

// Transform replaces every logical cell with fn(x, y, z, old) in storage
// order. Padding is left untouched.
func (g *Grid3D[T]) Transform(fn func(x, y, z int, old T) T) {
	for b := range g.blocks {
		bx, by, bz := g.origin(b)
		blk := &g.blocks[b]
		for i := range blk.cells {
			x, y, z := slot3(bx, by, bz, i)
			if g.contains(x, y, z) {
				blk.cells[i] = fn(x, y, z, blk.cells[i])
			}
		}
	}
}

// Coords lists every logical coordinate in storage order.
func (g *Grid3D[T]) Coords() [][3]int {
	out := make([][3]int, 0, g.Len())
	for b := range g.blocks {
		bx, by, bz := g.origin(b)
		for i := 0; i < morton.BlockSlots3; i++ {
			x, y, z := slot3(bx, by, bz, i)
			if g.contains(x, y, z) {
				out = append(out, [3]int{x, y, z})
			}
		}
	}
	return out
}

// Iter returns a fresh iterator over all logical cells in storage order.
func (g *Grid3D[T]) Iter() *Iterator3D[T] {
	return newIterator3D(g)
}

// All adapts Iter for range-over-func loops.
func (g *Grid3D[T]) All() iter.Seq2[[3]int, T] {
	return func(yield func([3]int, T) bool) {
		it := g.Iter()
		for item, ok := it.Next(); ok; item, ok = it.Next() {
			if !yield([3]int{item.X, item.Y, item.Z}, item.Value) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid3D[T]) Clone() *Grid3D[T] {
	c := *g
	c.blocks = make([]block3[T], len(g.blocks))
	copy(c.blocks, g.blocks)
	return &c
}

// Equal3D reports whether a and b have the same extents and logical cells.
func Equal3D[T comparable](a, b *Grid3D[T]) bool {
	if a.xsize != b.xsize || a.ysize != b.ysize || a.zsize != b.zsize {
		return false
	}
	for bi := range a.blocks {
		bx, by, bz := a.origin(bi)
		for i := range a.blocks[bi].cells {
			x, y, z := slot3(bx, by, bz, i)
			if a.contains(x, y, z) && a.blocks[bi].cells[i] != b.blocks[bi].cells[i] {
				return false
			}
		}
	}
	return true
}
