package zarray

import (
	"iter"

	"zgrid/pkg/morton"
)

// Grid2D is a fixed-size 2D grid stored as 8x8 Morton blocks.
type Grid2D[T any] struct {
	width, height   int
	pwidth, pheight int
	blocks          []block2[T]
}

// New2D allocates a w*h grid with every cell, padding included, set to fill.
func New2D[T any](w, h int, fill T) *Grid2D[T] {
	return build2D(w, h, func(int, int) T { return fill })
}

// NewDefault2D allocates a w*h grid of zero values.
func NewDefault2D[T any](w, h int) *Grid2D[T] {
	return build2D[T](w, h, nil)
}

// NewFunc2D allocates a w*h grid and fills it by calling fn for every slot of
// every block. fn also sees padding coordinates up to the next multiple of 8
// on each axis and must tolerate them.
func NewFunc2D[T any](w, h int, fn func(x, y int) T) *Grid2D[T] {
	return build2D(w, h, fn)
}

func build2D[T any](w, h int, fill func(x, y int) T) *Grid2D[T] {
	w, h = max(w, 0), max(h, 0)
	g := &Grid2D[T]{
		width:   w,
		height:  h,
		pwidth:  blocksFor(w),
		pheight: blocksFor(h),
	}
	g.blocks = make([]block2[T], g.pwidth*g.pheight)
	if fill == nil {
		return g
	}
	for b := range g.blocks {
		bx, by := g.origin(b)
		blk := &g.blocks[b]
		for i := range blk.cells {
			blk.cells[i] = fill(slot2(bx, by, i))
		}
	}
	return g
}

// origin returns the absolute coordinate of block b's first cell.
func (g *Grid2D[T]) origin(b int) (int, int) {
	return (b % g.pwidth) << blockShift, (b / g.pwidth) << blockShift
}

func (g *Grid2D[T]) block(x, y int) *block2[T] {
	return &g.blocks[(x>>blockShift)+(y>>blockShift)*g.pwidth]
}

func (g *Grid2D[T]) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

func (g *Grid2D[T]) lookupError(x, y int) error {
	return &LookupError{Coord: []int{x, y}, Bounds: []int{g.width, g.height}}
}

// Dimensions returns (width, height).
func (g *Grid2D[T]) Dimensions() (int, int) { return g.width, g.height }

// XSize returns the extent along X.
func (g *Grid2D[T]) XSize() int { return g.width }

// Width is an alias for XSize.
func (g *Grid2D[T]) Width() int { return g.XSize() }

// YSize returns the extent along Y.
func (g *Grid2D[T]) YSize() int { return g.height }

// Height is an alias for YSize.
func (g *Grid2D[T]) Height() int { return g.YSize() }

// Len returns the number of logical cells.
func (g *Grid2D[T]) Len() int { return g.width * g.height }

// Empty reports whether either axis has zero extent.
func (g *Grid2D[T]) Empty() bool { return g.width == 0 || g.height == 0 }

// BlockCount returns the number of 8x8 blocks backing the grid.
func (g *Grid2D[T]) BlockCount() int { return len(g.blocks) }

// Get returns the value at (x, y) or a *LookupError when out of range.
func (g *Grid2D[T]) Get(x, y int) (T, error) {
	if !g.inBounds(x, y) {
		var zero T
		return zero, g.lookupError(x, y)
	}
	return g.block(x, y).get(x, y), nil
}

// Set stores v at (x, y) or returns a *LookupError when out of range.
func (g *Grid2D[T]) Set(x, y int, v T) error {
	if !g.inBounds(x, y) {
		return g.lookupError(x, y)
	}
	g.block(x, y).set(x, y, v)
	return nil
}

// GetUnchecked reads (x, y) without validation.
func (g *Grid2D[T]) GetUnchecked(x, y int) T {
	return g.block(x, y).get(x, y)
}

// SetUnchecked writes (x, y) without validation.
func (g *Grid2D[T]) SetUnchecked(x, y int, v T) {
	g.block(x, y).set(x, y, v)
}

// WrappedGet reads (x, y) with both axes tiled around the logical extent.
// An empty grid yields the zero value.
func (g *Grid2D[T]) WrappedGet(x, y int) T {
	if g.Empty() {
		var zero T
		return zero
	}
	x, y = wrap(x, g.width), wrap(y, g.height)
	return g.block(x, y).get(x, y)
}

// WrappedSet writes (x, y) with both axes tiled around the logical extent.
// It does nothing on an empty grid.
func (g *Grid2D[T]) WrappedSet(x, y int, v T) {
	if g.Empty() {
		return
	}
	x, y = wrap(x, g.width), wrap(y, g.height)
	g.block(x, y).set(x, y, v)
}

// BoundedGet returns the value at (x, y) and true, or false when out of range.
func (g *Grid2D[T]) BoundedGet(x, y int) (T, bool) {
	if !g.inBounds(x, y) {
		var zero T
		return zero, false
	}
	return g.block(x, y).get(x, y), true
}

// BoundedGetOr returns the value at (x, y), or def when out of range.
func (g *Grid2D[T]) BoundedGetOr(x, y int, def T) T {
	if v, ok := g.BoundedGet(x, y); ok {
		return v
	}
	return def
}

// BoundedSet writes (x, y) when in range and reports whether it did.
func (g *Grid2D[T]) BoundedSet(x, y int, v T) bool {
	if !g.inBounds(x, y) {
		return false
	}
	g.block(x, y).set(x, y, v)
	return true
}

// Fill sets every cell of [x1,x2) x [y1,y2) to v, rows outermost. It stops
// at the first out-of-range cell and returns its error; cells written before
// that point keep the new value.
func (g *Grid2D[T]) Fill(x1, y1, x2, y2 int, v T) error {
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			if err := g.Set(x, y, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// WrappedFill is Fill with wrapped coordinates.
func (g *Grid2D[T]) WrappedFill(x1, y1, x2, y2 int, v T) {
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			g.WrappedSet(x, y, v)
		}
	}
}

// BoundedFill is Fill that skips out-of-range cells.
func (g *Grid2D[T]) BoundedFill(x1, y1, x2, y2 int, v T) {
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			g.BoundedSet(x, y, v)
		}
	}
}

// Transform replaces every logical cell with fn(x, y, old), visiting cells
// in storage order. Padding is left untouched.
func (g *Grid2D[T]) Transform(fn func(x, y int, old T) T) {
	for b := range g.blocks {
		bx, by := g.origin(b)
		blk := &g.blocks[b]
		for i := range blk.cells {
			x, y := slot2(bx, by, i)
			if x < g.width && y < g.height {
				blk.cells[i] = fn(x, y, blk.cells[i])
			}
		}
	}
}

// Coords lists every logical coordinate in storage order.
func (g *Grid2D[T]) Coords() [][2]int {
	out := make([][2]int, 0, g.Len())
	for b := range g.blocks {
		bx, by := g.origin(b)
		for i := 0; i < morton.BlockSlots2; i++ {
			x, y := slot2(bx, by, i)
			if x < g.width && y < g.height {
				out = append(out, [2]int{x, y})
			}
		}
	}
	return out
}

// Iter returns a fresh iterator over all logical cells in storage order.
func (g *Grid2D[T]) Iter() *Iterator2D[T] {
	return newIterator2D(g)
}

// All adapts Iter for range-over-func loops.
func (g *Grid2D[T]) All() iter.Seq2[[2]int, T] {
	return func(yield func([2]int, T) bool) {
		it := g.Iter()
		for item, ok := it.Next(); ok; item, ok = it.Next() {
			if !yield([2]int{item.X, item.Y}, item.Value) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid2D[T]) Clone() *Grid2D[T] {
	c := *g
	c.blocks = make([]block2[T], len(g.blocks))
	copy(c.blocks, g.blocks)
	return &c
}

// Equal2D reports whether a and b have the same extents and logical cells.
// Padding is not compared.
func Equal2D[T comparable](a, b *Grid2D[T]) bool {
	if a.width != b.width || a.height != b.height {
		return false
	}
	for b2 := range a.blocks {
		bx, by := a.origin(b2)
		for i := range a.blocks[b2].cells {
			x, y := slot2(bx, by, i)
			if x < a.width && y < a.height && a.blocks[b2].cells[i] != b.blocks[b2].cells[i] {
				return false
			}
		}
	}
	return true
}
