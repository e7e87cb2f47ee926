// Package kernel runs square and cubic window sums over Morton grids, with
// row-major counterparts used as references in tests and benchmarks.
package kernel

import "zgrid/pkg/zarray"

// Integer is the set of cell types the kernels accept.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Window returns the number of cells in a 2D window of the given radius.
func Window(radius int) int {
	side := 2*radius + 1
	return side * side
}

// BoxSum2D sums the (2r+1)^2 window around every cell. Reads past the edge
// count as oob.
func BoxSum2D[T Integer](src *zarray.Grid2D[T], radius int, oob T) *zarray.Grid2D[int] {
	out := zarray.New2D(src.Width(), src.Height(), 0)
	out.Transform(func(x, y int, _ int) int {
		sum := 0
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				sum += int(src.BoundedGetOr(x+dx, y+dy, oob))
			}
		}
		return sum
	})
	return out
}

// BoxBlur2D averages the window around every cell, treating cells past the
// edge as zero.
func BoxBlur2D[T Integer](src *zarray.Grid2D[T], radius int) *zarray.Grid2D[T] {
	sums := BoxSum2D(src, radius, 0)
	area := Window(radius)
	out := zarray.New2D(src.Width(), src.Height(), T(0))
	out.Transform(func(x, y int, _ T) T {
		return T(sums.GetUnchecked(x, y) / area)
	})
	return out
}

// BoxSum3D sums the (2r+1)^3 window around every cell.
func BoxSum3D[T Integer](src *zarray.Grid3D[T], radius int, oob T) *zarray.Grid3D[int] {
	w, h, d := src.Dimensions()
	out := zarray.New3D(w, h, d, 0)
	out.Transform(func(x, y, z int, _ int) int {
		sum := 0
		for dz := -radius; dz <= radius; dz++ {
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					sum += int(src.BoundedGetOr(x+dx, y+dy, z+dz, oob))
				}
			}
		}
		return sum
	})
	return out
}
