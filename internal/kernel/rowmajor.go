package kernel

import "zgrid/pkg/zarray"

// RowMajor2D is a plain slice-backed grid.
type RowMajor2D[T any] struct {
	W, H int
	Data []T
}

// NewRowMajor2D allocates a w x h grid of zero values.
func NewRowMajor2D[T any](w, h int) *RowMajor2D[T] {
	w, h = max(w, 0), max(h, 0)
	return &RowMajor2D[T]{W: w, H: h, Data: make([]T, w*h)}
}

// RowMajorFrom2D copies a Morton grid into row-major order.
func RowMajorFrom2D[T any](g *zarray.Grid2D[T]) *RowMajor2D[T] {
	r := NewRowMajor2D[T](g.Width(), g.Height())
	for c, v := range g.All() {
		r.Data[c[1]*r.W+c[0]] = v
	}
	return r
}

// At returns the value at (x, y) and whether it lies inside the grid.
func (r *RowMajor2D[T]) At(x, y int) (T, bool) {
	if x < 0 || y < 0 || x >= r.W || y >= r.H {
		var zero T
		return zero, false
	}
	return r.Data[y*r.W+x], true
}

// RowMajor3D is the 3D counterpart of RowMajor2D, indexed (z*H+y)*W+x.
type RowMajor3D[T any] struct {
	W, H, D int
	Data    []T
}

// RowMajorFrom3D copies a Morton grid into row-major order.
func RowMajorFrom3D[T any](g *zarray.Grid3D[T]) *RowMajor3D[T] {
	w, h, d := g.Dimensions()
	r := &RowMajor3D[T]{W: w, H: h, D: d, Data: make([]T, w*h*d)}
	for c, v := range g.All() {
		r.Data[(c[2]*h+c[1])*w+c[0]] = v
	}
	return r
}

// BoxSumRowMajor2D is BoxSum2D over a row-major grid.
func BoxSumRowMajor2D[T Integer](src *RowMajor2D[T], radius int, oob T) []int {
	out := make([]int, len(src.Data))
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			sum := 0
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					v, ok := src.At(x+dx, y+dy)
					if !ok {
						v = oob
					}
					sum += int(v)
				}
			}
			out[y*src.W+x] = sum
		}
	}
	return out
}

// BoxSumRowMajor3D is BoxSum3D over a row-major grid.
func BoxSumRowMajor3D[T Integer](src *RowMajor3D[T], radius int, oob T) []int {
	out := make([]int, len(src.Data))
	w, h, d := src.W, src.H, src.D
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				sum := 0
				for dz := -radius; dz <= radius; dz++ {
					for dy := -radius; dy <= radius; dy++ {
						for dx := -radius; dx <= radius; dx++ {
							nx, ny, nz := x+dx, y+dy, z+dz
							if nx < 0 || ny < 0 || nz < 0 || nx >= w || ny >= h || nz >= d {
								sum += int(oob)
								continue
							}
							sum += int(src.Data[(nz*h+ny)*w+nx])
						}
					}
				}
				out[(z*h+y)*w+x] = sum
			}
		}
	}
	return out
}
