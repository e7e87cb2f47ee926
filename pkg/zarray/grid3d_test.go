package zarray_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zgrid/pkg/core"
	"zgrid/pkg/zarray"
)

func seed3D(w, h, d int) ([][][]uint8, *zarray.Grid3D[uint8]) {
	ref := make([][][]uint8, d)
	for z := range ref {
		ref[z] = make([][]uint8, h)
		for y := range ref[z] {
			ref[z][y] = make([]uint8, w)
		}
	}
	return ref, zarray.New3D(w, h, d, uint8(0))
}

func TestGrid3DGetSetMatchesReference(t *testing.T) {
	sizes := [][3]int{{79, 61, 23}, {5, 3, 4}, {8, 8, 8}, {16, 16, 16}, {1, 1, 9}}
	for _, s := range sizes {
		w, h, d := s[0], s[1], s[2]
		t.Run(fmt.Sprintf("%dx%dx%d", w, h, d), func(t *testing.T) {
			ref, g := seed3D(w, h, d)
			rng := core.NewRNG(20220331).Source()
			for z := 0; z < d; z++ {
				for y := 0; y < h; y++ {
					for x := 0; x < w; x++ {
						v := uint8(rng.UintN(256))
						ref[z][y][x] = v
						require.NoError(t, g.Set(x, y, z, v))
					}
				}
			}
			for z := 0; z < d; z++ {
				for y := 0; y < h; y++ {
					for x := 0; x < w; x++ {
						got, err := g.Get(x, y, z)
						require.NoError(t, err)
						require.Equal(t, ref[z][y][x], got, "cell (%d,%d,%d)", x, y, z)
					}
				}
			}
		})
	}
}

func TestGrid3DDimensions(t *testing.T) {
	g := zarray.New3D(11, 12, 13, 0)
	x, y, z := g.Dimensions()
	assert.Equal(t, [3]int{11, 12, 13}, [3]int{x, y, z})
	assert.Equal(t, 11, g.XSize())
	assert.Equal(t, 11, g.Width())
	assert.Equal(t, 12, g.YSize())
	assert.Equal(t, 12, g.Height())
	assert.Equal(t, 13, g.ZSize())
	assert.Equal(t, 13, g.Depth())
}

func TestGrid3DBlockCount(t *testing.T) {
	cases := []struct {
		x, y, z, want int
	}{
		{1, 1, 1, 1},
		{8, 8, 8, 1},
		{9, 8, 8, 2},
		{8, 9, 8, 2},
		{8, 8, 9, 2},
		{9, 9, 9, 8},
		{17, 1, 1, 3},
		{4, 0, 4, 0},
	}
	for _, tc := range cases {
		g := zarray.New3D(tc.x, tc.y, tc.z, uint8(0))
		assert.Equal(t, tc.want, g.BlockCount(), "blocks for %dx%dx%d", tc.x, tc.y, tc.z)
	}
}

func TestGrid3DLookupError(t *testing.T) {
	g := zarray.New3D(4, 5, 6, 0)
	_, err := g.Get(0, 0, 6)
	var lerr *zarray.LookupError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, []int{0, 0, 6}, lerr.Coord)
	assert.Equal(t, []int{4, 5, 6}, lerr.Bounds)
	assert.Equal(t, "could not access coordinate (0, 0, 6) because it is out of range for size (4, 5, 6)", err.Error())
	assert.ErrorIs(t, g.Set(0, -1, 0, 1), zarray.ErrOutOfBounds)
}

func TestGrid3DWrappedGetSet(t *testing.T) {
	const w, h, d = 10, 12, 14
	ref, g := seed3D(w, h, d)
	rng := core.NewRNG(20220331).Source()
	for z := -7; z < 7; z++ {
		for y := -6; y < 6; y++ {
			for x := -5; x < 5; x++ {
				v := uint8(rng.UintN(256))
				ref[(d+z%d)%d][(h+y%h)%h][(w+x%w)%w] = v
				g.WrappedSet(x, y, z, v)
			}
		}
	}
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				require.Equal(t, ref[z][y][x], g.GetUnchecked(x, y, z))
			}
		}
	}
	for k := -2; k <= 2; k++ {
		assert.Equal(t, g.WrappedGet(3, 4, 5), g.WrappedGet(3+k*w, 4+k*h, 5+k*d))
	}
}

func TestGrid3DBoundedGetSet(t *testing.T) {
	g := zarray.NewFunc3D(9, 10, 11, func(x, y, z int) int { return x + 100*y + 10000*z })
	before := g.Clone()
	const oob = -1
	for _, c := range [][3]int{{-1, 0, 0}, {0, -1, 0}, {0, 0, -1}, {9, 10, 11}, {9, 0, 0}, {0, 10, 0}, {0, 0, 11}} {
		_, ok := g.BoundedGet(c[0], c[1], c[2])
		assert.False(t, ok, "coordinate %v", c)
		assert.Equal(t, oob, g.BoundedGetOr(c[0], c[1], c[2], oob))
		assert.False(t, g.BoundedSet(c[0], c[1], c[2], 7))
	}
	assert.True(t, zarray.Equal3D(before, g))

	assert.True(t, g.BoundedSet(8, 9, 10, 7))
	v, ok := g.BoundedGet(8, 9, 10)
	require.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestGrid3DFill(t *testing.T) {
	const w, h, d = 20, 30, 10
	ref, g := seed3D(w, h, d)
	require.NoError(t, g.Fill(2, 3, 1, 15, 20, 9, 4))
	for z := 1; z < 9; z++ {
		for y := 3; y < 20; y++ {
			for x := 2; x < 15; x++ {
				ref[z][y][x] = 4
			}
		}
	}
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				require.Equal(t, ref[z][y][x], g.GetUnchecked(x, y, z), "cell (%d,%d,%d)", x, y, z)
			}
		}
	}

	// z is the innermost axis, so the failure at z=10 hits before x advances.
	err := g.Fill(0, 0, 8, 2, 1, 12, 6)
	var lerr *zarray.LookupError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, []int{0, 0, 10}, lerr.Coord)
	assert.Equal(t, uint8(6), g.GetUnchecked(0, 0, 9))
	assert.Equal(t, uint8(0), g.GetUnchecked(1, 0, 8))

	g.WrappedFill(-1, -1, -1, 0, 0, 0, 3)
	assert.Equal(t, uint8(3), g.GetUnchecked(w-1, h-1, d-1))

	g.BoundedFill(-5, -5, -5, 1, 1, 1, 2)
	assert.Equal(t, uint8(2), g.GetUnchecked(0, 0, 0))
}

func TestGrid3DConstructorVisitsPadding(t *testing.T) {
	calls := 0
	g := zarray.NewFunc3D(9, 1, 1, func(x, y, z int) [3]int {
		calls++
		return [3]int{x, y, z}
	})
	assert.Equal(t, 2*512, calls)
	v, err := g.Get(8, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, [3]int{8, 0, 0}, v)

	def := zarray.NewDefault3D[int](3, 3, 3)
	for _, v := range def.All() {
		require.Zero(t, v)
	}
}

func TestGrid3DTransformAndCoords(t *testing.T) {
	g := zarray.New3D(10, 3, 9, 1)
	visited := map[[3]int]bool{}
	g.Transform(func(x, y, z int, old int) int {
		visited[[3]int{x, y, z}] = true
		return old + x + y + z
	})
	assert.Len(t, visited, 10*3*9)
	for c := range visited {
		assert.Equal(t, 1+c[0]+c[1]+c[2], g.GetUnchecked(c[0], c[1], c[2]))
	}

	coords := g.Coords()
	require.Len(t, coords, 270)
	want := [][3]int{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}, {0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1}, {2, 0, 0}}
	if diff := cmp.Diff(want, coords[:9]); diff != "" {
		t.Fatalf("coords mismatch (-want +got):\n%s", diff)
	}
}

func TestGrid3DDegenerate(t *testing.T) {
	g := zarray.New3D(3, 3, 0, 1)
	assert.True(t, g.Empty())
	assert.Equal(t, 0, g.BlockCount())
	assert.Empty(t, g.Coords())
	_, ok := g.Iter().Next()
	assert.False(t, ok)
	assert.Equal(t, 0, g.WrappedGet(-1, -1, -1))
}
