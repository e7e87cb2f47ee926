package zarray

import "zgrid/pkg/morton"

const (
	blockShift = 3
	blockMask  = 1<<blockShift - 1
)

// block2 is an 8x8 tile in Morton order.
type block2[T any] struct {
	cells [morton.BlockSlots2]T
}

func (b *block2[T]) get(x, y int) T {
	return b.cells[morton.Block2(uint(x), uint(y))]
}

func (b *block2[T]) set(x, y int, v T) {
	b.cells[morton.Block2(uint(x), uint(y))] = v
}

// block3 is an 8x8x8 tile in Morton order.
type block3[T any] struct {
	cells [morton.BlockSlots3]T
}

func (b *block3[T]) get(x, y, z int) T {
	return b.cells[morton.Block3(uint(x), uint(y), uint(z))]
}

func (b *block3[T]) set(x, y, z int, v T) {
	b.cells[morton.Block3(uint(x), uint(y), uint(z))] = v
}

// blocksFor returns ceil(extent/8), or 0 for an empty axis.
func blocksFor(extent int) int {
	if extent <= 0 {
		return 0
	}
	return (extent-1)>>blockShift + 1
}

// slot2 returns the absolute coordinate of slot i in a block based at (bx, by).
func slot2(bx, by, i int) (int, int) {
	dx, dy := morton.Decode2x6(uint8(i))
	return bx + int(dx), by + int(dy)
}

// slot3 returns the absolute coordinate of slot i in a block based at (bx, by, bz).
func slot3(bx, by, bz, i int) (int, int, int) {
	dx, dy, dz := morton.Decode3x9(uint16(i))
	return bx + int(dx), by + int(dy), bz + int(dz)
}

// wrap folds c into [0, extent). extent must be positive.
func wrap(c, extent int) int {
	return (extent + c%extent) % extent
}
