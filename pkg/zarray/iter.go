package zarray

import "zgrid/pkg/morton"

type iterPhase uint8

const (
	phaseStart iterPhase = iota
	phaseRunning
	phaseDone
)

// Item2D is one cell produced by Iterator2D.
type Item2D[T any] struct {
	X, Y  int
	Value T
}

// Iterator2D walks a Grid2D block by block and, inside a block, in ascending
// Morton order. It is forward-only; call Grid2D.Iter again to restart.
type Iterator2D[T any] struct {
	grid  *Grid2D[T]
	block int
	slot  int
	phase iterPhase
}

func newIterator2D[T any](g *Grid2D[T]) *Iterator2D[T] {
	it := &Iterator2D[T]{grid: g}
	if g.Empty() {
		it.phase = phaseDone
	}
	return it
}

// Next returns the next cell, or false once every logical cell was produced.
func (it *Iterator2D[T]) Next() (Item2D[T], bool) {
	g := it.grid
	switch it.phase {
	case phaseDone:
		return Item2D[T]{}, false
	case phaseStart:
		it.phase = phaseRunning
		return Item2D[T]{X: 0, Y: 0, Value: g.blocks[0].cells[0]}, true
	}
	for {
		it.slot++
		if it.slot >= morton.BlockSlots2 {
			it.slot = 0
			it.block++
		}
		if it.block >= len(g.blocks) {
			it.phase = phaseDone
			return Item2D[T]{}, false
		}
		bx, by := g.origin(it.block)
		x, y := slot2(bx, by, it.slot)
		if x < g.width && y < g.height {
			return Item2D[T]{X: x, Y: y, Value: g.blocks[it.block].cells[it.slot]}, true
		}
	}
}

// Item3D is one cell produced by Iterator3D.
type Item3D[T any] struct {
	X, Y, Z int
	Value   T
}

// Iterator3D is the 3D counterpart of Iterator2D.
type Iterator3D[T any] struct {
	grid  *Grid3D[T]
	block int
	slot  int
	phase iterPhase
}

func newIterator3D[T any](g *Grid3D[T]) *Iterator3D[T] {
	it := &Iterator3D[T]{grid: g}
	if g.Empty() {
		it.phase = phaseDone
	}
	return it
}

// Next returns the next cell, or false once every logical cell was produced.
func (it *Iterator3D[T]) Next() (Item3D[T], bool) {
	g := it.grid
	switch it.phase {
	case phaseDone:
		return Item3D[T]{}, false
	case phaseStart:
		it.phase = phaseRunning
		return Item3D[T]{Value: g.blocks[0].cells[0]}, true
	}
	for {
		it.slot++
		if it.slot >= morton.BlockSlots3 {
			it.slot = 0
			it.block++
		}
		if it.block >= len(g.blocks) {
			it.phase = phaseDone
			return Item3D[T]{}, false
		}
		bx, by, bz := g.origin(it.block)
		x, y, z := slot3(bx, by, bz, it.slot)
		if g.contains(x, y, z) {
			return Item3D[T]{X: x, Y: y, Z: z, Value: g.blocks[it.block].cells[it.slot]}, true
		}
	}
}
