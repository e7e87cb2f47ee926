package briansbrain

import (
	"zgrid/internal/core"
	prng "zgrid/pkg/core"
)

const (
	stateDead  = 0
	stateOn    = 1
	stateDying = 2
)

// Brain implements Brian's Brain cellular automaton.
type Brain struct {
	w, h int
	cur  *core.ByteGrid
	nxt  *core.ByteGrid
}

// New creates a Brain simulation with the provided dimensions.
func New(w, h int) *Brain {
	cur := core.NewByteGrid(w, h)
	return &Brain{w: cur.W, h: cur.H, cur: cur, nxt: core.NewByteGrid(w, h)}
}

// Name identifies the simulation.
func (b *Brain) Name() string { return "briansbrain" }

// Size returns the grid dimensions.
func (b *Brain) Size() core.Size { return core.Size{W: b.w, H: b.h} }

// Cells returns the current state in row-major order.
func (b *Brain) Cells() []uint8 { return b.cur.Raster() }

// Grid exposes the current state.
func (b *Brain) Grid() *core.ByteGrid { return b.cur }

// Reset randomizes cells into dead or firing states.
func (b *Brain) Reset(seed int64) {
	prng.FillOneIn(prng.NewRNG(seed).Source(), b.cur.Cells(), 8, stateOn, stateDead)
}

// Step advances the automaton by one tick.
func (b *Brain) Step() {
	cur := b.cur
	b.nxt.Cells().Transform(func(x, y int, _ uint8) uint8 {
		switch cur.At(x, y) {
		case stateOn:
			return stateDying
		case stateDying:
			return stateDead
		}
		neighbors := 0
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				if cur.At(x+dx, y+dy) == stateOn {
					neighbors++
				}
			}
		}
		if neighbors == 2 {
			return stateOn
		}
		return stateDead
	})
	core.Swap(b.cur, b.nxt)
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) core.Sim {
		return New(256, 256)
	})
}
