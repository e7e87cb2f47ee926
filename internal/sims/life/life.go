package life

import (
	"strconv"

	"zgrid/internal/core"
	prng "zgrid/pkg/core"
)

// Config holds the board dimensions.
type Config struct {
	Width  int
	Height int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	return c
}

// Life implements Conway's Game of Life with toroidal wrapping.
type Life struct {
	w, h int
	cur  *core.ByteGrid
	nxt  *core.ByteGrid
}

// New returns a Life simulation with the provided dimensions.
func New(w, h int) *Life {
	cur := core.NewByteGrid(w, h)
	return &Life{w: cur.W, h: cur.H, cur: cur, nxt: core.NewByteGrid(w, h)}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Cells returns the current generation in row-major order.
func (l *Life) Cells() []uint8 { return l.cur.Raster() }

// Grid exposes the current generation.
func (l *Life) Grid() *core.ByteGrid { return l.cur }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	prng.FillBinary(prng.NewRNG(seed).Source(), l.cur.Cells())
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	cur := l.cur
	l.nxt.Cells().Transform(func(x, y int, _ uint8) uint8 {
		neighbors := 0
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				neighbors += int(cur.At(x+dx, y+dy))
			}
		}
		alive := cur.At(x, y) == 1
		if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
			return 1
		}
		return 0
	})
	core.Swap(l.cur, l.nxt)
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return New(c.Width, c.Height)
	})
}
