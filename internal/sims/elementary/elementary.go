package elementary

import (
	"strconv"

	"zgrid/internal/core"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width  int
	Height int
	Rule   uint8
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Rule: 110}
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
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	return c
}

// Elementary implements a one-dimensional Wolfram code projected vertically.
// Row 0 holds the newest generation; older rows scroll downwards.
type Elementary struct {
	w, h int
	rule uint8
	grid *core.ByteGrid
	tmp  []uint8
}

// New creates an automaton with the given dimensions and rule.
func New(w, h int, rule uint8) *Elementary {
	g := core.NewByteGrid(w, h)
	return &Elementary{w: g.W, h: g.H, rule: rule, grid: g, tmp: make([]uint8, g.W)}
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the simulation grid dimensions.
func (e *Elementary) Size() core.Size { return core.Size{W: e.w, H: e.h} }

// Cells returns the history in row-major order.
func (e *Elementary) Cells() []uint8 { return e.grid.Raster() }

// Grid exposes the history grid.
func (e *Elementary) Grid() *core.ByteGrid { return e.grid }

// Parameters reports the active rule.
func (e *Elementary) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "elementary",
		Params: []core.Parameter{
			{Key: "rule", Value: strconv.Itoa(int(e.rule))},
		},
	}}}
}

// Reset clears the grid and seeds the top row with a single active cell.
func (e *Elementary) Reset(seed int64) {
	e.grid.Clear()
	e.grid.Put(e.w/2, 0, 1)
}

// Step computes the next generation and scrolls history downwards.
func (e *Elementary) Step() {
	cells := e.grid.Cells()
	for x := 0; x < e.w; x++ {
		e.tmp[x] = cells.GetUnchecked(x, 0)
	}
	for y := e.h - 1; y > 0; y-- {
		for x := 0; x < e.w; x++ {
			cells.SetUnchecked(x, y, cells.GetUnchecked(x, y-1))
		}
	}
	for x := 0; x < e.w; x++ {
		left := e.tmp[(x-1+e.w)%e.w]
		center := e.tmp[x]
		right := e.tmp[(x+1)%e.w]
		idx := (left << 2) | (center << 1) | right
		cells.SetUnchecked(x, 0, (e.rule>>idx)&1)
	}
}

func init() {
	core.Register("elementary", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return New(c.Width, c.Height, c.Rule)
	})
}
