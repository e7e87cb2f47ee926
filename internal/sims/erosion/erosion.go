package erosion

import (
	"fmt"
	"strconv"

	"zgrid/internal/core"
	"zgrid/internal/monitoring"
	prng "zgrid/pkg/core"
	"zgrid/pkg/zarray"
)

// DepthLevels is the number of distinct values Cells reports.
const DepthLevels = 8

// Erosion drips water down every column of a layered 3D terrain.
// Each cell holds its remaining hardness; zero means air.
type Erosion struct {
	cfg     Config
	terrain *zarray.Grid3D[float32]
	view    *core.ByteGrid
	steps   int
}

// New creates a world from cfg and seeds it with cfg.Seed.
func New(cfg Config) *Erosion {
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Length <= 0 {
		cfg.Length = 1
	}
	if cfg.Depth <= 0 {
		cfg.Depth = 1
	}
	e := &Erosion{
		cfg:     cfg,
		terrain: zarray.New3D(cfg.Width, cfg.Length, cfg.Depth, float32(0)),
		view:    core.NewByteGrid(cfg.Width, cfg.Length),
	}
	e.Reset(cfg.Seed)
	return e
}

// Name returns the simulation identifier.
func (e *Erosion) Name() string { return "erosion" }

// Size reports the top-down footprint.
func (e *Erosion) Size() core.Size { return core.Size{W: e.cfg.Width, H: e.cfg.Length} }

// Terrain exposes the hardness volume.
func (e *Erosion) Terrain() *zarray.Grid3D[float32] { return e.terrain }

// Steps returns the number of drips applied since the last reset.
func (e *Erosion) Steps() int { return e.steps }

// Reset rebuilds the layers and places boulders.
func (e *Erosion) Reset(seed int64) {
	p := e.cfg.Params
	w, l, d := e.terrain.Dimensions()
	e.steps = 0

	e.terrain.Transform(func(_, _, _ int, _ float32) float32 { return 0 })
	soilTop := clamp(p.SoilTop, 0, d)
	rockTop := clamp(p.RockTop, soilTop, d)
	e.terrain.BoundedFill(0, 0, soilTop, w, l, rockTop, p.SoilHardness)
	e.terrain.BoundedFill(0, 0, rockTop, w, l, d, p.RockHardness)

	for _, b := range p.Boulders {
		e.terrain.BoundedSet(b[0], b[1], b[2], p.RockHardness)
	}
	if p.RandomBoulders > 0 && rockTop > soilTop {
		rng := prng.NewRNG(seed)
		r := rng.Source()
		for i := 0; i < p.RandomBoulders; i++ {
			x, y := r.IntN(w), r.IntN(l)
			z := soilTop + r.IntN(rockTop-soilTop)
			// Random boulders are up to twice as hard as rock.
			e.terrain.SetUnchecked(x, y, z, p.RockHardness*(1+rng.Float32()))
		}
	}
}

// Step lets one drip fall into every column.
func (e *Erosion) Step() {
	w, l, _ := e.terrain.Dimensions()
	for x := 0; x < w; x++ {
		for y := 0; y < l; y++ {
			e.drip(x, y)
		}
	}
	e.steps++
}

// drip carries DripPower down the column, dissolving cells until the power is
// spent. Below the grid the drip meets bedrock, which absorbs whatever power
// is left.
func (e *Erosion) drip(x, y int) {
	p := e.cfg.Params
	power := p.DripPower
	for z := 0; power > 0; z++ {
		h := e.terrain.BoundedGetOr(x, y, z, p.BedrockHardness)
		if h > power {
			e.terrain.BoundedSet(x, y, z, h-power)
			return
		}
		if !e.terrain.BoundedSet(x, y, z, 0) {
			return
		}
		power -= h
	}
}

// ExposedDepth returns the z of the first solid cell in the column, or the
// grid depth when the column is fully eroded.
func (e *Erosion) ExposedDepth(x, y int) int {
	d := e.terrain.ZSize()
	for z := 0; z < d; z++ {
		if h, ok := e.terrain.BoundedGet(x, y, z); !ok || h > 0 {
			return z
		}
	}
	return d
}

// Cells returns the exposed depth of every column quantized to DepthLevels,
// in row-major order.
func (e *Erosion) Cells() []uint8 {
	d := e.terrain.ZSize()
	e.view.Cells().Transform(func(x, y int, _ uint8) uint8 {
		return uint8(e.ExposedDepth(x, y) * (DepthLevels - 1) / d)
	})
	return e.view.Raster()
}

// Hardness sums the hardness left in the terrain.
func (e *Erosion) Hardness() float64 {
	total := 0.0
	for _, h := range e.terrain.All() {
		total += float64(h)
	}
	return total
}

// Parameters reports the active configuration.
func (e *Erosion) Parameters() core.ParameterSnapshot {
	p := e.cfg.Params
	f := func(v float32) string { return strconv.FormatFloat(float64(v), 'g', -1, 32) }
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "world",
			Params: []core.Parameter{
				{Key: "size", Value: fmt.Sprintf("%dx%dx%d", e.cfg.Width, e.cfg.Length, e.cfg.Depth)},
				{Key: "seed", Value: strconv.FormatInt(e.cfg.Seed, 10)},
				{Key: "steps", Value: strconv.Itoa(e.steps)},
			},
		},
		{
			Name: "material",
			Params: []core.Parameter{
				{Key: "soil_top", Value: strconv.Itoa(p.SoilTop)},
				{Key: "rock_top", Value: strconv.Itoa(p.RockTop)},
				{Key: "soil_hardness", Value: f(p.SoilHardness)},
				{Key: "rock_hardness", Value: f(p.RockHardness)},
				{Key: "drip_power", Value: f(p.DripPower)},
				{Key: "boulders", Value: strconv.Itoa(len(p.Boulders) + p.RandomBoulders)},
			},
		},
	}}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func init() {
	core.Register("erosion", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		if err := c.Params.Validate(); err != nil {
			monitoring.Logf("erosion: %v; using default params", err)
			c.Params = DefaultConfig().Params
		}
		if path := cfg["params"]; path != "" {
			p, err := LoadParams(path, c.Params)
			if err != nil {
				monitoring.Logf("erosion: ignoring params file: %v", err)
			} else {
				c.Params = p
			}
		}
		return New(c)
	})
}
