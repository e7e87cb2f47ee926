package main

import (
	"fmt"
	"image/color"
	"time"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"zgrid/internal/kernel"
	"zgrid/internal/pathfind"
	prng "zgrid/pkg/core"
	"zgrid/pkg/zarray"
)

// workload is one benchmark run against both layouts. Each func returns a
// checksum so the layouts can be compared for agreement.
type workload struct {
	name     string
	morton   func() int
	rowMajor func() int
}

// sample holds per-run timings in microseconds.
type sample struct {
	name     string
	morton   []float64
	rowMajor []float64
}

type summary struct {
	Name                 string
	MortonMean, MortonSD float64
	RowMean, RowSD       float64
	Speedup              float64
}

type benchConfig struct {
	width, height int
	radius        int
	oob           int
	runs          int
	seed          int64
}

func randomGrid(cfg benchConfig) *zarray.Grid2D[uint8] {
	r := prng.NewRNG(cfg.seed).Source()
	g := zarray.New2D(cfg.width, cfg.height, uint8(0))
	g.Transform(func(_, _ int, _ uint8) uint8 { return uint8(r.IntN(256)) })
	return g
}

func workloads(cfg benchConfig) []workload {
	g := randomGrid(cfg)
	ref := kernel.RowMajorFrom2D(g)
	oob := uint8(cfg.oob)
	start := pathfind.Point{X: 1, Y: 1}
	goal := pathfind.Point{X: cfg.width - 1, Y: cfg.height - 1}

	return []workload{
		{
			name: fmt.Sprintf("boxsum r=%d", cfg.radius),
			morton: func() int {
				total := 0
				for _, v := range kernel.BoxSum2D(g, cfg.radius, oob).All() {
					total += v
				}
				return total
			},
			rowMajor: func() int {
				total := 0
				for _, v := range kernel.BoxSumRowMajor2D(ref, cfg.radius, oob) {
					total += v
				}
				return total
			},
		},
		{
			name: "astar",
			morton: func() int {
				p, err := pathfind.AStar(g, start, goal, oob)
				if err != nil {
					return -1
				}
				return p.Cost
			},
			rowMajor: func() int {
				p, err := pathfind.Search(start, goal, func(pt pathfind.Point) int {
					if v, ok := ref.At(pt.X, pt.Y); ok {
						return int(v)
					}
					return int(oob)
				})
				if err != nil {
					return -1
				}
				return p.Cost
			},
		},
	}
}

func timeIt(fn func() int) (float64, int) {
	t0 := time.Now()
	v := fn()
	return float64(time.Since(t0).Microseconds()), v
}

// measure runs every workload cfg.runs times, alternating layouts.
func measure(cfg benchConfig, ws []workload) ([]sample, error) {
	out := make([]sample, 0, len(ws))
	for _, w := range ws {
		s := sample{name: w.name}
		for i := 0; i < cfg.runs; i++ {
			mt, mv := timeIt(w.morton)
			rt, rv := timeIt(w.rowMajor)
			if mv != rv {
				return nil, fmt.Errorf("%s: morton result %d differs from row-major %d", w.name, mv, rv)
			}
			s.morton = append(s.morton, mt)
			s.rowMajor = append(s.rowMajor, rt)
		}
		out = append(out, s)
	}
	return out, nil
}

func summarize(samples []sample) []summary {
	out := make([]summary, len(samples))
	for i, s := range samples {
		mm, msd := stat.MeanStdDev(s.morton, nil)
		rm, rsd := stat.MeanStdDev(s.rowMajor, nil)
		speedup := 0.0
		if mm > 0 {
			speedup = rm / mm
		}
		out[i] = summary{Name: s.name, MortonMean: mm, MortonSD: msd, RowMean: rm, RowSD: rsd, Speedup: speedup}
	}
	return out
}

// writeChart saves a grouped bar chart of mean timings.
func writeChart(path string, sums []summary) error {
	p := plot.New()
	p.Title.Text = "Morton vs row-major"
	p.Y.Label.Text = "mean time (µs)"

	morton := make(plotter.Values, len(sums))
	row := make(plotter.Values, len(sums))
	names := make([]string, len(sums))
	for i, s := range sums {
		morton[i], row[i], names[i] = s.MortonMean, s.RowMean, s.Name
	}

	w := vg.Points(20)
	mb, err := plotter.NewBarChart(morton, w)
	if err != nil {
		return fmt.Errorf("morton bars: %w", err)
	}
	mb.Color = color.RGBA{R: 40, G: 90, B: 200, A: 255}
	mb.Offset = -w / 2

	rb, err := plotter.NewBarChart(row, w)
	if err != nil {
		return fmt.Errorf("row-major bars: %w", err)
	}
	rb.Color = color.RGBA{R: 200, G: 120, B: 40, A: 255}
	rb.Offset = w / 2

	p.Add(mb, rb)
	p.Legend.Add("morton", mb)
	p.Legend.Add("row-major", rb)
	p.Legend.Top = true
	p.NominalX(names...)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	return nil
}
