package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"zgrid/internal/monitoring"
)

func main() {
	cfg := benchConfig{}
	flag.IntVar(&cfg.width, "w", 300, "grid width")
	flag.IntVar(&cfg.height, "h", 300, "grid height")
	flag.IntVar(&cfg.radius, "radius", 2, "box-sum radius")
	flag.IntVar(&cfg.oob, "oob", 127, "A* cost of stepping off the grid (1-255)")
	flag.IntVar(&cfg.runs, "runs", 5, "runs per workload")
	flag.Int64Var(&cfg.seed, "seed", 20220331, "seed for the cost grid")
	chart := flag.String("plot", "", "write a PNG bar chart to this path")
	flag.Parse()

	if cfg.width < 2 || cfg.height < 2 || cfg.runs < 1 || cfg.oob < 1 || cfg.oob > 255 {
		log.Fatal("need -w and -h >= 2, -runs >= 1 and -oob in 1..255")
	}

	monitoring.Logf("benchmarking %dx%d grid, %d runs", cfg.width, cfg.height, cfg.runs)
	samples, err := measure(cfg, workloads(cfg))
	if err != nil {
		log.Fatal(err)
	}
	sums := summarize(samples)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "workload\tmorton µs\t±\trow-major µs\t±\tspeedup")
	for _, s := range sums {
		fmt.Fprintf(tw, "%s\t%.0f\t%.0f\t%.0f\t%.0f\t%.2fx\n", s.Name, s.MortonMean, s.MortonSD, s.RowMean, s.RowSD, s.Speedup)
	}
	if err := tw.Flush(); err != nil {
		log.Fatal(err)
	}

	if *chart != "" {
		if err := writeChart(*chart, sums); err != nil {
			log.Fatal(err)
		}
		monitoring.Logf("wrote %s", *chart)
	}
}
