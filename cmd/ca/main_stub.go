//go:build !ebiten

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"zgrid/internal/app"
	"zgrid/internal/core"
	"zgrid/internal/monitoring"
	_ "zgrid/internal/sims/briansbrain"
	_ "zgrid/internal/sims/elementary"
	_ "zgrid/internal/sims/erosion"
	_ "zgrid/internal/sims/life"
)

// Without the ebiten tag the binary runs sims headless. Build with
// -tags ebiten for the viewer.
func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (have %v)", cfg.Sim, core.Names())
	}

	sim := factory(cfg.Opts)
	sim.Reset(cfg.Seed)
	size := sim.Size()
	monitoring.Logf("running %s %dx%d seed=%d steps=%d %s", sim.Name(), size.W, size.H, cfg.Seed, cfg.Steps, cfg.OptString())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := app.NewRunner(sim, cfg).Run(ctx); err != nil {
		log.Fatal(err)
	}
}
