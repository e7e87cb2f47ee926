package app

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"
	"time"

	"zgrid/internal/core"
	"zgrid/internal/monitoring"
	"zgrid/internal/render"
	"zgrid/internal/snapshot"
	"zgrid/internal/ui"
	"zgrid/pkg/zarray"
)

// ErrNoSnapshot is returned when a snapshot is requested for a sim that
// exposes no grid.
var ErrNoSnapshot = errors.New("sim has no grid to snapshot")

type planar interface {
	Grid() *core.ByteGrid
}

type volumetric interface {
	Terrain() *zarray.Grid3D[float32]
}

// Runner drives a sim without a window.
type Runner struct {
	sim   core.Sim
	cfg   *Config
	clock *core.FixedStep
	sleep func(time.Duration)
	logf  func(format string, v ...any)
	steps int
}

// NewRunner prepares a headless run of sim.
func NewRunner(sim core.Sim, cfg *Config) *Runner {
	return &Runner{
		sim:   sim,
		cfg:   cfg,
		clock: core.NewFixedStep(cfg.TPS),
		sleep: time.Sleep,
		logf:  monitoring.Scoped(sim.Name()),
	}
}

// Steps returns how many steps have run.
func (r *Runner) Steps() int { return r.steps }

// Run advances the sim cfg.Steps times, then writes any requested outputs.
func (r *Runner) Run(ctx context.Context) error {
	for _, line := range ui.Lines(r.sim) {
		if line != "" {
			r.logf("%s", line)
		}
	}
	start := time.Now()
	for r.steps < r.cfg.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if r.cfg.Pace && !r.clock.ShouldStep() {
			r.sleep(r.clock.Step() / 4)
			continue
		}
		r.sim.Step()
		r.steps++
		if r.cfg.Every > 0 && r.steps%r.cfg.Every == 0 {
			r.logf("step %d/%d", r.steps, r.cfg.Steps)
		}
	}
	r.logf("ran %d steps in %s", r.steps, time.Since(start).Round(time.Millisecond))

	if r.cfg.Snapshot != "" {
		if err := r.writeSnapshot(r.cfg.Snapshot); err != nil {
			return err
		}
		r.logf("wrote snapshot %s", r.cfg.Snapshot)
	}
	if r.cfg.PNG != "" {
		if err := r.writePNG(r.cfg.PNG); err != nil {
			return err
		}
		r.logf("wrote frame %s", r.cfg.PNG)
	}
	return nil
}

func (r *Runner) writeSnapshot(path string) (err error) {
	var write func(*os.File) error
	switch s := r.sim.(type) {
	case volumetric:
		write = func(f *os.File) error { return snapshot.Write3D(f, s.Terrain()) }
	case planar:
		write = func(f *os.File) error { return snapshot.Write2D(f, s.Grid().Cells()) }
	default:
		return fmt.Errorf("%s: %w", r.sim.Name(), ErrNoSnapshot)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return write(f)
}

func (r *Runner) writePNG(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	size := r.sim.Size()
	img := render.Image(r.sim.Cells(), size.W, size.H, render.PaletteFor(r.sim.Name()))
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
